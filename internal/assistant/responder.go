package assistant

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// ReplyApology is returned whenever the model cannot be reached or
// errors out mid-reply.
const ReplyApology = "I apologize, but I'm having trouble processing your request right now. Please try again."

// Responder answers general finance questions in the assistant
// persona.
type Responder struct {
	gen TextGenerator
}

// NewResponder creates a new Responder.
func NewResponder(gen TextGenerator) *Responder {
	return &Responder{gen: gen}
}

// Reply answers message, degrading to the fixed apology on any
// failure.
func (r *Responder) Reply(ctx context.Context, message string) string {
	reply, err := r.gen.Generate(ctx, ChatPrompt(message))
	if err != nil {
		log.Warn().Err(err).Msg("chat reply failed")
		return ReplyApology
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return ReplyApology
	}

	return reply
}
