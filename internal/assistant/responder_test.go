package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponder_ReturnsModelReplyVerbatim(t *testing.T) {
	gen := &stubGenerator{reply: "  Groceries are usually 10-15% of take-home pay.  "}
	r := NewResponder(gen)

	reply := r.Reply(context.Background(), "how much should I spend on groceries?")

	assert.Equal(t, "Groceries are usually 10-15% of take-home pay.", reply)
	assert.Contains(t, gen.prompts[0], "You are FinTrack AI")
	assert.Contains(t, gen.prompts[0], "how much should I spend on groceries?")
}

func TestResponder_FailureReturnsApology(t *testing.T) {
	r := NewResponder(&stubGenerator{err: errors.New("quota exhausted")})

	reply := r.Reply(context.Background(), "hello")

	assert.Equal(t, ReplyApology, reply)
}

func TestResponder_EmptyReplyReturnsApology(t *testing.T) {
	r := NewResponder(&stubGenerator{reply: "   "})

	reply := r.Reply(context.Background(), "hello")

	assert.Equal(t, ReplyApology, reply)
}
