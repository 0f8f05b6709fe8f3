// Package ingest turns uploaded statement files into transaction
// candidates for the assistant pipeline.
package ingest

import (
	"fmt"
	"strings"

	"github.com/iho/fintrack/internal/domain"
)

const (
	mimeCSV = "text/csv"
	mimePDF = "application/pdf"
)

// Processor routes an uploaded document to the importer matching its
// declared content type.
type Processor struct {
	csv *Importer
}

// NewProcessor creates a document processor.
func NewProcessor() *Processor {
	return &Processor{csv: NewImporter()}
}

// Process dispatches on the declared content type. PDF and image
// uploads are acknowledged but not parsed yet; the result message says
// so. Unknown types produce a structured failure, never an error.
func (p *Processor) Process(data []byte, filename, contentType string) domain.ImportResult {
	switch {
	case contentType == mimeCSV:
		return p.csv.Import(data, filename)
	case contentType == mimePDF:
		return domain.ImportResult{
			Success: true,
			Message: fmt.Sprintf("PDF processing for %s completed. This feature is coming soon.", filename),
		}
	case strings.HasPrefix(contentType, "image/"):
		return domain.ImportResult{
			Success: true,
			Message: fmt.Sprintf("Image processing for %s completed. This feature is coming soon.", filename),
		}
	default:
		return domain.ImportResult{
			Success: false,
			Message: fmt.Sprintf("Unsupported file type: %s", contentType),
		}
	}
}
