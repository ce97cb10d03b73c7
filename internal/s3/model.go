package s3

import (
	"github.com/h2non/filetype"
	"github.com/samber/lo"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
)

// MaxDocumentSize caps compliance uploads at 10 MiB
const MaxDocumentSize = 10 << 20

// Document is an uploaded compliance file after content sniffing
type Document struct {
	ID          string `json:"id"`
	Data        []byte `json:"-"`
	ContentType string `json:"content_type"`
	Extension   string `json:"extension"`
}

// UploadResult is what the compliance service stores and returns to the caller
type UploadResult struct {
	Key     string `json:"key"`
	FileURL string `json:"file_url"`
}

var allowedExtensions = []string{"pdf", "png", "jpg"}

// NewDocument sniffs data and rejects anything that is not a pdf, png or jpeg.
// The declared file name is ignored.
func NewDocument(id string, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ierr.NewError("empty document").
			WithHint("The uploaded file is empty").
			Mark(ierr.ErrValidation)
	}
	if len(data) > MaxDocumentSize {
		return nil, ierr.NewError("document too large").
			WithHint("The uploaded file must be 10 MB or smaller").
			WithReportableDetails(map[string]any{"size": len(data)}).
			Mark(ierr.ErrValidation)
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !lo.Contains(allowedExtensions, kind.Extension) {
		return nil, ierr.NewError("unsupported document type").
			WithHintf("Document must be one of: %v", allowedExtensions).
			Mark(ierr.ErrValidation)
	}

	return &Document{
		ID:          id,
		Data:        data,
		ContentType: kind.MIME.Value,
		Extension:   kind.Extension,
	}, nil
}
