package s3

import (
	"testing"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfHeader = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n")
	pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}
)

func TestNewDocumentSniffsContent(t *testing.T) {
	doc, err := NewDocument("doc_1", pdfHeader)
	require.NoError(t, err)
	assert.Equal(t, "pdf", doc.Extension)
	assert.Equal(t, "application/pdf", doc.ContentType)

	doc, err = NewDocument("doc_2", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "png", doc.Extension)
	assert.Equal(t, "image/png", doc.ContentType)
}

func TestNewDocumentRejectsUnsupported(t *testing.T) {
	_, err := NewDocument("doc_1", []byte("just some plain text, not a document"))
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	_, err = NewDocument("doc_1", nil)
	assert.True(t, ierr.IsValidation(err))

	_, err = NewDocument("doc_1", make([]byte, MaxDocumentSize+1))
	assert.True(t, ierr.IsValidation(err))
}

func TestObjectKey(t *testing.T) {
	doc := &Document{ID: "doc_1", Extension: "pdf"}
	assert.Equal(t, "compliance/user_1/doc_1.pdf", ObjectKey("compliance", "user_1", doc))
	assert.Equal(t, "user_1/doc_1.pdf", ObjectKey("", "user_1", doc))
}
