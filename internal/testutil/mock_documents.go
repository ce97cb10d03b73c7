package testutil

import (
	"context"
	"sync"

	"github.com/contractorpro/contractorpro/internal/s3"
)

var _ s3.Service = (*InMemoryDocumentStore)(nil)

// InMemoryDocumentStore keeps uploaded documents in memory under their object key
type InMemoryDocumentStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{objects: make(map[string][]byte)}
}

func (s *InMemoryDocumentStore) UploadDocument(ctx context.Context, userID string, document *s3.Document) (*s3.UploadResult, error) {
	key := s3.ObjectKey("documents", userID, document)

	s.mu.Lock()
	s.objects[key] = document.Data
	s.mu.Unlock()

	url, err := s.GetPresignedURL(ctx, key)
	if err != nil {
		return nil, err
	}
	return &s3.UploadResult{Key: key, FileURL: url}, nil
}

func (s *InMemoryDocumentStore) GetPresignedURL(ctx context.Context, key string) (string, error) {
	return "https://documents.test/" + key, nil
}

func (s *InMemoryDocumentStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}
