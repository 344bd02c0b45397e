package storage

import (
	"context"

	"github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
)

var _ delivery.DocumentStorage = (*NoopStorage)(nil)

// NoopStorage discards documents. Deliveries made with this backend
// carry no backup location.
type NoopStorage struct{}

// NewNoopStorage creates a storage backend that stores nothing
func NewNoopStorage() *NoopStorage {
	return &NoopStorage{}
}

// Store discards the document and reports no location
func (s *NoopStorage) Store(ctx context.Context, companyNIT string, document []byte) (string, error) {
	return "", nil
}
