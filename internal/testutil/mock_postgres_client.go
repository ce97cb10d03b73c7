package testutil

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
)

var _ postgres.IClient = (*MockPostgresClient)(nil)

// MockPostgresClient runs transaction bodies directly and can simulate an outage
type MockPostgresClient struct {
	logger  *logger.Logger
	PingErr error
	TxCount int
}

func NewMockPostgresClient(logger *logger.Logger) *MockPostgresClient {
	return &MockPostgresClient{logger: logger}
}

// WithTx has no rollback; in-memory stores keep whatever fn wrote before failing
func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	c.TxCount++
	return fn(ctx)
}

func (c *MockPostgresClient) Ping(ctx context.Context) error {
	return c.PingErr
}
