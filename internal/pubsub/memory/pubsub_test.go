package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishThenSubscribeDelivers(t *testing.T) {
	ps := NewPubSub(config.GetDefaultConfig(), logger.NewNoopLogger())
	defer ps.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := message.NewMessage(watermill.NewUUID(), []byte(`{"invoice_id":"inv_1"}`))
	require.NoError(t, ps.Publish(ctx, "invoice.generated", msg))

	messages, err := ps.Subscribe(ctx, "invoice.generated")
	require.NoError(t, err)

	select {
	case got := <-messages:
		assert.Equal(t, msg.UUID, got.UUID)
		assert.JSONEq(t, `{"invoice_id":"inv_1"}`, string(got.Payload))
		got.Ack()
	case <-ctx.Done():
		t.Fatal("message was not delivered")
	}
}
