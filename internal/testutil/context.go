package testutil

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

// DefaultUserID owns everything the service suites create
const DefaultUserID = "user_test_owner"

func SetupContext() context.Context {
	return SetupContextForUser(DefaultUserID)
}

func SetupContextForUser(userID string) context.Context {
	ctx := context.Background()
	ctx = types.SetUserID(ctx, userID)
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}
