package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

// newTestTxManager runs every Execute call against the given factory without
// a real transaction, so errors returned by the callback surface unchanged.
func newTestTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func customerIdentity() *authz.Identity {
	return &authz.Identity{
		UserID: uuid.New(),
		Email:  "shopper@example.com",
		Role:   entity.RoleCustomer,
	}
}

func vendorIdentity() *authz.Identity {
	return &authz.Identity{
		UserID: uuid.New(),
		Email:  "vendor@example.com",
		Role:   entity.RoleVendor,
	}
}

func adminIdentity() *authz.Identity {
	return &authz.Identity{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin,
	}
}

func regionalIdentity(district string) *authz.Identity {
	return &authz.Identity{
		UserID:   uuid.New(),
		Email:    "regional@example.com",
		Role:     entity.RoleRegionalAdmin,
		District: district,
	}
}
