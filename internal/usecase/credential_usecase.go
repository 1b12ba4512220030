package usecase

import (
	"context"

	"brewlog/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialUsecase defines the interface for managing user-supplied provider keys
type CredentialUsecase interface {
	// SaveCredential validates, seals and stores a key, replacing any previous one
	SaveCredential(ctx context.Context, userID uuid.UUID, provider, plaintext string) (*entity.CredentialView, error)

	// DeleteCredential removes the key a user stored for a provider
	DeleteCredential(ctx context.Context, userID uuid.UUID, provider string) error

	// ListCredentials returns masked views of every stored key
	ListCredentials(ctx context.Context, userID uuid.UUID) ([]*entity.CredentialView, error)

	// TestCredential makes one live call with the stored key
	TestCredential(ctx context.Context, userID uuid.UUID, provider string) (bool, error)
}
