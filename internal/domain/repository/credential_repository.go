// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"brewlog/internal/domain/entity"
	"brewlog/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when a user has no credential for a provider.
	ErrCredentialNotFound = errors.New("credential not found")
)

// CredentialRepository defines the interface for sealed provider credentials.
type CredentialRepository interface {
	// UpsertCredential stores the credential, replacing any existing one for the same user and provider.
	UpsertCredential(ctx context.Context, credential *entity.StoredCredential) error

	// FindCredential retrieves the credential a user stored for a provider.
	FindCredential(ctx context.Context, userID uuid.UUID, provider entity.ProviderID) (*entity.StoredCredential, error)

	// ListCredentialsByUser retrieves every credential of a user, ordered by provider.
	ListCredentialsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StoredCredential, error)

	// DeleteCredential removes the credential a user stored for a provider.
	DeleteCredential(ctx context.Context, userID uuid.UUID, provider entity.ProviderID) error
}
