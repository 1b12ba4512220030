package usecase

import (
	"context"

	"brewlog/internal/domain/entity"
)

// ProviderSummary is a provider descriptor plus whether the caller has a key stored for it
type ProviderSummary struct {
	entity.ProviderDescriptor
	HasCredential bool `json:"has_credential"`
}

// ProviderUsecase defines the interface for the provider catalog
type ProviderUsecase interface {
	// ListProviders lists every provider, house-blend first
	ListProviders(ctx context.Context, caller entity.Caller) ([]*ProviderSummary, error)
}
