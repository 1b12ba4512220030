package impl

import (
	"context"

	"brewlog/internal/domain/entity"
	"brewlog/internal/domain/repository"
	"brewlog/internal/domain/service"
	"brewlog/internal/errors"
	"brewlog/internal/usecase"
)

type providerService struct {
	registry       service.ProviderRegistry
	credentialRepo repository.CredentialRepository
}

// NewProviderService creates a new provider catalog service instance
func NewProviderService(registry service.ProviderRegistry, credentialRepo repository.CredentialRepository) usecase.ProviderUsecase {
	return &providerService{
		registry:       registry,
		credentialRepo: credentialRepo,
	}
}

// ListProviders lists every provider. Authenticated callers also learn which ones they hold a key for.
func (s *providerService) ListProviders(ctx context.Context, caller entity.Caller) ([]*usecase.ProviderSummary, error) {
	stored := make(map[entity.ProviderID]bool)
	if caller.IsAuthenticated() {
		credentials, err := s.credentialRepo.ListCredentialsByUser(ctx, caller.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list credentials")
		}
		for _, credential := range credentials {
			stored[credential.Provider] = true
		}
	}

	descriptors := s.registry.DescribeAll()
	summaries := make([]*usecase.ProviderSummary, 0, len(descriptors))
	for _, descriptor := range descriptors {
		summaries = append(summaries, &usecase.ProviderSummary{
			ProviderDescriptor: descriptor,
			HasCredential:      stored[descriptor.ID],
		})
	}

	return summaries, nil
}
