package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "brewlog/internal/delivery/context"
	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/repository"
	"brewlog/internal/domain/service"
	"brewlog/internal/errors"
	"brewlog/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxCredentialLength = 512

type credentialService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	registry       service.ProviderRegistry
	vault          service.SecretVault
	logger         *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Registry       service.ProviderRegistry
	Vault          service.SecretVault
	Logger         *slog.Logger
}

// NewCredentialService creates a new credential service instance
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		registry:       params.Registry,
		vault:          params.Vault,
		logger:         params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// acceptingProvider parses raw and makes sure the provider takes user-supplied keys.
func (srv *credentialService) acceptingProvider(raw string) (entity.ProviderID, service.VisionClient, error) {
	providerID, err := entity.ParseProviderID(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return "", nil, err
	}

	requires, err := srv.registry.RequiresUserCredential(providerID)
	if err != nil {
		return "", nil, err
	}
	if !requires {
		return "", nil, domainerrors.ErrCredentialNotAccepted.WithDetails(providerID.String() + " uses the platform key")
	}

	client, err := srv.registry.Resolve(providerID)
	if err != nil {
		return "", nil, err
	}

	return providerID, client, nil
}

// SaveCredential validates the key shape, seals it and replaces any previous key for the provider.
func (srv *credentialService) SaveCredential(ctx context.Context, userID uuid.UUID, provider, plaintext string) (*entity.CredentialView, error) {
	providerID, client, err := srv.acceptingProvider(provider)
	if err != nil {
		return nil, err
	}

	plaintext = strings.TrimSpace(plaintext)
	if plaintext == "" || len(plaintext) > maxCredentialLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("api_key is required")
	}
	if !client.ValidateKeyFormat(plaintext) {
		return nil, domainerrors.ErrInvalidCredential.WithDetails("key format not recognized for " + providerID.String())
	}

	sealed, err := srv.vault.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	credential := &entity.StoredCredential{
		UserID:   userID,
		Provider: providerID,
		Secret:   sealed,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCredentialRepository().UpsertCredential(ctx, credential)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save credential")
	}

	srv.log(ctx).Info("Credential saved",
		slog.String("user_id", userID.String()),
		slog.String("provider", providerID.String()),
	)

	return &entity.CredentialView{
		Provider:  providerID,
		Masked:    srv.vault.Mask(plaintext),
		UpdatedAt: credential.UpdatedAt,
	}, nil
}

// DeleteCredential removes the key a user stored for a provider.
func (srv *credentialService) DeleteCredential(ctx context.Context, userID uuid.UUID, provider string) error {
	providerID, err := entity.ParseProviderID(strings.ToLower(strings.TrimSpace(provider)))
	if err != nil {
		return err
	}

	if err := srv.credentialRepo.DeleteCredential(ctx, userID, providerID); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrCredentialNotFound
		}

		return errors.Wrap(err, "failed to delete credential")
	}

	return nil
}

// ListCredentials returns masked views of every stored key. A key that no longer
// decrypts is listed with an empty mask so the owner knows to replace it.
func (srv *credentialService) ListCredentials(ctx context.Context, userID uuid.UUID) ([]*entity.CredentialView, error) {
	credentials, err := srv.credentialRepo.ListCredentialsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	views := make([]*entity.CredentialView, 0, len(credentials))
	for _, credential := range credentials {
		view := &entity.CredentialView{
			Provider:  credential.Provider,
			UpdatedAt: credential.UpdatedAt,
		}

		plaintext, err := srv.vault.Decrypt(credential.Secret)
		if err != nil {
			srv.log(ctx).Warn("Stored credential failed integrity check",
				slog.String("user_id", userID.String()),
				slog.String("provider", credential.Provider.String()),
			)
		} else {
			view.Masked = srv.vault.Mask(plaintext)
		}

		views = append(views, view)
	}

	return views, nil
}

// TestCredential makes one live call with the stored key.
func (srv *credentialService) TestCredential(ctx context.Context, userID uuid.UUID, provider string) (bool, error) {
	providerID, client, err := srv.acceptingProvider(provider)
	if err != nil {
		return false, err
	}

	credential, err := srv.credentialRepo.FindCredential(ctx, userID, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return false, domainerrors.ErrCredentialNotFound
		}

		return false, errors.Wrap(err, "failed to find credential")
	}

	plaintext, err := srv.vault.Decrypt(credential.Secret)
	if err != nil {
		return false, err
	}

	return client.TestConnection(ctx, plaintext), nil
}
