// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brewlog/config"
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

const maxHistoryLimit = 100

// analysisService implements the AnalysisUsecase interface.
type analysisService struct {
	registry       service.ProviderRegistry
	vault          service.SecretVault
	ledger         service.QuotaLedger
	imageStore     service.ImageStore
	eventPublisher service.EventPublisher
	credentialRepo repository.CredentialRepository
	analysisRepo   repository.AnalysisRepository
	timeout        time.Duration
	historyLimit   int
	logger         *slog.Logger
	now            func() time.Time
}

// AnalysisServiceParams holds dependencies for AnalysisService, injected by Fx.
type AnalysisServiceParams struct {
	fx.In

	Registry       service.ProviderRegistry
	Vault          service.SecretVault
	Ledger         service.QuotaLedger
	ImageStore     service.ImageStore
	EventPublisher service.EventPublisher
	CredentialRepo repository.CredentialRepository
	AnalysisRepo   repository.AnalysisRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAnalysisService is the constructor for analysisService.
func NewAnalysisService(params AnalysisServiceParams) usecase.AnalysisUsecase {
	return &analysisService{
		registry:       params.Registry,
		vault:          params.Vault,
		ledger:         params.Ledger,
		imageStore:     params.ImageStore,
		eventPublisher: params.EventPublisher,
		credentialRepo: params.CredentialRepo,
		analysisRepo:   params.AnalysisRepo,
		timeout:        params.Config.Analysis.Timeout,
		historyLimit:   params.Config.Analysis.HistoryLimit,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analysisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Analyze resolves the provider, loads the caller's key or checks the free quota,
// calls the backend and records what the caller is owed.
func (srv *analysisService) Analyze(ctx context.Context, input *usecase.AnalyzeInput) (*usecase.AnalyzeOutput, error) {
	providerID, err := entity.ParseProviderID(strings.ToLower(strings.TrimSpace(input.Provider)))
	if err != nil {
		return nil, err
	}

	client, err := srv.registry.Resolve(providerID)
	if err != nil {
		return nil, err
	}

	requiresCredential, err := srv.registry.RequiresUserCredential(providerID)
	if err != nil {
		return nil, err
	}

	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	var credential string
	if requiresCredential {
		credential, err = srv.openCredential(ctx, input.Caller, providerID)
		if err != nil {
			return nil, err
		}
	}

	houseBlend := providerID == entity.ProviderHouseBlend
	var identity entity.QuotaIdentity
	if houseBlend {
		identity = srv.ledger.IdentityFor(input.Caller)

		snapshot, err := srv.ledger.CheckUsage(ctx, identity)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check usage")
		}
		if snapshot.Remaining <= 0 {
			return nil, domainerrors.ErrQuotaExceeded
		}
	}

	imageDataURL, err := srv.imageStore.LoadDataURL(ctx, strings.TrimSpace(input.ImageRef))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("image not found")
		}

		return nil, err
	}

	result, err := client.AnalyzeImage(ctx, imageDataURL, credential)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConfiguration) {
			srv.log(ctx).Error("Provider routing is misconfigured",
				slog.String("provider", providerID.String()),
				slog.Any("error", err),
			)
		}

		return nil, err
	}
	if ctx.Err() != nil {
		return nil, errors.Wrap(domainerrors.ErrUpstreamFailure, "analysis abandoned")
	}

	output := &usecase.AnalyzeOutput{
		Provider: providerID,
		Result:   result,
	}

	if houseBlend {
		srv.recordUsage(ctx, identity, output)
	}

	if input.Caller.IsAuthenticated() {
		srv.persist(ctx, input, providerID, output)
	}

	return output, nil
}

// openCredential loads and decrypts the key the caller stored for providerID.
func (srv *analysisService) openCredential(ctx context.Context, caller entity.Caller, providerID entity.ProviderID) (string, error) {
	if !caller.IsAuthenticated() {
		return "", domainerrors.ErrMissingCredential.WithDetails("sign in and save a key for " + providerID.String())
	}

	stored, err := srv.credentialRepo.FindCredential(ctx, caller.UserID, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", domainerrors.ErrMissingCredential.WithDetails("no key saved for " + providerID.String())
		}

		return "", errors.Wrap(err, "failed to find credential")
	}

	plaintext, err := srv.vault.Decrypt(stored.Secret)
	if err != nil {
		srv.log(ctx).Warn("Stored credential failed integrity check",
			slog.String("user_id", caller.UserID.String()),
			slog.String("provider", providerID.String()),
		)

		return "", err
	}

	return plaintext, nil
}

// recordUsage meters a successful house-blend analysis. Losing the race to the
// ceiling degrades the response instead of failing it.
func (srv *analysisService) recordUsage(ctx context.Context, identity entity.QuotaIdentity, output *usecase.AnalyzeOutput) {
	snapshot, err := srv.ledger.RecordUsage(ctx, identity)
	if err != nil {
		srv.log(ctx).Warn("Failed to record house blend usage",
			slog.String("identity", identity.String()),
			slog.Any("error", err),
		)
		if errors.Is(err, domainerrors.ErrQuotaExceeded) {
			output.Usage = &snapshot
		}

		return
	}

	output.Usage = &snapshot
	output.UsageRecorded = true
}

// persist stores the analysis for an authenticated caller and announces it. Both steps are best-effort.
func (srv *analysisService) persist(ctx context.Context, input *usecase.AnalyzeInput, providerID entity.ProviderID, output *usecase.AnalyzeOutput) {
	record := &entity.AnalysisRecord{
		OwnerUserID: input.Caller.UserID,
		ImageRef:    strings.TrimSpace(input.ImageRef),
		Provider:    providerID,
		Result:      *output.Result,
		CreatedAt:   srv.now().UTC(),
	}

	if err := srv.analysisRepo.CreateAnalysis(ctx, record); err != nil {
		srv.log(ctx).Warn("Failed to persist analysis",
			slog.String("user_id", record.OwnerUserID.String()),
			slog.Any("error", err),
		)

		return
	}
	output.AnalysisID = &record.ID

	event := &service.AnalysisRecordedEvent{
		RequestID:  deliverycontext.RequestIDFromContext(ctx),
		AnalysisID: record.ID.String(),
		UserID:     record.OwnerUserID.String(),
		Provider:   providerID.String(),
		Identified: record.Result.Identified,
		BeanType:   record.Result.BeanType,
		RecordedAt: record.CreatedAt.Format(time.RFC3339),
	}
	if err := srv.eventPublisher.PublishAnalysisRecorded(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish analysis event",
			slog.String("analysis_id", event.AnalysisID),
			slog.Any("error", err),
		)
	}
}

// GetUsage reports today's house-blend usage of the caller.
func (srv *analysisService) GetUsage(ctx context.Context, caller entity.Caller) (*entity.UsageSnapshot, error) {
	snapshot, err := srv.ledger.CheckUsage(ctx, srv.ledger.IdentityFor(caller))
	if err != nil {
		return nil, errors.Wrap(err, "failed to check usage")
	}

	return &snapshot, nil
}

// UploadImage stores a bag photo.
func (srv *analysisService) UploadImage(ctx context.Context, data []byte) (string, error) {
	ref, err := srv.imageStore.SaveImage(ctx, data)
	if err != nil {
		return "", err
	}

	return ref, nil
}

// ListAnalyses retrieves the newest analyses of a user, clamping limit to the configured range.
func (srv *analysisService) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error) {
	if limit <= 0 {
		limit = srv.historyLimit
	}
	limit = min(limit, maxHistoryLimit)

	records, err := srv.analysisRepo.ListAnalysesByOwner(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analyses")
	}

	return records, nil
}

// LinkCoffee attaches a catalog coffee to an analysis owned by the user.
func (srv *analysisService) LinkCoffee(ctx context.Context, userID, analysisID, coffeeID uuid.UUID) error {
	if coffeeID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("coffee_id is required")
	}

	if err := srv.analysisRepo.LinkCoffee(ctx, userID, analysisID, coffeeID); err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return domainerrors.ErrAnalysisNotFound
		}

		return errors.Wrap(err, "failed to link coffee")
	}

	return nil
}
