package impl

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"brewlog/config"
	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/repository"
	"brewlog/internal/infra/crypto"
	"brewlog/internal/infra/quota"
	mockRepo "brewlog/internal/mocks/repository"
	mockService "brewlog/internal/mocks/service"
	"brewlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryCredentialRepository keeps credentials in a map so the analysis and
// credential services can share state within one test.
type memoryCredentialRepository struct {
	mu          sync.Mutex
	credentials map[string]*entity.StoredCredential
}

func newMemoryCredentialRepository() *memoryCredentialRepository {
	return &memoryCredentialRepository{credentials: make(map[string]*entity.StoredCredential)}
}

func credentialKey(userID uuid.UUID, provider entity.ProviderID) string {
	return userID.String() + "/" + provider.String()
}

func (repo *memoryCredentialRepository) UpsertCredential(_ context.Context, credential *entity.StoredCredential) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	credential.UpdatedAt = time.Now().UTC()
	stored := *credential
	repo.credentials[credentialKey(credential.UserID, credential.Provider)] = &stored

	return nil
}

func (repo *memoryCredentialRepository) FindCredential(_ context.Context, userID uuid.UUID, provider entity.ProviderID) (*entity.StoredCredential, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	credential, ok := repo.credentials[credentialKey(userID, provider)]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return credential, nil
}

func (repo *memoryCredentialRepository) ListCredentialsByUser(_ context.Context, userID uuid.UUID) ([]*entity.StoredCredential, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var credentials []*entity.StoredCredential
	for _, credential := range repo.credentials {
		if credential.UserID == userID {
			credentials = append(credentials, credential)
		}
	}

	return credentials, nil
}

func (repo *memoryCredentialRepository) DeleteCredential(_ context.Context, userID uuid.UUID, provider entity.ProviderID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := credentialKey(userID, provider)
	if _, ok := repo.credentials[key]; !ok {
		return repository.ErrCredentialNotFound
	}
	delete(repo.credentials, key)

	return nil
}

// countingUsageRepository wires a mock usage repository to an in-memory counter table.
func countingUsageRepository(t *testing.T) *mockRepo.MockUsageRepository {
	repo := mockRepo.NewMockUsageRepository(t)
	var mu sync.Mutex
	counts := make(map[string]int)
	rowKey := func(key entity.UsageKey) string {
		return key.Identity.String() + "@" + key.Day.Format(time.DateOnly)
	}

	repo.EXPECT().
		GetCount(mock.Anything, mock.AnythingOfType("entity.UsageKey")).
		RunAndReturn(func(_ context.Context, key entity.UsageKey) (int, error) {
			mu.Lock()
			defer mu.Unlock()

			return counts[rowKey(key)], nil
		}).
		Maybe()
	repo.EXPECT().
		IncrementIfBelow(mock.Anything, mock.AnythingOfType("entity.UsageKey"), mock.AnythingOfType("int")).
		RunAndReturn(func(_ context.Context, key entity.UsageKey, limit int) (int, error) {
			mu.Lock()
			defer mu.Unlock()

			if counts[rowKey(key)] >= limit {
				return 0, repository.ErrUsageLimitReached
			}
			counts[rowKey(key)]++

			return counts[rowKey(key)], nil
		}).
		Maybe()

	return repo
}

func newScenarioConfig() *config.Config {
	cfg := newAnalysisTestConfig()
	cfg.Vault.MasterKey = strings.Repeat("5a", 32)
	cfg.Quota.AnonymousDailyLimit = 3
	cfg.Quota.AuthenticatedDailyLimit = 10
	cfg.Quota.Timezone = "UTC"
	cfg.Quota.AddressHashKey = "scenario-key"

	return cfg
}

func TestAnalysisScenario_AnonymousHouseBlendCeiling(t *testing.T) {
	cfg := newScenarioConfig()
	ledger, err := quota.NewLedger(quota.LedgerParams{
		Config: cfg,
		Repo:   countingUsageRepository(t),
		Logger: newTestLogger(),
	})
	require.NoError(t, err)

	registry := mockService.NewMockProviderRegistry(t)
	client := mockService.NewMockVisionClient(t)
	imageStore := mockService.NewMockImageStore(t)
	registry.EXPECT().Resolve(entity.ProviderHouseBlend).Return(client, nil)
	registry.EXPECT().RequiresUserCredential(entity.ProviderHouseBlend).Return(false, nil)
	imageStore.EXPECT().LoadDataURL(mock.Anything, "bags/one").Return(testDataURL, nil)
	client.EXPECT().AnalyzeImage(mock.Anything, testDataURL, "").Return(identifiedResult(), nil).Times(3)

	svc := NewAnalysisService(AnalysisServiceParams{
		Registry:       registry,
		Vault:          mockService.NewMockSecretVault(t),
		Ledger:         ledger,
		ImageStore:     imageStore,
		EventPublisher: mockService.NewMockEventPublisher(t),
		CredentialRepo: mockRepo.NewMockCredentialRepository(t),
		AnalysisRepo:   mockRepo.NewMockAnalysisRepository(t),
		Config:         cfg,
		Logger:         newTestLogger(),
	})

	ctx := context.Background()
	caller := entity.AnonymousCaller("198.51.100.7")
	input := &usecase.AnalyzeInput{ImageRef: "bags/one", Provider: "house-blend", Caller: caller}

	for call := 1; call <= 3; call++ {
		output, err := svc.Analyze(ctx, input)
		require.NoError(t, err, "call %d", call)
		assert.True(t, output.Result.Identified)
		assert.True(t, output.UsageRecorded)
		assert.Equal(t, 3-call, output.Usage.Remaining)
	}

	usage, err := svc.GetUsage(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, 3, usage.Used)
	assert.Equal(t, 0, usage.Remaining)

	_, err = svc.Analyze(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrQuotaExceeded)

	other, err := svc.GetUsage(ctx, entity.AnonymousCaller("198.51.100.8"))
	require.NoError(t, err)
	assert.Equal(t, 0, other.Used)
	assert.Equal(t, 3, other.Remaining)
}

func TestAnalysisScenario_SavedCredentialUnlocksProvider(t *testing.T) {
	cfg := newScenarioConfig()
	vault, err := crypto.NewVault(cfg)
	require.NoError(t, err)

	credentials := newMemoryCredentialRepository()
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCredentialRepository().Return(credentials)
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	registry := mockService.NewMockProviderRegistry(t)
	client := mockService.NewMockVisionClient(t)
	imageStore := mockService.NewMockImageStore(t)
	analysisRepo := mockRepo.NewMockAnalysisRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	registry.EXPECT().Resolve(entity.ProviderOpenAI).Return(client, nil)
	registry.EXPECT().RequiresUserCredential(entity.ProviderOpenAI).Return(true, nil)

	analysis := NewAnalysisService(AnalysisServiceParams{
		Registry:       registry,
		Vault:          vault,
		Ledger:         mockService.NewMockQuotaLedger(t),
		ImageStore:     imageStore,
		EventPublisher: eventPublisher,
		CredentialRepo: credentials,
		AnalysisRepo:   analysisRepo,
		Config:         cfg,
		Logger:         newTestLogger(),
	})
	credentialSvc := NewCredentialService(CredentialServiceParams{
		TxManager:      txManager,
		CredentialRepo: credentials,
		Registry:       registry,
		Vault:          vault,
		Logger:         newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AnalyzeInput{
		ImageRef: "bags/one",
		Provider: "openai",
		Caller:   entity.AuthenticatedCaller(userID, "198.51.100.7"),
	}

	_, err = analysis.Analyze(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredential)

	const apiKey = "sk-proj-scenarioKey0123456789abcdef"
	client.EXPECT().ValidateKeyFormat(apiKey).Return(true)
	view, err := credentialSvc.SaveCredential(ctx, userID, "openai", apiKey)
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderOpenAI, view.Provider)
	assert.NotContains(t, view.Masked, "scenarioKey")

	imageStore.EXPECT().LoadDataURL(mock.Anything, "bags/one").Return(testDataURL, nil)
	client.EXPECT().AnalyzeImage(mock.Anything, testDataURL, apiKey).Return(identifiedResult(), nil).Once()
	analysisRepo.EXPECT().
		CreateAnalysis(mock.Anything, mock.AnythingOfType("*entity.AnalysisRecord")).
		Return(nil)
	eventPublisher.EXPECT().PublishAnalysisRecorded(mock.Anything, mock.Anything).Return(nil)

	output, err := analysis.Analyze(ctx, input)
	require.NoError(t, err)
	assert.True(t, output.Result.Identified)
	assert.Nil(t, output.Usage)
}
