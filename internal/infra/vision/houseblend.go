package vision

import (
	"context"
	"strings"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"
)

// houseBlendClient forwards to the configured backend with the platform secret.
// The caller credential is ignored.
type houseBlendClient struct {
	backend  entity.ProviderID
	backends map[entity.ProviderID]service.VisionClient
	secrets  map[string]string
}

func newHouseBlendClient(backend entity.ProviderID, backends map[entity.ProviderID]service.VisionClient, secrets map[string]string) *houseBlendClient {
	copied := make(map[string]string, len(secrets))
	for k, v := range secrets {
		copied[strings.ToLower(k)] = v
	}

	return &houseBlendClient{
		backend:  backend,
		backends: backends,
		secrets:  copied,
	}
}

// ValidateKeyFormat always passes since no user key is involved.
func (c *houseBlendClient) ValidateKeyFormat(string) bool {
	return true
}

// TestConnection probes the backend with the platform secret.
func (c *houseBlendClient) TestConnection(ctx context.Context, _ string) bool {
	client, secret, err := c.route()
	if err != nil {
		return false
	}

	return client.TestConnection(ctx, secret)
}

// AnalyzeImage runs the analysis on the backend with the platform secret.
func (c *houseBlendClient) AnalyzeImage(ctx context.Context, imageDataURL, _ string) (*entity.AnalysisResult, error) {
	client, secret, err := c.route()
	if err != nil {
		return nil, err
	}

	return client.AnalyzeImage(ctx, imageDataURL, secret)
}

func (c *houseBlendClient) route() (service.VisionClient, string, error) {
	client, ok := c.backends[c.backend]
	if !ok {
		return nil, "", domainerrors.ErrConfiguration.WrapMessage("house-blend backend " + c.backend.String() + " is not registered")
	}

	secret := strings.TrimSpace(c.secrets[c.backend.String()])
	if secret == "" {
		return nil, "", domainerrors.ErrConfiguration.WrapMessage("house-blend secret for " + c.backend.String() + " is not set")
	}

	return client, secret, nil
}
