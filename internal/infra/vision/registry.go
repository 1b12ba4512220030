package vision

import (
	"log/slog"
	"net/http"
	"strings"

	"brewlog/config"
	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultOpenAIBaseURL    = "https://api.openai.com/v1"
	defaultOpenAIModel      = "gpt-4o-mini"
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	defaultAnthropicModel   = "claude-3-5-haiku-latest"
	defaultGeminiBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel      = "gemini-1.5-flash"
)

// registry implements service.ProviderRegistry. It is read-only after construction.
type registry struct {
	clients     map[entity.ProviderID]service.VisionClient
	descriptors []entity.ProviderDescriptor
}

// RegistryParams holds dependencies for the provider registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// NewRegistry builds every client once from configuration.
func NewRegistry(params RegistryParams) (service.ProviderRegistry, error) {
	cfg := params.Config
	httpClient := params.HTTPClient
	if httpClient == nil {
		// No Timeout: callers bound each analysis through their context.
		httpClient = &http.Client{Transport: http.DefaultTransport}
	}

	openAICfg := withDefaults(cfg.Providers.OpenAI, defaultOpenAIBaseURL, defaultOpenAIModel)
	anthropicCfg := withDefaults(cfg.Providers.Anthropic, defaultAnthropicBaseURL, defaultAnthropicModel)
	geminiCfg := withDefaults(cfg.Providers.Gemini, defaultGeminiBaseURL, defaultGeminiModel)

	backends := map[entity.ProviderID]service.VisionClient{
		entity.ProviderOpenAI:    NewOpenAIClient(openAICfg.BaseURL, openAICfg.Model, httpClient),
		entity.ProviderAnthropic: NewAnthropicClient(anthropicCfg.BaseURL, anthropicCfg.Model, httpClient),
		entity.ProviderGemini:    NewGeminiClient(geminiCfg.BaseURL, geminiCfg.Model, httpClient),
	}
	models := map[entity.ProviderID]string{
		entity.ProviderOpenAI:    openAICfg.Model,
		entity.ProviderAnthropic: anthropicCfg.Model,
		entity.ProviderGemini:    geminiCfg.Model,
	}

	backend := entity.ProviderID(strings.ToLower(strings.TrimSpace(cfg.HouseBlend.Backend)))
	if !backend.IsBackend() {
		return nil, domainerrors.ErrConfiguration.WrapMessage("houseBlend.backend must be one of openai, anthropic, gemini")
	}
	houseBlend := newHouseBlendClient(backend, backends, cfg.HouseBlend.Secrets)
	if _, _, err := houseBlend.route(); err != nil && params.Logger != nil {
		// Analyses through house-blend fail with a configuration error until the secret is set.
		params.Logger.Warn("House-blend secret is not configured",
			slog.String("backend", backend.String()),
		)
	}

	clients := make(map[entity.ProviderID]service.VisionClient, len(backends)+1)
	for id, client := range backends {
		clients[id] = client
	}
	clients[entity.ProviderHouseBlend] = houseBlend

	descriptors := make([]entity.ProviderDescriptor, 0, len(clients))
	descriptors = append(descriptors, entity.ProviderDescriptor{
		ID:                     entity.ProviderHouseBlend,
		DisplayName:            "House Blend",
		Model:                  models[backend],
		RequiresUserCredential: false,
	})
	for _, id := range entity.BackendProviders {
		descriptors = append(descriptors, entity.ProviderDescriptor{
			ID:                     id,
			DisplayName:            displayNames[id],
			Model:                  models[id],
			RequiresUserCredential: true,
		})
	}

	return &registry{
		clients:     clients,
		descriptors: descriptors,
	}, nil
}

var displayNames = map[entity.ProviderID]string{
	entity.ProviderOpenAI:    "OpenAI",
	entity.ProviderAnthropic: "Anthropic Claude",
	entity.ProviderGemini:    "Google Gemini",
}

// Resolve returns the client for id.
func (r *registry) Resolve(id entity.ProviderID) (service.VisionClient, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider.WrapMessage("provider " + id.String())
	}

	return client, nil
}

// DescribeAll returns a copy of the descriptors, house-blend first.
func (r *registry) DescribeAll() []entity.ProviderDescriptor {
	out := make([]entity.ProviderDescriptor, len(r.descriptors))
	copy(out, r.descriptors)

	return out
}

// RequiresUserCredential reports whether id needs a key supplied by the caller.
func (r *registry) RequiresUserCredential(id entity.ProviderID) (bool, error) {
	if !id.IsValid() {
		return false, domainerrors.ErrUnknownProvider.WrapMessage("provider " + id.String())
	}

	return id.IsBackend(), nil
}

func withDefaults(p config.ProviderConfig, baseURL, model string) config.ProviderConfig {
	if strings.TrimSpace(p.BaseURL) == "" {
		p.BaseURL = baseURL
	}
	if strings.TrimSpace(p.Model) == "" {
		p.Model = model
	}

	return p
}
