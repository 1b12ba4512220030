package vision

import (
	"context"
	"net/http"
	"strings"
	"time"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"

	"github.com/tidwall/gjson"
)

const (
	openAIKeyPrefix    = "sk-"
	openAIMinKeyLength = 40
)

type openAIClient struct {
	endpoint
	now func() time.Time
}

// NewOpenAIClient creates a client for the OpenAI chat completions API.
func NewOpenAIClient(baseURL, model string, httpClient *http.Client) service.VisionClient {
	return &openAIClient{
		endpoint: endpoint{
			provider:   entity.ProviderOpenAI,
			baseURL:    baseURL,
			model:      model,
			httpClient: httpClient,
		},
		now: time.Now,
	}
}

type openAIContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openAIImageURL `json:"image_url,omitempty"`
}

type openAIImageURL struct {
	URL string `json:"url"`
}

type openAIMessage struct {
	Role    string              `json:"role"`
	Content []openAIContentPart `json:"content"`
}

type openAIRequest struct {
	Model          string            `json:"model"`
	Messages       []openAIMessage   `json:"messages"`
	MaxTokens      int               `json:"max_tokens"`
	ResponseFormat map[string]string `json:"response_format"`
}

// ValidateKeyFormat accepts sk- keys that are not Anthropic keys.
func (c *openAIClient) ValidateKeyFormat(candidate string) bool {
	candidate = strings.TrimSpace(candidate)

	return strings.HasPrefix(candidate, openAIKeyPrefix) &&
		!strings.HasPrefix(candidate, anthropicKeyPrefix) &&
		len(candidate) >= openAIMinKeyLength
}

// TestConnection lists models with the key.
func (c *openAIClient) TestConnection(ctx context.Context, credential string) bool {
	_, err := c.do(ctx, http.MethodGet, "/models", nil, c.headers(credential))

	return err == nil
}

// AnalyzeImage asks the chat completions API for a JSON object describing the photo.
func (c *openAIClient) AnalyzeImage(ctx context.Context, imageDataURL, credential string) (*entity.AnalysisResult, error) {
	payload := openAIRequest{
		Model:     c.model,
		MaxTokens: maxOutputTokens,
		Messages: []openAIMessage{{
			Role: "user",
			Content: []openAIContentPart{
				{Type: "text", Text: analysisPrompt},
				{Type: "image_url", ImageURL: &openAIImageURL{URL: imageDataURL}},
			},
		}},
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	body, err := c.do(ctx, http.MethodPost, "/chat/completions", payload, c.headers(credential))
	if err != nil {
		return nil, err
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() || content.Type != gjson.String {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("openai reply has no message content")
	}

	return normalize(content.String(), c.now)
}

func (c *openAIClient) headers(credential string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+credential)

	return h
}
