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
	anthropicKeyPrefix    = "sk-ant-"
	anthropicMinKeyLength = 40
	anthropicVersion      = "2023-06-01"
)

type anthropicClient struct {
	endpoint
	now func() time.Time
}

// NewAnthropicClient creates a client for the Anthropic messages API.
func NewAnthropicClient(baseURL, model string, httpClient *http.Client) service.VisionClient {
	return &anthropicClient{
		endpoint: endpoint{
			provider:   entity.ProviderAnthropic,
			baseURL:    baseURL,
			model:      model,
			httpClient: httpClient,
		},
		now: time.Now,
	}
}

type anthropicImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicContent struct {
	Type   string                `json:"type"`
	Text   string                `json:"text,omitempty"`
	Source *anthropicImageSource `json:"source,omitempty"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

// ValidateKeyFormat accepts sk-ant- keys.
func (c *anthropicClient) ValidateKeyFormat(candidate string) bool {
	candidate = strings.TrimSpace(candidate)

	return strings.HasPrefix(candidate, anthropicKeyPrefix) && len(candidate) >= anthropicMinKeyLength
}

// TestConnection lists models with the key.
func (c *anthropicClient) TestConnection(ctx context.Context, credential string) bool {
	_, err := c.do(ctx, http.MethodGet, "/models", nil, c.headers(credential))

	return err == nil
}

// AnalyzeImage sends the photo as a base64 image block and reads the first text block back.
func (c *anthropicClient) AnalyzeImage(ctx context.Context, imageDataURL, credential string) (*entity.AnalysisResult, error) {
	mimeType, data, ok := splitDataURL(imageDataURL)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image is not a base64 data URL")
	}

	payload := anthropicRequest{
		Model:     c.model,
		MaxTokens: maxOutputTokens,
		System:    "Reply with JSON only.",
		Messages: []anthropicMessage{{
			Role: "user",
			Content: []anthropicContent{
				{Type: "image", Source: &anthropicImageSource{Type: "base64", MediaType: mimeType, Data: data}},
				{Type: "text", Text: analysisPrompt},
			},
		}},
	}

	body, err := c.do(ctx, http.MethodPost, "/messages", payload, c.headers(credential))
	if err != nil {
		return nil, err
	}

	text := gjson.GetBytes(body, `content.#(type=="text").text`)
	if !text.Exists() || text.Type != gjson.String {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("anthropic reply has no text block")
	}

	return normalize(text.String(), c.now)
}

func (c *anthropicClient) headers(credential string) http.Header {
	h := http.Header{}
	h.Set("x-api-key", credential)
	h.Set("anthropic-version", anthropicVersion)

	return h
}
