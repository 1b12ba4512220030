package vision

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"

	"github.com/tidwall/gjson"
)

const (
	geminiKeyPrefix = "AIza"
	geminiKeyLength = 39
)

type geminiClient struct {
	endpoint
	now func() time.Time
}

// NewGeminiClient creates a client for the Gemini generateContent API.
func NewGeminiClient(baseURL, model string, httpClient *http.Client) service.VisionClient {
	return &geminiClient{
		endpoint: endpoint{
			provider:   entity.ProviderGemini,
			baseURL:    baseURL,
			model:      model,
			httpClient: httpClient,
		},
		now: time.Now,
	}
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	MaxOutputTokens  int    `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

// ValidateKeyFormat accepts 39 character AIza keys.
func (c *geminiClient) ValidateKeyFormat(candidate string) bool {
	candidate = strings.TrimSpace(candidate)

	return strings.HasPrefix(candidate, geminiKeyPrefix) && len(candidate) == geminiKeyLength
}

// TestConnection lists models with the key.
func (c *geminiClient) TestConnection(ctx context.Context, credential string) bool {
	_, err := c.do(ctx, http.MethodGet, "/models", nil, c.headers(credential))

	return err == nil
}

// AnalyzeImage sends the photo inline and asks for an application/json reply.
func (c *geminiClient) AnalyzeImage(ctx context.Context, imageDataURL, credential string) (*entity.AnalysisResult, error) {
	mimeType, data, ok := splitDataURL(imageDataURL)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image is not a base64 data URL")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: analysisPrompt},
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: data}},
			},
		}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			MaxOutputTokens:  maxOutputTokens,
		},
	}

	path := "/models/" + url.PathEscape(c.model) + ":generateContent"
	body, err := c.do(ctx, http.MethodPost, path, payload, c.headers(credential))
	if err != nil {
		return nil, err
	}

	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text")
	if !text.Exists() || text.Type != gjson.String {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("gemini reply has no candidate text")
	}

	return normalize(text.String(), c.now)
}

func (c *geminiClient) headers(credential string) http.Header {
	h := http.Header{}
	h.Set("x-goog-api-key", credential)

	return h
}
