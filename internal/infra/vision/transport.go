package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/errors"
)

// maxResponseBytes caps how much of a provider reply is read.
const maxResponseBytes = 4 << 20

// endpoint is one backend deployment: where it lives and which model it runs.
type endpoint struct {
	provider   entity.ProviderID
	baseURL    string
	model      string
	httpClient *http.Client
}

func (e endpoint) url(path string) string {
	return strings.TrimRight(e.baseURL, "/") + path
}

// do sends one request and returns the body of a 2xx reply. Any other reply is classified.
func (e endpoint) do(ctx context.Context, method, path string, payload any, headers http.Header) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInternalError, "encode provider request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.url(path), reqBody)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrConfiguration, "build %s request", e.provider)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, transportFailure(ctx, e.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportFailure(ctx, e.provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyFailure(e.provider, resp.StatusCode, body)
	}

	return body, nil
}

// splitDataURL returns the mime type and base64 payload of a data URL.
func splitDataURL(dataURL string) (mimeType, data string, ok bool) {
	rest, found := strings.CutPrefix(dataURL, "data:")
	if !found {
		return "", "", false
	}

	meta, data, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}

	mimeType, found = strings.CutSuffix(meta, ";base64")
	if !found || mimeType == "" {
		return "", "", false
	}

	return mimeType, data, true
}
