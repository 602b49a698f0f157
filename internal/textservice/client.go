package textservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gashapp/gash-backend/internal/config"
)

// Client talks to the external text-analysis service used for message
// moderation and translation. Both operations are plain request/response
// JSON calls; the service's failure policy is decided by the caller
// (moderation is fail-closed, translation fail-open).
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func New(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.TextService.Timeout},
		baseURL:    cfg.TextService.BaseURL,
		apiKey:     cfg.TextService.APIKey,
	}
}

type moderateRequest struct {
	Text string `json:"text"`
}

type moderateResponse struct {
	Unsafe bool `json:"unsafe"`
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Moderate classifies text; true means unsafe. Any transport error,
// non-2xx status or malformed body is returned as an error so the caller
// can apply its failure policy. The call is never retried here: a repeat
// would double the moderation side effects on the remote service.
func (c *Client) Moderate(ctx context.Context, text string) (bool, error) {
	var resp moderateResponse
	if err := c.post(ctx, "/v1/moderate", moderateRequest{Text: text}, &resp); err != nil {
		return false, fmt.Errorf("moderate: %w", err)
	}
	return resp.Unsafe, nil
}

// Translate renders text in the target language. Errors are returned as-is;
// callers treat translation as best-effort and fall back to the original.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	var resp translateResponse
	req := translateRequest{Text: text, TargetLanguage: targetLanguage}
	if err := c.post(ctx, "/v1/translate", req, &resp); err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return resp.TranslatedText, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Drain a little of the body for the error message, then give up.
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 256))
		return fmt.Errorf("unexpected status %d: %s", res.StatusCode, snippet)
	}

	// The service occasionally returns non-JSON bodies under load; treat
	// those the same as a failed call.
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}
