package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sandevgo/groundchat/internal/config"
	"github.com/sandevgo/groundchat/internal/core"
)

// defaultRequestTimeout bounds a single attempt; the retry budget bounds the
// total number of attempts.
const defaultRequestTimeout = 30 * time.Second

type Gemini struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewGemini(cfg *config.GeminiConfig) *Gemini {
	return &Gemini{
		client: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate performs exactly one generateContent call and classifies the
// outcome. Retrying is the dispatcher's job, not the client's.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL, url.PathEscape(g.model), url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		// Network-level failures (DNS, connect, timeout) are terminal.
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	return parseGenerateResponse(resp)
}

func parseGenerateResponse(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &RateLimitError{Message: errorMessage(data, resp.StatusCode)}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
		}
	}

	var result generateResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrMalformedResponse
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// errorMessage prefers the provider's error.message, falling back to the
// HTTP status text.
func errorMessage(data []byte, statusCode int) string {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return http.StatusText(statusCode)
}
