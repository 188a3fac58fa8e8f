// Package gemini implements the text generation provider against the Google
// Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sweetmoments/storefront/internal/provider"
	"github.com/sweetmoments/storefront/pkg/httpclient"
)

// Config holds the Gemini connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Provider calls the generateContent endpoint through a circuit-breaking
// HTTP client.
type Provider struct {
	cfg    Config
	client *httpclient.CircuitBreakerClient
}

// New creates a Gemini provider.
func New(cfg Config, client *httpclient.CircuitBreakerClient) *Provider {
	return &Provider{cfg: cfg, client: client}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends the prompt to Gemini and returns the first candidate's
// text. Returns provider.ErrMissingAPIKey when no key is configured.
func (p *Provider) GenerateText(ctx context.Context, prompt string) (string, error) {
	if p.cfg.APIKey == "" {
		return "", provider.ErrMissingAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(p.cfg.BaseURL, "/"), p.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.cfg.APIKey)

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("calling generation api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("generation api returned %d: %s", resp.StatusCode, string(payload))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding generation response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, pt := range out.Candidates[0].Content.Parts {
		sb.WriteString(pt.Text)
	}
	return sb.String(), nil
}
