package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"goplan-erp/internal/usecase/interfaces"
)

var (
	ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyGeminiResponse = errors.New("gemini returned no candidates")
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-1.5-flash"
)

// GeminiClient calls the Gemini generateContent REST API and returns the
// model's reply as raw JSON. Models wrap JSON answers in markdown fences more
// often than not, so the reply is unfenced before returning.

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IAssistantGateway = (*GeminiClient)(nil)

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		log.Printf("[assistant][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	log.Printf("[assistant][gateway] Gemini client initialized model=%s", defaultGeminiModel)
	return &GeminiClient{
		apiKey:     apiKey,
		model:      defaultGeminiModel,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[assistant][gateway] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[assistant][gateway] non-200 status=%d body_len=%d", resp.StatusCode, len(raw))
		return nil, fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyGeminiResponse
	}

	text := unfence(parsed.Candidates[0].Content.Parts[0].Text)
	log.Printf("[assistant][gateway] generate success bytes=%d", len(text))
	return json.RawMessage(text), nil
}

// unfence strips a surrounding ```json ... ``` (or bare ```) block.
func unfence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
