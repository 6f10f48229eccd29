// Package gemini is the boundary adapter for the Google AI generateContent
// API. It issues single-shot, non-streaming calls and normalizes responses
// into models.GenerationResult; transport details never leak to callers.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/musekit/muse/internal/errors"
	"github.com/musekit/muse/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Options tunes the generation call. Zero values are omitted from the
// request so the service defaults apply.
type Options struct {
	Temperature float64
	TopK        int
	TopP        float64
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	opts    Options
	client  *http.Client
}

// NewClient builds a client. A missing API key is not an error here; it
// surfaces as a configuration error when generation is attempted.
func NewClient(apiKey, model string, opts Options) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		opts:    opts,
		client:  &http.Client{},
	}
}

// SetBaseURL overrides the API endpoint, for tests and proxies.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// Gemini API request/response types.

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
	TopK        int     `json:"topK,omitempty"`
	TopP        float64 `json:"topP,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason      string `json:"finishReason"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends one prompt (plus optional persona instruction) and returns
// the normalized result. No retries, no caching: every call is fresh. A
// blank result text is returned as-is; detecting emptiness is the caller's
// concern.
func (c *Client) Generate(ctx context.Context, prompt, systemInstruction string) (*models.GenerationResult, error) {
	if c.apiKey == "" {
		return nil, apperrors.MissingAPIKeyError()
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	body := c.buildRequest(prompt, systemInstruction)

	data, err := json.Marshal(body)
	if err != nil {
		return nil, apperrors.ServiceError("encoding request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.ServiceError("creating request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.NetworkError("calling generation service", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ServiceError("reading response", err)
	}

	if err := c.checkError(resp.StatusCode, respBody); err != nil {
		return nil, err
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, apperrors.ServiceError("parsing response", err)
	}

	return normalize(&apiResp), nil
}

func (c *Client) buildRequest(prompt, systemInstruction string) geminiRequest {
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}

	if systemInstruction != "" {
		req.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction}},
		}
	}

	if c.opts != (Options{}) {
		req.GenerationConfig = &geminiGenerationConfig{
			Temperature: c.opts.Temperature,
			TopK:        c.opts.TopK,
			TopP:        c.opts.TopP,
		}
	}

	return req
}

// checkError maps HTTP failures onto the app error taxonomy. Credential
// rejections become configuration errors so the controller can show
// key-setup guidance instead of the raw transport message.
func (c *Client) checkError(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.InvalidAPIKeyError()
	case http.StatusTooManyRequests:
		return apperrors.NewAppError(apperrors.ErrCodeRateLimited,
			"Generation service rate limit exceeded. Wait a moment and try again.")
	default:
		var apiErr geminiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			if looksLikeCredentialFailure(apiErr.Error.Message) {
				return apperrors.InvalidAPIKeyError()
			}
			return apperrors.ServiceError(
				fmt.Sprintf("HTTP %d", statusCode),
				fmt.Errorf("%s", apiErr.Error.Message))
		}
		return apperrors.ServiceError(
			fmt.Sprintf("HTTP %d", statusCode),
			fmt.Errorf("%s", strings.TrimSpace(string(body))))
	}
}

// looksLikeCredentialFailure matches the API error phrasings that indicate a
// bad or missing key rather than a transient service problem.
func looksLikeCredentialFailure(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "api key not valid") ||
		strings.Contains(lower, "permission denied")
}

// normalize flattens the API response into text plus citation sources.
func normalize(resp *geminiResponse) *models.GenerationResult {
	result := &models.GenerationResult{}
	if len(resp.Candidates) == 0 {
		return result
	}

	cand := resp.Candidates[0]
	var text strings.Builder
	for _, part := range cand.Content.Parts {
		text.WriteString(part.Text)
	}
	result.Text = text.String()

	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			result.Sources = append(result.Sources, models.Source{
				URL:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}

	return result
}
