// Package genai is a thin client for the Gemini generateContent REST API.
// It is stateless between calls: the catalog snapshot and conversation history
// are passed in on every request, and failures are normalized into the
// ErrNetwork / ErrMalformedResponse sentinels so callers can fall back to a
// canned reply instead of surfacing raw provider errors.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cyralabs/cyra-shop-backend/internal/product"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	chatModel   = "gemini-2.5-flash"
	visionModel = "gemini-3-pro-preview"
)

var (
	// ErrNetwork covers everything that kept a usable reply from arriving:
	// transport errors, auth failures, rate limits, 5xx.
	ErrNetwork = errors.New("generation request failed")
	// ErrMalformedResponse means the provider answered but the payload did not
	// match the expected structure.
	ErrMalformedResponse = errors.New("malformed generation response")
)

// HistoryEntry is one prior turn of the conversation, serialized into the prompt.
type HistoryEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatReply is the structured result of a chat request.
type ChatReply struct {
	Text                  string   `json:"response"`
	RecommendedProductIDs []string `json:"recommendedProductIds"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// NewClientWithBaseURL points the client at a different endpoint (used in tests).
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// --- wire types for generateContent ---

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SendChat sends the conversation plus the latest user message and expects a
// structured JSON reply ({response, recommendedProductIds}). Product IDs in the
// reply are not validated here; the recommendation resolver reconciles them
// against the real catalog.
func (c *Client) SendChat(ctx context.Context, history []HistoryEntry, newMessage string, catalog []product.Product) (ChatReply, error) {
	instruction := buildChatInstruction(catalog)

	var conv bytes.Buffer
	for _, m := range history {
		if m.Role == "user" {
			conv.WriteString("User: ")
		} else {
			conv.WriteString("Model: ")
		}
		conv.WriteString(m.Text)
		conv.WriteString("\n")
	}
	conv.WriteString("User: ")
	conv.WriteString(newMessage)

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: instruction}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: conv.String()}}},
		},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	text, err := c.generate(ctx, chatModel, req)
	if err != nil {
		return ChatReply{}, err
	}

	var reply ChatReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return ChatReply{}, fmt.Errorf("%w: structured chat payload: %v", ErrMalformedResponse, err)
	}
	if reply.RecommendedProductIDs == nil {
		reply.RecommendedProductIDs = []string{}
	}
	return reply, nil
}

// SendVisionAnalysis sends a single inline JPEG (raw base64, no data-URI
// prefix) with the fixed analysis prompt and returns free-form text.
func (c *Client) SendVisionAnalysis(ctx context.Context, imageBase64 string, catalog []product.Product) (string, error) {
	instruction := buildVisionInstruction(catalog)

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: instruction}}},
		Contents: []content{
			{Role: "user", Parts: []part{
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: imageBase64}},
				{Text: visionUserPrompt},
			}},
		},
	}

	return c.generate(ctx, visionModel, req)
}

func (c *Client) generate(ctx context.Context, model string, payload generateRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrNetwork, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: provider status %d: %s", ErrNetwork, resp.StatusCode, snippet(raw))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.Error.Message != "" {
		return "", fmt.Errorf("%w: provider error: %s", ErrNetwork, out.Error.Message)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrMalformedResponse)
	}

	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate text", ErrMalformedResponse)
	}
	return text, nil
}

func snippet(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max])
	}
	return string(b)
}
