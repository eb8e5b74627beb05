package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Message is one turn of conversation in provider terms. Role is either
// "user" or "model".
type Message struct {
	Role string
	Text string
}

// GenerateRequest holds the parameters for a provider generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	Messages     []Message
	Temperature  *float64 // nil uses task default
}

// GenerateResponse holds the result of a provider generation call. Text is
// the first candidate's content verbatim; when JSON output mode is in effect
// it is itself a JSON document requiring a second decode (see ExtractJSON).
type GenerateResponse struct {
	Text      string
	LatencyMs int64
}

// Client provides access to the language-model provider.
type Client interface {
	// GenerateContent sends the conversation and returns the raw candidate text.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// geminiClient implements Client against the Gemini generateContent API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates a Client that talks to the Gemini API.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// geminiRequest is the JSON body sent to POST /v1beta/models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	ResponseMIMEType string   `json:"responseMimeType"`
	Temperature      *float64 `json:"temperature,omitempty"`
}

// geminiResponse is the outer response envelope. Only the candidate text is
// of interest; everything else the provider sends is ignored.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if c.cfg.APIKey == "" {
		c.observer.OnCallComplete(CallEvent{
			Task:      req.Task,
			Model:     c.cfg.Model,
			ErrorCode: errorCode(ErrNotConfigured),
		})
		return nil, ErrNotConfigured
	}

	temp := c.cfg.Tasks[req.Task].Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := geminiRequest{
		Contents: make([]geminiContent, 0, len(req.Messages)),
		GenerationConfig: geminiGenConfig{
			ResponseMIMEType: "application/json",
			Temperature:      &temp,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		}
	}
	for _, m := range req.Messages {
		body.Contents = append(body.Contents, geminiContent{
			Role:  m.Role,
			Parts: []geminiPart{{Text: m.Text}},
		})
	}

	// Single best-effort call; failures surface to the caller unretried.
	text, err := c.doRequest(ctx, body)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		// Caller cancellations keep their own identity; only an expired
		// deadline becomes ErrTimeout.
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = ErrTimeout
		}
		c.observer.OnCallComplete(CallEvent{
			Task:      req.Task,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			ErrorCode: errorCode(err),
		})
		return nil, err
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return &GenerateResponse{Text: text, LatencyMs: latency}, nil
}

func (c *geminiClient) doRequest(ctx context.Context, body geminiRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.Endpoint, c.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Status: httpResp.StatusCode, Body: string(respBody)}
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: decoding envelope: %v", ErrInvalidOutput, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: envelope has no candidate text", ErrInvalidOutput)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
