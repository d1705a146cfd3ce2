package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего сервиса текстовой классификации.
// Отображает свободное описание проблемы на категорию услуги.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента классификатора
func NewClient(baseURL, apiKey, model string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

const promptTemplate = `Given this user problem: %q, recommend the most appropriate professional category from: Plumber, Cleaner, Carpenter, Painter, Auto-Repair, or Healthcare. Also provide a brief reason. Format as JSON with "category" and "reason" keys.`

// Suggest запрашивает у провайдера категорию для описания проблемы.
// Возвращает ErrUnavailable при сетевых ошибках и ErrInvalidResponse
// при некорректном ответе; перевод ошибок в детерминированный fallback
// выполняется на уровне сервиса рекомендаций.
func (c *Client) Suggest(ctx context.Context, description string) (*Suggestion, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(promptTemplate, description)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.2,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty candidates", ErrInvalidResponse)
	}

	text := genResp.Candidates[0].Content.Parts[0].Text

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(text), &suggestion); err != nil {
		return nil, fmt.Errorf("%w: candidate text is not valid JSON: %v", ErrInvalidResponse, err)
	}
	if suggestion.Category == "" {
		return nil, fmt.Errorf("%w: missing category", ErrInvalidResponse)
	}

	c.log.Info("Recommender: suggested category=%s", suggestion.Category)
	return &suggestion, nil
}
