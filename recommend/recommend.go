// Package recommend asks the Gemini GenerateContent API for a menu
// recommendation. The provider is a black box to the rest of the
// storefront: callers always get a displayable string back, never an
// error, and the call reads only the catalog and the user's free-text
// preference.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"slicehub/models"
)

// DefaultBaseURL is the default Gemini API endpoint
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const systemInstruction = `You are SliceHub's expert AI Pizza Chef.
Your goal is to recommend 1 or 2 specific pizzas from our menu based on the user's craving.
Be friendly, appetizing, and concise.
ONLY recommend items from the provided menu list.
If the user asks for something not on the menu, politely steer them to the closest match.
Do not invent prices or items.`

// Fallback strings shown instead of an error surface.
const (
	fallbackNoKey     = "I'm sorry, I can't access my brain right now (API Key missing). Try the Pepperoni Feast!"
	fallbackUnreached = "I'm having trouble connecting to the kitchen server. But the Margherita is always a safe bet!"
	fallbackUndecided = "I couldn't decide! Everything is delicious."
)

// Service calls the recommendation provider over its REST API.
type Service struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	menu    []models.MenuItem
	logger  *zap.Logger
}

// NewService builds a Service over the given catalog. An empty baseURL
// selects the public Gemini endpoint; a nil logger disables logging.
func NewService(apiKey, model, baseURL string, menu []models.MenuItem, logger *zap.Logger) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		menu:    menu,
		logger:  logger,
	}
}

// Recommend returns a recommendation for the user's craving. It never
// fails: a missing key, transport error, or empty reply each yield a
// fixed displayable fallback.
func (s *Service) Recommend(ctx context.Context, preference string) string {
	if s.apiKey == "" {
		return fallbackNoKey
	}

	text, err := s.generate(ctx, preference)
	if err != nil {
		s.logger.Error("recommendation request failed", zap.Error(err))
		return fallbackUnreached
	}
	if text == "" {
		return fallbackUndecided
	}
	return text
}

// Request and response shapes for the native GenerateContent API.

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (s *Service) generate(ctx context.Context, preference string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf("Menu:\n%s\n\nUser request: %q", s.menuContext(), preference)}},
		}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 200,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, body)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	var sb strings.Builder
	if len(parsed.Candidates) > 0 {
		for _, p := range parsed.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// menuContext renders one catalog line per item for the prompt.
func (s *Service) menuContext() string {
	lines := make([]string, 0, len(s.menu))
	for _, item := range s.menu {
		price := strconv.FormatFloat(item.Price, 'f', -1, 64)
		lines = append(lines, fmt.Sprintf("%s (%s, Price: $%s, Spiciness: %d/3): %s",
			item.Name, item.Category, price, item.Spiciness, item.Description))
	}
	return strings.Join(lines, "\n")
}
