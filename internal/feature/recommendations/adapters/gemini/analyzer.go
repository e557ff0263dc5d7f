package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"advisor_backend/internal/feature/recommendations/domain/entity"
	"advisor_backend/internal/feature/recommendations/usecase"
)

// systemPrompt is the fixed instruction set for the analysis call. The model
// is required to answer with strict JSON carrying exactly four keys; the
// degenerate-input rule (fewer than 2 candles, missing fields) is part of
// this contract and is not re-validated by the caller.
const systemPrompt = "Role: You are a concise markets analyst.\n\n" +
	"Task: Given the last N days of EOD candles (one symbol), return ONLY a compact JSON with exactly these keys:\n" +
	"- recommendation: one of [\"buy\",\"sell\",\"hold\"]\n" +
	"- rationale: short, plain-English reason (<= 50 words), grounded ONLY in the provided data\n" +
	"- change_percent: number (float) = ((last_close - first_close) / first_close)\n" +
	"- window_days: integer = N\n\n" +
	"Rules:\n" +
	"- Use only the input array; no external data, no speculation, no disclaimers.\n" +
	"- Consider trend (closes), momentum (delta close), volatility ((max_high - min_low)/last_close), and volume vs. average.\n" +
	"- If N < 2 or key info is missing, return: recommendation=\"hold\", rationale=\"insufficient_data\", change_percent=0, window_days=N.\n" +
	"- Output must be valid JSON, no extra keys, no markdown, no text around it.\n" +
	"- Numbers must be JSON numbers (not strings). Round change_percent to 6 decimals.\n"

// Analyzer produces buy/sell/hold recommendations using the Gemini API.
type Analyzer struct {
	client *genai.Client
	model  string
}

var _ usecase.Analyzer = (*Analyzer)(nil)

// NewAnalyzer creates an Analyzer from the given configuration.
func NewAnalyzer(ctx context.Context, cfg Config) (*Analyzer, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Analyzer{client: client, model: model}, nil
}

// Analyze sends the candle window (oldest to newest) to the model and parses
// its strict-JSON answer. Beyond JSON parseability the model's adherence to
// the instructed schema is trusted; there is no retry.
func (a *Analyzer) Analyze(ctx context.Context, data []entity.CandleSnapshot, model string) (entity.Advice, error) {
	if model == "" {
		model = a.model
	}

	user, err := buildUserContent(data)
	if err != nil {
		return entity.Advice{}, err
	}

	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return entity.Advice{}, fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return entity.Advice{}, fmt.Errorf("%w: empty", ErrInvalidModelResponse)
	}

	var advice entity.Advice
	if err := json.Unmarshal([]byte(text), &advice); err != nil {
		return entity.Advice{}, fmt.Errorf("%w: expected JSON: %v", ErrInvalidModelResponse, err)
	}
	return advice, nil
}

// buildUserContent renders the per-call user payload: the window length and
// the JSON-encoded candle array, oldest to newest.
func buildUserContent(data []entity.CandleSnapshot) (string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode candle window: %w", err)
	}
	return fmt.Sprintf(
		"Analyze the following EOD data array and apply the system rules. Return ONLY the JSON object.\n\n"+
			"Data (oldest -> newest), N = %d:\n%s",
		len(data), encoded,
	), nil
}
