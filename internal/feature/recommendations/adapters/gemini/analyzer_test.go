package gemini

import (
	"strings"
	"testing"

	"advisor_backend/internal/feature/recommendations/domain/entity"
)

func f64(v float64) *float64 { return &v }

// The degenerate-input policy is a prompt-level contract: the instruction set
// itself must carry the rule, since the calling code does not re-validate.
func TestSystemPrompt_ConveysContract(t *testing.T) {
	t.Parallel()

	mustContain := []string{
		`one of ["buy","sell","hold"]`,
		"<= 50 words",
		"((last_close - first_close) / first_close)",
		"window_days: integer = N",
		`recommendation="hold", rationale="insufficient_data", change_percent=0, window_days=N`,
		"If N < 2 or key info is missing",
		"Output must be valid JSON",
		"Round change_percent to 6 decimals",
	}
	for _, s := range mustContain {
		if !strings.Contains(systemPrompt, s) {
			t.Errorf("system prompt missing %q", s)
		}
	}
}

func TestBuildUserContent(t *testing.T) {
	t.Parallel()

	data := []entity.CandleSnapshot{
		{Date: "2025-09-15", Symbol: "BTCUSD", Close: 115381.07, Vwap: f64(115300)},
		{Date: "2025-09-16", Symbol: "BTCUSD", Close: 115484},
	}

	got, err := buildUserContent(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "N = 2") {
		t.Errorf("expected window length N = 2 in payload, got:\n%s", got)
	}
	// Candles must appear oldest to newest.
	i15 := strings.Index(got, "2025-09-15")
	i16 := strings.Index(got, "2025-09-16")
	if i15 < 0 || i16 < 0 || i15 > i16 {
		t.Errorf("expected candles oldest-first, got:\n%s", got)
	}
	// Field names must match the upstream schema the prompt describes.
	for _, field := range []string{`"close"`, `"changePercent"`, `"vwap"`, `"symbol"`} {
		if !strings.Contains(got, field) {
			t.Errorf("expected field %s in payload", field)
		}
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantKey   string
		wantModel string
	}{
		{
			name:      "GOOGLE_API_KEY preferred",
			env:       map[string]string{"GOOGLE_API_KEY": "g-key", "GEMINI_API_KEY": "other"},
			wantKey:   "g-key",
			wantModel: DefaultModel,
		},
		{
			name:      "GEMINI_API_KEY fallback",
			env:       map[string]string{"GEMINI_API_KEY": "fallback-key"},
			wantKey:   "fallback-key",
			wantModel: DefaultModel,
		},
		{
			name:      "GEMINI_MODEL preferred over MODEL_NAME",
			env:       map[string]string{"GEMINI_MODEL": "gemini-2.5-pro", "MODEL_NAME": "other-model"},
			wantModel: "gemini-2.5-pro",
		},
		{
			name:      "MODEL_NAME fallback",
			env:       map[string]string{"MODEL_NAME": "named-model"},
			wantModel: "named-model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL", "MODEL_NAME"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := LoadConfig()
			if tt.wantKey != "" && cfg.APIKey != tt.wantKey {
				t.Errorf("expected key %q, got %q", tt.wantKey, cfg.APIKey)
			}
			if cfg.Model != tt.wantModel {
				t.Errorf("expected model %q, got %q", tt.wantModel, cfg.Model)
			}
		})
	}
}

func TestNewAnalyzer_MissingAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewAnalyzer(t.Context(), Config{APIKey: ""})
	if err != ErrMissingAPIKey {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}
