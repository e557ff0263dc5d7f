package gemini

import (
	"context"
	"sync"

	"advisor_backend/internal/feature/recommendations/domain/entity"
	"advisor_backend/internal/feature/recommendations/usecase"
)

// LazyAnalyzer defers client construction to the first Analyze call so that a
// missing or invalid credential surfaces at the analysis stage instead of at
// process start. The fetch and persist stages of the daily pipeline run
// unconditionally this way; today's candle can only be fetched on its own day,
// so it must be stored even when the model is unreachable.
type LazyAnalyzer struct {
	cfg Config

	mu    sync.Mutex
	inner *Analyzer
}

var _ usecase.Analyzer = (*LazyAnalyzer)(nil)

// NewLazyAnalyzer creates a LazyAnalyzer. The configuration is not validated
// here; validation happens on first use.
func NewLazyAnalyzer(cfg Config) *LazyAnalyzer {
	return &LazyAnalyzer{cfg: cfg}
}

// Analyze constructs the underlying Analyzer on first use, then delegates.
func (l *LazyAnalyzer) Analyze(ctx context.Context, data []entity.CandleSnapshot, model string) (entity.Advice, error) {
	a, err := l.analyzer(ctx)
	if err != nil {
		return entity.Advice{}, err
	}
	return a.Analyze(ctx, data, model)
}

func (l *LazyAnalyzer) analyzer(ctx context.Context) (*Analyzer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inner != nil {
		return l.inner, nil
	}
	a, err := NewAnalyzer(ctx, l.cfg)
	if err != nil {
		return nil, err
	}
	l.inner = a
	return a, nil
}
