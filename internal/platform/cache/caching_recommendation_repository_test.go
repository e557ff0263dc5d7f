package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"advisor_backend/internal/feature/recommendations/domain"
	"advisor_backend/internal/feature/recommendations/domain/entity"
)

// mockRecommendationRepository is a test double for the inner repository.
type mockRecommendationRepository struct {
	saveFn      func(ctx context.Context, rec entity.DailyRecommendation) (bool, error)
	latestFn    func(ctx context.Context, symbol string) (entity.DailyRecommendation, error)
	latestCalls int
}

func (m *mockRecommendationRepository) Save(ctx context.Context, rec entity.DailyRecommendation) (bool, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, rec)
	}
	return true, nil
}

func (m *mockRecommendationRepository) LatestBySymbol(ctx context.Context, symbol string) (entity.DailyRecommendation, error) {
	m.latestCalls++
	if m.latestFn != nil {
		return m.latestFn(ctx, symbol)
	}
	return entity.DailyRecommendation{}, nil
}

func sampleRec() entity.DailyRecommendation {
	return entity.DailyRecommendation{
		ID:             1,
		Symbol:         "BTCUSD",
		TradeDate:      time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
		ModelName:      "gemini-2.5-flash",
		Recommendation: "buy",
		Rationale:      "uptrend",
		ChangePercent:  0.05,
		WindowDays:     7,
	}
}

func TestNewCachingRecommendationRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingRecommendationRepository(nil, 0, &mockRecommendationRepository{}, "")
	if repo.ttl != 5*time.Minute {
		t.Errorf("expected default ttl 5m, got %v", repo.ttl)
	}
	if repo.namespace != "recommendations" {
		t.Errorf("expected default namespace recommendations, got %q", repo.namespace)
	}
}

func TestCachingRecommendationRepository_NilRedisBypassesCache(t *testing.T) {
	t.Parallel()

	inner := &mockRecommendationRepository{
		latestFn: func(ctx context.Context, symbol string) (entity.DailyRecommendation, error) {
			return sampleRec(), nil
		},
	}
	repo := NewCachingRecommendationRepository(nil, time.Minute, inner, "recommendations")

	got, err := repo.LatestBySymbol(context.Background(), "BTCUSD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recommendation != "buy" {
		t.Errorf("expected buy, got %q", got.Recommendation)
	}
	if inner.latestCalls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.latestCalls)
	}
}

func TestCachingRecommendationRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	cached, _ := json.Marshal(sampleRec())
	mock.ExpectGet("recommendations:latest:BTCUSD").SetVal(string(cached))

	inner := &mockRecommendationRepository{}
	repo := NewCachingRecommendationRepository(rdb, time.Minute, inner, "recommendations")

	got, err := repo.LatestBySymbol(context.Background(), "BTCUSD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recommendation != "buy" {
		t.Errorf("expected cached buy, got %q", got.Recommendation)
	}
	if inner.latestCalls != 0 {
		t.Errorf("expected no inner calls on cache hit, got %d", inner.latestCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingRecommendationRepository_CacheMissFallsBackAndStores(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	rec := sampleRec()
	b, _ := json.Marshal(rec)

	mock.ExpectGet("recommendations:latest:BTCUSD").RedisNil()
	mock.ExpectSet("recommendations:latest:BTCUSD", b, time.Minute).SetVal("OK")

	inner := &mockRecommendationRepository{
		latestFn: func(ctx context.Context, symbol string) (entity.DailyRecommendation, error) {
			return rec, nil
		},
	}
	repo := NewCachingRecommendationRepository(rdb, time.Minute, inner, "recommendations")

	got, err := repo.LatestBySymbol(context.Background(), "BTCUSD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recommendation != "buy" {
		t.Errorf("expected buy, got %q", got.Recommendation)
	}
	if inner.latestCalls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.latestCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingRecommendationRepository_NotFoundIsNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("recommendations:latest:BTCUSD").RedisNil()

	inner := &mockRecommendationRepository{
		latestFn: func(ctx context.Context, symbol string) (entity.DailyRecommendation, error) {
			return entity.DailyRecommendation{}, domain.ErrNotFound
		},
	}
	repo := NewCachingRecommendationRepository(rdb, time.Minute, inner, "recommendations")

	_, err := repo.LatestBySymbol(context.Background(), "BTCUSD")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// No Set expectation was registered: a Set would fail ExpectationsWereMet.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingRecommendationRepository_SaveInvalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("recommendations:latest:BTCUSD").SetVal(1)

	repo := NewCachingRecommendationRepository(rdb, time.Minute, &mockRecommendationRepository{}, "recommendations")

	inserted, err := repo.Save(context.Background(), sampleRec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inserted {
		t.Error("expected inserted=true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingRecommendationRepository_DuplicateSaveSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()

	inner := &mockRecommendationRepository{
		saveFn: func(ctx context.Context, rec entity.DailyRecommendation) (bool, error) {
			return false, nil
		},
	}
	repo := NewCachingRecommendationRepository(rdb, time.Minute, inner, "recommendations")

	inserted, err := repo.Save(context.Background(), sampleRec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted {
		t.Error("expected inserted=false for duplicate")
	}
	// Nothing changed, so the cached entry stays valid.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}
