package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"faithai-profile/internal/cache"
	"faithai-profile/internal/domain"
	"faithai-profile/internal/scoring"
)

func seedRespondents(t *testing.T, repo *mockRespondentRepo, engine *scoring.Engine, n int, consent bool) {
	t.Helper()
	svc := NewProfileService(zap.NewNop(), engine, repo, nil, nil, nil)
	roles := []string{"pasteur", "laic"}
	for i := 0; i < n; i++ {
		_, err := svc.Submit(context.Background(), SubmitInput{
			Answers: sampleAnswers(i%11, roles[i%2]),
			Consent: consent,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestParseSegments(t *testing.T) {
	tests := []struct {
		raw     string
		want    []string
		wantErr bool
	}{
		{"", nil, false},
		{"role", []string{"role"}, false},
		{" Role , age,role ", []string{"role", "age"}, false},
		{"role,planet", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseSegments(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseSegments(%q) err=%v", tt.raw, err)
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			continue
		}
		if len(got) != len(tt.want) {
			t.Fatalf("ParseSegments(%q) = %v, want %v", tt.raw, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("ParseSegments(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		}
	}
}

func TestAnalyticsService_AggregateConsentingOnly(t *testing.T) {
	engine := newTestEngine(t, 0)
	repo := newMockRespondentRepo()
	seedRespondents(t, repo, engine, 12, true)
	seedRespondents(t, repo, engine, 5, false)

	svc := NewAnalyticsService(zap.NewNop(), engine, repo, nil)
	stats, err := svc.Aggregate(context.Background(), []string{scoring.SegmentRole})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if stats.N != 12 || !stats.HasData {
		t.Fatalf("expected 12 consenting respondents, got n=%d", stats.N)
	}
	if stats.Caveat.Confidence != domain.ConfidenceLow || !stats.Caveat.InsufficientSample {
		t.Fatalf("unexpected caveat %+v", stats.Caveat)
	}
	for _, seg := range stats.Segments {
		if seg.Segment != scoring.SegmentRole {
			t.Fatalf("unexpected segment %q", seg.Segment)
		}
	}
	if len(stats.Segments) != 2 {
		t.Fatalf("expected pasteur and laic buckets, got %+v", stats.Segments)
	}
}

func TestAnalyticsService_AggregateErrors(t *testing.T) {
	engine := newTestEngine(t, 0)
	repo := newMockRespondentRepo()
	svc := NewAnalyticsService(zap.NewNop(), engine, repo, nil)

	if _, err := svc.Aggregate(context.Background(), []string{"planet"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	repo.listErr = errors.New("db down")
	if _, err := svc.Aggregate(context.Background(), nil); err == nil {
		t.Fatalf("expected list error")
	}

	if _, err := NewAnalyticsService(nil, nil, nil, nil).Aggregate(context.Background(), nil); !errors.Is(err, ErrServiceNotConfigured) {
		t.Fatalf("expected ErrServiceNotConfigured, got %v", err)
	}
}

func TestAnalyticsService_EmptyPopulation(t *testing.T) {
	svc := NewAnalyticsService(zap.NewNop(), newTestEngine(t, 0), newMockRespondentRepo(), nil)
	stats, err := svc.Aggregate(context.Background(), nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if stats.HasData || stats.Caveat.Confidence != domain.ConfidenceNone {
		t.Fatalf("expected empty stats, got %+v", stats.GroupStats)
	}
}

func TestAnalyticsService_RecalibratePublishesParams(t *testing.T) {
	engine := newTestEngine(t, 10)
	repo := newMockRespondentRepo()
	pop := cache.NewMemoryPopulationCache(time.Hour)
	svc := NewAnalyticsService(zap.NewNop(), engine, repo, pop)
	fixed := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	seedRespondents(t, repo, engine, 9, true)
	params, updated, err := svc.Recalibrate(context.Background())
	if err != nil {
		t.Fatalf("recalibrate: %v", err)
	}
	if updated || params.Source != domain.ParamsSourceDefault {
		t.Fatalf("expected defaults below threshold, got %+v", params)
	}
	if got, _ := pop.Get(context.Background()); got != nil {
		t.Fatalf("cache must stay empty below threshold")
	}

	seedRespondents(t, repo, engine, 1, true)
	params, updated, err = svc.Recalibrate(context.Background())
	if err != nil {
		t.Fatalf("recalibrate: %v", err)
	}
	if !updated || params.Source != domain.ParamsSourceMeasured || params.N != 10 {
		t.Fatalf("expected measured params at threshold, got %+v", params)
	}
	cached, err := pop.Get(context.Background())
	if err != nil || cached == nil {
		t.Fatalf("expected cached params, got %v,%v", cached, err)
	}
	if !cached.UpdatedAt.Equal(fixed) || len(cached.Dimensions) != len(domain.AllDimensions) {
		t.Fatalf("unexpected cached params %+v", cached)
	}

	reports := NewProfileService(zap.NewNop(), engine, repo, pop, nil, nil)
	if got := reports.CurrentParams(context.Background()); got.Source != domain.ParamsSourceMeasured {
		t.Fatalf("reports must pick up measured params, got %q", got.Source)
	}
}

func TestAnalyticsService_PublishFailure(t *testing.T) {
	engine := newTestEngine(t, 2)
	repo := newMockRespondentRepo()
	seedRespondents(t, repo, engine, 3, true)
	svc := NewAnalyticsService(zap.NewNop(), engine, repo, failingPopulationCache{})

	if _, err := svc.Aggregate(context.Background(), nil); err != nil {
		t.Fatalf("cache failure must not fail aggregation: %v", err)
	}

	params, updated, err := svc.Recalibrate(context.Background())
	if !errors.Is(err, ErrParamsNotPublished) {
		t.Fatalf("expected publish error, got %v", err)
	}
	if updated || params.Source == domain.ParamsSourceMeasured {
		t.Fatalf("failed publish must not report measured params, got updated=%v %+v", updated, params)
	}

	reports := NewProfileService(zap.NewNop(), engine, repo, failingPopulationCache{}, nil, nil)
	if got := reports.CurrentParams(context.Background()); got.Source != domain.ParamsSourceDefault {
		t.Fatalf("reports must stay on defaults, got %q", got.Source)
	}
}

func TestAnalyticsService_RecalibrateBelowThresholdClearsStaleParams(t *testing.T) {
	engine := newTestEngine(t, 5)
	repo := newMockRespondentRepo()
	pop := cache.NewMemoryPopulationCache(time.Hour)
	stale := domain.PopulationParams{Source: domain.ParamsSourceMeasured, N: 600}
	if err := pop.Set(context.Background(), stale); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	seedRespondents(t, repo, engine, 2, true)
	svc := NewAnalyticsService(zap.NewNop(), engine, repo, pop)

	params, updated, err := svc.Recalibrate(context.Background())
	if err != nil || updated || params.Source != domain.ParamsSourceDefault {
		t.Fatalf("expected defaults, got %+v updated=%v err=%v", params, updated, err)
	}
	if got, _ := pop.Get(context.Background()); got != nil {
		t.Fatalf("stale measured params must be cleared, got %+v", got)
	}
}

func TestAnalyticsService_RecalibrateWithoutCache(t *testing.T) {
	engine := newTestEngine(t, 2)
	repo := newMockRespondentRepo()
	seedRespondents(t, repo, engine, 3, true)
	svc := NewAnalyticsService(zap.NewNop(), engine, repo, nil)

	if _, updated, err := svc.Recalibrate(context.Background()); !errors.Is(err, ErrServiceNotConfigured) || updated {
		t.Fatalf("expected not configured, got updated=%v err=%v", updated, err)
	}
}
