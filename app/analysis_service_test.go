package app

import (
	"context"
	"errors"
	"testing"

	"drawlab/domain/draw"
	apperrors "drawlab/internal/errors"
	"drawlab/internal/testkit"
	"drawlab/ports"
)

// memoryProvider serves a fixed in-memory history, applying only the
// game type filter. Window filtering is the engines' job.
type memoryProvider struct {
	history draw.History
	err     error
}

func (m *memoryProvider) ListDraws(_ context.Context, filter ports.DrawFilter) (draw.History, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := draw.History{}
	for _, d := range m.history {
		if filter.GameType != "" && d.GameType != filter.GameType {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memoryProvider) CountDraws(_ context.Context, filter ports.DrawFilter) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	history, _ := m.ListDraws(context.Background(), filter)
	return len(history), nil
}

func newService(history draw.History) *AnalysisService {
	return NewAnalysisService(&memoryProvider{history: history}, draw.DefaultVariants())
}

func TestFrequency_EndToEnd(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.UniformHistory(120, variant, 7)
	svc := newService(history)

	report, err := svc.Frequency(context.Background(), AnalysisRequest{GameType: variant.GameType})
	if err != nil {
		t.Fatalf("frequency: %v", err)
	}
	if report.DrawCount != 120 {
		t.Errorf("draw count = %d, want 120", report.DrawCount)
	}
	if len(report.Frequencies) != variant.MaxNumber {
		t.Errorf("frequency table size = %d, want %d", len(report.Frequencies), variant.MaxNumber)
	}
}

func TestRandomness_EndToEnd(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.UniformHistory(150, variant, 11)
	svc := newService(history)

	report, err := svc.Randomness(context.Background(), AnalysisRequest{GameType: variant.GameType})
	if err != nil {
		t.Fatalf("randomness: %v", err)
	}
	if got := len(report.RunsTests); got != 3 {
		t.Errorf("runs policies = %d, want 3", got)
	}
	if report.ChiSquare.TestName == "" || report.Entropy.TestName == "" {
		t.Error("every test result should carry its name")
	}
	if report.Summary.DataQuality != "Good" {
		t.Errorf("data quality = %q, want Good", report.Summary.DataQuality)
	}
}

func TestCorrelation_SingleDraw(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.UniformHistory(1, variant, 3)
	svc := newService(history)

	report, err := svc.Correlation(context.Background(), AnalysisRequest{GameType: variant.GameType})
	if err != nil {
		t.Fatalf("correlation: %v", err)
	}
	if !report.InsufficientSample {
		t.Error("one draw must be flagged as an insufficient sample")
	}
	if len(report.SignificantPairs) != 0 {
		t.Errorf("significant pairs = %d, want none", len(report.SignificantPairs))
	}
}

func TestPatterns_EndToEnd(t *testing.T) {
	variant := testkit.LottoVariant()
	history := testkit.HistoryFromNumbers([][]int{{1, 2, 3, 10, 20, 30}}, variant)
	svc := newService(history)

	report, err := svc.Patterns(context.Background(), AnalysisRequest{GameType: variant.GameType})
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	if report.Consecutive.MaxLength != 3 {
		t.Errorf("max consecutive run = %d, want 3", report.Consecutive.MaxLength)
	}
}

func TestMonteCarlo_EndToEnd(t *testing.T) {
	svc := newService(nil)

	report, err := svc.MonteCarlo(context.Background(), SimulationRequest{
		GameType:    "lotto",
		Runs:        20,
		DrawsPerRun: 50,
	})
	if err != nil {
		t.Fatalf("monte carlo: %v", err)
	}
	if report.Runs != 20 || report.MaxNumber != 49 {
		t.Errorf("report echo = %+v", report)
	}
}

func TestUnknownGameType(t *testing.T) {
	svc := newService(nil)

	_, err := svc.Frequency(context.Background(), AnalysisRequest{GameType: "keno"})
	if err == nil {
		t.Fatal("expected an error for an unregistered game type")
	}
	if apperrors.GetCode(err) != apperrors.CodeUnknownGameType {
		t.Errorf("error code = %q, want %q", apperrors.GetCode(err), apperrors.CodeUnknownGameType)
	}
}

func TestListDraws_ProviderErrorWrapped(t *testing.T) {
	failing := errors.New("connection refused")
	svc := NewAnalysisService(&memoryProvider{err: failing}, draw.DefaultVariants())

	_, _, err := svc.ListDraws(context.Background(), ports.DrawFilter{})
	if err == nil {
		t.Fatal("expected the provider error to propagate")
	}
	if !errors.Is(err, failing) {
		t.Errorf("wrapped error should unwrap to the provider error, got %v", err)
	}
}

func TestListDraws_FiltersByGame(t *testing.T) {
	lotto := testkit.LottoVariant()
	mini := draw.Variant{GameType: "mini", PickCount: 5, MaxNumber: 42}
	history := append(
		testkit.UniformHistory(10, lotto, 1),
		testkit.UniformHistory(5, mini, 2)...,
	)
	svc := newService(history)

	draws, total, err := svc.ListDraws(context.Background(), ports.DrawFilter{GameType: "mini"})
	if err != nil {
		t.Fatalf("list draws: %v", err)
	}
	if len(draws) != 5 || total != 5 {
		t.Errorf("got %d draws (total %d), want 5", len(draws), total)
	}
}
