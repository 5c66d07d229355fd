// Package app orchestrates the analysis engines behind a service facade:
// it resolves game variants, fetches the draw history through the
// provider port and hands pure inputs to the engines.
package app

import (
	"context"

	"drawlab/adapters/stats/correlation"
	"drawlab/adapters/stats/frequency"
	"drawlab/adapters/stats/montecarlo"
	"drawlab/adapters/stats/patterns"
	"drawlab/adapters/stats/randomness"
	"drawlab/domain/analysis"
	"drawlab/domain/core"
	"drawlab/domain/draw"
	"drawlab/internal/errors"
	"drawlab/ports"
)

// AnalysisRequest parametrizes one analysis call.
type AnalysisRequest struct {
	GameType   core.GameType
	WindowDays int
	DateFrom   core.DrawDate
	DateTo     core.DrawDate
	Limit      int
}

// SimulationRequest parametrizes one Monte Carlo call.
type SimulationRequest struct {
	GameType    core.GameType
	Runs        int
	DrawsPerRun int
}

// AnalysisService wires the draw history provider to the five engines.
// The service itself holds no mutable state; every call fetches a fresh
// history and returns freshly allocated reports.
type AnalysisService struct {
	provider  ports.DrawHistoryProvider
	variants  draw.VariantRegistry
	frequency *frequency.Engine
	suite     *randomness.Suite
	detector  *patterns.Detector
	pairwise  *correlation.Engine
	simulator *montecarlo.Simulator
}

// NewAnalysisService creates the analysis service.
func NewAnalysisService(provider ports.DrawHistoryProvider, variants draw.VariantRegistry) *AnalysisService {
	return &AnalysisService{
		provider:  provider,
		variants:  variants,
		frequency: frequency.New(),
		suite:     randomness.NewSuite(),
		detector:  patterns.New(),
		pairwise:  correlation.New(),
		simulator: montecarlo.New(),
	}
}

// Variant resolves the game variant for a request.
func (s *AnalysisService) Variant(gameType core.GameType) (draw.Variant, error) {
	v, ok := s.variants.Lookup(gameType)
	if !ok {
		return draw.Variant{}, errors.New(errors.CodeUnknownGameType, "unknown game type: "+gameType.String())
	}
	return v, nil
}

// Frequency runs the frequency engine over the requested window.
func (s *AnalysisService) Frequency(ctx context.Context, req AnalysisRequest) (analysis.FrequencyReport, error) {
	variant, history, err := s.fetch(ctx, req)
	if err != nil {
		return analysis.FrequencyReport{}, err
	}
	return s.frequency.Analyze(history, variant, frequencyOptions(req)), nil
}

// Randomness runs the full five-test battery over the requested window.
func (s *AnalysisService) Randomness(ctx context.Context, req AnalysisRequest) (analysis.RandomnessReport, error) {
	variant, history, err := s.fetch(ctx, req)
	if err != nil {
		return analysis.RandomnessReport{}, err
	}
	freq := s.frequency.Analyze(history, variant, frequencyOptions(req))
	return s.suite.Run(freq, history, randomness.SuiteOptions{WindowDays: req.WindowDays}), nil
}

// Patterns runs the pattern detector over the requested window.
func (s *AnalysisService) Patterns(ctx context.Context, req AnalysisRequest) (analysis.PatternReport, error) {
	_, history, err := s.fetch(ctx, req)
	if err != nil {
		return analysis.PatternReport{}, err
	}
	return s.detector.Analyze(history, patterns.Options{
		GameType:   req.GameType,
		WindowDays: req.WindowDays,
	}), nil
}

// Correlation runs the co-occurrence engine over the requested window.
func (s *AnalysisService) Correlation(ctx context.Context, req AnalysisRequest) (analysis.CorrelationReport, error) {
	variant, history, err := s.fetch(ctx, req)
	if err != nil {
		return analysis.CorrelationReport{}, err
	}
	return s.pairwise.Analyze(history, variant, correlation.Options{
		GameType:   req.GameType,
		WindowDays: req.WindowDays,
	}), nil
}

// MonteCarlo runs the calibration simulator for a game variant.
func (s *AnalysisService) MonteCarlo(ctx context.Context, req SimulationRequest) (analysis.SimulationReport, error) {
	variant, err := s.Variant(req.GameType)
	if err != nil {
		return analysis.SimulationReport{}, err
	}
	return s.simulator.Simulate(ctx, req.Runs, req.DrawsPerRun, variant)
}

// ListDraws exposes the raw history with filters, for the API layer.
func (s *AnalysisService) ListDraws(ctx context.Context, filter ports.DrawFilter) (draw.History, int, error) {
	if filter.GameType != "" {
		if _, err := s.Variant(filter.GameType); err != nil {
			return nil, 0, err
		}
	}
	history, err := s.provider.ListDraws(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "listing draws")
	}
	total, err := s.provider.CountDraws(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "counting draws")
	}
	return history, total, nil
}

// fetch resolves the variant and pulls the chronological history for the
// request window.
func (s *AnalysisService) fetch(ctx context.Context, req AnalysisRequest) (draw.Variant, draw.History, error) {
	variant, err := s.Variant(req.GameType)
	if err != nil {
		return draw.Variant{}, nil, err
	}
	history, err := s.provider.ListDraws(ctx, ports.DrawFilter{
		GameType:   req.GameType,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		WindowDays: req.WindowDays,
		Limit:      req.Limit,
	})
	if err != nil {
		return draw.Variant{}, nil, errors.Wrap(err, "fetching draw history")
	}
	return variant, history, nil
}

func frequencyOptions(req AnalysisRequest) frequency.Options {
	return frequency.Options{
		WindowDays: req.WindowDays,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		GameType:   req.GameType,
	}
}
