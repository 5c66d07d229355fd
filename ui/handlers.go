package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"drawlab/adapters/excel"
	"drawlab/app"
	"drawlab/domain/core"
	"drawlab/internal/errors"
	"drawlab/ports"
)

const defaultGameType = "lotto"

func (s *Server) handleListDraws(c *gin.Context) {
	filter, err := parseDrawFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	draws, total, err := s.service.ListDraws(c.Request.Context(), filter)
	if err != nil {
		s.logger.Error("list draws: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draws": draws,
		"count": len(draws),
		"total": total,
	})
}

func (s *Server) handleFrequency(c *gin.Context) {
	req, err := parseAnalysisRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := s.service.Frequency(c.Request.Context(), req)
	if err != nil {
		s.logger.Error("frequency analysis: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleRandomness(c *gin.Context) {
	req, err := parseAnalysisRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := s.service.Randomness(c.Request.Context(), req)
	if err != nil {
		s.logger.Error("randomness analysis: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handlePatterns(c *gin.Context) {
	req, err := parseAnalysisRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := s.service.Patterns(c.Request.Context(), req)
	if err != nil {
		s.logger.Error("pattern analysis: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleCorrelation(c *gin.Context) {
	req, err := parseAnalysisRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := s.service.Correlation(c.Request.Context(), req)
	if err != nil {
		s.logger.Error("correlation analysis: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleMonteCarlo(c *gin.Context) {
	game, err := core.ParseGameType(c.DefaultQuery("game", defaultGameType))
	if err != nil {
		respondError(c, errors.InvalidInput(err.Error()))
		return
	}
	runs, err := queryInt(c, "runs", 1000)
	if err != nil {
		respondError(c, err)
		return
	}
	drawsPerRun, err := queryInt(c, "draws_per_run", 100)
	if err != nil {
		respondError(c, err)
		return
	}
	if runs < 1 || runs > 100000 {
		respondError(c, errors.InvalidInput("runs must be in [1, 100000]"))
		return
	}
	if drawsPerRun < 1 || drawsPerRun > 10000 {
		respondError(c, errors.InvalidInput("draws_per_run must be in [1, 10000]"))
		return
	}

	report, err := s.service.MonteCarlo(c.Request.Context(), app.SimulationRequest{
		GameType:    game,
		Runs:        runs,
		DrawsPerRun: drawsPerRun,
	})
	if err != nil {
		s.logger.Error("monte carlo: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleExportExcel(c *gin.Context) {
	req, err := parseAnalysisRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	bundle := excel.Bundle{}
	if bundle.Frequency, err = s.service.Frequency(ctx, req); err != nil {
		respondError(c, err)
		return
	}
	if bundle.Randomness, err = s.service.Randomness(ctx, req); err != nil {
		respondError(c, err)
		return
	}
	if bundle.Patterns, err = s.service.Patterns(ctx, req); err != nil {
		respondError(c, err)
		return
	}
	if bundle.Correlation, err = s.service.Correlation(ctx, req); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("drawlab_%s_%s.xlsx", req.GameType, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := s.exporter.Write(c.Writer, bundle); err != nil {
		s.logger.Error("excel export: %v", err)
	}
}

func parseAnalysisRequest(c *gin.Context) (app.AnalysisRequest, error) {
	game, err := core.ParseGameType(c.DefaultQuery("game", defaultGameType))
	if err != nil {
		return app.AnalysisRequest{}, errors.InvalidInput(err.Error())
	}
	windowDays, err := queryInt(c, "window_days", 0)
	if err != nil {
		return app.AnalysisRequest{}, err
	}
	if windowDays < 0 {
		return app.AnalysisRequest{}, errors.InvalidInput("window_days must be >= 0")
	}
	dateFrom, err := queryDate(c, "date_from")
	if err != nil {
		return app.AnalysisRequest{}, err
	}
	dateTo, err := queryDate(c, "date_to")
	if err != nil {
		return app.AnalysisRequest{}, err
	}
	return app.AnalysisRequest{
		GameType:   game,
		WindowDays: windowDays,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	}, nil
}

func parseDrawFilter(c *gin.Context) (ports.DrawFilter, error) {
	req, err := parseAnalysisRequest(c)
	if err != nil {
		return ports.DrawFilter{}, err
	}
	limit, err := queryInt(c, "limit", 100)
	if err != nil {
		return ports.DrawFilter{}, err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return ports.DrawFilter{}, err
	}
	if limit < 1 || limit > 1000 {
		return ports.DrawFilter{}, errors.InvalidInput("limit must be in [1, 1000]")
	}
	if offset < 0 {
		return ports.DrawFilter{}, errors.InvalidInput("offset must be >= 0")
	}
	return ports.DrawFilter{
		GameType:   req.GameType,
		Provider:   c.Query("provider"),
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		WindowDays: req.WindowDays,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(key + " must be an integer")
	}
	return value, nil
}

func queryDate(c *gin.Context, key string) (core.DrawDate, error) {
	raw := c.Query(key)
	if raw == "" {
		return core.DrawDate{}, nil
	}
	date, err := core.ParseDrawDate(raw)
	if err != nil {
		return core.DrawDate{}, errors.InvalidInput(key + " must be a YYYY-MM-DD date")
	}
	return date, nil
}

// respondError translates error codes into HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeUnknownGameType:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
