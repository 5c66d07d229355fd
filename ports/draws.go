// Package ports defines the interfaces the analysis core consumes from
// its collaborators. The core never talks to a database, file or network
// directly.
package ports

import (
	"context"

	"drawlab/domain/core"
	"drawlab/domain/draw"
)

// DrawFilter narrows a draw history query. Zero fields are ignored.
type DrawFilter struct {
	GameType   core.GameType
	Provider   string
	DateFrom   core.DrawDate
	DateTo     core.DrawDate
	WindowDays int // convenience: DateFrom = DateTo - (WindowDays-1) days
	Limit      int
	Offset     int
}

// DrawHistoryProvider supplies validated historical draws in stable
// chronological order (oldest first). Numbers within a draw may arrive
// in any order; the engines sort where needed.
type DrawHistoryProvider interface {
	ListDraws(ctx context.Context, filter DrawFilter) (draw.History, error)
	CountDraws(ctx context.Context, filter DrawFilter) (int, error)
}

// DrawWriter persists ingested draws. Implementations must reject draws
// that fail variant validation and skip duplicates by draw number.
type DrawWriter interface {
	SaveDraws(ctx context.Context, draws draw.History) (int, error)
}
