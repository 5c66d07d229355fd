// Package postgres persists draw history through sqlx. Despite the
// name it also runs against SQLite: the SQL sticks to the shared
// dialect and sqlx rebinding handles the placeholder difference.
package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"drawlab/domain/core"
	"drawlab/domain/draw"
	"drawlab/internal/errors"
	"drawlab/ports"
)

// drawRow is the storage shape of a draw. Numbers are a comma-joined
// string so the same column type works on both drivers.
type drawRow struct {
	ID         string `db:"id"`
	DrawNumber int64  `db:"draw_number"`
	DrawDate   string `db:"draw_date"`
	GameType   string `db:"game_type"`
	Provider   string `db:"game_provider"`
	Numbers    string `db:"numbers"`
}

// DrawRepository implements ports.DrawHistoryProvider and
// ports.DrawWriter on a sqlx database handle.
type DrawRepository struct {
	db *sqlx.DB
}

// NewDrawRepository creates a draw repository
func NewDrawRepository(db *sqlx.DB) *DrawRepository {
	return &DrawRepository{db: db}
}

// Connect opens the database, verifies the connection and runs the
// schema migration.
func Connect(ctx context.Context, driver, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, url)
	if err != nil {
		return nil, errors.DatabaseError(err, "failed to connect to database")
	}
	if err := NewRunner().Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}

// ListDraws returns the matching draws in chronological order (oldest
// first, draw number as tie-break).
func (r *DrawRepository) ListDraws(ctx context.Context, filter ports.DrawFilter) (draw.History, error) {
	query, args := buildDrawQuery("SELECT id, draw_number, draw_date, game_type, game_provider, numbers FROM draws", filter)
	query += " ORDER BY draw_date ASC, draw_number ASC"
	if filter.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + strconv.Itoa(filter.Offset)
	}

	var rows []drawRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, errors.DatabaseError(err, "failed to list draws")
	}

	history := make(draw.History, 0, len(rows))
	for _, row := range rows {
		d, err := row.toDraw()
		if err != nil {
			return nil, err
		}
		history = append(history, d)
	}
	return history, nil
}

// CountDraws returns the number of draws matching the filter, ignoring
// pagination.
func (r *DrawRepository) CountDraws(ctx context.Context, filter ports.DrawFilter) (int, error) {
	filter.Limit = 0
	filter.Offset = 0
	query, args := buildDrawQuery("SELECT COUNT(*) FROM draws", filter)

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, errors.DatabaseError(err, "failed to count draws")
	}
	return count, nil
}

// SaveDraws inserts draws in one transaction, skipping draw numbers the
// game already has. Returns the number of rows actually inserted.
func (r *DrawRepository) SaveDraws(ctx context.Context, draws draw.History) (int, error) {
	if len(draws) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.DatabaseError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO draws (id, draw_number, draw_date, game_type, game_provider, numbers)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (game_type, draw_number) DO NOTHING`)

	inserted := 0
	for _, d := range draws {
		id := string(d.ID)
		if id == "" {
			id = uuid.NewString()
		}
		res, err := tx.ExecContext(ctx, query,
			id, d.DrawNumber, d.Date.String(), string(d.GameType), d.Provider, joinNumbers(d.Numbers))
		if err != nil {
			return 0, errors.DatabaseError(err, "failed to insert draw")
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.DatabaseError(err, "failed to commit draws")
	}
	return inserted, nil
}

// buildDrawQuery appends the filter's WHERE clause using ? placeholders;
// callers rebind for the active driver.
func buildDrawQuery(base string, filter ports.DrawFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.GameType != "" {
		conditions = append(conditions, "game_type = ?")
		args = append(args, string(filter.GameType))
	}
	if filter.Provider != "" {
		conditions = append(conditions, "game_provider = ?")
		args = append(args, filter.Provider)
	}

	from, to := filter.DateFrom, filter.DateTo
	if filter.WindowDays > 0 && from.IsZero() {
		end := to
		if end.IsZero() {
			end = core.NewDrawDate(nowUTC())
		}
		from = end.AddDays(-(filter.WindowDays - 1))
	}
	if !from.IsZero() {
		conditions = append(conditions, "draw_date >= ?")
		args = append(args, from.String())
	}
	if !to.IsZero() {
		conditions = append(conditions, "draw_date <= ?")
		args = append(args, to.String())
	}

	if len(conditions) > 0 {
		base += " WHERE " + strings.Join(conditions, " AND ")
	}
	return base, args
}

func (row drawRow) toDraw() (draw.Draw, error) {
	date, err := core.ParseDrawDate(row.DrawDate)
	if err != nil {
		return draw.Draw{}, errors.DatabaseError(err, "malformed draw_date in row "+row.ID)
	}
	numbers, err := splitNumbers(row.Numbers)
	if err != nil {
		return draw.Draw{}, errors.DatabaseError(err, "malformed numbers in row "+row.ID)
	}
	return draw.Draw{
		ID:         core.DrawID(row.ID),
		DrawNumber: row.DrawNumber,
		Date:       date,
		GameType:   core.GameType(row.GameType),
		Provider:   row.Provider,
		Numbers:    numbers,
	}, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func splitNumbers(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	numbers := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		numbers[i] = n
	}
	return numbers, nil
}
