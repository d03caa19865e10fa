package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/calpick/core"
)

// BlockedDayRepo handles days the user blocked from the calendar.
type BlockedDayRepo struct {
	db *sql.DB
}

func NewBlockedDayRepo(db *sql.DB) *BlockedDayRepo { return &BlockedDayRepo{db: db} }

// Add blocks day. Blocking an already blocked day updates its reason and
// keeps the original id.
func (r *BlockedDayRepo) Add(ctx context.Context, day core.Date, reason string) (BlockedDay, error) {
	if day.IsZero() {
		return BlockedDay{}, errors.New("block: missing day")
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO blocked_days(id, day, reason) VALUES (?, ?, ?)
	ON CONFLICT(day) DO UPDATE SET reason=excluded.reason;
	`, uuid.NewString(), day.String(), reason)
	if err != nil {
		return BlockedDay{}, fmt.Errorf("block %s: %w", day, err)
	}
	return r.Get(ctx, day)
}

func (r *BlockedDayRepo) Get(ctx context.Context, day core.Date) (BlockedDay, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, day, reason, created_at FROM blocked_days WHERE day = ?`, day.String())
	b, err := scanBlockedDay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return BlockedDay{}, fmt.Errorf("blocked day %s: %w", day, ErrNotFound)
	}
	return b, err
}

// Remove unblocks day. Removing a day that is not blocked returns ErrNotFound.
func (r *BlockedDayRepo) Remove(ctx context.Context, day core.Date) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blocked_days WHERE day = ?`, day.String())
	if err != nil {
		return fmt.Errorf("unblock %s: %w", day, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("blocked day %s: %w", day, ErrNotFound)
	}
	return nil
}

// List returns every blocked day in ascending order.
func (r *BlockedDayRepo) List(ctx context.Context) ([]BlockedDay, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, day, reason, created_at FROM blocked_days ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BlockedDay
	for rows.Next() {
		b, err := scanBlockedDay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlockedDay(row rowScanner) (BlockedDay, error) {
	var (
		b   BlockedDay
		day string
	)
	if err := row.Scan(&b.ID, &day, &b.Reason, &b.CreatedAt); err != nil {
		return BlockedDay{}, err
	}
	d, err := core.ParseDate(day)
	if err != nil {
		return BlockedDay{}, err
	}
	b.Day = d
	return b, nil
}
