package repository

import (
	"errors"
	"time"

	"github.com/jask/calpick/core"
)

var ErrNotFound = errors.New("not found")

// BlockedDay represents a blocked_days row.
type BlockedDay struct {
	ID        string
	Day       core.Date
	Reason    string
	CreatedAt time.Time
}
