// Package store persists agent value tables between runs. Each backend keeps
// the whole table as one unit: Save replaces whatever was stored before, Load
// returns the table or ErrNotFound when nothing has been saved yet.
package store

import (
	"connectfour/game"
	"context"
	"errors"
)

// ErrNotFound reports that no value table has been saved.
var ErrNotFound = errors.New("value table not found")

type Store interface {
	Save(ctx context.Context, values map[game.StateID]float64) error
	Load(ctx context.Context) (map[game.StateID]float64, error)
}
