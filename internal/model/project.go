// Package model defines the project and funding statistics types shared by
// the pipeline, the envelope decoder and the terminal front end.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownState is returned when a state name has no matching State.
var ErrUnknownState = errors.New("unknown project state")

// State is the funding state of a campaign.
type State string

// Project states. Only StateLive counts as an active campaign.
const (
	StateStarted    State = "started"
	StateSubmitted  State = "submitted"
	StateLive       State = "live"
	StateSuccessful State = "successful"
	StateFailed     State = "failed"
	StateCanceled   State = "canceled"
	StateSuspended  State = "suspended"
	StatePurged     State = "purged"
)

var knownStates = map[State]struct{}{
	StateStarted:    {},
	StateSubmitted:  {},
	StateLive:       {},
	StateSuccessful: {},
	StateFailed:     {},
	StateCanceled:   {},
	StateSuspended:  {},
	StatePurged:     {},
}

// ParseState resolves a state name as sent by the API.
func ParseState(s string) (State, error) {
	st := State(s)
	if _, ok := knownStates[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	return st, nil
}

// IsLive reports whether the campaign is still collecting pledges.
func (s State) IsLive() bool {
	return s == StateLive
}

// Stats holds the money and backer totals of a project.
type Stats struct {
	Goal         decimal.Decimal
	Pledged      decimal.Decimal
	BackersCount int
}

// Dates holds the lifecycle timestamps of a project.
// A zero Deadline means the project has no deadline.
type Dates struct {
	LaunchedAt     time.Time
	Deadline       time.Time
	StateChangedAt time.Time
}

// Project is a campaign snapshot. Values are passed around by copy and
// never mutated by the pipeline.
type Project struct {
	ID      int64
	Name    string
	Slug    string
	State   State
	Country Country
	Stats   Stats
	Dates   Dates
}

// HasDeadline reports whether the project carries a deadline.
func (p Project) HasDeadline() bool {
	return !p.Dates.Deadline.IsZero()
}
