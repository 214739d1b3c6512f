// Package source decodes project stats envelopes into model values.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fundburn/internal/model"
)

// ErrNoProject is returned when an envelope carries no project object.
var ErrNoProject = errors.New("envelope has no project")

// Envelope is a decoded project stats payload.
type Envelope struct {
	Project model.Project
	Stats   []model.FundingDateStat
}

// ParseFile reads and decodes the envelope stored at path.
func ParseFile(path string) (*Envelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	env, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return env, nil
}

// Parse decodes one envelope from r.
//
// Times are Unix seconds. A missing or null deadline decodes to a zero
// Deadline; rejecting it is left to the pipeline's precondition. Other
// timestamps treat 0 as unset.
func Parse(r io.Reader) (*Envelope, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw RawEnvelope
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	if raw.Project == nil {
		return nil, ErrNoProject
	}

	project, err := convertProject(*raw.Project)
	if err != nil {
		return nil, err
	}

	stats := make([]model.FundingDateStat, 0, len(raw.FundingDistribution))
	for i, rs := range raw.FundingDistribution {
		st, err := convertStat(rs)
		if err != nil {
			return nil, fmt.Errorf("funding_distribution[%d]: %w", i, err)
		}
		stats = append(stats, st)
	}

	return &Envelope{Project: project, Stats: stats}, nil
}

func convertProject(rp RawProject) (model.Project, error) {
	state, err := model.ParseState(rp.State)
	if err != nil {
		return model.Project{}, err
	}
	country, err := model.LookupCountry(rp.Country)
	if err != nil {
		return model.Project{}, err
	}
	goal, err := amount(rp.Goal)
	if err != nil {
		return model.Project{}, fmt.Errorf("goal: %w", err)
	}
	pledged, err := amount(rp.Pledged)
	if err != nil {
		return model.Project{}, fmt.Errorf("pledged: %w", err)
	}

	p := model.Project{
		ID:      rp.ID,
		Name:    rp.Name,
		Slug:    rp.Slug,
		State:   state,
		Country: country,
		Stats: model.Stats{
			Goal:         goal,
			Pledged:      pledged,
			BackersCount: rp.BackersCount,
		},
		Dates: model.Dates{
			LaunchedAt:     unixTime(rp.LaunchedAt),
			StateChangedAt: unixTime(rp.StateChangedAt),
		},
	}
	// Only an absent or null deadline means none; 0 is the epoch.
	if rp.Deadline != nil {
		p.Dates.Deadline = time.Unix(*rp.Deadline, 0).UTC()
	}
	return p, nil
}

func convertStat(rs RawFundingStat) (model.FundingDateStat, error) {
	cumulative, err := amount(rs.CumulativePledged)
	if err != nil {
		return model.FundingDateStat{}, fmt.Errorf("cumulative_pledged: %w", err)
	}
	pledged, err := amount(rs.Pledged)
	if err != nil {
		return model.FundingDateStat{}, fmt.Errorf("pledged: %w", err)
	}
	return model.FundingDateStat{
		Date:              unixTime(rs.Date),
		CumulativePledged: cumulative,
		Pledged:           pledged,
		BackersCount:      rs.BackersCount,
	}, nil
}

// amount parses a JSON number into a decimal; absent numbers are zero.
func amount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}

func unixTime(secs int64) time.Time {
	if secs == 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}
