package source

import "encoding/json"

// RawEnvelope is the project stats payload as delivered by the API.
type RawEnvelope struct {
	Project             *RawProject      `json:"project"`
	FundingDistribution []RawFundingStat `json:"funding_distribution"`
}

// RawProject holds the project fields the funding dashboard needs.
// Money fields stay as json.Number so no precision is lost before they
// become decimals.
type RawProject struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug,omitempty"`
	State          string      `json:"state"`
	Country        string      `json:"country"`
	Goal           json.Number `json:"goal"`
	Pledged        json.Number `json:"pledged"`
	BackersCount   int         `json:"backers_count"`
	LaunchedAt     int64       `json:"launched_at"`
	Deadline       *int64      `json:"deadline"`
	StateChangedAt int64       `json:"state_changed_at"`
}

// RawFundingStat is one day of the funding distribution.
type RawFundingStat struct {
	Date              int64       `json:"date"`
	CumulativePledged json.Number `json:"cumulative_pledged"`
	Pledged           json.Number `json:"pledged,omitempty"`
	BackersCount      int         `json:"backers_count,omitempty"`
}
