// Package fundingprogress derives every value the funding dashboard cell
// shows from a project snapshot and its cumulative pledge series.
//
// A ViewModel has one input, Configure, and a fixed set of output signals.
// Each Configure call emits exactly one value on every output before it
// returns, so a caller can inspect recorded outputs immediately after.
// Configure is not safe for concurrent use.
package fundingprogress

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fundburn/internal/format"
	"github.com/theirongolddev/fundburn/internal/i18n"
	"github.com/theirongolddev/fundburn/internal/model"
	"github.com/theirongolddev/fundburn/internal/signal"
)

// Formatter renders the raw project values.
type Formatter interface {
	Currency(amount decimal.Decimal, country model.Country) string
	Integer(n int) string
	Date(t time.Time) string
	Duration(deadline time.Time) format.Duration
}

// Localizer resolves a catalog key into a localized string.
type Localizer interface {
	Sprintf(key string, args ...any) string
}

// Outputs are the derived streams a presentation layer binds to.
type Outputs struct {
	BackersText               *signal.Signal[string]
	CellAccessibilityValue    *signal.Signal[string]
	DeadlineDateText          *signal.Signal[string]
	GoalText                  *signal.Signal[string]
	GraphData                 *signal.Signal[model.GraphData]
	LaunchDateText            *signal.Signal[string]
	PledgedText               *signal.Signal[string]
	TimeRemainingSubtitleText *signal.Signal[string]
	TimeRemainingTitleText    *signal.Signal[string]
}

// ViewModel is the funding progress transformer.
type ViewModel struct {
	formatter Formatter
	loc       Localizer
	tickCount int
	logger    *slog.Logger
	out       Outputs
}

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithTickCount sets how many gridline intervals the y-axis is split into.
func WithTickCount(n int) Option {
	return func(vm *ViewModel) {
		if n > 0 {
			vm.tickCount = n
		}
	}
}

// WithLogger sets the logger configuration events are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(vm *ViewModel) {
		if l != nil {
			vm.logger = l
		}
	}
}

// New returns a ViewModel that formats through f and localizes through loc.
func New(f Formatter, loc Localizer, opts ...Option) *ViewModel {
	vm := &ViewModel{
		formatter: f,
		loc:       loc,
		tickCount: DefaultTickCount,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		out: Outputs{
			BackersText:               signal.New[string](),
			CellAccessibilityValue:    signal.New[string](),
			DeadlineDateText:          signal.New[string](),
			GoalText:                  signal.New[string](),
			GraphData:                 signal.New[model.GraphData](),
			LaunchDateText:            signal.New[string](),
			PledgedText:               signal.New[string](),
			TimeRemainingSubtitleText: signal.New[string](),
			TimeRemainingTitleText:    signal.New[string](),
		},
	}
	for _, o := range opts {
		o(vm)
	}
	return vm
}

// Outputs returns the output signals.
func (vm *ViewModel) Outputs() Outputs {
	return vm.out
}

// Configure derives and emits every output for project and its funding
// series. The project must have a deadline; Configure panics otherwise.
func (vm *ViewModel) Configure(stats []model.FundingDateStat, project model.Project) {
	if !project.HasDeadline() {
		panic(fmt.Sprintf("fundingprogress: project %d has no deadline", project.ID))
	}

	// Derive everything first so a formatter fault emits nothing.
	d := vm.derive(stats, project)

	vm.logger.Debug("funding progress configured",
		"project_id", project.ID,
		"state", string(project.State),
		"samples", len(stats),
		"y_axis_tick_size", d.graph.YAxisTickSize,
	)

	vm.out.BackersText.Emit(d.backers)
	vm.out.GoalText.Emit(d.goal)
	vm.out.PledgedText.Emit(d.pledged)
	vm.out.DeadlineDateText.Emit(d.deadlineDate)
	vm.out.LaunchDateText.Emit(d.launchDate)
	vm.out.TimeRemainingTitleText.Emit(d.remaining.Magnitude)
	vm.out.TimeRemainingSubtitleText.Emit(d.remaining.Unit)
	vm.out.CellAccessibilityValue.Emit(d.accessibility)
	vm.out.GraphData.Emit(d.graph)
}

type derived struct {
	backers       string
	goal          string
	pledged       string
	deadlineDate  string
	launchDate    string
	remaining     format.Duration
	accessibility string
	graph         model.GraphData
}

func (vm *ViewModel) derive(stats []model.FundingDateStat, project model.Project) derived {
	country := project.Country
	pledged := vm.formatter.Currency(project.Stats.Pledged, country)
	goal := vm.formatter.Currency(project.Stats.Goal, country)
	remaining := vm.formatter.Duration(project.Dates.Deadline)

	return derived{
		backers:       vm.formatter.Integer(project.Stats.BackersCount),
		goal:          vm.loc.Sprintf(i18n.KeyGoalText, goal),
		pledged:       pledged,
		deadlineDate:  vm.formatter.Date(project.Dates.Deadline),
		launchDate:    vm.formatter.Date(project.Dates.LaunchedAt),
		remaining:     remaining,
		accessibility: vm.accessibilityValue(project, pledged, goal, remaining),
		graph:         vm.graphData(stats, project),
	}
}

func (vm *ViewModel) accessibilityValue(project model.Project, pledged, goal string, remaining format.Duration) string {
	key := i18n.KeyNonLiveStatValue
	if project.State.IsLive() {
		key = i18n.KeyLiveStatValue
	}
	return vm.loc.Sprintf(key,
		pledged,
		goal,
		strconv.Itoa(project.Stats.BackersCount),
		remaining.Phrase(),
	)
}

func (vm *ViewModel) graphData(stats []model.FundingDateStat, project model.Project) model.GraphData {
	// Own copy: the caller may reuse its slice after Configure returns.
	series := make([]model.FundingDateStat, len(stats))
	copy(series, stats)

	return model.GraphData{
		Project:       project,
		Stats:         series,
		YAxisTickSize: YAxisTickSize(model.MaxCumulativePledged(series), vm.tickCount),
	}
}
