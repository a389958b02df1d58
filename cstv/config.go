package cstv

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/eligibility"
	"github.com/pbvote/cstv/selection"
	"github.com/pbvote/cstv/tiebreak"
)

// EligibleFunc narrows a candidate set down to the ones currently fundable.
type EligibleFunc func(candidates []ballot.ProjectID, donations []*ballot.Donation, instance *ballot.Instance) []ballot.ProjectID

// TraceFunc receives a line of driver narration on every notable state
// transition. It is called synchronously; a nil TraceFunc (the default)
// means the driver stays silent.
type TraceFunc func(line string)

// config holds the fully-resolved set of procedures and knobs the driver
// runs with. It is built by applying Options over the defaults
// (tiebreak.Default, resolute), then either a Combination or a full
// explicit set of procedures.
type config struct {
	metric              selection.Metric
	eligible            EligibleFunc
	noEligible          NoEligibleFunc
	postprocess         PostprocessFunc
	initialAllocation   []ballot.ProjectID
	tieBreaker          tiebreak.TieBreaker
	resoluteness        bool
	trace               TraceFunc
}

// Option configures a Cstv run. Options compose: apply a Combination for
// the common case, then layer overrides (a different tie-breaker, an
// initial allocation, a trace hook) on top.
type Option func(*config)

// WithCombination selects one of the six predefined procedure sets.
func WithCombination(c Combination) Option {
	return func(cfg *config) {
		metric, noEligible, post, err := c.resolve()
		if err != nil {
			return
		}
		cfg.metric = metric
		cfg.noEligible = noEligible
		cfg.postprocess = post
		cfg.eligible = eligibility.Eligible
	}
}

// WithSelect overrides the funding-selection metric.
func WithSelect(metric selection.Metric) Option {
	return func(cfg *config) { cfg.metric = metric }
}

// WithEligible overrides the eligibility predicate.
func WithEligible(fn EligibleFunc) Option {
	return func(cfg *config) { cfg.eligible = fn }
}

// WithNoEligible overrides the no-eligible-projects fallback procedure.
func WithNoEligible(fn NoEligibleFunc) Option {
	return func(cfg *config) { cfg.noEligible = fn }
}

// WithPostprocess overrides the exhaustiveness postprocess procedure.
func WithPostprocess(fn PostprocessFunc) Option {
	return func(cfg *config) { cfg.postprocess = fn }
}

// WithInitialAllocation seeds the selected set before the driver loop
// starts; it is typically empty.
func WithInitialAllocation(ids []ballot.ProjectID) Option {
	return func(cfg *config) { cfg.initialAllocation = append([]ballot.ProjectID(nil), ids...) }
}

// WithTieBreaker overrides the tie-breaking rule. Defaults to
// tiebreak.Default (lexicographic by name).
func WithTieBreaker(tb tiebreak.TieBreaker) Option {
	return func(cfg *config) { cfg.tieBreaker = tb }
}

// WithResoluteness toggles resolute output. Only true is supported; false
// makes Cstv return ErrUnsupported.
func WithResoluteness(resolute bool) Option {
	return func(cfg *config) { cfg.resoluteness = resolute }
}

// WithTrace installs a narration hook the driver calls at each notable
// state transition (budget checked, project funded, fallback invoked,
// postprocess entered).
func WithTrace(fn TraceFunc) Option {
	return func(cfg *config) { cfg.trace = fn }
}

func newConfig(opts []Option) config {
	cfg := config{tieBreaker: tiebreak.Default, resoluteness: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg config) validate() error {
	if !cfg.resoluteness {
		return ErrUnsupported
	}
	if cfg.metric == nil || cfg.eligible == nil || cfg.noEligible == nil || cfg.postprocess == nil {
		return ErrInvalidConfiguration
	}
	return nil
}
