package cstv

import (
	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/postprocess"
	"github.com/pbvote/cstv/redistribute"
	"github.com/pbvote/cstv/selection"
	"github.com/pbvote/cstv/tiebreak"
)

// Combination names one of the six predefined procedure sets. Each pairs a
// selection metric with a fallback (elimination or minimal transfer) and
// the postprocess pass that matches it.
type Combination int

const (
	// EWT funds by greedy-by-excess, falls back to elimination with
	// transfer, and postprocesses with reverse elimination.
	EWT Combination = iota + 1
	// EWTC funds by greedy-by-support-over-cost, falls back to elimination
	// with transfer, and postprocesses with reverse elimination.
	EWTC
	// EWTS funds by greedy-by-support, falls back to elimination with
	// transfer, and postprocesses with reverse elimination.
	EWTS
	// MT funds by greedy-by-excess, falls back to minimal transfer, and
	// postprocesses by accepting under-supported projects.
	MT
	// MTC funds by greedy-by-support-over-cost, falls back to minimal
	// transfer, and postprocesses by accepting under-supported projects.
	MTC
	// MTS funds by greedy-by-support, falls back to minimal transfer, and
	// postprocesses by accepting under-supported projects.
	MTS
)

// String renders the combination's short name.
func (c Combination) String() string {
	switch c {
	case EWT:
		return "EWT"
	case EWTC:
		return "EWTC"
	case EWTS:
		return "EWTS"
	case MT:
		return "MT"
	case MTC:
		return "MTC"
	case MTS:
		return "MTS"
	default:
		return "unknown"
	}
}

// ParseCombination maps a combination's short name (as printed by String)
// back onto its Combination value.
func ParseCombination(name string) (Combination, error) {
	switch name {
	case "EWT":
		return EWT, nil
	case "EWTC":
		return EWTC, nil
	case "EWTS":
		return EWTS, nil
	case "MT":
		return MT, nil
	case "MTC":
		return MTC, nil
	case "MTS":
		return MTS, nil
	default:
		return 0, ErrInvalidCombination
	}
}

// NoEligibleFunc is the shape shared by the elimination-with-transfer and
// minimal-transfer fallbacks: given the current candidate set, mutate it
// (and the eliminated accumulator) to make progress, and report whether it
// did.
type NoEligibleFunc func(
	candidates *[]ballot.ProjectID,
	donations []*ballot.Donation,
	eliminated *[]ballot.ProjectID,
	instance *ballot.Instance,
	metric selection.Metric,
	tb tiebreak.TieBreaker,
) bool

// PostprocessFunc is the shape shared by reverse elimination and
// acceptance of under-supported projects: spend whatever budget remains
// against the eliminated list, returning what's left.
type PostprocessFunc func(
	selected *[]ballot.ProjectID,
	donations []*ballot.Donation,
	instance *ballot.Instance,
	eliminated []ballot.ProjectID,
	metric selection.Metric,
	tb tiebreak.TieBreaker,
	budget numeric.Number,
) numeric.Number

func reverseEliminationAdapter(
	selected *[]ballot.ProjectID,
	_ []*ballot.Donation,
	instance *ballot.Instance,
	eliminated []ballot.ProjectID,
	_ selection.Metric,
	_ tiebreak.TieBreaker,
	budget numeric.Number,
) numeric.Number {
	return postprocess.ReverseElimination(selected, instance, eliminated, budget)
}

func acceptUnderSupportedAdapter(
	selected *[]ballot.ProjectID,
	donations []*ballot.Donation,
	instance *ballot.Instance,
	eliminated []ballot.ProjectID,
	metric selection.Metric,
	tb tiebreak.TieBreaker,
	budget numeric.Number,
) numeric.Number {
	return postprocess.AcceptUnderSupported(selected, donations, instance, eliminated, metric, tb, budget)
}

// resolve maps a Combination onto its concrete metric, fallback, and
// postprocess procedures. It returns ErrInvalidCombination for anything
// outside the six named values.
func (c Combination) resolve() (selection.Metric, NoEligibleFunc, PostprocessFunc, error) {
	switch c {
	case EWT:
		return selection.GE, redistribute.EliminationWithTransfer, reverseEliminationAdapter, nil
	case EWTC:
		return selection.GSC, redistribute.EliminationWithTransfer, reverseEliminationAdapter, nil
	case EWTS:
		return selection.GS, redistribute.EliminationWithTransfer, reverseEliminationAdapter, nil
	case MT:
		return selection.GE, redistribute.MinimalTransfer, acceptUnderSupportedAdapter, nil
	case MTC:
		return selection.GSC, redistribute.MinimalTransfer, acceptUnderSupportedAdapter, nil
	case MTS:
		return selection.GS, redistribute.MinimalTransfer, acceptUnderSupportedAdapter, nil
	default:
		return nil, nil, nil, ErrInvalidCombination
	}
}
