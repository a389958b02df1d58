package redistribute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/redistribute"
	"github.com/pbvote/cstv/selection"
	"github.com/pbvote/cstv/tiebreak"
)

func buildInstance(t *testing.T, names []string, costs []int64) (*ballot.Instance, map[string]ballot.ProjectID) {
	t.Helper()
	projects := make([]ballot.Project, len(names))
	for i, n := range names {
		p, err := ballot.NewProject(n, numeric.NewInt(costs[i]))
		require.NoError(t, err)
		projects[i] = p
	}
	inst, err := ballot.NewInstance(projects, numeric.NewInt(1000))
	require.NoError(t, err)

	ids := make(map[string]ballot.ProjectID, len(names))
	for _, n := range names {
		id, _ := inst.ByName(n)
		ids[n] = id
	}
	return inst, ids
}

func TestExcessRedistributionSplitsLeftoverProportionally(t *testing.T) {
	inst, id := buildInstance(t, []string{"A", "B", "C"}, []int64{10, 5, 5})

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{
			id["A"]: numeric.NewInt(8), id["B"]: numeric.NewInt(2), id["C"]: numeric.NewInt(2),
		}),
	}

	redistribute.ExcessRedistribution(donations, inst, id["A"], numeric.Zero)

	d := donations[0]
	assert.False(t, d.Has(id["A"]))
	// cost=10, support=8, and no donor is trapped, so cost stays 10 and
	// support stays 8; both are positive, so gamma is recomputed as 10/8.
	// to_distribute = 8*(1-10/8) = -2, split 1:1 across B and C (total=4).
	assert.True(t, numeric.Equal(d.Get(id["B"]), numeric.NewFloat(2+(-2)*0.5)))
	assert.True(t, numeric.Equal(d.Get(id["C"]), numeric.NewFloat(2+(-2)*0.5)))
}

func TestExcessRedistributionSkipsTrappedDonor(t *testing.T) {
	inst, id := buildInstance(t, []string{"A", "B"}, []int64{10, 5})

	trapped := ballot.NewDonation(map[ballot.ProjectID]numeric.Number{id["A"]: numeric.NewInt(4)})
	mixed := ballot.NewDonation(map[ballot.ProjectID]numeric.Number{id["A"]: numeric.NewInt(6), id["B"]: numeric.NewInt(3)})
	donations := []*ballot.Donation{trapped, mixed}

	redistribute.ExcessRedistribution(donations, inst, id["A"], numeric.Zero)

	assert.False(t, trapped.Has(id["A"]))
	assert.True(t, trapped.Total().IsZero())
	assert.False(t, mixed.Has(id["A"]))
}

func TestEliminationWithTransferRemovesWorstAndRefunds(t *testing.T) {
	inst, id := buildInstance(t, []string{"A", "B"}, []int64{100, 100})

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{id["A"]: numeric.NewInt(1), id["B"]: numeric.NewInt(9)}),
	}
	candidates := []ballot.ProjectID{id["A"], id["B"]}
	var eliminated []ballot.ProjectID

	ok := redistribute.EliminationWithTransfer(&candidates, donations, &eliminated, inst, selection.GS, tiebreak.Default)
	require.True(t, ok)

	assert.Equal(t, []ballot.ProjectID{id["A"]}, eliminated)
	assert.Equal(t, []ballot.ProjectID{id["B"]}, candidates)
	assert.True(t, numeric.Equal(donations[0].Get(id["B"]), numeric.NewInt(10)))
	assert.False(t, donations[0].Has(id["A"]))
}

func TestEliminationWithTransferEmptyCandidates(t *testing.T) {
	inst, _ := buildInstance(t, []string{"A"}, []int64{10})
	var candidates []ballot.ProjectID
	var eliminated []ballot.ProjectID
	ok := redistribute.EliminationWithTransfer(&candidates, nil, &eliminated, inst, selection.GS, tiebreak.Default)
	assert.False(t, ok)
}

func TestMinimalTransferFundsSelectedProjectExactly(t *testing.T) {
	inst, id := buildInstance(t, []string{"A", "B"}, []int64{10, 100})

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{id["A"]: numeric.NewInt(4), id["B"]: numeric.NewInt(6)}),
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{id["A"]: numeric.NewInt(4), id["B"]: numeric.NewInt(6)}),
	}
	candidates := []ballot.ProjectID{id["A"], id["B"]}
	var eliminated []ballot.ProjectID

	ok := redistribute.MinimalTransfer(&candidates, donations, &eliminated, inst, selection.GS, tiebreak.Default)
	require.True(t, ok)

	total := numeric.Zero
	for _, d := range donations {
		total = numeric.Add(total, d.Get(id["A"]))
	}
	assert.True(t, numeric.Equal(total, numeric.NewInt(10)))
}

func TestMinimalTransferPrunesUnreachableCandidate(t *testing.T) {
	inst, id := buildInstance(t, []string{"A", "B"}, []int64{1000, 10})

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{id["A"]: numeric.NewInt(5), id["B"]: numeric.NewInt(5)}),
	}
	candidates := []ballot.ProjectID{id["A"], id["B"]}
	var eliminated []ballot.ProjectID

	ok := redistribute.MinimalTransfer(&candidates, donations, &eliminated, inst, selection.GS, tiebreak.Default)
	require.True(t, ok)

	assert.Contains(t, eliminated, id["A"])
	assert.NotContains(t, candidates, id["A"])
}
