package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/greedy"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/tiebreak"
)

func TestGSFundsBestFirstUntilBudgetExhausted(t *testing.T) {
	a, _ := ballot.NewProject("A", numeric.NewInt(10))
	b, _ := ballot.NewProject("B", numeric.NewInt(10))
	c, _ := ballot.NewProject("C", numeric.NewInt(10))
	inst, err := ballot.NewInstance([]ballot.Project{a, b, c}, numeric.NewInt(20))
	require.NoError(t, err)

	aID, _ := inst.ByName("A")
	bID, _ := inst.ByName("B")
	cID, _ := inst.ByName("C")

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{aID: numeric.NewInt(3), bID: numeric.NewInt(2), cID: numeric.NewInt(1)}),
	}

	got := greedy.GS(inst, donations, tiebreak.Default)
	assert.Equal(t, []ballot.ProjectID{aID, bID}, got)
}

func TestGSCPrefersCheaperAtEqualSupport(t *testing.T) {
	a, _ := ballot.NewProject("A", numeric.NewInt(5))
	b, _ := ballot.NewProject("B", numeric.NewInt(50))
	inst, err := ballot.NewInstance([]ballot.Project{a, b}, numeric.NewInt(5))
	require.NoError(t, err)

	aID, _ := inst.ByName("A")
	bID, _ := inst.ByName("B")

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{aID: numeric.NewInt(5), bID: numeric.NewInt(5)}),
	}

	got := greedy.GSC(inst, donations, tiebreak.Default)
	assert.Equal(t, []ballot.ProjectID{aID}, got)
}

func TestGreedyNeverRedistributesRejectedSupport(t *testing.T) {
	a, _ := ballot.NewProject("A", numeric.NewInt(100))
	b, _ := ballot.NewProject("B", numeric.NewInt(5))
	inst, err := ballot.NewInstance([]ballot.Project{a, b}, numeric.NewInt(5))
	require.NoError(t, err)

	aID, _ := inst.ByName("A")
	bID, _ := inst.ByName("B")

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{aID: numeric.NewInt(10), bID: numeric.NewInt(1)}),
	}

	got := greedy.GS(inst, donations, tiebreak.Default)
	assert.Equal(t, []ballot.ProjectID{bID}, got)
	// A's rejected support (10) never lands on B: B is funded purely by its
	// own original 1, not 1+10.
	assert.True(t, numeric.Equal(donations[0].Get(bID), numeric.NewInt(1)))
}
