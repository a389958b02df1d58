package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbvote/cstv/ballot"
	"github.com/pbvote/cstv/eligibility"
	"github.com/pbvote/cstv/numeric"
)

func TestEligible(t *testing.T) {
	a, _ := ballot.NewProject("A", numeric.NewInt(10))
	b, _ := ballot.NewProject("B", numeric.NewInt(10))
	inst, err := ballot.NewInstance([]ballot.Project{a, b}, numeric.NewInt(100))
	require.NoError(t, err)

	aID, _ := inst.ByName("A")
	bID, _ := inst.ByName("B")

	donations := []*ballot.Donation{
		ballot.NewDonation(map[ballot.ProjectID]numeric.Number{aID: numeric.NewInt(10), bID: numeric.NewInt(5)}),
	}

	got := eligibility.Eligible(inst.IDs(), donations, inst)
	require.Len(t, got, 1)
	assert.Equal(t, aID, got[0])
}

func TestEligibleNoneWhenZero(t *testing.T) {
	a, _ := ballot.NewProject("A", numeric.NewInt(10))
	inst, err := ballot.NewInstance([]ballot.Project{a}, numeric.NewInt(100))
	require.NoError(t, err)

	donations := []*ballot.Donation{ballot.NewDonation(nil)}
	got := eligibility.Eligible(inst.IDs(), donations, inst)
	assert.Empty(t, got)
}
