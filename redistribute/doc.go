// Package redistribute implements the three ways CSTV moves endowment
// between projects within each donor's vector: excess redistribution after
// a project is funded with support to spare, plain support transfer after a
// project is eliminated, and the iterative minimal-transfer lift used by
// the MT/MTC/MTS combinations in place of elimination. ExcessRedistribution
// acts on the project it is given; EliminationWithTransfer and
// MinimalTransfer choose their own target with selection.Select and the
// supplied tie-breaker.
package redistribute
