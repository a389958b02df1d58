// Package postprocess implements the two ways CSTV spends whatever budget
// is left over once its main loop terminates: reverse elimination, which
// walks the elimination history backwards accepting whatever still fits,
// and acceptance of under-supported projects, which repeatedly accepts the
// best-scoring eliminated project that still fits the remaining budget.
package postprocess
