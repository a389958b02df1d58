// Package greedy implements the three non-redistributive baselines CSTV is
// compared against: repeatedly take the best-scoring remaining project
// under a metric, fund it if it fits the remaining budget, and move on
// either way. Unlike cstv.Cstv, a rejected project's support is never
// transferred anywhere — it is simply dropped.
package greedy
