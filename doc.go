// Package cstv is the root of a cumulative support transfer voting engine:
// a participatory-budgeting decision procedure that repeatedly funds the
// best-supported project and redistributes the difference between what a
// project costs and what its donors gave it.
//
// The module is organized as:
//
//	ballot/        — projects, donors, and the donation ledger
//	numeric/       — exact-rational or float64 arithmetic, process-wide
//	selection/     — the three selection metrics (support, support/cost, excess)
//	eligibility/   — which candidates can still be funded this round
//	tiebreak/      — deterministic resolution when a metric ties
//	redistribute/  — excess redistribution, elimination with transfer, minimal transfer
//	postprocess/   — reverse elimination and acceptance of under-supported projects
//	greedy/        — the single-pass baseline the driver is compared against
//	cstv/          — the driver loop and its six predefined rule combinations
//	internal/      — logging, configuration, persistence, CLI, and HTTP/websocket server
//	cmd/cstv/      — the command-line entry point
//
// See https://arxiv.org/pdf/2009.02690 for the underlying algorithm.
package cstv
