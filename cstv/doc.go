// Package cstv implements the Cumulative Support Transfer Voting budgeting
// rule: iteratively fund the most eligible project under a chosen metric,
// redistribute whatever excess support it attracted (or reset it to zero
// if there wasn't any to speak of), and — whenever the eligible set runs
// dry before every project has been considered — fall back to either
// eliminating or minimally funding a candidate so the loop can keep
// making progress. A postprocess pass spends whatever budget is left once
// every project has been either funded or exhausted.
//
// See https://arxiv.org/pdf/2009.02690 sections 4 and 5 for the rule this
// package implements.
package cstv
