// Package sheet orchestrates the interpretation pipeline over one
// scanned page: systems are independent spatial partitions processed in
// parallel (bounded by Params.Workers), each one running the strictly
// sequential chain of evaluation, compound building, alter-sign repair
// and ledger scanning against its own nest and interpretation graph.
//
// Boundary sections shared by two adjacent systems are released
// serially before the parallel phase, so re-derivation never races on
// section ownership. A panic inside one system is recovered, logged
// with the run id, and reported; sibling systems are unaffected.
//
// Params carries every tunable as YAML (compound options, ledger
// options, the evaluation ceiling, worker count); LoadParams reads a
// partial file over DefaultParams.
//
// Errors:
//
//   - ErrNilSheet, ErrNilEvaluator, ErrNoSystems, ErrBadWorkers,
//     ErrBadMaxDoubt, plus the option errors of compound and ledger.
package sheet
