// Package compound merges adjacent weak glyph candidates into stronger
// compounds, accepting a merge only when the shape classifier scores it
// better than its parts, and repairs mis-segmented alteration signs
// built from close stem pairs.
//
// The building policy is a value, not a subclass: an Adapter bundles the
// neighbor-search margins, the suitability predicate and the validity
// test of one use case. BasicAdapter is the partition-wide default;
// the alter repairer is a second, specialized use of the same machinery.
//
// What:
//
//   - Builder.TryCompound: seed-and-grow merge around one seed, no
//     environment impact until the caller registers the result.
//   - Builder.RetrieveCompounds: partition-wide pass, heaviest seeds
//     first, each seed trying only the remaining smaller candidates.
//   - Builder.EvaluateGlyphs / InspectGlyphs: the standard evaluate,
//     purge, compound, re-evaluate sequence.
//   - Repairer.Repair: close-stem pair scan with the sharp-sign rebuild
//     and explicit rollback on failure. The natural-sign band is a
//     deliberate stub that always rolls back.
//
// Acceptance rules worth remembering:
//
//   - A compound replacing an already classified seed needs a doubt
//     strictly better than the seed's prior doubt.
//   - A voted shape that was forbidden on the same pixels' earlier
//     incarnation is rejected despite the vote.
//
// Complexity:
//
//   - TryCompound: O(s) over the suitable candidates.
//   - RetrieveCompounds: O(n²) worst case over suitable glyphs,
//     O(n log n) typical (sorted seeds, early consumption).
//   - Repair: O(k²) worst case over short stems, bounded by the sorted
//     abscissa break.
//
// Errors:
//
//   - ErrNilNest, ErrNilEvaluator, ErrBadOptions.
package compound
