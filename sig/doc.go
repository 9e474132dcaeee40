// Package sig holds the per-partition symbol interpretation graph:
// committed (glyph, shape, grade) nodes, undirected cause-tagged
// exclusion edges between incompatible nodes, and the reduction that
// resolves each edge by deleting the weaker endpoint.
//
// Nodes are addressed by opaque InterID handles, never by object
// aliasing, so ownership and lifetime stay with the graph.
//
// What:
//
//   - Graph: AddInter, Get/Has/Len, FindInter (duplicate detection),
//     Inters/GoodInters queries, InsertExclusion, ReduceExclusions,
//     Remove.
//   - Inter: node with glyph, shape, grade and an optional details dump.
//   - Exclusion: normalized undirected edge (A < B) with a Cause.
//   - Mode: ModeStrict deletes the lower grade, ties delete the younger
//     node; ModeRelaxed keeps exact ties.
//
// Reduction is idempotent: edges whose endpoints are gone are skipped,
// so reducing an already-reduced set removes nothing. Deleting a node
// removes its incident exclusions.
//
// Concurrency: two RWMutexes split nodes from edges+adjacency, so the
// graph tolerates concurrent readers; ids come from an atomic counter.
//
// Complexity:
//
//   - AddInter / InsertExclusion / Remove: O(1) amortized
//     (Remove is O(deg) over incident edges).
//   - Inters / GoodInters: O(n log n) for the sorted snapshot.
//   - ReduceExclusions: O(e) over the given edges.
//
// Errors:
//
//   - ErrNilGlyph, ErrInterNotFound, ErrSelfExclusion.
package sig
