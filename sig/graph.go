package sig

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/stave/glyph"
)

// Graph is the per-partition interpretation graph: Inter nodes plus
// Exclusion edges, with a reduction operation that removes losing nodes.
//
// muInter guards the node map; muExcl guards edges and adjacency, so
// concurrent readers of one side do not contend with writers of the
// other. Handles come from an atomic counter and are never reused.
type Graph struct {
	muInter sync.RWMutex
	muExcl  sync.RWMutex

	nextID atomic.Int64

	inters map[InterID]*Inter

	// adjacency[a][b] = adjacency[b][a] = the undirected edge between them.
	exclusions map[[2]InterID]*Exclusion
	adjacency  map[InterID]map[InterID]*Exclusion
}

// NewGraph creates an empty interpretation graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		inters:     make(map[InterID]*Inter),
		exclusions: make(map[[2]InterID]*Exclusion),
		adjacency:  make(map[InterID]map[InterID]*Exclusion),
	}
}

// AddInter registers a (glyph, shape, grade) interpretation and reports
// its node. Duplicate (glyph, shape) pairs are permitted; callers that
// treat them as anomalies detect them beforehand with FindInter.
func (g *Graph) AddInter(gl *glyph.Glyph, shape glyph.Shape, grade float64, details string) (*Inter, error) {
	if gl == nil {
		return nil, ErrNilGlyph
	}

	in := &Inter{
		ID:      InterID(g.nextID.Add(1)),
		Glyph:   gl,
		Shape:   shape,
		Grade:   grade,
		Details: details,
	}

	g.muInter.Lock()
	g.inters[in.ID] = in
	g.muInter.Unlock()

	return in, nil
}

// Get reports the interpretation behind a handle.
func (g *Graph) Get(id InterID) (*Inter, bool) {
	g.muInter.RLock()
	defer g.muInter.RUnlock()

	in, ok := g.inters[id]

	return in, ok
}

// Has reports whether the handle is still part of the graph.
func (g *Graph) Has(id InterID) bool {
	g.muInter.RLock()
	defer g.muInter.RUnlock()

	_, ok := g.inters[id]

	return ok
}

// Len reports the number of live interpretations.
func (g *Graph) Len() int {
	g.muInter.RLock()
	defer g.muInter.RUnlock()

	return len(g.inters)
}

// ExclusionCount reports the number of live exclusion edges.
func (g *Graph) ExclusionCount() int {
	g.muExcl.RLock()
	defer g.muExcl.RUnlock()

	return len(g.exclusions)
}

// FindInter reports a live interpretation of the given glyph id and
// shape, if any. With duplicates, the oldest wins.
func (g *Graph) FindInter(glyphID int, shape glyph.Shape) (*Inter, bool) {
	g.muInter.RLock()
	defer g.muInter.RUnlock()

	var best *Inter
	for _, in := range g.inters {
		if in.Glyph.ID() != glyphID || in.Shape != shape {
			continue
		}
		if best == nil || in.ID < best.ID {
			best = in
		}
	}

	return best, best != nil
}

// Inters reports the live interpretations matching pred (nil matches
// all), sorted by handle for reproducibility.
func (g *Graph) Inters(pred func(*Inter) bool) []*Inter {
	g.muInter.RLock()
	defer g.muInter.RUnlock()

	out := make([]*Inter, 0, len(g.inters))
	for _, in := range g.inters {
		if pred == nil || pred(in) {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// GoodInters reports the live interpretations of the given shape whose
// grade reaches GoodGrade, sorted by abscissa (ties by handle).
func (g *Graph) GoodInters(shape glyph.Shape) []*Inter {
	out := g.Inters(func(in *Inter) bool {
		return in.Shape == shape && in.Grade >= GoodGrade
	})
	sort.Slice(out, func(i, j int) bool {
		bi, bj := out[i].Bounds().Min.X, out[j].Bounds().Min.X
		if bi != bj {
			return bi < bj
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// InsertExclusion records the undirected, cause-tagged edge between a
// and b. Insertion is symmetric and idempotent: the same pair always
// yields the same edge, whatever the argument order.
func (g *Graph) InsertExclusion(a, b InterID, cause Cause) (*Exclusion, error) {
	if a == b {
		return nil, ErrSelfExclusion
	}
	if !g.Has(a) || !g.Has(b) {
		return nil, ErrInterNotFound
	}
	if b < a {
		a, b = b, a
	}

	g.muExcl.Lock()
	defer g.muExcl.Unlock()

	key := [2]InterID{a, b}
	if ex, ok := g.exclusions[key]; ok {
		return ex, nil
	}

	ex := &Exclusion{A: a, B: b, Cause: cause}
	g.exclusions[key] = ex
	g.link(a, b, ex)
	g.link(b, a, ex)

	return ex, nil
}

func (g *Graph) link(from, to InterID, ex *Exclusion) {
	m, ok := g.adjacency[from]
	if !ok {
		m = make(map[InterID]*Exclusion)
		g.adjacency[from] = m
	}
	m[to] = ex
}

// ReduceExclusions resolves the given edges under the chosen mode and
// reports the interpretations deleted from the graph, in edge order.
// Edges whose endpoints are already gone are skipped, so running a
// reduction twice over the same set removes nothing further.
//
// Callers must drop the returned nodes from their own bookkeeping: a
// reduced interpretation must never reach a downstream reference table.
func (g *Graph) ReduceExclusions(mode Mode, edges []*Exclusion) []*Inter {
	var deleted []*Inter
	for _, ex := range edges {
		if ex == nil {
			continue
		}

		// 1) Both endpoints must still be alive for a contest.
		a, okA := g.Get(ex.A)
		b, okB := g.Get(ex.B)
		if !okA || !okB {
			continue
		}

		// 2) Pick the loser: lower grade; on an exact tie, strict mode
		//    removes the younger node, relaxed mode keeps both.
		var loser *Inter
		switch {
		case a.Grade < b.Grade:
			loser = a
		case b.Grade < a.Grade:
			loser = b
		case mode == ModeStrict:
			loser = b // b is younger: A < B by construction
		default:
			continue
		}

		// 3) Remove the loser and its incident edges.
		if g.Remove(loser.ID) {
			deleted = append(deleted, loser)
		}
	}

	return deleted
}

// Remove deletes an interpretation and every exclusion incident to it.
// Reports false when the handle is already gone.
func (g *Graph) Remove(id InterID) bool {
	g.muInter.Lock()
	_, ok := g.inters[id]
	if ok {
		delete(g.inters, id)
	}
	g.muInter.Unlock()
	if !ok {
		return false
	}

	g.muExcl.Lock()
	for other := range g.adjacency[id] {
		delete(g.adjacency[other], id)
		if len(g.adjacency[other]) == 0 {
			delete(g.adjacency, other)
		}
		key := [2]InterID{id, other}
		if other < id {
			key = [2]InterID{other, id}
		}
		delete(g.exclusions, key)
	}
	delete(g.adjacency, id)
	g.muExcl.Unlock()

	return true
}
