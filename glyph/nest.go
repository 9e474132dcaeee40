package glyph

import (
	"image"
	"sort"
	"sync"
)

// Nest is the per-partition glyph registry: id allocation, section
// ownership, and the section-signature index used to recognize a
// compound that duplicates a previously seen glyph.
//
// A Nest is safe for concurrent reads; registration and purging are
// serialized internally. Section ownership writes ride on the same lock,
// so all mutation within one partition must stay on one goroutine (the
// partition is the failure and concurrency isolation unit).
type Nest struct {
	mu     sync.RWMutex
	nextID int
	glyphs map[int]*Glyph
	bySig  map[string]*Glyph
}

// NewNest creates an empty registry.
func NewNest() *Nest {
	return &Nest{
		glyphs: make(map[int]*Glyph),
		bySig:  make(map[string]*Glyph),
	}
}

// Register commits g into the nest: the glyph gets an id (if new), its
// sections change ownership to it (deactivating any prior owner), and
// its signature is indexed. When a glyph with the same signature was
// registered before, that original is revived and returned instead, so
// its history (forbidden shapes, manual flag) is preserved.
func (n *Nest) Register(g *Glyph) (*Glyph, error) {
	if g == nil {
		return nil, ErrNilGlyph
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if orig, ok := n.bySig[g.Signature()]; ok {
		n.glyphs[orig.id] = orig // revive if it had been purged
		n.claim(orig)

		return orig, nil
	}

	if g.id == 0 {
		n.nextID++
		g.id = n.nextID
	}
	n.glyphs[g.id] = g
	n.bySig[g.Signature()] = g
	n.claim(g)

	return g, nil
}

// claim points every member section at g. Caller holds the lock.
func (n *Nest) claim(g *Glyph) {
	for _, s := range g.sections {
		s.owner = g.id
	}
}

// BuildCompound assembles one glyph from the sections of all parts.
// The compound is unregistered and has no environment impact: parts
// stay active until the compound is accepted and registered.
func (n *Nest) BuildCompound(parts []*Glyph) (*Glyph, error) {
	var sections []*Section
	for _, p := range parts {
		if p == nil {
			return nil, ErrNilGlyph
		}
		sections = append(sections, p.sections...)
	}

	return Assemble(sections...)
}

// Original reports the previously registered glyph sharing g's section
// signature, if any other than g itself. Used to honor forbidden shapes
// recorded on an earlier incarnation of the same pixels.
func (n *Nest) Original(g *Glyph) (*Glyph, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	orig, ok := n.bySig[g.Signature()]
	if !ok || orig == g {
		return nil, false
	}

	return orig, true
}

// Glyphs reports a snapshot of the registered glyphs, sorted by id.
func (n *Nest) Glyphs() []*Glyph {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*Glyph, 0, len(n.glyphs))
	for _, g := range n.glyphs {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// GlyphsIn reports the active glyphs whose bounds intersect box,
// sorted by id.
func (n *Nest) GlyphsIn(box image.Rectangle) []*Glyph {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []*Glyph
	for _, g := range n.glyphs {
		if g.IsActive() && g.bounds.Overlaps(box) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// PurgeInactive drops glyphs whose sections moved to another owner.
// The signature index keeps them so Original lookups still work.
// Reports the number of glyphs removed.
func (n *Nest) PurgeInactive() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	removed := 0
	for id, g := range n.glyphs {
		if !g.IsActive() {
			delete(n.glyphs, id)
			removed++
		}
	}

	return removed
}

// Len reports the number of currently registered glyphs.
func (n *Nest) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.glyphs)
}
