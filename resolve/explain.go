package resolve

import (
	"github.com/teranos/glyphnote/notation"
	"github.com/teranos/glyphnote/table"
)

// Candidate is one scored table entry.
type Candidate struct {
	Entry  table.Entry `json:"entry"`
	Score  Score       `json:"score"`
	Winner bool        `json:"winner"`
}

// Explanation records how a notation was resolved.
type Explanation struct {
	Notation   string      `json:"notation"`
	Decoded    bool        `json:"decoded"`
	Name       string      `json:"name,omitempty"`
	Modifiers  []string    `json:"modifiers,omitempty"`
	Dropped    int         `json:"dropped,omitempty"`
	Defaults   []string    `json:"defaults,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

// Winner returns the chosen candidate, if any.
func (x Explanation) Winner() (Candidate, bool) {
	for _, c := range x.Candidates {
		if c.Winner {
			return c, true
		}
	}
	return Candidate{}, false
}

// Explain scores every candidate for s, in table order, and marks the one
// Resolve would pick. It allocates and is meant for diagnostics.
func (r *Resolver) Explain(s string) Explanation {
	x := Explanation{Notation: s, Defaults: r.defaults.Strings()}

	q, ok := notation.Decode(s)
	if !ok {
		return x
	}
	x.Decoded = true
	x.Name = q.Name
	x.Modifiers = q.Modifiers().Strings()
	x.Dropped = q.Dropped

	lo, hi := r.table.Candidates(q.Name)
	best := -1
	for i := lo; i < hi; i++ {
		c := Candidate{
			Entry: r.table.At(i),
			Score: ScoreAt(r.table, i, q.Modifiers(), r.defaults),
		}
		if best < 0 || x.Candidates[best].Score.Less(c.Score) {
			best = len(x.Candidates)
		}
		x.Candidates = append(x.Candidates, c)
	}
	if best >= 0 {
		x.Candidates[best].Winner = true
	}
	return x
}
