package resolve

import "fmt"

// Score ranks one candidate against a query. Candidates compare by
// (Matching, -Total, Default) lexicographically: more requested modifiers
// matched first, then fewer modifiers overall, then more default modifiers.
type Score struct {
	Matching int // candidate modifiers the query asked for
	Total    int // candidate modifiers overall
	Default  int // candidate modifiers in the default set
}

// Less reports whether s ranks strictly below o.
func (s Score) Less(o Score) bool {
	if s.Matching != o.Matching {
		return s.Matching < o.Matching
	}
	if s.Total != o.Total {
		return s.Total > o.Total
	}
	return s.Default < o.Default
}

func (s Score) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Matching, -s.Total, s.Default)
}
