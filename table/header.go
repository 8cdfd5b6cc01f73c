package table

import "strconv"

// Header is one cell of a header row.
type Header[T any] struct {
	ID     string
	Column *Column[T]
	Depth  int

	// ColSpan is the number of leaf columns the header covers.
	ColSpan int

	// IsPlaceholder marks the empty slot above a leaf column that sits
	// shallower than the deepest group.
	IsPlaceholder bool
}

// Render returns the header text; placeholders render empty.
func (h Header[T]) Render() string {
	if h.IsPlaceholder {
		return ""
	}
	if h.Column.def.Header != "" {
		return h.Column.def.Header
	}
	return h.Column.def.ID
}

// HeaderGroup is one header row.
type HeaderGroup[T any] struct {
	ID      string
	Depth   int
	Headers []Header[T]
}

// HeaderGroups returns the header rows, top to bottom. A table without
// grouped columns has exactly one.
func (t *Table[T]) HeaderGroups() []HeaderGroup[T] {
	maxDepth := 0
	for _, leaf := range t.leaves {
		maxDepth = max(maxDepth, leaf.depth)
	}

	groups := make([]HeaderGroup[T], 0, maxDepth+1)
	for depth := 0; depth <= maxDepth; depth++ {
		g := HeaderGroup[T]{ID: strconv.Itoa(depth), Depth: depth}
		for _, col := range t.columns {
			g.Headers = appendHeaders(g.Headers, col, depth, maxDepth)
		}
		groups = append(groups, g)
	}
	return groups
}

func appendHeaders[T any](dst []Header[T], col *Column[T], depth, maxDepth int) []Header[T] {
	id := strconv.Itoa(depth) + "_" + col.ID()
	switch {
	case col.IsGroup() && col.depth == depth:
		return append(dst, Header[T]{ID: id, Column: col, Depth: depth, ColSpan: len(col.leaves)})
	case col.IsGroup():
		for _, kid := range col.kids {
			dst = appendHeaders(dst, kid, depth, maxDepth)
		}
		return dst
	case depth == maxDepth:
		return append(dst, Header[T]{ID: id, Column: col, Depth: depth, ColSpan: 1})
	default:
		return append(dst, Header[T]{ID: id + "_placeholder", Column: col, Depth: depth, ColSpan: 1, IsPlaceholder: true})
	}
}
