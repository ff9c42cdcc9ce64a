package model

import "strings"

// TypeSet is an immutable set of types backed by a bitmask.
type TypeSet uint32

func NewTypeSet(types ...Type) TypeSet {
	var s TypeSet
	for _, t := range types {
		s = s.With(t)
	}
	return s
}

func (s TypeSet) With(t Type) TypeSet {
	return s | 1<<t
}

func (s TypeSet) Has(t Type) bool {
	return s&(1<<t) != 0
}

func (s TypeSet) Intersects(other TypeSet) bool {
	return s&other != 0
}

func (s TypeSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Types lists the members in canonical order.
func (s TypeSet) Types() []Type {
	if s == 0 {
		return nil
	}

	types := make([]Type, 0, s.Len())
	for _, t := range TypeValues() {
		if s.Has(t) {
			types = append(types, t)
		}
	}
	return types
}

func (s TypeSet) String() string {
	types := s.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
