package model

import (
	"errors"
	"fmt"
)

// Relations is one row of the type chart: the attack types a defending type
// takes double, half and no damage from.
type Relations struct {
	WeakTo      TypeSet
	ResistantTo TypeSet
	ImmuneTo    TypeSet
}

// Catalog is an immutable type chart. It is safe for concurrent use.
type Catalog struct {
	rows [NumTypes]Relations
}

var (
	ErrUnknownType          = errors.New("unknown type")
	ErrMissingType          = errors.New("type chart has no row for type")
	ErrOverlappingRelations = errors.New("type relations overlap")
)

const allTypes = TypeSet(1<<NumTypes - 1)

func NewCatalog(rows map[Type]Relations) (*Catalog, error) {
	var c Catalog
	for t, rel := range rows {
		if !t.IsAType() {
			return nil, fmt.Errorf("invalid row %d: %w", t, ErrUnknownType)
		}

		for _, set := range []TypeSet{rel.WeakTo, rel.ResistantTo, rel.ImmuneTo} {
			if set&^allTypes != 0 {
				return nil, fmt.Errorf("row %s references types outside the chart: %w", t, ErrUnknownType)
			}
		}

		switch {
		case rel.WeakTo.Intersects(rel.ResistantTo):
			return nil, fmt.Errorf("%s is weak to and resists %s: %w",
				t, rel.WeakTo&rel.ResistantTo, ErrOverlappingRelations)
		case rel.WeakTo.Intersects(rel.ImmuneTo):
			return nil, fmt.Errorf("%s is weak and immune to %s: %w",
				t, rel.WeakTo&rel.ImmuneTo, ErrOverlappingRelations)
		case rel.ResistantTo.Intersects(rel.ImmuneTo):
			return nil, fmt.Errorf("%s resists and is immune to %s: %w",
				t, rel.ResistantTo&rel.ImmuneTo, ErrOverlappingRelations)
		}

		c.rows[t] = rel
	}

	for _, t := range TypeValues() {
		if _, ok := rows[t]; !ok {
			return nil, fmt.Errorf("%s: %w", t, ErrMissingType)
		}
	}

	return &c, nil
}

var defaultCatalog = func() *Catalog {
	c, err := NewCatalog(chart)
	if err != nil {
		panic(fmt.Sprintf("embedded type chart is invalid: %v", err))
	}
	return c
}()

// Default returns the embedded type chart.
func Default() *Catalog {
	return defaultCatalog
}

// Lookup resolves a type by its exact name, ignoring case.
func (c *Catalog) Lookup(name string) (Type, error) {
	t, err := TypeString(name)
	if err != nil {
		return 0, fmt.Errorf("invalid type %q: %w", name, ErrUnknownType)
	}
	return t, nil
}

// All returns the 18 types in canonical order.
func (c *Catalog) All() []Type {
	types := make([]Type, NumTypes)
	copy(types, TypeValues())
	return types
}

func (c *Catalog) Relations(t Type) (Relations, error) {
	if !t.IsAType() {
		return Relations{}, fmt.Errorf("%s: %w", t, ErrUnknownType)
	}
	return c.rows[t], nil
}

func (c *Catalog) validate(types []Type) error {
	for i, t := range types {
		if !t.IsAType() {
			return fmt.Errorf("attack type at index %d is %s: %w", i, t, ErrUnknownType)
		}
	}
	return nil
}
