package model

import "fmt"

// TypeCombo is a defending combination of one or two distinct types. The zero
// value is a single Normal type.
type TypeCombo struct {
	Type1 Type
	type2 Type
	dual  bool

	extraImmunities TypeSet
}

func SingleType(t Type) TypeCombo {
	return TypeCombo{Type1: t}
}

// DualType builds a combination of two types, collapsing to a single type
// when both are equal. The order is kept for display.
func DualType(t1, t2 Type) TypeCombo {
	if t1 == t2 {
		return SingleType(t1)
	}
	return TypeCombo{Type1: t1, type2: t2, dual: true}
}

// WithExtraImmunities returns a copy of the combination that is also immune
// to the given attack types for reasons outside the type chart, such as
// abilities. Extra immunities only show up in Immunities.
func (combo TypeCombo) WithExtraImmunities(types ...Type) TypeCombo {
	combo.extraImmunities |= NewTypeSet(types...)
	return combo
}

func (combo TypeCombo) ExtraImmunities() TypeSet {
	return combo.extraImmunities
}

func (combo TypeCombo) Type2() (Type, bool) {
	return combo.type2, combo.dual
}

func (combo TypeCombo) IsDual() bool {
	return combo.dual
}

func (combo TypeCombo) Types() []Type {
	if combo.dual {
		return []Type{combo.Type1, combo.type2}
	}
	return []Type{combo.Type1}
}

func (combo TypeCombo) String() string {
	if combo.dual {
		return fmt.Sprintf("%s & %s", combo.Type1, combo.type2)
	}
	return combo.Type1.String()
}
