package model

import (
	"errors"
	"fmt"
)

var ErrNoAttackTypes = errors.New("no attack types given")

// FindAllResistantCombinations returns every single and dual type combination
// that resists or is immune to all of the given attack types. Single types
// come first in canonical order, followed by pairs ordered by the first
// member ascending and the second member descending. An empty result means
// no combination matches.
//
// Types weak to every attack are dropped before pairing. A pair made of such
// a type and a partner immune to those attacks is therefore never reported,
// even though its combined multiplier would qualify.
func (c *Catalog) FindAllResistantCombinations(attacks []Type) ([]TypeCombo, error) {
	if len(attacks) == 0 {
		return nil, ErrNoAttackTypes
	}
	err := c.validate(attacks)
	if err != nil {
		return nil, fmt.Errorf("invalid attack types: %w", err)
	}

	candidates := c.candidates(attacks)
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return c.matching(attacks, SingleType(candidates[0])), nil
	case 2:
		return c.matching(attacks, DualType(candidates[0], candidates[1])), nil
	default:
		return c.search(candidates, attacks), nil
	}
}

func (c *Catalog) candidates(attacks []Type) []Type {
	candidates := make([]Type, 0, NumTypes)
	for _, t := range TypeValues() {
		if !c.IsWeakToAll(SingleType(t), attacks) {
			candidates = append(candidates, t)
		}
	}
	return candidates
}

func (c *Catalog) matching(attacks []Type, combo TypeCombo) []TypeCombo {
	if c.IsResistantOrImmuneToAll(combo, attacks) {
		return []TypeCombo{combo}
	}
	return nil
}

func (c *Catalog) search(candidates []Type, attacks []Type) []TypeCombo {
	var combos []TypeCombo
	for _, t := range candidates {
		combos = append(combos, c.matching(attacks, SingleType(t))...)
	}

	n := len(candidates)
	for i := 0; i < n; i++ {
		for j := n - 1; j > i; j-- {
			combos = append(combos, c.matching(attacks, DualType(candidates[i], candidates[j]))...)
		}
	}

	return combos
}
