// Package generate produces random type combinations. It is deliberately kept
// apart from the deterministic chart search in package model.
package generate

import (
	"math/rand"

	"github.com/tbc02/pokecalc-plus/pkg/model"
)

// Combo returns a single type half of the time and two distinct types
// otherwise.
func Combo(r *rand.Rand) model.TypeCombo {
	types := model.TypeValues()
	t1 := types[r.Intn(len(types))]
	if r.Intn(2) == 0 {
		return model.SingleType(t1)
	}

	t2 := types[r.Intn(len(types)-1)]
	if t2 >= t1 {
		t2++
	}
	return model.DualType(t1, t2)
}
