package pokeapi

import (
	"fmt"

	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type Difference struct {
	Defender model.Type
	Attack   model.Type
	Want     model.EfficacyLevel
	Got      model.EfficacyLevel
}

func (diff Difference) String() string {
	return fmt.Sprintf("%s against %s: want %s, got %s", diff.Attack, diff.Defender, diff.Want, diff.Got)
}

// Diff compares every single-type multiplier of got against want, ordered
// by defender and then attack type.
func Diff(want, got *model.Catalog) []Difference {
	var diffs []Difference
	for _, defender := range want.All() {
		for _, attack := range want.All() {
			w := want.Multiplier(defender, attack)
			g := got.Multiplier(defender, attack)
			if w != g {
				diffs = append(diffs, Difference{
					Defender: defender,
					Attack:   attack,
					Want:     w,
					Got:      g,
				})
			}
		}
	}

	return diffs
}
