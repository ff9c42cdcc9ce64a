package generate

import (
	"math/rand"
	"testing"
)

func TestCombo(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	var singles, duals int
	for i := 0; i < 2000; i++ {
		combo := Combo(r)
		if !combo.Type1.IsAType() {
			t.Fatalf("Combo() first type %v is not a chart type", combo.Type1)
		}

		t2, ok := combo.Type2()
		if !ok {
			singles++
			continue
		}
		duals++
		if !t2.IsAType() {
			t.Fatalf("Combo() second type %v is not a chart type", t2)
		}
		if t2 == combo.Type1 {
			t.Fatalf("Combo() = %v, repeats a type", combo)
		}
	}

	if singles == 0 || duals == 0 {
		t.Errorf("Combo() produced %d singles and %d duals, want both", singles, duals)
	}
}
