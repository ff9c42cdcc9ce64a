package model

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func comboStrings(combos []TypeCombo) []string {
	strs := make([]string, len(combos))
	for i, combo := range combos {
		strs[i] = combo.String()
	}
	return strs
}

func containsCombo(combos []TypeCombo, want string) bool {
	for _, combo := range combos {
		if combo.String() == want {
			return true
		}
	}
	return false
}

func TestFindAllResistantCombinations(t *testing.T) {
	tests := []struct {
		name      string
		attacks   []Type
		wantLen   int
		wantFirst []string
	}{
		{
			name:    "fire",
			attacks: []Type{Fire},
			wantLen: 50,
			wantFirst: []string{
				"Fire", "Water", "Rock", "Dragon",
				"Normal & Dragon", "Normal & Rock", "Normal & Water", "Normal & Fire",
				"Fire & Fairy", "Fire & Dark", "Fire & Dragon", "Fire & Ghost",
			},
		},
		{
			name:    "fire water",
			attacks: []Type{Fire, Water},
			wantLen: 21,
			wantFirst: []string{
				"Water", "Dragon",
				"Normal & Dragon", "Normal & Water",
				"Water & Fairy", "Water & Dark", "Water & Dragon", "Water & Ghost",
				"Water & Psychic", "Water & Flying", "Water & Poison", "Water & Fighting",
				"Water & Electric",
				"Electric & Dragon", "Fighting & Dragon", "Poison & Dragon", "Flying & Dragon",
				"Psychic & Dragon", "Ghost & Dragon", "Dragon & Fairy", "Dragon & Dark",
			},
		},
		{
			name:    "normal",
			attacks: []Type{Normal},
			wantLen: 51,
			wantFirst: []string{
				"Rock", "Ghost", "Steel",
				"Normal & Steel", "Normal & Ghost", "Normal & Rock",
				"Fire & Steel", "Fire & Ghost", "Fire & Rock",
			},
		},
		{
			name:      "no combination resists",
			attacks:   []Type{Normal, Fighting, Ghost, Dark},
			wantLen:   0,
			wantFirst: []string{},
		},
		{
			name:      "every type",
			attacks:   TypeValues(),
			wantLen:   0,
			wantFirst: []string{},
		},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FindAllResistantCombinations(tt.attacks)
			if err != nil {
				t.Fatalf("FindAllResistantCombinations(%v) error = %v", tt.attacks, err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("FindAllResistantCombinations(%v) returned %d combinations, want %d:\n%s",
					tt.attacks, len(got), tt.wantLen, strings.Join(comboStrings(got), "\n"))
			}

			first := comboStrings(got[:len(tt.wantFirst)])
			if !reflect.DeepEqual(first, tt.wantFirst) {
				t.Errorf("FindAllResistantCombinations(%v) starts with %v, want %v", tt.attacks, first, tt.wantFirst)
			}

			for _, combo := range got {
				if !c.IsResistantOrImmuneToAll(combo, tt.attacks) {
					t.Errorf("%s does not resist all of %v", combo, tt.attacks)
				}
			}
		})
	}
}

func TestFindAllSinglesBeforePairs(t *testing.T) {
	got, err := Default().FindAllResistantCombinations([]Type{Ground})
	if err != nil {
		t.Fatalf("FindAllResistantCombinations() error = %v", err)
	}

	seenDual := false
	for _, combo := range got {
		if combo.IsDual() {
			seenDual = true
		} else if seenDual {
			t.Fatalf("single type %s listed after a dual type", combo)
		}
	}
}

func TestNormalMatchesChartRows(t *testing.T) {
	c := Default()
	got, err := c.FindAllResistantCombinations([]Type{Normal})
	if err != nil {
		t.Fatalf("FindAllResistantCombinations() error = %v", err)
	}

	var want []string
	for _, typ := range c.All() {
		rel, _ := c.Relations(typ)
		if rel.ResistantTo.Has(Normal) || rel.ImmuneTo.Has(Normal) {
			want = append(want, typ.String())
		}
	}

	var singles []string
	for _, combo := range got {
		if !combo.IsDual() {
			singles = append(singles, combo.String())
		}
	}
	if !reflect.DeepEqual(singles, want) {
		t.Errorf("single types resisting Normal = %v, want %v", singles, want)
	}
}

func TestFireWaterByHand(t *testing.T) {
	c := Default()
	attacks := []Type{Fire, Water}
	got, err := c.FindAllResistantCombinations(attacks)
	if err != nil {
		t.Fatalf("FindAllResistantCombinations() error = %v", err)
	}

	dragon := SingleType(Dragon)
	if c.CombinedMultiplier(dragon, Fire) != NotVeryEffective || c.CombinedMultiplier(dragon, Water) != NotVeryEffective {
		t.Fatalf("Dragon should take 0.5x from Fire and Water")
	}
	if !containsCombo(got, "Dragon") {
		t.Error("Dragon missing from results")
	}

	// Water & Dragon: 0.5 * 0.5 against both.
	waterDragon := DualType(Water, Dragon)
	for _, attack := range attacks {
		if lvl := c.CombinedMultiplier(waterDragon, attack); lvl != DoubleNotVeryEffective {
			t.Errorf("CombinedMultiplier(%s, %s) = %s, want 0.25x", waterDragon, attack, lvl)
		}
	}
	if !containsCombo(got, "Water & Dragon") {
		t.Error("Water & Dragon missing from results")
	}

	// Fire & Rock: 0.5 * 0.5 against Fire but 2 * 2 against Water.
	if lvl := c.CombinedMultiplier(DualType(Fire, Rock), Water); lvl != DoubleSuperEffective {
		t.Errorf("CombinedMultiplier(Fire & Rock, Water) = %s, want 4x", lvl)
	}
	if containsCombo(got, "Fire & Rock") {
		t.Error("Fire & Rock should not resist Water")
	}
}

func TestFindAllIsDeterministic(t *testing.T) {
	c := Default()
	attacks := []Type{Electric, Ice, Poison}
	first, err := c.FindAllResistantCombinations(attacks)
	if err != nil {
		t.Fatalf("FindAllResistantCombinations() error = %v", err)
	}
	second, err := c.FindAllResistantCombinations(attacks)
	if err != nil {
		t.Fatalf("FindAllResistantCombinations() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between runs:\n%v\n%v", comboStrings(first), comboStrings(second))
	}
}

// Pairs built from types that survive the weakness filter are searched
// exhaustively.
func TestFindAllMatchesBruteForceOverCandidates(t *testing.T) {
	c := Default()
	for _, attack := range c.All() {
		attacks := []Type{attack}
		got, err := c.FindAllResistantCombinations(attacks)
		if err != nil {
			t.Fatalf("FindAllResistantCombinations(%s) error = %v", attack, err)
		}

		candidates := NewTypeSet(c.candidates(attacks)...)
		want := 0
		for _, a := range c.All() {
			for _, b := range c.All() {
				if b < a || !candidates.Has(a) || !candidates.Has(b) {
					continue
				}
				if c.IsResistantOrImmuneToAll(DualType(a, b), attacks) {
					want++
				}
			}
		}
		if len(got) != want {
			t.Errorf("FindAllResistantCombinations(%s) returned %d, brute force over candidates found %d", attack, len(got), want)
		}
	}
}

// Types weak to every attack are dropped before pairing, so a pair whose
// partner is immune to the attack is never reported.
func TestPruningMissesImmunePartner(t *testing.T) {
	c := Default()
	attacks := []Type{Ground}
	got, err := c.FindAllResistantCombinations(attacks)
	if err != nil {
		t.Fatalf("FindAllResistantCombinations() error = %v", err)
	}

	fireFlying := DualType(Fire, Flying)
	if !c.IsResistantOrImmuneToAll(fireFlying, attacks) {
		t.Fatalf("%s should be immune to Ground", fireFlying)
	}
	for _, missing := range []string{"Fire & Flying", "Electric & Flying", "Poison & Flying", "Flying & Rock", "Flying & Steel", "Rock & Flying", "Steel & Flying"} {
		if containsCombo(got, missing) {
			t.Errorf("%s found, but types weak to Ground are pruned before pairing", missing)
		}
	}
	if len(got) != 36 {
		t.Errorf("FindAllResistantCombinations(Ground) returned %d combinations, want 36", len(got))
	}
}

func TestPruningMissesImmunePartnerForSeveralAttacks(t *testing.T) {
	attacks := []Type{Fire, Water, Grass}
	c := syntheticCatalog(t, map[Type]Relations{
		Normal: {WeakTo: NewTypeSet(attacks...)},
		Ghost:  {ImmuneTo: NewTypeSet(attacks...)},
	})

	got, err := c.FindAllResistantCombinations(attacks)
	if err != nil {
		t.Fatalf("FindAllResistantCombinations() error = %v", err)
	}

	normalGhost := DualType(Normal, Ghost)
	if !c.IsResistantOrImmuneToAll(normalGhost, attacks) {
		t.Fatalf("%s should be immune to %v", normalGhost, attacks)
	}
	if containsCombo(got, normalGhost.String()) {
		t.Errorf("%s found, but Normal is weak to every attack and pruned before pairing", normalGhost)
	}
	for _, want := range []string{"Ghost", "Fire & Ghost", "Ghost & Fairy"} {
		if !containsCombo(got, want) {
			t.Errorf("FindAllResistantCombinations(%v) is missing %s", attacks, want)
		}
	}
}

// syntheticCatalog makes every type weak to Fire except the given rows.
func syntheticCatalog(t *testing.T, rows map[Type]Relations) *Catalog {
	t.Helper()
	chart := fullChart()
	for _, typ := range TypeValues() {
		chart[typ] = Relations{WeakTo: NewTypeSet(Fire)}
	}
	for typ, rel := range rows {
		chart[typ] = rel
	}

	c, err := NewCatalog(chart)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

func TestFindAllSmallCandidateSets(t *testing.T) {
	tests := []struct {
		name string
		rows map[Type]Relations
		want []string
	}{
		{
			name: "no candidates",
			rows: nil,
			want: []string{},
		},
		{
			name: "one resistant candidate",
			rows: map[Type]Relations{Water: {ResistantTo: NewTypeSet(Fire)}},
			want: []string{"Water"},
		},
		{
			name: "one neutral candidate",
			rows: map[Type]Relations{Water: {}},
			want: []string{},
		},
		{
			name: "two candidates form a pair",
			rows: map[Type]Relations{
				Water:  {ResistantTo: NewTypeSet(Fire)},
				Dragon: {},
			},
			want: []string{"Water & Dragon"},
		},
		{
			// Only the pair is tested, so the resistant single type is not
			// reported on its own.
			name: "two candidates skip single types",
			rows: map[Type]Relations{
				Water:  {ResistantTo: NewTypeSet(Fire)},
				Dragon: {ResistantTo: NewTypeSet(Fire)},
			},
			want: []string{"Water & Dragon"},
		},
		{
			name: "two neutral candidates",
			rows: map[Type]Relations{
				Water:  {},
				Dragon: {},
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := syntheticCatalog(t, tt.rows)
			got, err := c.FindAllResistantCombinations([]Type{Fire})
			if err != nil {
				t.Fatalf("FindAllResistantCombinations() error = %v", err)
			}
			if strs := comboStrings(got); !reflect.DeepEqual(strs, tt.want) {
				t.Errorf("FindAllResistantCombinations() = %v, want %v", strs, tt.want)
			}
		})
	}
}

func TestFindAllInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		attacks []Type
		wantErr error
	}{
		{"nil", nil, ErrNoAttackTypes},
		{"empty", []Type{}, ErrNoAttackTypes},
		{"unresolved", []Type{Fire, Type(NumTypes + 3)}, ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default().FindAllResistantCombinations(tt.attacks)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FindAllResistantCombinations(%v) error = %v, want %v", tt.attacks, err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("FindAllResistantCombinations(%v) = %v, want nil", tt.attacks, got)
			}
		})
	}
}
