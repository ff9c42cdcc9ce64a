package model

// Multiplier returns the damage multiplier of attack against a single
// defending type. Immunity takes precedence over resistance, resistance over
// weakness.
func (c *Catalog) Multiplier(defender, attack Type) EfficacyLevel {
	rel := c.rows[defender]
	switch {
	case rel.ImmuneTo.Has(attack):
		return Immune
	case rel.ResistantTo.Has(attack):
		return NotVeryEffective
	case rel.WeakTo.Has(attack):
		return SuperEffective
	default:
		return NormalEffective
	}
}

// CombinedMultiplier returns the product of the multipliers of each type in
// the combination. Extra immunities are not considered.
func (c *Catalog) CombinedMultiplier(combo TypeCombo, attack Type) EfficacyLevel {
	lvl := c.Multiplier(combo.Type1, attack)
	if t2, ok := combo.Type2(); ok {
		lvl = lvl.combine(c.Multiplier(t2, attack))
	}
	return lvl
}

// IsResistantOrImmuneToAll reports whether every attack deals at most half
// damage to the combination. It is vacuously true for no attacks.
func (c *Catalog) IsResistantOrImmuneToAll(combo TypeCombo, attacks []Type) bool {
	for _, attack := range attacks {
		if c.CombinedMultiplier(combo, attack) > NotVeryEffective {
			return false
		}
	}
	return true
}

// IsWeakToAll reports whether every attack deals at least double damage to
// the combination. It is vacuously true for no attacks.
func (c *Catalog) IsWeakToAll(combo TypeCombo, attacks []Type) bool {
	for _, attack := range attacks {
		if c.CombinedMultiplier(combo, attack) < SuperEffective {
			return false
		}
	}
	return true
}

func (c *Catalog) DefendingEfficacies(combo TypeCombo) []TypeEfficacy {
	effs := make([]TypeEfficacy, NumTypes)
	for i, attack := range TypeValues() {
		effs[i] = TypeEfficacy{
			OpposingType: attack,
			Level:        c.CombinedMultiplier(combo, attack),
		}
	}
	return effs
}

func (c *Catalog) AttackingEfficacies(attack Type) []TypeEfficacy {
	effs := make([]TypeEfficacy, NumTypes)
	for i, defender := range TypeValues() {
		effs[i] = TypeEfficacy{
			OpposingType: defender,
			Level:        c.Multiplier(defender, attack),
		}
	}
	return effs
}

func (c *Catalog) filterEfficacies(combo TypeCombo, keep func(EfficacyLevel) bool) []TypeEfficacy {
	var effs []TypeEfficacy
	for _, te := range c.DefendingEfficacies(combo) {
		if keep(te.Level) {
			effs = append(effs, te)
		}
	}
	return effs
}

// Weaknesses lists the attack types dealing more than normal damage, in
// canonical order. It returns nil when there are none.
func (c *Catalog) Weaknesses(combo TypeCombo) []TypeEfficacy {
	return c.filterEfficacies(combo, EfficacyLevel.IsWeak)
}

func (c *Catalog) Resistances(combo TypeCombo) []TypeEfficacy {
	return c.filterEfficacies(combo, EfficacyLevel.IsResistant)
}

// DefensiveChart is DefendingEfficacies with the combination's extra
// immunities lowered to Immune.
func (c *Catalog) DefensiveChart(combo TypeCombo) []TypeEfficacy {
	effs := c.DefendingEfficacies(combo)
	extra := combo.ExtraImmunities()
	for i := range effs {
		if extra.Has(effs[i].OpposingType) {
			effs[i].Level = Immune
		}
	}
	return effs
}

// Immunities lists the attack types dealing no damage, including the
// combination's extra immunities.
func (c *Catalog) Immunities(combo TypeCombo) []TypeEfficacy {
	var effs []TypeEfficacy
	for _, te := range c.DefensiveChart(combo) {
		if te.Level.IsImmune() {
			effs = append(effs, te)
		}
	}
	return effs
}
