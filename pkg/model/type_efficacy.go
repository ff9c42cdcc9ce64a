package model

import (
	"fmt"
	"strconv"
)

// EfficacyLevel is a damage multiplier expressed in percent.
type EfficacyLevel int

const (
	DoubleSuperEffective   EfficacyLevel = 400
	SuperEffective         EfficacyLevel = 200
	NormalEffective        EfficacyLevel = 100
	NotVeryEffective       EfficacyLevel = 50
	DoubleNotVeryEffective EfficacyLevel = 25
	Immune                 EfficacyLevel = 0
)

// combine applies the multiplicative law of dual typing.
func (lvl EfficacyLevel) combine(other EfficacyLevel) EfficacyLevel {
	return lvl * other / NormalEffective
}

func (lvl EfficacyLevel) Multiplier() float64 {
	return float64(lvl) / float64(NormalEffective)
}

func (lvl EfficacyLevel) IsWeak() bool {
	return lvl > NormalEffective
}

func (lvl EfficacyLevel) IsResistant() bool {
	return lvl > Immune && lvl < NormalEffective
}

func (lvl EfficacyLevel) IsImmune() bool {
	return lvl == Immune
}

func (lvl EfficacyLevel) String() string {
	return strconv.FormatFloat(lvl.Multiplier(), 'g', -1, 64) + "x"
}

// TypeEfficacy pairs an opposing type with the multiplier between it and the
// type combination or attack type it was computed for.
type TypeEfficacy struct {
	OpposingType Type
	Level        EfficacyLevel
}

func (te TypeEfficacy) String() string {
	return fmt.Sprintf("%s (%s)", te.OpposingType, te.Level)
}

// GroupByLevel buckets efficacies by level, keeping their order within each
// bucket.
func GroupByLevel(effs []TypeEfficacy) map[EfficacyLevel][]Type {
	groups := make(map[EfficacyLevel][]Type)
	for _, te := range effs {
		groups[te.Level] = append(groups[te.Level], te.OpposingType)
	}
	return groups
}
