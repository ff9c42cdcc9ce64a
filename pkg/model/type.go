package model

//go:generate enumer -type=Type -text -output=type_enumer.go

// Type is one of the 18 elemental types. The constant order is the canonical
// catalog order used for iteration and display.
type Type uint8

const (
	Normal Type = iota
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy
)

const NumTypes = int(Fairy) + 1
