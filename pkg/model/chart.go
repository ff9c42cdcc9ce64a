package model

var chart = map[Type]Relations{
	Normal: {
		WeakTo:   NewTypeSet(Fighting),
		ImmuneTo: NewTypeSet(Ghost),
	},
	Fire: {
		WeakTo:      NewTypeSet(Water, Ground, Rock),
		ResistantTo: NewTypeSet(Fire, Grass, Ice, Bug, Steel, Fairy),
	},
	Water: {
		WeakTo:      NewTypeSet(Electric, Grass),
		ResistantTo: NewTypeSet(Fire, Water, Ice, Steel),
	},
	Electric: {
		WeakTo:      NewTypeSet(Ground),
		ResistantTo: NewTypeSet(Electric, Flying, Steel),
	},
	Grass: {
		WeakTo:      NewTypeSet(Fire, Ice, Poison, Flying),
		ResistantTo: NewTypeSet(Water, Electric, Grass, Ground),
	},
	Ice: {
		WeakTo:      NewTypeSet(Fire, Fighting, Rock, Steel),
		ResistantTo: NewTypeSet(Ice),
	},
	Fighting: {
		WeakTo:      NewTypeSet(Flying, Psychic, Fairy),
		ResistantTo: NewTypeSet(Bug, Rock, Dark),
	},
	Poison: {
		WeakTo:      NewTypeSet(Ground, Psychic),
		ResistantTo: NewTypeSet(Grass, Fighting, Poison, Bug, Fairy),
	},
	Ground: {
		WeakTo:      NewTypeSet(Water, Grass, Ice),
		ResistantTo: NewTypeSet(Poison, Rock),
		ImmuneTo:    NewTypeSet(Electric),
	},
	Flying: {
		WeakTo:      NewTypeSet(Electric, Ice, Rock),
		ResistantTo: NewTypeSet(Grass, Fighting, Bug),
		ImmuneTo:    NewTypeSet(Ground),
	},
	Psychic: {
		WeakTo:      NewTypeSet(Bug, Ghost, Dark),
		ResistantTo: NewTypeSet(Fighting, Psychic),
	},
	Bug: {
		WeakTo:      NewTypeSet(Fire, Flying, Rock),
		ResistantTo: NewTypeSet(Grass, Fighting, Ground),
	},
	Rock: {
		WeakTo:      NewTypeSet(Water, Grass, Fighting, Ground, Steel),
		ResistantTo: NewTypeSet(Normal, Fire, Poison, Flying),
	},
	Ghost: {
		WeakTo:      NewTypeSet(Ghost, Dark),
		ResistantTo: NewTypeSet(Poison, Bug),
		ImmuneTo:    NewTypeSet(Normal, Fighting),
	},
	Dragon: {
		WeakTo:      NewTypeSet(Ice, Dragon, Fairy),
		ResistantTo: NewTypeSet(Fire, Water, Electric, Grass),
	},
	Dark: {
		WeakTo:      NewTypeSet(Fighting, Bug, Fairy),
		ResistantTo: NewTypeSet(Ghost, Dark),
		ImmuneTo:    NewTypeSet(Psychic),
	},
	Steel: {
		WeakTo:      NewTypeSet(Fire, Fighting, Ground),
		ResistantTo: NewTypeSet(Normal, Grass, Ice, Flying, Psychic, Bug, Rock, Dragon, Steel, Fairy),
		ImmuneTo:    NewTypeSet(Poison),
	},
	Fairy: {
		WeakTo:      NewTypeSet(Poison, Steel),
		ResistantTo: NewTypeSet(Fighting, Bug, Dark),
		ImmuneTo:    NewTypeSet(Dragon),
	},
}
