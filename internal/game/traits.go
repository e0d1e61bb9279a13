package game

type TraitType string

const (
	TraitBadBack TraitType = "bad_back"
)

func (t TraitType) IsValid() bool {
	switch t {
	case TraitBadBack:
		return true
	default:
		return false
	}
}

func (c *Character) HasTrait(trait TraitType) bool {
	return c.traits[trait]
}

func (c *Character) AddTrait(trait TraitType) {
	if trait.IsValid() {
		c.traits[trait] = true
	}
}

func (c *Character) RemoveTrait(trait TraitType) {
	delete(c.traits, trait)
}
