package game

// BodyRegion is a coarse body location for worn gear. The stamina model only
// reads the mouth region, but worn items describe all of their coverage.
type BodyRegion string

const (
	RegionHead  BodyRegion = "head"
	RegionEyes  BodyRegion = "eyes"
	RegionMouth BodyRegion = "mouth"
	RegionTorso BodyRegion = "torso"
	RegionArms  BodyRegion = "arms"
	RegionHands BodyRegion = "hands"
	RegionLegs  BodyRegion = "legs"
	RegionFeet  BodyRegion = "feet"
)

type WornItem struct {
	Name        string             `yaml:"name"`
	WeightGrams int                `yaml:"weight_grams"`
	Encumbrance map[BodyRegion]int `yaml:"encumbrance"`
}

func (c *Character) Wear(item WornItem) {
	c.worn = append(c.worn, item)
}

// TakeOff removes the first worn item with the given name.
func (c *Character) TakeOff(name string) bool {
	for i, item := range c.worn {
		if item.Name == name {
			c.worn = append(c.worn[:i], c.worn[i+1:]...)
			return true
		}
	}
	return false
}

// EncumbranceAt sums worn encumbrance over one region. Layered items bind on
// each other: every piece past the first covering a region counts double, so
// two 10-point scarves come to 30.
func (c *Character) EncumbranceAt(region BodyRegion) int {
	total := 0
	covered := false
	for _, item := range c.worn {
		points := item.Encumbrance[region]
		if points <= 0 {
			continue
		}
		if covered {
			points *= 2
		}
		covered = true
		total += points
	}
	return total
}
