package game

type EffectType string

const (
	EffectWinded EffectType = "winded"
)

// Effect is a timed status condition. Durations are counted in move-points
// and decay as the simulation advances.
type Effect struct {
	Type           EffectType `json:"type"`
	MovesRemaining int        `json:"moves_remaining"`
}

// AddEffect applies the effect, or extends an existing one of the same kind
// if the new duration is longer.
func (c *Character) AddEffect(kind EffectType, durationMoves int) {
	if durationMoves <= 0 {
		return
	}
	for i := range c.effects {
		if c.effects[i].Type == kind {
			if durationMoves > c.effects[i].MovesRemaining {
				c.effects[i].MovesRemaining = durationMoves
			}
			return
		}
	}
	c.effects = append(c.effects, Effect{Type: kind, MovesRemaining: durationMoves})
}

func (c *Character) HasEffect(kind EffectType) bool {
	for _, effect := range c.effects {
		if effect.Type == kind {
			return true
		}
	}
	return false
}

func (c *Character) RemoveEffect(kind EffectType) {
	active := c.effects[:0]
	for _, effect := range c.effects {
		if effect.Type != kind {
			active = append(active, effect)
		}
	}
	c.effects = active
}

// TickEffects runs down effect durations by the elapsed move-points and drops
// anything that expires.
func (c *Character) TickEffects(moves int) {
	if moves <= 0 || len(c.effects) == 0 {
		return
	}

	active := c.effects[:0]
	for _, effect := range c.effects {
		effect.MovesRemaining -= moves
		if effect.MovesRemaining > 0 {
			active = append(active, effect)
		}
	}
	c.effects = active
}
