package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MarchLeg is one stretch of a march: a gait held for a number of turns,
// optionally with a change of loose load, or a rest stop.
type MarchLeg struct {
	Mode         string `yaml:"mode"`
	Turns        int    `yaml:"turns"`
	Rest         bool   `yaml:"rest"`
	CarriedGrams int    `yaml:"carried_grams"`
}

type MarchPlan struct {
	Name string     `yaml:"name"`
	Legs []MarchLeg `yaml:"legs"`
}

func (p MarchPlan) Validate() error {
	if len(p.Legs) == 0 {
		return fmt.Errorf("march plan has no legs")
	}
	for i, leg := range p.Legs {
		if leg.Turns <= 0 {
			return fmt.Errorf("leg %d: turns must be positive, got %d", i+1, leg.Turns)
		}
		if leg.CarriedGrams < 0 {
			return fmt.Errorf("leg %d: carried weight must not be negative", i+1)
		}
		if leg.Rest {
			continue
		}
		if _, err := ParseMoveMode(leg.Mode); err != nil {
			return fmt.Errorf("leg %d: %w", i+1, err)
		}
	}
	return nil
}

func LoadMarchPlan(path string) (MarchPlan, error) {
	var plan MarchPlan
	raw, err := os.ReadFile(path)
	if err != nil {
		return plan, fmt.Errorf("read march plan: %w", err)
	}
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return plan, fmt.Errorf("parse march plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return plan, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// TurnReport is one turn's worth of exertion state, as seen after the turn
// has resolved.
type TurnReport struct {
	Turn     int
	Mode     MoveMode
	Resting  bool
	Stamina  int
	Pain     int
	Winded   bool
	MoveCost float64
}

// RunMarch drives the character through the plan one turn at a time. Moving
// turns burn stamina; every turn regenerates and runs down effect durations.
func RunMarch(c *Character, plan MarchPlan) ([]TurnReport, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	var reports []TurnReport
	turn := 0

	for _, leg := range plan.Legs {
		if leg.CarriedGrams > 0 {
			c.SetCarriedGrams(leg.CarriedGrams)
		}
		if !leg.Rest {
			mode, err := ParseMoveMode(leg.Mode)
			if err != nil {
				return reports, err
			}
			c.SetMoveMode(mode)
		}

		for i := 0; i < leg.Turns; i++ {
			turn++
			moves := c.tuning.MovesPerTurn
			if !leg.Rest {
				c.BurnMoveStamina(moves)
			}
			c.UpdateStamina(moves)
			c.TickEffects(moves)

			reports = append(reports, TurnReport{
				Turn:     turn,
				Mode:     c.MoveMode(),
				Resting:  leg.Rest,
				Stamina:  c.Stamina(),
				Pain:     c.Pain(),
				Winded:   c.HasEffect(EffectWinded),
				MoveCost: c.MoveCostModifier(),
			})
		}
	}

	return reports, nil
}
