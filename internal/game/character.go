package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/appengine-ltd/stride/internal/balance"
)

const defaultCapacityGrams = 30000

type CharacterConfig struct {
	Name          string
	Seed          int64
	StaminaMax    int // 0 uses PLAYER_MAX_STAMINA
	CapacityGrams int // 0 uses the default carry capacity
	CarriedGrams  int
	Traits        []TraitType
	Worn          []WornItem
}

func (c CharacterConfig) Validate() error {
	if c.StaminaMax < 0 {
		return fmt.Errorf("stamina max must not be negative, got %d", c.StaminaMax)
	}
	if c.CapacityGrams < 0 {
		return fmt.Errorf("weight capacity must not be negative, got %d", c.CapacityGrams)
	}
	if c.CarriedGrams < 0 {
		return fmt.Errorf("carried weight must not be negative, got %d", c.CarriedGrams)
	}
	for _, trait := range c.Traits {
		if !trait.IsValid() {
			return fmt.Errorf("unknown trait: %s", trait)
		}
	}
	return nil
}

// Character is one simulated person's exertion state. A character is updated
// by a single logical thread of control per tick; no locking.
type Character struct {
	Name string

	tuning Tuning
	rng    *rand.Rand

	stamina    int
	staminaMax int
	mode       MoveMode
	pain       int

	traits       map[TraitType]bool
	effects      []Effect
	worn         []WornItem
	carriedGrams int
	capacity     int
}

func NewCharacter(cfg CharacterConfig, opts *balance.Options) (*Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tuning, err := TuningFromOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("resolve tuning: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	staminaMax := cfg.StaminaMax
	if staminaMax == 0 {
		staminaMax = tuning.MaxStamina
	}
	capacity := cfg.CapacityGrams
	if capacity == 0 {
		capacity = defaultCapacityGrams
	}

	character := &Character{
		Name:         cfg.Name,
		tuning:       tuning,
		rng:          seededRNG(cfg.Seed),
		stamina:      staminaMax,
		staminaMax:   staminaMax,
		mode:         ModeWalk,
		traits:       make(map[TraitType]bool),
		carriedGrams: cfg.CarriedGrams,
		capacity:     capacity,
	}

	for _, trait := range cfg.Traits {
		character.traits[trait] = true
	}
	for _, item := range cfg.Worn {
		character.Wear(item)
	}

	return character, nil
}

func (c *Character) Stamina() int    { return c.stamina }
func (c *Character) StaminaMax() int { return c.staminaMax }
func (c *Character) Pain() int       { return c.pain }

// SetStamina overwrites the stamina value directly, clamped to range. Meant
// for explicit game actions (rest, respawn); per-tick changes go through
// ModStamina.
func (c *Character) SetStamina(value int) {
	c.stamina = clamp(value, 0, c.staminaMax)
}

func (c *Character) StaminaRatio() float64 {
	return float64(c.stamina) / float64(c.staminaMax)
}

func (c *Character) MoveMode() MoveMode { return c.mode }

func (c *Character) SetMoveMode(mode MoveMode) {
	switch mode {
	case ModeWalk, ModeRun, ModeCrouch:
		c.mode = mode
	}
}

// CarriedWeightGrams is loose load plus everything worn.
func (c *Character) CarriedWeightGrams() int {
	total := c.carriedGrams
	for _, item := range c.worn {
		total += item.WeightGrams
	}
	return total
}

func (c *Character) WeightCapacityGrams() int { return c.capacity }

func (c *Character) SetCarriedGrams(grams int) {
	if grams >= 0 {
		c.carriedGrams = grams
	}
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}
