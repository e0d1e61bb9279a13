package game

import "math"

// StaminaMoveCostModifier maps gait and remaining stamina to a move-cost
// multiplier. Full-stamina baselines are run 2.0, walk 1.0, crouch 0.5; each
// decays linearly to half its baseline at zero stamina.
func StaminaMoveCostModifier(mode MoveMode, staminaRatio float64) float64 {
	modifier := (clampRatio(staminaRatio) + 1) / 2
	switch mode {
	case ModeRun:
		modifier *= 2.0
	case ModeCrouch:
		modifier *= 0.5
	}
	return modifier
}

// MoveCostModifier snapshots the character's current mode and stamina.
func (c *Character) MoveCostModifier() float64 {
	return StaminaMoveCostModifier(c.mode, c.StaminaRatio())
}

// ModStamina is the only writer of the stamina field. The value is clamped to
// [0, max]; a decrease that overshoots below zero leaves the character winded.
// Draining exactly to zero does not. Gains never raise or clear winded.
func (c *Character) ModStamina(delta int) {
	overshoot := delta < 0 && c.stamina+delta < 0
	c.stamina = clamp(c.stamina+delta, 0, c.staminaMax)
	if overshoot {
		c.AddEffect(EffectWinded, c.tuning.WindedDurationMoves)
	}
}

// BurnMoveStamina spends stamina for moving over the given move-points.
// The per-turn rate is the base burn rate plus one for every percent carried
// over capacity, then multiplied up for running or halved for crouching.
// Moving overburdened risks pain once the character is spent, or always with
// a bad back.
func (c *Character) BurnMoveStamina(moves int) {
	if moves <= 0 {
		return
	}

	carried := c.CarriedWeightGrams()
	capacity := c.WeightCapacityGrams()

	overburdenPct := 0
	if capacity > 0 && carried > capacity {
		overburdenPct = (carried - capacity) * 100 / capacity
	}

	rate := c.tuning.BurnRate + overburdenPct
	switch c.mode {
	case ModeRun:
		rate *= c.tuning.RunBurnMult
	case ModeCrouch:
		rate /= c.tuning.CrouchBurnDivisor
	}

	c.ModStamina(-(moves * rate / c.tuning.MovesPerTurn))

	if carried > capacity && (c.HasTrait(TraitBadBack) || c.stamina == 0) {
		if oneIn(c.rng, c.overburdenPainOdds(carried, capacity)) {
			c.pain += c.tuning.PainAmount
		}
	}
}

// overburdenPainOdds returns the n of a 1-in-n pain roll. With the default
// tuning the odds run from 1 in 25 at 100% load down to a certainty at 350%,
// linear in n.
func (c *Character) overburdenPainOdds(carried, capacity int) int {
	if capacity <= 0 {
		return 1
	}
	return c.tuning.PainOddsBase - c.tuning.PainOddsSlope*carried/capacity
}

// UpdateStamina regenerates stamina for the elapsed move-points. Being winded
// throttles the base rate, mouth encumbrance subtracts from it, and the gait
// has no influence. Regeneration can stall at zero but never drains.
func (c *Character) UpdateStamina(moves int) {
	if moves <= 0 {
		return
	}

	rate := c.tuning.RegenRate
	if c.HasEffect(EffectWinded) {
		rate *= c.tuning.WindedRegenMult
	}
	rate -= float64(c.EncumbranceAt(RegionMouth)) / c.tuning.MouthEncumbDivisor
	if rate < 0 {
		rate = 0
	}

	c.ModStamina(int(math.Round(rate * float64(moves))))
}

func clampRatio(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
