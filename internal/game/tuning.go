package game

import "github.com/appengine-ltd/stride/internal/balance"

// Tuning is the balance document resolved into the handful of numbers the
// stamina model actually reads. Resolved once per character at creation;
// immutable afterwards.
type Tuning struct {
	MaxStamina          int
	BurnRate            int
	RegenRate           float64
	RunBurnMult         int
	CrouchBurnDivisor   int
	WindedRegenMult     float64
	MouthEncumbDivisor  float64
	MovesPerTurn        int
	WindedDurationMoves int
	PainOddsBase        int
	PainOddsSlope       int
	PainAmount          int
}

func TuningFromOptions(opts *balance.Options) (Tuning, error) {
	var t Tuning
	var err error

	if t.MaxStamina, err = opts.Int(balance.PlayerMaxStamina); err != nil {
		return t, err
	}
	if t.BurnRate, err = opts.Int(balance.BaseStaminaBurnRate); err != nil {
		return t, err
	}
	if t.RegenRate, err = opts.Float(balance.BaseStaminaRegenRate); err != nil {
		return t, err
	}
	if t.RunBurnMult, err = opts.Int(balance.StaminaBurnRunMult); err != nil {
		return t, err
	}
	if t.CrouchBurnDivisor, err = opts.Int(balance.StaminaBurnCrouchDivisor); err != nil {
		return t, err
	}
	if t.WindedRegenMult, err = opts.Float(balance.WindedRegenMult); err != nil {
		return t, err
	}
	if t.MouthEncumbDivisor, err = opts.Float(balance.MouthEncumbranceDivisor); err != nil {
		return t, err
	}
	if t.MovesPerTurn, err = opts.Int(balance.MovesPerTurn); err != nil {
		return t, err
	}
	if t.WindedDurationMoves, err = opts.Int(balance.WindedDurationMoves); err != nil {
		return t, err
	}
	if t.PainOddsBase, err = opts.Int(balance.OverburdenPainOddsBase); err != nil {
		return t, err
	}
	if t.PainOddsSlope, err = opts.Int(balance.OverburdenPainOddsSlope); err != nil {
		return t, err
	}
	if t.PainAmount, err = opts.Int(balance.OverburdenPainAmount); err != nil {
		return t, err
	}

	return t, nil
}
