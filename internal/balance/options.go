// Package balance holds the numeric tuning constants for the simulation.
// Constants are loaded once at startup from a game_balance.json document and
// are read-only afterwards.
package balance

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Option keys understood by the stamina model.
const (
	PlayerMaxStamina         = "PLAYER_MAX_STAMINA"
	BaseStaminaBurnRate      = "PLAYER_BASE_STAMINA_BURN_RATE"
	BaseStaminaRegenRate     = "PLAYER_BASE_STAMINA_REGEN_RATE"
	StaminaBurnRunMult       = "STAMINA_BURN_RUN_MULT"
	StaminaBurnCrouchDivisor = "STAMINA_BURN_CROUCH_DIVISOR"
	WindedRegenMult          = "WINDED_REGEN_MULT"
	MouthEncumbranceDivisor  = "MOUTH_ENCUMBRANCE_REGEN_DIVISOR"
	MovesPerTurn             = "MOVES_PER_TURN"
	WindedDurationMoves      = "WINDED_DURATION_MOVES"
	OverburdenPainOddsBase   = "OVERBURDEN_PAIN_ODDS_BASE"
	OverburdenPainOddsSlope  = "OVERBURDEN_PAIN_ODDS_SLOPE"
	OverburdenPainAmount     = "OVERBURDEN_PAIN_AMOUNT"
)

//go:embed game_balance.json
var defaultDocument []byte

//go:embed game_balance.schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("game_balance.schema.json", schemaSource)

// Options is a validated set of named numeric tuning values.
type Options struct {
	values map[string]float64
}

// Default returns the built-in balance document.
func Default() *Options {
	opts, err := parse(defaultDocument)
	if err != nil {
		// The embedded document ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("balance: embedded defaults invalid: %v", err))
	}
	return opts
}

// Load reads a balance document from disk, validates it against the balance
// schema, and overlays it on the built-in defaults.
func Load(path string) (*Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read balance document: %w", err)
	}
	loaded, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	opts := Default()
	for key, value := range loaded.values {
		opts.values[key] = value
	}
	return opts, nil
}

func parse(raw []byte) (*Options, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse balance document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate balance document: %w", err)
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("balance document is not an object")
	}

	values := make(map[string]float64, len(fields))
	for key, value := range fields {
		number, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("balance option %s is not a number", key)
		}
		values[key] = number
	}

	return &Options{values: values}, nil
}

// Float returns the named option as a real number.
func (o *Options) Float(key string) (float64, error) {
	value, ok := o.values[key]
	if !ok {
		return 0, o.unknownKey(key)
	}
	return value, nil
}

// Int returns the named option rounded to the nearest integer.
func (o *Options) Int(key string) (int, error) {
	value, err := o.Float(key)
	if err != nil {
		return 0, err
	}
	return int(math.Round(value)), nil
}

func (o *Options) unknownKey(key string) error {
	if closest, ok := o.closestKey(key); ok {
		return fmt.Errorf("unknown balance option %q (closest match %q)", key, closest)
	}
	return fmt.Errorf("unknown balance option %q", key)
}

func (o *Options) closestKey(key string) (string, bool) {
	known := make([]string, 0, len(o.values))
	for candidate := range o.values {
		known = append(known, candidate)
	}
	sort.Strings(known)

	best := ""
	bestDist := 0
	for _, candidate := range known {
		dist := levenshtein.ComputeDistance(key, candidate)
		if dist > suggestionLimit(len(candidate)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}

	return best, best != ""
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 4
	}
}
