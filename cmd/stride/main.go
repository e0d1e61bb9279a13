package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/stride/internal/balance"
	"github.com/appengine-ltd/stride/internal/game"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		balancePath string
		marchPath   string
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&balancePath, "balance", "", "path to a game_balance.json (default: built-in)")
	flag.StringVar(&marchPath, "march", "", "path to a march plan YAML (default: built-in demo)")
	flag.Int64Var(&seed, "seed", 0, "simulation seed (0 picks one)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Stride %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(balancePath, marchPath, seed); err != nil {
		fmt.Fprintf(os.Stderr, "stride: %v\n", err)
		os.Exit(1)
	}
}

func run(balancePath, marchPath string, seed int64) error {
	opts := balance.Default()
	if balancePath != "" {
		loaded, err := balance.Load(balancePath)
		if err != nil {
			return err
		}
		opts = loaded
	}

	plan := demoPlan()
	if marchPath != "" {
		loaded, err := game.LoadMarchPlan(marchPath)
		if err != nil {
			return err
		}
		plan = loaded
	}

	character, err := game.NewCharacter(game.CharacterConfig{
		Name: "Porter",
		Seed: seed,
	}, opts)
	if err != nil {
		return err
	}

	reports, err := game.RunMarch(character, plan)
	if err != nil {
		return err
	}

	if plan.Name != "" {
		fmt.Printf("March: %s\n", plan.Name)
	}
	for _, report := range reports {
		state := string(report.Mode)
		if report.Resting {
			state = "rest"
		}
		winded := ""
		if report.Winded {
			winded = "  WINDED"
		}
		fmt.Printf("turn %3d  %-6s  stamina %5d/%d  pain %2d  move cost x%.2f%s\n",
			report.Turn, state, report.Stamina, character.StaminaMax(),
			report.Pain, report.MoveCost, winded)
	}

	return nil
}

// demoPlan overloads the character, runs them to collapse, and lets them
// catch their breath.
func demoPlan() game.MarchPlan {
	return game.MarchPlan{
		Name: "forced march",
		Legs: []game.MarchLeg{
			{Mode: "walk", Turns: 3},
			{Mode: "run", Turns: 8, CarriedGrams: 105000},
			{Rest: true, Turns: 6},
			{Mode: "crouch", Turns: 3, CarriedGrams: 12000},
		},
	}
}
