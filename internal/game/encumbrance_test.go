package game

import "testing"

func TestEncumbranceByRegion(t *testing.T) {
	character := testCharacter(t, CharacterConfig{})
	character.Wear(WornItem{
		Name:        "balaclava",
		WeightGrams: 80,
		Encumbrance: map[BodyRegion]int{RegionHead: 2, RegionMouth: 4},
	})

	if got := character.EncumbranceAt(RegionMouth); got != 4 {
		t.Fatalf("mouth encumbrance: got %d, want 4", got)
	}
	if got := character.EncumbranceAt(RegionHead); got != 2 {
		t.Fatalf("head encumbrance: got %d, want 2", got)
	}
	if got := character.EncumbranceAt(RegionTorso); got != 0 {
		t.Fatalf("uncovered region should be zero, got %d", got)
	}
}

func TestEncumbranceLayering(t *testing.T) {
	character := testCharacter(t, CharacterConfig{})
	scarf := WornItem{Name: "scarf", Encumbrance: map[BodyRegion]int{RegionMouth: 10}}

	character.Wear(scarf)
	character.Wear(scarf)
	character.Wear(scarf)

	// First layer counts once, every further layer counts double.
	if got := character.EncumbranceAt(RegionMouth); got != 50 {
		t.Fatalf("three layered scarves: got %d, want 50", got)
	}
}

func TestWornWeightCountsAsCarried(t *testing.T) {
	character := testCharacter(t, CharacterConfig{CarriedGrams: 1000})
	character.Wear(WornItem{Name: "pack", WeightGrams: 2500})

	if got := character.CarriedWeightGrams(); got != 3500 {
		t.Fatalf("carried weight: got %d, want 3500", got)
	}

	if !character.TakeOff("pack") {
		t.Fatalf("expected to take the pack off")
	}
	if character.TakeOff("pack") {
		t.Fatalf("pack should already be off")
	}
	if got := character.CarriedWeightGrams(); got != 1000 {
		t.Fatalf("carried weight after undressing: got %d, want 1000", got)
	}
}
