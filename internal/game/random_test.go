package game

import "testing"

func TestSeededRNGDeterministic(t *testing.T) {
	rngA := seededRNG(12345)
	rngB := seededRNG(12345)

	for i := 0; i < 20; i++ {
		gotA := rngA.IntN(100000)
		gotB := rngB.IntN(100000)
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	a := seedWord(99, "a")
	b := seedWord(99, "b")
	if a == b {
		t.Fatalf("expected different seed words for different salts")
	}
}

func TestOneInCertainty(t *testing.T) {
	rng := seededRNG(7)
	for _, n := range []int{1, 0, -5} {
		if !oneIn(rng, n) {
			t.Fatalf("1 in %d should always hit", n)
		}
	}
}

func TestOneInNeverForLargeN(t *testing.T) {
	rng := seededRNG(7)
	hits := 0
	for i := 0; i < 1000; i++ {
		if oneIn(rng, 1000000000) {
			hits++
		}
	}
	if hits > 0 {
		t.Fatalf("a one-in-a-billion roll should practically never hit, got %d of 1000", hits)
	}
}
