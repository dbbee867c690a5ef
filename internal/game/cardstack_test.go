package game

import (
	"math/rand"
	"testing"
)

func TestCardStackDrawOrder(t *testing.T) {
	s := NewCardStack([]CardName{CardFarm, CardMine})
	first, err := s.Draw()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if first != CardFarm {
		t.Errorf("first draw = %s, want %s", first, CardFarm)
	}
	second, err := s.Draw()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if second != CardMine {
		t.Errorf("second draw = %s, want %s", second, CardMine)
	}
	if _, err := s.Draw(); err == nil {
		t.Error("drawing from an empty stack should fail")
	}
}

func TestCardStackPushGoesToBottom(t *testing.T) {
	s := NewCardStack([]CardName{CardFarm})
	s.Push(CardMine)
	first, _ := s.Draw()
	if first != CardFarm {
		t.Errorf("draw after push = %s, want %s", first, CardFarm)
	}
}

func TestCardStackShuffleDeterministic(t *testing.T) {
	cards := []CardName{CardFarm, CardMine, CardWife, CardHusband, CardKing}
	a := NewCardStack(cards)
	b := NewCardStack(cards)
	a.Shuffle(rand.New(rand.NewSource(7)))
	b.Shuffle(rand.New(rand.NewSource(7)))
	for a.Len() > 0 {
		x, _ := a.Draw()
		y, _ := b.Draw()
		if x != y {
			t.Fatalf("same seed produced different orders: %s vs %s", x, y)
		}
	}
}

func TestCardStackDrainInto(t *testing.T) {
	src := NewCardStack([]CardName{CardFarm, CardMine})
	dst := NewCardStack([]CardName{CardWife})
	src.DrainInto(dst)
	if !src.IsEmpty() {
		t.Error("source should be empty after drain")
	}
	if dst.Len() != 3 {
		t.Errorf("dst length = %d, want 3", dst.Len())
	}
}

func TestCardStackJSONHidesCards(t *testing.T) {
	s := NewCardStack([]CardName{CardFarm, CardMine})

	private := s.ToJSON(true)
	if private.NumCards != 2 || len(private.Cards) != 2 {
		t.Errorf("private snapshot = %+v, want both cards", private)
	}

	public := s.ToJSON(false)
	if public.NumCards != 2 {
		t.Errorf("public NumCards = %d, want 2", public.NumCards)
	}
	if len(public.Cards) != 0 {
		t.Errorf("public snapshot leaked %d cards", len(public.Cards))
	}

	restored := CardStackFromJSON(private)
	if restored.Len() != 2 {
		t.Errorf("restored length = %d, want 2", restored.Len())
	}
}
