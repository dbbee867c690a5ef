package game

import (
	"fmt"
	"math/rand"
)

// CardStack is a mutable ordered pile of cards. It backs both the deck and
// the discard pile. Index 0 is the top of the stack.
type CardStack struct {
	cards []CardName
}

// NewCardStack builds a stack over the given cards, top first.
func NewCardStack(cards []CardName) *CardStack {
	return &CardStack{cards: append([]CardName(nil), cards...)}
}

// EmptyCardStack returns a stack with no cards.
func EmptyCardStack() *CardStack {
	return &CardStack{}
}

// Len returns the number of cards in the stack.
func (s *CardStack) Len() int {
	return len(s.cards)
}

// IsEmpty reports whether the stack holds no cards.
func (s *CardStack) IsEmpty() bool {
	return len(s.cards) == 0
}

// Draw removes and returns the top card.
func (s *CardStack) Draw() (CardName, error) {
	if len(s.cards) == 0 {
		return "", fmt.Errorf("%w: cannot draw from an empty stack", ErrInvariant)
	}
	top := s.cards[0]
	s.cards = s.cards[1:]
	return top, nil
}

// Push adds a card to the bottom of the stack.
func (s *CardStack) Push(card CardName) {
	s.cards = append(s.cards, card)
}

// DrainInto moves every card into dst, emptying the receiver.
func (s *CardStack) DrainInto(dst *CardStack) {
	dst.cards = append(dst.cards, s.cards...)
	s.cards = s.cards[:0]
}

// Shuffle permutes the stack using the given source.
func (s *CardStack) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Clone returns an independent copy of the stack.
func (s *CardStack) Clone() *CardStack {
	return NewCardStack(s.cards)
}

// CardStackJSON is the serialized form of a CardStack. Cards are omitted
// from non-private snapshots; NumCards is always present so viewers can
// render pile sizes.
type CardStackJSON struct {
	NumCards int        `json:"numCards"`
	Cards    []CardName `json:"cards"`
}

// ToJSON converts the stack to its serialized form. The card order is
// hidden information and only included in private snapshots.
func (s *CardStack) ToJSON(includePrivate bool) CardStackJSON {
	out := CardStackJSON{NumCards: len(s.cards), Cards: []CardName{}}
	if includePrivate {
		out.Cards = append([]CardName(nil), s.cards...)
	}
	return out
}

// CardStackFromJSON rebuilds a stack from its serialized form.
func CardStackFromJSON(j CardStackJSON) *CardStack {
	return NewCardStack(j.Cards)
}
