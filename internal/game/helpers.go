package game

import "fmt"

// PlayFn applies a card, location or event effect. It receives the input
// that triggered it — either the top-level action or a continuation routed
// back by its context tag — and may queue further continuations.
type PlayFn func(gs *GameState, input *GameInput) error

// CanPlayFn reports whether an effect's extra preconditions hold.
type CanPlayFn func(gs *GameState, input *GameInput) bool

// PointsFn computes bonus points for the given player. Pure read: it must
// not mutate state so scoring stays idempotent.
type PointsFn func(gs *GameState, playerID string) int

// gainResourcesFactory builds the common "gain fixed resources, maybe draw
// cards" effect shared by many production cards and locations.
func gainResourcesFactory(resources ResourceMap, numCardsToDraw int) PlayFn {
	return func(gs *GameState, input *GameInput) error {
		p := gs.ActivePlayer()
		p.GainResources(resources)
		if numCardsToDraw > 0 {
			return p.DrawCards(gs, numCardsToDraw)
		}
		return nil
	}
}

// spendResourcesForVPFactory builds the "pay up to maxToSpend of a resource,
// gain 1 VP each" effect (Doctor, Woodcarver). The amount is the player's
// choice, so the effect queues a SELECT_RESOURCES continuation.
func spendResourcesForVPFactory(card CardName, rt ResourceType, maxToSpend int) PlayFn {
	return func(gs *GameState, input *GameInput) error {
		p := gs.ActivePlayer()
		if input.InputType == InputSelectResources && input.CardContext == card {
			toSpend := input.ClientOptions.Resources
			if err := validateResourceSelection(toSpend, 0, maxToSpend, rt); err != nil {
				return err
			}
			if err := p.SpendResources(toSpend); err != nil {
				return err
			}
			p.GainResources(ResourceMap{ResourceVP: toSpend.Sum()})
			return nil
		}
		max := maxToSpend
		if n := p.NumResourcesByType(rt); n < max {
			max = n
		}
		if max == 0 {
			return nil
		}
		gs.QueuePendingInput(&GameInput{
			InputType:        InputSelectResources,
			PrevInputType:    input.InputType,
			CardContext:      card,
			MaxResources:     max,
			SpecificResource: rt,
			ToSpend:          true,
		})
		return nil
	}
}

// validateResourceSelection checks a chosen resource bundle: totals within
// [min, max], no VP, and only the specific type when one is required.
func validateResourceSelection(m ResourceMap, min, max int, specific ResourceType) error {
	if m == nil {
		return fmt.Errorf("%w: no resources specified", ErrInvalidInput)
	}
	total := 0
	for t, n := range m {
		if n < 0 {
			return fmt.Errorf("%w: negative %s count", ErrInvalidInput, t)
		}
		if n == 0 {
			continue
		}
		if t == ResourceVP {
			return fmt.Errorf("%w: cannot select VP", ErrInvalidInput)
		}
		if specific != "" && t != specific {
			return fmt.Errorf("%w: must select %s", ErrInvalidInput, specific)
		}
		total += n
	}
	if total < min || total > max {
		return fmt.Errorf("%w: must select between %d and %d resources", ErrInvalidInput, min, max)
	}
	return nil
}

// validateSelectedCards checks that every selected card was offered and that
// the count is within bounds.
func validateSelectedCards(selected, offered []CardName, min, max int) error {
	if len(selected) < min || len(selected) > max {
		return fmt.Errorf("%w: must select between %d and %d cards", ErrInvalidInput, min, max)
	}
	remaining := append([]CardName{}, offered...)
	for _, card := range selected {
		found := false
		for i, c := range remaining {
			if c == card {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s was not an option", ErrInvalidInput, card)
		}
	}
	return nil
}

// validateSelectedPlayedCards checks chosen city-card references against the
// offered list.
func validateSelectedPlayedCards(selected, offered []PlayedCardRef, min, max int) error {
	if len(selected) < min || len(selected) > max {
		return fmt.Errorf("%w: must select between %d and %d played cards", ErrInvalidInput, min, max)
	}
	for _, ref := range selected {
		found := false
		for _, opt := range offered {
			if opt == ref {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s was not an option", ErrInvalidInput, ref.CardName)
		}
	}
	return nil
}

// validateSelectedWorker checks the chosen placement against the offered
// list.
func validateSelectedWorker(selected WorkerPlacement, offered []WorkerPlacement) error {
	for _, w := range offered {
		if w.Equal(selected) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s was not an option", ErrInvalidInput, selected)
}

// validateSelectedPlayer checks the chosen player against the offered list.
func validateSelectedPlayer(selected string, offered []string) error {
	if selected == "" {
		return fmt.Errorf("%w: no player selected", ErrInvalidInput)
	}
	for _, id := range offered {
		if id == selected {
			return nil
		}
	}
	return fmt.Errorf("%w: player %s was not an option", ErrInvalidInput, selected)
}
