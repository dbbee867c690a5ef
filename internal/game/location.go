package game

import (
	"fmt"
	"math/rand"
	"sort"
)

// Location is a static registry entry for a worker-placement spot on the
// board.
type Location struct {
	Name      LocationName
	Type      LocationType
	Occupancy LocationOccupancy

	playInner    PlayFn
	canPlayInner CanPlayFn
}

// CanPlay reports whether the active player may place a worker here:
// the spot is on the board, a worker is available, the occupancy rule has
// room and any location-specific guard passes.
func (l *Location) CanPlay(gs *GameState, input *GameInput) bool {
	occupants, onBoard := gs.LocationsMap[l.Name]
	if !onBoard {
		return false
	}
	if gs.ActivePlayer().NumAvailableWorkers() <= 0 {
		return false
	}
	if l.canPlayInner != nil && !l.canPlayInner(gs, input) {
		return false
	}
	switch l.Occupancy {
	case OccupancyExclusive:
		return len(occupants) == 0
	case OccupancyExclusiveFour:
		max := 1
		if len(gs.Players) >= 4 {
			max = 2
		}
		return len(occupants) < max
	case OccupancyUnlimited:
		return true
	}
	return false
}

// Activate runs the location's effect without placing a worker. Used by the
// Lookout, the Clock Tower and the copy-a-basic forest location.
func (l *Location) Activate(gs *GameState, input *GameInput) error {
	if l.playInner == nil {
		return nil
	}
	return l.playInner(gs, input)
}

// resolveContinuation routes a continuation input tagged with this
// location's name back into its effect.
func (l *Location) resolveContinuation(gs *GameState, input *GameInput) error {
	if l.playInner == nil {
		return fmt.Errorf("%w: %s has no pending effect", ErrInvariant, l.Name)
	}
	return l.playInner(gs, input)
}

// LocationFromName looks up a location's registry entry.
func LocationFromName(name LocationName) *Location {
	loc, ok := locationRegistry[name]
	if !ok {
		panic(fmt.Sprintf("unknown location: %s", name))
	}
	return loc
}

// LocationsByType returns the names of every registered location of the
// given type, sorted.
func LocationsByType(t LocationType) []LocationName {
	var names []LocationName
	for name, loc := range locationRegistry {
		if loc.Type == t {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// initialLocationsMap builds the board for a fresh game: every basic, haven
// and journey location, plus 3 random forest locations (4 with 4+ players).
func initialLocationsMap(r *rand.Rand, numPlayers int) map[LocationName][]string {
	board := map[LocationName][]string{}
	for _, t := range []LocationType{LocationTypeBasic, LocationTypeHaven, LocationTypeJourney} {
		for _, name := range LocationsByType(t) {
			board[name] = []string{}
		}
	}
	forest := LocationsByType(LocationTypeForest)
	if r != nil {
		r.Shuffle(len(forest), func(i, j int) {
			forest[i], forest[j] = forest[j], forest[i]
		})
	}
	numForest := 3
	if numPlayers >= 4 {
		numForest = 4
	}
	for _, name := range forest[:numForest] {
		board[name] = []string{}
	}
	return board
}

// journeyLocation builds one of the autumn-only "discard N cards for N VP"
// spots.
func journeyLocation(name LocationName, numPoints int, occupancy LocationOccupancy) *Location {
	return &Location{
		Name:      name,
		Type:      LocationTypeJourney,
		Occupancy: occupancy,
		canPlayInner: func(gs *GameState, input *GameInput) bool {
			p := gs.ActivePlayer()
			return p.CurrentSeason == SeasonAutumn && len(p.CardsInHand) >= numPoints
		},
		playInner: func(gs *GameState, input *GameInput) error {
			p := gs.ActivePlayer()
			if input.InputType == InputDiscardCards && input.LocationContext == name {
				toDiscard := input.ClientOptions.CardsToDiscard
				if err := validateSelectedCards(toDiscard, p.CardsInHand, numPoints, numPoints); err != nil {
					return err
				}
				for _, card := range toDiscard {
					if err := p.DiscardCard(gs, card); err != nil {
						return err
					}
				}
				p.GainResources(ResourceMap{ResourceVP: numPoints})
				return nil
			}
			gs.QueuePendingInput(&GameInput{
				InputType:       InputDiscardCards,
				PrevInputType:   input.InputType,
				LocationContext: name,
				MinToSelect:     numPoints,
				MaxToSelect:     numPoints,
			})
			return nil
		},
	}
}

// basicLocation builds a fixed-yield spot.
func basicLocation(name LocationName, occupancy LocationOccupancy, resources ResourceMap, numCardsToDraw int) *Location {
	return &Location{
		Name:      name,
		Type:      LocationTypeBasic,
		Occupancy: occupancy,
		playInner: gainResourcesFactory(resources, numCardsToDraw),
	}
}

// forestLocation builds a fixed-yield forest spot.
func forestLocation(name LocationName, resources ResourceMap, numCardsToDraw int) *Location {
	return &Location{
		Name:      name,
		Type:      LocationTypeForest,
		Occupancy: OccupancyExclusiveFour,
		playInner: gainResourcesFactory(resources, numCardsToDraw),
	}
}

// gainWildFactory builds a "choose N resources of any kinds" effect.
func gainWildFactory(name LocationName, count int) PlayFn {
	return func(gs *GameState, input *GameInput) error {
		p := gs.ActivePlayer()
		if input.InputType == InputSelectResources && input.LocationContext == name {
			chosen := input.ClientOptions.Resources
			if err := validateResourceSelection(chosen, count, count, ""); err != nil {
				return err
			}
			p.GainResources(chosen)
			return nil
		}
		gs.QueuePendingInput(&GameInput{
			InputType:       InputSelectResources,
			PrevInputType:   input.InputType,
			LocationContext: name,
			MinResources:    count,
			MaxResources:    count,
		})
		return nil
	}
}

// locationRegistry is assigned in an init function for the same reason as
// cardRegistry: its closures resolve names through LocationFromName.
var locationRegistry map[LocationName]*Location

func init() {
	locationRegistry = map[LocationName]*Location{
		LocationHaven: {
			Name:      LocationHaven,
			Type:      LocationTypeHaven,
			Occupancy: OccupancyUnlimited,
			// Discard any number of cards, gain 1 resource per 2 discarded.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputDiscardCards && input.LocationContext == LocationHaven:
					toDiscard := input.ClientOptions.CardsToDiscard
					if err := validateSelectedCards(toDiscard, p.CardsInHand, 0, len(p.CardsInHand)); err != nil {
						return err
					}
					for _, card := range toDiscard {
						if err := p.DiscardCard(gs, card); err != nil {
							return err
						}
					}
					if gained := len(toDiscard) / 2; gained > 0 {
						gs.QueuePendingInput(&GameInput{
							InputType:       InputSelectResources,
							PrevInputType:   input.InputType,
							LocationContext: LocationHaven,
							MinResources:    gained,
							MaxResources:    gained,
						})
					}
					return nil
				case input.InputType == InputSelectResources && input.LocationContext == LocationHaven:
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, input.MinResources, input.MaxResources, ""); err != nil {
						return err
					}
					p.GainResources(chosen)
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:       InputDiscardCards,
					PrevInputType:   input.InputType,
					LocationContext: LocationHaven,
					MaxToSelect:     MaxHandSize,
				})
				return nil
			},
		},

		LocationJourneyFive:  journeyLocation(LocationJourneyFive, 5, OccupancyExclusive),
		LocationJourneyFour:  journeyLocation(LocationJourneyFour, 4, OccupancyExclusive),
		LocationJourneyThree: journeyLocation(LocationJourneyThree, 3, OccupancyExclusive),
		LocationJourneyTwo:   journeyLocation(LocationJourneyTwo, 2, OccupancyUnlimited),

		LocationBasicOneBerry:           basicLocation(LocationBasicOneBerry, OccupancyUnlimited, ResourceMap{ResourceBerry: 1}, 0),
		LocationBasicOneBerryAndOneCard: basicLocation(LocationBasicOneBerryAndOneCard, OccupancyExclusive, ResourceMap{ResourceBerry: 1}, 1),
		LocationBasicOneResinAndOneCard: basicLocation(LocationBasicOneResinAndOneCard, OccupancyUnlimited, ResourceMap{ResourceResin: 1}, 1),
		LocationBasicOnePebble:          basicLocation(LocationBasicOnePebble, OccupancyExclusive, ResourceMap{ResourcePebble: 1}, 0),
		LocationBasicThreeTwigs:         basicLocation(LocationBasicThreeTwigs, OccupancyExclusive, ResourceMap{ResourceTwig: 3}, 0),
		LocationBasicTwoCardsAndOneVP:   basicLocation(LocationBasicTwoCardsAndOneVP, OccupancyUnlimited, ResourceMap{ResourceVP: 1}, 2),
		LocationBasicTwoResin:           basicLocation(LocationBasicTwoResin, OccupancyExclusive, ResourceMap{ResourceResin: 2}, 0),
		LocationBasicTwoTwigsAndOneCard: basicLocation(LocationBasicTwoTwigsAndOneCard, OccupancyUnlimited, ResourceMap{ResourceTwig: 2}, 1),

		LocationForestTwoBerryOneCard:    forestLocation(LocationForestTwoBerryOneCard, ResourceMap{ResourceBerry: 2}, 1),
		LocationForestOnePebbleThreeCard: forestLocation(LocationForestOnePebbleThreeCard, ResourceMap{ResourcePebble: 1}, 3),
		LocationForestOneTwigResinBerry:  forestLocation(LocationForestOneTwigResinBerry, ResourceMap{ResourceTwig: 1, ResourceResin: 1, ResourceBerry: 1}, 0),
		LocationForestThreeBerry:         forestLocation(LocationForestThreeBerry, ResourceMap{ResourceBerry: 3}, 0),
		LocationForestTwoResinOneTwig:    forestLocation(LocationForestTwoResinOneTwig, ResourceMap{ResourceTwig: 1, ResourceResin: 2}, 0),

		LocationForestTwoWild: {
			Name:      LocationForestTwoWild,
			Type:      LocationTypeForest,
			Occupancy: OccupancyExclusiveFour,
			playInner: gainWildFactory(LocationForestTwoWild, 2),
		},
		LocationForestDiscardDrawTwoPerCard: {
			Name:      LocationForestDiscardDrawTwoPerCard,
			Type:      LocationTypeForest,
			Occupancy: OccupancyExclusiveFour,
			// Discard any number of cards, draw 2 per card discarded.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputDiscardCards && input.LocationContext == LocationForestDiscardDrawTwoPerCard {
					toDiscard := input.ClientOptions.CardsToDiscard
					if err := validateSelectedCards(toDiscard, p.CardsInHand, 0, len(p.CardsInHand)); err != nil {
						return err
					}
					for _, card := range toDiscard {
						if err := p.DiscardCard(gs, card); err != nil {
							return err
						}
					}
					return p.DrawCards(gs, 2*len(toDiscard))
				}
				gs.QueuePendingInput(&GameInput{
					InputType:       InputDiscardCards,
					PrevInputType:   input.InputType,
					LocationContext: LocationForestDiscardDrawTwoPerCard,
					MaxToSelect:     MaxHandSize,
				})
				return nil
			},
		},
		LocationForestCopyBasicOneCard: {
			Name:      LocationForestCopyBasicOneCard,
			Type:      LocationTypeForest,
			Occupancy: OccupancyExclusiveFour,
			// Copy any basic location, then draw a card.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectLocation && input.LocationContext == LocationForestCopyBasicOneCard {
					selected := input.ClientOptions.SelectedLocation
					if !containsLocation(input.LocationOptions, selected) {
						return fmt.Errorf("%w: %s was not an option", ErrInvalidInput, selected)
					}
					if err := LocationFromName(selected).Activate(gs, input); err != nil {
						return err
					}
					return p.DrawCards(gs, 1)
				}
				gs.QueuePendingInput(&GameInput{
					InputType:       InputSelectLocation,
					PrevInputType:   input.InputType,
					LocationContext: LocationForestCopyBasicOneCard,
					LocationOptions: LocationsByType(LocationTypeBasic),
				})
				return nil
			},
		},
		LocationForestTwoCardsOneWild: {
			Name:      LocationForestTwoCardsOneWild,
			Type:      LocationTypeForest,
			Occupancy: OccupancyExclusiveFour,
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectResources && input.LocationContext == LocationForestTwoCardsOneWild {
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, 1, 1, ""); err != nil {
						return err
					}
					p.GainResources(chosen)
					return nil
				}
				if err := p.DrawCards(gs, 2); err != nil {
					return err
				}
				gs.QueuePendingInput(&GameInput{
					InputType:       InputSelectResources,
					PrevInputType:   input.InputType,
					LocationContext: LocationForestTwoCardsOneWild,
					MinResources:    1,
					MaxResources:    1,
				})
				return nil
			},
		},
		LocationForestDiscardThreeForWild: {
			Name:      LocationForestDiscardThreeForWild,
			Type:      LocationTypeForest,
			Occupancy: OccupancyExclusiveFour,
			// Discard up to 3 cards, gain 1 resource of any kind per card.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputDiscardCards && input.LocationContext == LocationForestDiscardThreeForWild:
					toDiscard := input.ClientOptions.CardsToDiscard
					if err := validateSelectedCards(toDiscard, p.CardsInHand, 0, 3); err != nil {
						return err
					}
					for _, card := range toDiscard {
						if err := p.DiscardCard(gs, card); err != nil {
							return err
						}
					}
					if n := len(toDiscard); n > 0 {
						gs.QueuePendingInput(&GameInput{
							InputType:       InputSelectResources,
							PrevInputType:   input.InputType,
							LocationContext: LocationForestDiscardThreeForWild,
							MinResources:    n,
							MaxResources:    n,
						})
					}
					return nil
				case input.InputType == InputSelectResources && input.LocationContext == LocationForestDiscardThreeForWild:
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, input.MinResources, input.MaxResources, ""); err != nil {
						return err
					}
					p.GainResources(chosen)
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:       InputDiscardCards,
					PrevInputType:   input.InputType,
					LocationContext: LocationForestDiscardThreeForWild,
					MaxToSelect:     3,
				})
				return nil
			},
		},
		LocationForestDrawTwoMeadowPlayOneLess: {
			Name:      LocationForestDrawTwoMeadowPlayOneLess,
			Type:      LocationTypeForest,
			Occupancy: OccupancyExclusiveFour,
			// Take 2 meadow cards into hand, then play one of them for 1 less.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectCards && input.LocationContext == LocationForestDrawTwoMeadowPlayOneLess:
					if input.PrevInputType != InputSelectCards {
						selected := input.ClientOptions.SelectedCards
						if err := validateSelectedCards(selected, input.CardOptions, 2, 2); err != nil {
							return err
						}
						for _, card := range selected {
							if err := gs.RemoveFromMeadow(card); err != nil {
								return err
							}
							p.AddCardToHand(gs, card)
						}
						if err := gs.ReplenishMeadow(); err != nil {
							return err
						}
						var playable []CardName
						for _, card := range selected {
							ok, _ := p.isPaidResourcesValid(p.Resources, CardFromName(card).BaseCost, discountAnyOne, false)
							if ok && p.CanAddToCity(card) && containsCard(p.CardsInHand, card) {
								playable = append(playable, card)
							}
						}
						if len(playable) == 0 {
							return nil
						}
						gs.QueuePendingInput(&GameInput{
							InputType:       InputSelectCards,
							PrevInputType:   InputSelectCards,
							LocationContext: LocationForestDrawTwoMeadowPlayOneLess,
							CardOptions:     playable,
							MaxToSelect:     1,
						})
						return nil
					}
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 0, 1); err != nil {
						return err
					}
					if len(selected) == 0 {
						return nil
					}
					gs.QueuePendingInput(&GameInput{
						InputType:       InputSelectPaymentForCard,
						PrevInputType:   input.InputType,
						LocationContext: LocationForestDrawTwoMeadowPlayOneLess,
						Card:            selected[0],
					})
					return nil
				case input.InputType == InputSelectPaymentForCard && input.LocationContext == LocationForestDrawTwoMeadowPlayOneLess:
					if input.ClientOptions.Payment == nil {
						return fmt.Errorf("%w: missing payment", ErrInvalidInput)
					}
					paid := input.ClientOptions.Payment.Resources
					if err := p.checkPayment(paid, CardFromName(input.Card).BaseCost, discountAnyOne); err != nil {
						return err
					}
					if err := p.SpendResources(paid); err != nil {
						return err
					}
					if err := p.RemoveCardFromHand(input.Card); err != nil {
						return err
					}
					return gs.playCardForFree(input.Card, input)
				}
				if len(gs.Meadow) < 2 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:       InputSelectCards,
					PrevInputType:   input.InputType,
					LocationContext: LocationForestDrawTwoMeadowPlayOneLess,
					CardOptions:     append([]CardName{}, gs.Meadow...),
					MinToSelect:     2,
					MaxToSelect:     2,
				})
				return nil
			},
		},
	}
}
