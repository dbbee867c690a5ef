package game

import (
	"fmt"
	"sort"
)

// Card is a static registry entry: identity, cost and the effect hooks. All
// mutable per-copy state lives in PlayedCardInfo.
type Card struct {
	Name              CardName
	Type              CardType
	BaseCost          CardCost
	BaseVP            int
	IsUnique          bool
	IsConstruction    bool
	IsOpenDestination bool
	AssociatedCard    CardName

	// playInner fires when the card enters a city, and again on every
	// production activation for production cards. Interactive effects
	// queue continuations tagged with the card's name and resolve them
	// when the continuation comes back through the same hook.
	playInner PlayFn
	// canPlayInner guards play beyond cost and uniqueness.
	canPlayInner CanPlayFn
	// visitInner fires when a worker is placed on the card.
	visitInner PlayFn
	// canVisitInner guards worker placement beyond space and ownership.
	canVisitInner CanPlayFn
	// playedCardInfoInner seeds extra per-copy state.
	playedCardInfoInner func() *PlayedCardInfo
	// pointsInner computes bonus points, called once per card name.
	pointsInner PointsFn
}

// IsCritter reports whether the card is a critter rather than a construction.
func (c *Card) IsCritter() bool {
	return !c.IsConstruction
}

// NumInDeck returns how many copies the deck holds.
func (c *Card) NumInDeck() int {
	switch c.Name {
	case CardFarm:
		return 8
	case CardHusband, CardWife:
		return 4
	}
	if c.IsUnique {
		return 2
	}
	return 3
}

func (c *Card) newPlayedCardInfo() *PlayedCardInfo {
	info := &PlayedCardInfo{CardName: c.Name}
	if c.Type == CardTypeDestination {
		info.Workers = []string{}
		info.MaxWorkers = 1
	}
	if c.playedCardInfoInner != nil {
		extra := c.playedCardInfoInner()
		if extra.Resources != nil {
			info.Resources = extra.Resources
		}
		if extra.PairedCards != nil {
			info.PairedCards = extra.PairedCards
		}
		if extra.MaxWorkers != 0 {
			info.Workers = []string{}
			info.MaxWorkers = extra.MaxWorkers
		}
	}
	return info
}

// CanPlay reports whether the active player may play this card right now:
// uniqueness, city capacity, affordability and any card-specific guard.
func (c *Card) CanPlay(gs *GameState, input *GameInput) bool {
	p := gs.ActivePlayer()
	if c.Name != CardFool && !p.CanAddToCity(c.Name) {
		return false
	}
	if c.canPlayInner != nil && !c.canPlayInner(gs, input) {
		return false
	}
	if input.InputType == InputPlayCard {
		return p.CanAffordCard(c.Name, input.FromMeadow)
	}
	return true
}

// Play puts the card into the active player's city and runs its effect. The
// Fool never enters its owner's city; its effect routes it to an opponent.
func (c *Card) Play(gs *GameState, input *GameInput) error {
	p := gs.ActivePlayer()
	if c.Name != CardFool {
		if err := p.AddToCity(c.Name); err != nil {
			return err
		}
	}
	if c.playInner != nil {
		return c.playInner(gs, input)
	}
	return nil
}

// activateProduction re-runs the card's effect during a production trigger.
func (c *Card) activateProduction(gs *GameState, input *GameInput) error {
	if c.Type != CardTypeProduction {
		return fmt.Errorf("%w: %s is not a production card", ErrInvariant, c.Name)
	}
	if c.playInner != nil {
		return c.playInner(gs, input)
	}
	return nil
}

// CanVisit reports whether the active player may place a worker on the
// card in cityOwner's city.
func (c *Card) CanVisit(gs *GameState, input *GameInput, cityOwner *Player) bool {
	if !gs.ActivePlayer().CanPlaceWorkerOnCard(c.Name, cityOwner) {
		return false
	}
	if c.canVisitInner != nil && !c.canVisitInner(gs, input) {
		return false
	}
	return true
}

// Visit runs the card's destination effect for the worker just placed.
func (c *Card) Visit(gs *GameState, input *GameInput) error {
	if c.visitInner == nil {
		return nil
	}
	return c.visitInner(gs, input)
}

// resolveContinuation routes a continuation input tagged with this card's
// name back into the hook that queued it.
func (c *Card) resolveContinuation(gs *GameState, input *GameInput) error {
	if c.playInner != nil {
		return c.playInner(gs, input)
	}
	if c.visitInner != nil {
		return c.visitInner(gs, input)
	}
	return fmt.Errorf("%w: %s has no pending effect", ErrInvariant, c.Name)
}

// CardFromName looks up a card's registry entry.
func CardFromName(name CardName) *Card {
	card, ok := cardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("unknown card: %s", name))
	}
	return card
}

// AllCardNames returns every card name in sorted order.
func AllCardNames() []CardName {
	names := make([]CardName, 0, len(cardRegistry))
	for name := range cardRegistry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// countPointsBy counts a player's played card names matching pred.
func countPointsBy(p *Player, pred func(*Card) bool) int {
	count := 0
	for name := range p.PlayedCards {
		if pred(CardFromName(name)) {
			count++
		}
	}
	return count
}

// productionCardRefs lists the distinct production cards in owner's city,
// skipping excluded names.
func productionCardRefs(owner *Player, exclude ...CardName) []PlayedCardRef {
	var refs []PlayedCardRef
	for _, name := range AllCardNames() {
		if len(owner.PlayedCards[name]) == 0 {
			continue
		}
		card := CardFromName(name)
		if card.Type != CardTypeProduction {
			continue
		}
		skip := false
		for _, ex := range exclude {
			if name == ex {
				skip = true
				break
			}
		}
		if !skip {
			refs = append(refs, PlayedCardRef{OwnerID: owner.PlayerID, CardName: name})
		}
	}
	return refs
}

// cardRegistry is assigned in an init function because its effect closures
// look cards up through CardFromName; a var initializer would depend on
// itself.
var cardRegistry map[CardName]*Card

func init() {
	cardRegistry = map[CardName]*Card{
		CardArchitect: {
			Name:           CardArchitect,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceBerry: 4},
			BaseVP:         2,
			IsUnique:       true,
			AssociatedCard: CardCrane,
			// 1 point per resin and pebble, up to 6.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				n := p.Resources[ResourcePebble] + p.Resources[ResourceResin]
				if n > 6 {
					return 6
				}
				return n
			},
		},
		CardBard: {
			Name:           CardBard,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{ResourceBerry: 3},
			IsUnique:       true,
			AssociatedCard: CardTheatre,
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputDiscardCards && input.CardContext == CardBard {
					toDiscard := input.ClientOptions.CardsToDiscard
					if err := validateSelectedCards(toDiscard, p.CardsInHand, 0, 5); err != nil {
						return err
					}
					for _, card := range toDiscard {
						if err := p.DiscardCard(gs, card); err != nil {
							return err
						}
					}
					p.GainResources(ResourceMap{ResourceVP: len(toDiscard)})
					return nil
				}
				if len(p.CardsInHand) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputDiscardCards,
					PrevInputType: input.InputType,
					CardContext:   CardBard,
					MaxToSelect:   5,
				})
				return nil
			},
		},
		CardBargeToad: {
			Name:           CardBargeToad,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         1,
			AssociatedCard: CardTwigBarge,
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if farms := len(p.PlayedCards[CardFarm]); farms > 0 {
					p.GainResources(ResourceMap{ResourceTwig: 2 * farms})
				}
				return nil
			},
		},
		CardCastle: {
			Name:           CardCastle,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceTwig: 2, ResourceResin: 3, ResourcePebble: 3},
			BaseVP:         4,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardKing,
			// 1 point per common construction.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				return countPointsBy(p, func(c *Card) bool {
					return c.IsConstruction && !c.IsUnique
				})
			},
		},
		CardCemetary: {
			Name:           CardCemetary,
			Type:           CardTypeDestination,
			BaseCost:       CardCost{ResourcePebble: 2},
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardUndertaker,
			// Reveal 4 cards from the deck or the discard pile, play one for
			// free, discard the rest. The worker never comes back.
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectOptionGeneric && input.CardContext == CardCemetary:
					var revealed []CardName
					switch input.ClientOptions.SelectedOption {
					case "DECK":
						for i := 0; i < 4; i++ {
							card, err := gs.DrawCard()
							if err != nil {
								return err
							}
							revealed = append(revealed, card)
						}
					case "DISCARD":
						for i := 0; i < 4; i++ {
							card, err := gs.DiscardPile.Draw()
							if err != nil {
								break
							}
							revealed = append(revealed, card)
						}
					default:
						return fmt.Errorf("%w: unknown option %q", ErrInvalidInput, input.ClientOptions.SelectedOption)
					}
					if len(revealed) == 0 {
						return nil
					}
					var playable []CardName
					for _, card := range revealed {
						if p.CanAddToCity(card) {
							playable = append(playable, card)
						}
					}
					gs.QueuePendingInput(&GameInput{
						InputType:             InputSelectCards,
						PrevInputType:         input.InputType,
						CardContext:           CardCemetary,
						CardOptions:           playable,
						CardOptionsUnfiltered: revealed,
						MaxToSelect:           1,
					})
					return nil
				case input.InputType == InputSelectCards && input.CardContext == CardCemetary:
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 0, 1); err != nil {
						return err
					}
					leftover := append([]CardName{}, input.CardOptionsUnfiltered...)
					if len(selected) == 1 {
						for i, card := range leftover {
							if card == selected[0] {
								leftover = append(leftover[:i], leftover[i+1:]...)
								break
							}
						}
						if err := gs.playCardForFree(selected[0], input); err != nil {
							return err
						}
					}
					for _, card := range leftover {
						gs.DiscardPile.Push(card)
					}
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:      InputSelectOptionGeneric,
					PrevInputType:  input.InputType,
					CardContext:    CardCemetary,
					GenericOptions: []string{"DECK", "DISCARD"},
					MustSelectOne:  true,
				})
				return nil
			},
		},
		CardChapel: {
			Name:           CardChapel,
			Type:           CardTypeDestination,
			BaseCost:       CardCost{ResourceTwig: 2, ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         2,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardShepherd,
			playedCardInfoInner: func() *PlayedCardInfo {
				return &PlayedCardInfo{Resources: ResourceMap{ResourceVP: 0}}
			},
			// Place 1 VP on the Chapel, then draw 2 cards per VP on it.
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				infos := p.GetPlayedCardInfos(CardChapel)
				if len(infos) == 0 {
					return fmt.Errorf("%w: no chapel in city", ErrInvariant)
				}
				info := infos[0]
				info.Resources[ResourceVP]++
				return p.DrawCards(gs, 2*info.Resources[ResourceVP])
			},
		},
		CardChipSweep: {
			Name:           CardChipSweep,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 3},
			BaseVP:         2,
			AssociatedCard: CardResinRefinery,
			// Activate one of your other production cards.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectPlayedCards && input.CardContext == CardChipSweep {
					selected := input.ClientOptions.SelectedPlayedCards
					if err := validateSelectedPlayedCards(selected, input.PlayedCardOptions, 1, 1); err != nil {
						return err
					}
					return CardFromName(selected[0].CardName).activateProduction(gs, input)
				}
				options := productionCardRefs(p, CardChipSweep)
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:         InputSelectPlayedCards,
					PrevInputType:     input.InputType,
					CardContext:       CardChipSweep,
					PlayedCardOptions: options,
					MinToSelect:       1,
					MaxToSelect:       1,
				})
				return nil
			},
		},
		CardClockTower: {
			Name:           CardClockTower,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourceTwig: 3, ResourcePebble: 1},
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardHistorian,
			playedCardInfoInner: func() *PlayedCardInfo {
				return &PlayedCardInfo{Resources: ResourceMap{ResourceVP: 3}}
			},
			// Before season recall, pay 1 VP from the tower to re-activate a
			// basic or forest location one of your workers occupies.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				infos := p.GetPlayedCardInfos(CardClockTower)
				if len(infos) == 0 {
					return fmt.Errorf("%w: no clock tower in city", ErrInvariant)
				}
				tower := infos[0]
				if input.InputType == InputSelectWorkerPlacement && input.CardContext == CardClockTower {
					selected := input.ClientOptions.SelectedWorker
					if selected == nil {
						return nil
					}
					if err := validateSelectedWorker(*selected, input.WorkerOptions); err != nil {
						return err
					}
					tower.Resources[ResourceVP]--
					return LocationFromName(selected.Location).Activate(gs, input)
				}
				// The ability only fires during season prep, never on play.
				if input.InputType != InputPrepareForSeason {
					return nil
				}
				if tower.Resources[ResourceVP] <= 0 {
					return nil
				}
				var options []WorkerPlacement
				for _, w := range p.PlacedWorkers {
					if w.Location == "" {
						continue
					}
					t := LocationFromName(w.Location).Type
					if t == LocationTypeBasic || t == LocationTypeForest {
						options = append(options, w)
					}
				}
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectWorkerPlacement,
					PrevInputType: input.InputType,
					CardContext:   CardClockTower,
					WorkerOptions: options,
				})
				return nil
			},
		},
		CardCourthouse: {
			Name:           CardCourthouse,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourceTwig: 1, ResourceResin: 1, ResourcePebble: 2},
			BaseVP:         2,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardJudge,
			// Gain 1 twig, resin or pebble whenever you play a construction.
			// The trigger queues the selection; this hook resolves it.
			playInner: func(gs *GameState, input *GameInput) error {
				if input.InputType != InputSelectResources || input.CardContext != CardCourthouse {
					return nil
				}
				p := gs.ActivePlayer()
				chosen := input.ClientOptions.Resources
				if err := validateResourceSelection(chosen, 1, 1, ""); err != nil {
					return err
				}
				if chosen[ResourceBerry] > 0 {
					return fmt.Errorf("%w: courthouse cannot gain berries", ErrInvalidInput)
				}
				p.GainResources(chosen)
				return nil
			},
		},
		CardCrane: {
			Name:           CardCrane,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourcePebble: 1},
			BaseVP:         1,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardArchitect,
		},
		CardDoctor: {
			Name:           CardDoctor,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 4},
			BaseVP:         4,
			IsUnique:       true,
			AssociatedCard: CardUniversity,
			playInner:      spendResourcesForVPFactory(CardDoctor, ResourceBerry, 3),
		},
		CardDungeon: {
			Name:           CardDungeon,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourceResin: 1, ResourcePebble: 2},
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardRanger,
			playedCardInfoInner: func() *PlayedCardInfo {
				return &PlayedCardInfo{PairedCards: []CardName{}}
			},
		},
		CardEvertree: {
			Name:           CardEvertree,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceTwig: 3, ResourceResin: 3, ResourcePebble: 3},
			BaseVP:         5,
			IsUnique:       true,
			IsConstruction: true,
			// 1 point per prosperity card.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				return countPointsBy(p, func(c *Card) bool {
					return c.Type == CardTypeProsperity
				})
			},
		},
		CardFairgrounds: {
			Name:           CardFairgrounds,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceTwig: 1, ResourceResin: 2, ResourcePebble: 1},
			BaseVP:         3,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardFool,
			playInner:      gainResourcesFactory(nil, 2),
		},
		CardFarm: {
			Name:           CardFarm,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceTwig: 2, ResourceResin: 1},
			BaseVP:         1,
			IsConstruction: true,
			playInner:      gainResourcesFactory(ResourceMap{ResourceBerry: 1}, 0),
		},
		CardFool: {
			Name:           CardFool,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{ResourceBerry: 3},
			BaseVP:         -2,
			IsUnique:       true,
			AssociatedCard: CardFairgrounds,
			// The Fool goes into an opponent's city instead of yours.
			canPlayInner: func(gs *GameState, input *GameInput) bool {
				for _, id := range gs.OpponentIDs() {
					opp, err := gs.GetPlayer(id)
					if err == nil && opp.CanAddToCity(CardFool) {
						return true
					}
				}
				return false
			},
			playInner: func(gs *GameState, input *GameInput) error {
				if input.InputType == InputSelectPlayer && input.CardContext == CardFool {
					selected := input.ClientOptions.SelectedPlayer
					if err := validateSelectedPlayer(selected, input.PlayerOptions); err != nil {
						return err
					}
					target, err := gs.GetPlayer(selected)
					if err != nil {
						return err
					}
					return target.AddToCity(CardFool)
				}
				var options []string
				for _, id := range gs.OpponentIDs() {
					opp, err := gs.GetPlayer(id)
					if err == nil && opp.CanAddToCity(CardFool) {
						options = append(options, id)
					}
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectPlayer,
					PrevInputType: input.InputType,
					CardContext:   CardFool,
					PlayerOptions: options,
				})
				return nil
			},
		},
		CardGeneralStore: {
			Name:           CardGeneralStore,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         1,
			IsConstruction: true,
			AssociatedCard: CardShopkeeper,
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				berries := 1
				if p.HasCardInCity(CardFarm) {
					berries = 2
				}
				p.GainResources(ResourceMap{ResourceBerry: berries})
				return nil
			},
		},
		CardHistorian: {
			Name:           CardHistorian,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         1,
			IsUnique:       true,
			AssociatedCard: CardClockTower,
		},
		CardHusband: {
			Name:           CardHusband,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 3},
			BaseVP:         2,
			AssociatedCard: CardFarm,
			// A husband paired with a wife gains 1 resource of any kind, as
			// long as a farm is in the city.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectResources && input.CardContext == CardHusband {
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, 1, 1, ""); err != nil {
						return err
					}
					p.GainResources(chosen)
					return nil
				}
				if !p.HasCardInCity(CardFarm) {
					return nil
				}
				if input.InputType == InputPlayCard && input.Card == CardHusband {
					// Only a newly paired husband triggers on play.
					if len(p.PlayedCards[CardHusband]) > len(p.PlayedCards[CardWife]) {
						return nil
					}
				} else {
					queued := gs.countPendingCardContinuations(InputSelectResources, CardHusband)
					if queued >= p.NumHusbandWifePairs() {
						return nil
					}
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectResources,
					PrevInputType: input.InputType,
					CardContext:   CardHusband,
					MinResources:  1,
					MaxResources:  1,
				})
				return nil
			},
		},
		CardInn: {
			Name:              CardInn,
			Type:              CardTypeDestination,
			BaseCost:          CardCost{ResourceTwig: 2, ResourceResin: 1},
			BaseVP:            2,
			IsConstruction:    true,
			IsOpenDestination: true,
			AssociatedCard:    CardInnkeeper,
			// Play a meadow card with a discount of up to 3 resources.
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectCards && input.CardContext == CardInn:
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 1, 1); err != nil {
						return err
					}
					gs.QueuePendingInput(&GameInput{
						InputType:     InputSelectPaymentForCard,
						PrevInputType: input.InputType,
						CardContext:   CardInn,
						Card:          selected[0],
					})
					return nil
				case input.InputType == InputSelectPaymentForCard && input.CardContext == CardInn:
					if input.ClientOptions.Payment == nil {
						return fmt.Errorf("%w: missing payment", ErrInvalidInput)
					}
					paid := input.ClientOptions.Payment.Resources
					if err := p.checkPayment(paid, CardFromName(input.Card).BaseCost, discountAny); err != nil {
						return err
					}
					if err := p.SpendResources(paid); err != nil {
						return err
					}
					if err := gs.RemoveFromMeadow(input.Card); err != nil {
						return err
					}
					if err := gs.playCardForFree(input.Card, input); err != nil {
						return err
					}
					return gs.ReplenishMeadow()
				}
				var options []CardName
				for _, card := range gs.Meadow {
					if ok, _ := p.isPaidResourcesValid(p.Resources, CardFromName(card).BaseCost, discountAny, false); ok && p.CanAddToCity(card) {
						options = append(options, card)
					}
				}
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectCards,
					PrevInputType: input.InputType,
					CardContext:   CardInn,
					CardOptions:   options,
					MinToSelect:   1,
					MaxToSelect:   1,
				})
				return nil
			},
		},
		CardInnkeeper: {
			Name:           CardInnkeeper,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourceBerry: 1},
			BaseVP:         1,
			IsUnique:       true,
			AssociatedCard: CardInn,
		},
		CardJudge: {
			Name:           CardJudge,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourceBerry: 3},
			BaseVP:         2,
			IsUnique:       true,
			AssociatedCard: CardCourthouse,
		},
		CardKing: {
			Name:           CardKing,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceBerry: 6},
			BaseVP:         4,
			IsUnique:       true,
			AssociatedCard: CardCastle,
			// 1 point per basic event, 2 per special event claimed.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				points := 0
				for name := range p.ClaimedEvents {
					if EventFromName(name).Type == EventTypeBasic {
						points++
					} else {
						points += 2
					}
				}
				return points
			},
		},
		CardLookout: {
			Name:           CardLookout,
			Type:           CardTypeDestination,
			BaseCost:       CardCost{ResourceTwig: 1, ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         2,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardWanderer,
			// Copy any basic or forest location on the board.
			visitInner: func(gs *GameState, input *GameInput) error {
				if input.InputType == InputSelectLocation && input.CardContext == CardLookout {
					selected := input.ClientOptions.SelectedLocation
					if !containsLocation(input.LocationOptions, selected) {
						return fmt.Errorf("%w: %s was not an option", ErrInvalidInput, selected)
					}
					return LocationFromName(selected).Activate(gs, input)
				}
				var options []LocationName
				for name := range gs.LocationsMap {
					t := LocationFromName(name).Type
					if t == LocationTypeBasic || t == LocationTypeForest {
						options = append(options, name)
					}
				}
				sort.Slice(options, func(i, j int) bool { return options[i] < options[j] })
				gs.QueuePendingInput(&GameInput{
					InputType:       InputSelectLocation,
					PrevInputType:   input.InputType,
					CardContext:     CardLookout,
					LocationOptions: options,
				})
				return nil
			},
		},
		CardMine: {
			Name:           CardMine,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceTwig: 1, ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         2,
			IsConstruction: true,
			AssociatedCard: CardMinerMole,
			playInner:      gainResourcesFactory(ResourceMap{ResourcePebble: 1}, 0),
		},
		CardMinerMole: {
			Name:           CardMinerMole,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 3},
			BaseVP:         1,
			AssociatedCard: CardMine,
			// Copy a production card in an opponent's city.
			playInner: func(gs *GameState, input *GameInput) error {
				if input.InputType == InputSelectPlayedCards && input.CardContext == CardMinerMole {
					selected := input.ClientOptions.SelectedPlayedCards
					if err := validateSelectedPlayedCards(selected, input.PlayedCardOptions, 1, 1); err != nil {
						return err
					}
					return CardFromName(selected[0].CardName).activateProduction(gs, input)
				}
				var options []PlayedCardRef
				for _, id := range gs.OpponentIDs() {
					opp, err := gs.GetPlayer(id)
					if err != nil {
						return err
					}
					options = append(options, productionCardRefs(opp, CardMinerMole, CardChipSweep)...)
				}
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:         InputSelectPlayedCards,
					PrevInputType:     input.InputType,
					CardContext:       CardMinerMole,
					PlayedCardOptions: options,
					MinToSelect:       1,
					MaxToSelect:       1,
				})
				return nil
			},
		},
		CardMonastery: {
			Name:           CardMonastery,
			Type:           CardTypeDestination,
			BaseCost:       CardCost{ResourceTwig: 1, ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         1,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardMonk,
			// Give 2 resources to an opponent, gain 4 VP. The worker never
			// comes back.
			canVisitInner: func(gs *GameState, input *GameInput) bool {
				return gs.ActivePlayer().Resources.spendableSum() >= 2 && len(gs.OpponentIDs()) > 0
			},
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectResources && input.CardContext == CardMonastery:
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, 2, 2, ""); err != nil {
						return err
					}
					gs.QueuePendingInput(&GameInput{
						InputType:     InputSelectPlayer,
						PrevInputType: input.InputType,
						PrevInput:     input,
						CardContext:   CardMonastery,
						PlayerOptions: gs.OpponentIDs(),
					})
					return nil
				case input.InputType == InputSelectPlayer && input.CardContext == CardMonastery:
					selected := input.ClientOptions.SelectedPlayer
					if err := validateSelectedPlayer(selected, input.PlayerOptions); err != nil {
						return err
					}
					target, err := gs.GetPlayer(selected)
					if err != nil {
						return err
					}
					given := input.PrevInput.ClientOptions.Resources
					if err := p.SpendResources(given); err != nil {
						return err
					}
					target.GainResources(given)
					p.GainResources(ResourceMap{ResourceVP: 4})
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectResources,
					PrevInputType: input.InputType,
					CardContext:   CardMonastery,
					MinResources:  2,
					MaxResources:  2,
					ToSpend:       true,
				})
				return nil
			},
		},
		CardMonk: {
			Name:           CardMonk,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 1},
			IsUnique:       true,
			AssociatedCard: CardMonastery,
			// Give up to 2 berries to an opponent, gain 2 VP each.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectResources && input.CardContext == CardMonk:
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, 0, 2, ResourceBerry); err != nil {
						return err
					}
					if chosen.Sum() == 0 {
						return nil
					}
					gs.QueuePendingInput(&GameInput{
						InputType:     InputSelectPlayer,
						PrevInputType: input.InputType,
						PrevInput:     input,
						CardContext:   CardMonk,
						PlayerOptions: gs.OpponentIDs(),
					})
					return nil
				case input.InputType == InputSelectPlayer && input.CardContext == CardMonk:
					selected := input.ClientOptions.SelectedPlayer
					if err := validateSelectedPlayer(selected, input.PlayerOptions); err != nil {
						return err
					}
					target, err := gs.GetPlayer(selected)
					if err != nil {
						return err
					}
					given := input.PrevInput.ClientOptions.Resources
					if err := p.SpendResources(given); err != nil {
						return err
					}
					target.GainResources(given)
					p.GainResources(ResourceMap{ResourceVP: 2 * given.Sum()})
					return nil
				}
				if p.NumResourcesByType(ResourceBerry) == 0 || len(gs.OpponentIDs()) == 0 {
					return nil
				}
				max := 2
				if n := p.NumResourcesByType(ResourceBerry); n < max {
					max = n
				}
				gs.QueuePendingInput(&GameInput{
					InputType:        InputSelectResources,
					PrevInputType:    input.InputType,
					CardContext:      CardMonk,
					MaxResources:     max,
					SpecificResource: ResourceBerry,
					ToSpend:          true,
				})
				return nil
			},
		},
		CardPalace: {
			Name:           CardPalace,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceTwig: 2, ResourceResin: 3, ResourcePebble: 3},
			BaseVP:         4,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardQueen,
			// 1 point per unique construction.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				return countPointsBy(p, func(c *Card) bool {
					return c.IsConstruction && c.IsUnique
				})
			},
		},
		CardPeddler: {
			Name:           CardPeddler,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         1,
			AssociatedCard: CardRuins,
			// Pay up to 2 resources, gain an equal number of any resources.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectResources && input.CardContext == CardPeddler {
					chosen := input.ClientOptions.Resources
					if input.ToSpend {
						if err := validateResourceSelection(chosen, 0, 2, ""); err != nil {
							return err
						}
						if err := p.SpendResources(chosen); err != nil {
							return err
						}
						if n := chosen.Sum(); n > 0 {
							gs.QueuePendingInput(&GameInput{
								InputType:     InputSelectResources,
								PrevInputType: input.InputType,
								CardContext:   CardPeddler,
								MinResources:  n,
								MaxResources:  n,
							})
						}
						return nil
					}
					if err := validateResourceSelection(chosen, input.MinResources, input.MaxResources, ""); err != nil {
						return err
					}
					p.GainResources(chosen)
					return nil
				}
				if p.Resources.spendableSum() == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectResources,
					PrevInputType: input.InputType,
					CardContext:   CardPeddler,
					MaxResources:  2,
					ToSpend:       true,
				})
				return nil
			},
		},
		CardPostOffice: {
			Name:              CardPostOffice,
			Type:              CardTypeDestination,
			BaseCost:          CardCost{ResourceTwig: 1, ResourceResin: 2},
			BaseVP:            2,
			IsConstruction:    true,
			IsOpenDestination: true,
			AssociatedCard:    CardPostalPigeon,
			// Give an opponent 2 hand cards, then discard any number of cards
			// and draw back up to the hand limit.
			canVisitInner: func(gs *GameState, input *GameInput) bool {
				return len(gs.ActivePlayer().CardsInHand) >= 2 && len(gs.OpponentIDs()) > 0
			},
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectPlayer && input.CardContext == CardPostOffice:
					selected := input.ClientOptions.SelectedPlayer
					if err := validateSelectedPlayer(selected, input.PlayerOptions); err != nil {
						return err
					}
					gs.QueuePendingInput(&GameInput{
						InputType:     InputSelectCards,
						PrevInputType: input.InputType,
						PrevInput:     input,
						CardContext:   CardPostOffice,
						CardOptions:   append([]CardName{}, p.CardsInHand...),
						MinToSelect:   2,
						MaxToSelect:   2,
					})
					return nil
				case input.InputType == InputSelectCards && input.CardContext == CardPostOffice:
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 2, 2); err != nil {
						return err
					}
					target, err := gs.GetPlayer(input.PrevInput.ClientOptions.SelectedPlayer)
					if err != nil {
						return err
					}
					for _, card := range selected {
						if err := p.RemoveCardFromHand(card); err != nil {
							return err
						}
						target.AddCardToHand(gs, card)
					}
					gs.QueuePendingInput(&GameInput{
						InputType:     InputDiscardCards,
						PrevInputType: input.InputType,
						CardContext:   CardPostOffice,
						MaxToSelect:   MaxHandSize,
					})
					return nil
				case input.InputType == InputDiscardCards && input.CardContext == CardPostOffice:
					toDiscard := input.ClientOptions.CardsToDiscard
					if err := validateSelectedCards(toDiscard, p.CardsInHand, 0, len(p.CardsInHand)); err != nil {
						return err
					}
					for _, card := range toDiscard {
						if err := p.DiscardCard(gs, card); err != nil {
							return err
						}
					}
					return p.DrawCards(gs, MaxHandSize-len(p.CardsInHand))
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectPlayer,
					PrevInputType: input.InputType,
					CardContext:   CardPostOffice,
					PlayerOptions: gs.OpponentIDs(),
				})
				return nil
			},
		},
		CardPostalPigeon: {
			Name:           CardPostalPigeon,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{ResourceBerry: 2},
			AssociatedCard: CardPostOffice,
			// Reveal 2 cards; may play one of base VP up to 3 for free.
			playInner: func(gs *GameState, input *GameInput) error {
				if input.InputType == InputSelectCards && input.CardContext == CardPostalPigeon {
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 0, 1); err != nil {
						return err
					}
					leftover := append([]CardName{}, input.CardOptionsUnfiltered...)
					if len(selected) == 1 {
						for i, card := range leftover {
							if card == selected[0] {
								leftover = append(leftover[:i], leftover[i+1:]...)
								break
							}
						}
						if err := gs.playCardForFree(selected[0], input); err != nil {
							return err
						}
					}
					for _, card := range leftover {
						gs.DiscardPile.Push(card)
					}
					return nil
				}
				var revealed []CardName
				for i := 0; i < 2; i++ {
					card, err := gs.DrawCard()
					if err != nil {
						return err
					}
					revealed = append(revealed, card)
				}
				p := gs.ActivePlayer()
				var playable []CardName
				for _, card := range revealed {
					if CardFromName(card).BaseVP <= 3 && p.CanAddToCity(card) {
						playable = append(playable, card)
					}
				}
				gs.QueuePendingInput(&GameInput{
					InputType:             InputSelectCards,
					PrevInputType:         input.InputType,
					CardContext:           CardPostalPigeon,
					CardOptions:           playable,
					CardOptionsUnfiltered: revealed,
					MaxToSelect:           1,
				})
				return nil
			},
		},
		CardQueen: {
			Name:           CardQueen,
			Type:           CardTypeDestination,
			BaseCost:       CardCost{ResourceBerry: 5},
			BaseVP:         4,
			IsUnique:       true,
			AssociatedCard: CardPalace,
			// Play a card of base VP up to 3 for free.
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectCards && input.CardContext == CardQueen {
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 1, 1); err != nil {
						return err
					}
					card := selected[0]
					if containsCard(p.CardsInHand, card) {
						if err := p.RemoveCardFromHand(card); err != nil {
							return err
						}
						return gs.playCardForFree(card, input)
					}
					if err := gs.RemoveFromMeadow(card); err != nil {
						return err
					}
					if err := gs.playCardForFree(card, input); err != nil {
						return err
					}
					return gs.ReplenishMeadow()
				}
				var options []CardName
				for _, card := range append(append([]CardName{}, p.CardsInHand...), gs.Meadow...) {
					if CardFromName(card).BaseVP <= 3 && p.CanAddToCity(card) && !containsCard(options, card) {
						options = append(options, card)
					}
				}
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectCards,
					PrevInputType: input.InputType,
					CardContext:   CardQueen,
					CardOptions:   options,
					MinToSelect:   1,
					MaxToSelect:   1,
				})
				return nil
			},
		},
		CardRanger: {
			Name:           CardRanger,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         1,
			IsUnique:       true,
			AssociatedCard: CardDungeon,
			// Move one of your deployed workers somewhere new.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectWorkerPlacement && input.CardContext == CardRanger:
					selected := input.ClientOptions.SelectedWorker
					if selected == nil {
						return fmt.Errorf("%w: no worker selected", ErrInvalidInput)
					}
					if err := validateSelectedWorker(*selected, input.WorkerOptions); err != nil {
						return err
					}
					if err := p.RecallWorker(gs, *selected); err != nil {
						return err
					}
					options := gs.placeableLocations()
					if len(options) == 0 {
						return nil
					}
					gs.QueuePendingInput(&GameInput{
						InputType:       InputSelectLocation,
						PrevInputType:   input.InputType,
						CardContext:     CardRanger,
						LocationOptions: options,
					})
					return nil
				case input.InputType == InputSelectLocation && input.CardContext == CardRanger:
					selected := input.ClientOptions.SelectedLocation
					if !containsLocation(input.LocationOptions, selected) {
						return fmt.Errorf("%w: %s was not an option", ErrInvalidInput, selected)
					}
					return gs.visitLocation(selected, input)
				}
				options := p.RecallableWorkers()
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectWorkerPlacement,
					PrevInputType: input.InputType,
					CardContext:   CardRanger,
					WorkerOptions: options,
				})
				return nil
			},
		},
		CardResinRefinery: {
			Name:           CardResinRefinery,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         1,
			IsConstruction: true,
			AssociatedCard: CardChipSweep,
			playInner:      gainResourcesFactory(ResourceMap{ResourceResin: 1}, 0),
		},
		CardRuins: {
			Name:           CardRuins,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{},
			IsConstruction: true,
			AssociatedCard: CardPeddler,
			// Demolish a construction: refund its cost and draw 2 cards.
			canPlayInner: func(gs *GameState, input *GameInput) bool {
				p := gs.ActivePlayer()
				for name := range p.PlayedCards {
					if name != CardRuins && CardFromName(name).IsConstruction {
						return true
					}
				}
				return false
			},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectPlayedCards && input.CardContext == CardRuins {
					selected := input.ClientOptions.SelectedPlayedCards
					if err := validateSelectedPlayedCards(selected, input.PlayedCardOptions, 1, 1); err != nil {
						return err
					}
					demolished := CardFromName(selected[0].CardName)
					if _, err := p.RemoveCardFromCity(gs, demolished.Name, true); err != nil {
						return err
					}
					p.GainResources(demolished.BaseCost)
					return p.DrawCards(gs, 2)
				}
				var options []PlayedCardRef
				for _, name := range AllCardNames() {
					if name == CardRuins || len(p.PlayedCards[name]) == 0 {
						continue
					}
					if CardFromName(name).IsConstruction {
						options = append(options, PlayedCardRef{OwnerID: p.PlayerID, CardName: name})
					}
				}
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:         InputSelectPlayedCards,
					PrevInputType:     input.InputType,
					CardContext:       CardRuins,
					PlayedCardOptions: options,
					MinToSelect:       1,
					MaxToSelect:       1,
				})
				return nil
			},
		},
		CardSchool: {
			Name:           CardSchool,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceTwig: 2, ResourceResin: 2},
			BaseVP:         2,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardTeacher,
			// 1 point per common critter.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				return countPointsBy(p, func(c *Card) bool {
					return c.IsCritter() && !c.IsUnique
				})
			},
		},
		CardShepherd: {
			Name:           CardShepherd,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{ResourceBerry: 3},
			BaseVP:         1,
			IsUnique:       true,
			AssociatedCard: CardChapel,
			// Gain 3 berries, plus 1 VP per VP on your Chapel.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				p.GainResources(ResourceMap{ResourceBerry: 3})
				if infos := p.GetPlayedCardInfos(CardChapel); len(infos) > 0 {
					p.GainResources(ResourceMap{ResourceVP: infos[0].Resources[ResourceVP]})
				}
				return nil
			},
		},
		CardShopkeeper: {
			Name:           CardShopkeeper,
			Type:           CardTypeGovernance,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         1,
			IsUnique:       true,
			AssociatedCard: CardGeneralStore,
		},
		CardStorehouse: {
			Name:           CardStorehouse,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceTwig: 1, ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         2,
			IsConstruction: true,
			AssociatedCard: CardWoodcarver,
			playedCardInfoInner: func() *PlayedCardInfo {
				return &PlayedCardInfo{
					Resources:  ResourceMap{ResourceTwig: 0, ResourceResin: 0, ResourcePebble: 0, ResourceBerry: 0},
					MaxWorkers: 1,
				}
			},
			// Production stocks the card; a worker visit takes the whole pile.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectOptionGeneric && input.CardContext == CardStorehouse {
					infos := p.GetPlayedCardInfos(CardStorehouse)
					if len(infos) == 0 {
						return fmt.Errorf("%w: no storehouse in city", ErrInvariant)
					}
					info := infos[0]
					for _, other := range infos {
						if other.Resources.Sum() < info.Resources.Sum() {
							info = other
						}
					}
					switch input.ClientOptions.SelectedOption {
					case "3 TWIG":
						info.Resources[ResourceTwig] += 3
					case "2 RESIN":
						info.Resources[ResourceResin] += 2
					case "1 PEBBLE":
						info.Resources[ResourcePebble]++
					case "2 BERRY":
						info.Resources[ResourceBerry] += 2
					default:
						return fmt.Errorf("%w: unknown option %q", ErrInvalidInput, input.ClientOptions.SelectedOption)
					}
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:      InputSelectOptionGeneric,
					PrevInputType:  input.InputType,
					CardContext:    CardStorehouse,
					GenericOptions: []string{"3 TWIG", "2 RESIN", "1 PEBBLE", "2 BERRY"},
					MustSelectOne:  true,
				})
				return nil
			},
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				for _, info := range p.GetPlayedCardInfos(CardStorehouse) {
					if containsString(info.Workers, p.PlayerID) {
						p.GainResources(info.Resources)
						info.Resources = ResourceMap{ResourceTwig: 0, ResourceResin: 0, ResourcePebble: 0, ResourceBerry: 0}
						return nil
					}
				}
				return fmt.Errorf("%w: no worker on storehouse", ErrInvariant)
			},
		},
		CardTeacher: {
			Name:           CardTeacher,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         2,
			AssociatedCard: CardSchool,
			// Draw 2 cards, keep one and give the other to an opponent.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectCards && input.CardContext == CardTeacher:
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 1, 1); err != nil {
						return err
					}
					p.AddCardToHand(gs, selected[0])
					if len(gs.OpponentIDs()) == 0 {
						return nil
					}
					gs.QueuePendingInput(&GameInput{
						InputType:     InputSelectPlayer,
						PrevInputType: input.InputType,
						PrevInput:     input,
						CardContext:   CardTeacher,
						PlayerOptions: gs.OpponentIDs(),
					})
					return nil
				case input.InputType == InputSelectPlayer && input.CardContext == CardTeacher:
					selected := input.ClientOptions.SelectedPlayer
					if err := validateSelectedPlayer(selected, input.PlayerOptions); err != nil {
						return err
					}
					target, err := gs.GetPlayer(selected)
					if err != nil {
						return err
					}
					prev := input.PrevInput
					leftover := append([]CardName{}, prev.CardOptions...)
					for i, card := range leftover {
						if card == prev.ClientOptions.SelectedCards[0] {
							leftover = append(leftover[:i], leftover[i+1:]...)
							break
						}
					}
					for _, card := range leftover {
						target.AddCardToHand(gs, card)
					}
					return nil
				}
				var drawn []CardName
				for i := 0; i < 2; i++ {
					card, err := gs.DrawCard()
					if err != nil {
						return err
					}
					drawn = append(drawn, card)
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectCards,
					PrevInputType: input.InputType,
					CardContext:   CardTeacher,
					CardOptions:   drawn,
					MinToSelect:   1,
					MaxToSelect:   1,
				})
				return nil
			},
		},
		CardTheatre: {
			Name:           CardTheatre,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceTwig: 3, ResourceResin: 1, ResourcePebble: 1},
			BaseVP:         3,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardBard,
			// 1 point per unique critter.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				return countPointsBy(p, func(c *Card) bool {
					return c.IsCritter() && c.IsUnique
				})
			},
		},
		CardTwigBarge: {
			Name:           CardTwigBarge,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceTwig: 1, ResourcePebble: 1},
			BaseVP:         1,
			IsConstruction: true,
			AssociatedCard: CardBargeToad,
			playInner:      gainResourcesFactory(ResourceMap{ResourceTwig: 2}, 0),
		},
		CardUndertaker: {
			Name:           CardUndertaker,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         1,
			IsUnique:       true,
			AssociatedCard: CardCemetary,
			// Discard 3 meadow cards, replenish, then take one of the meadow.
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectCards && input.CardContext == CardUndertaker {
					selected := input.ClientOptions.SelectedCards
					if input.PrevInputType != InputSelectCards {
						if err := validateSelectedCards(selected, input.CardOptions, 3, 3); err != nil {
							return err
						}
						for _, card := range selected {
							if err := gs.RemoveFromMeadow(card); err != nil {
								return err
							}
							gs.DiscardPile.Push(card)
						}
						if err := gs.ReplenishMeadow(); err != nil {
							return err
						}
						gs.QueuePendingInput(&GameInput{
							InputType:     InputSelectCards,
							PrevInputType: InputSelectCards,
							CardContext:   CardUndertaker,
							CardOptions:   append([]CardName{}, gs.Meadow...),
							MinToSelect:   1,
							MaxToSelect:   1,
						})
						return nil
					}
					if err := validateSelectedCards(selected, input.CardOptions, 1, 1); err != nil {
						return err
					}
					if err := gs.RemoveFromMeadow(selected[0]); err != nil {
						return err
					}
					p.AddCardToHand(gs, selected[0])
					return gs.ReplenishMeadow()
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectCards,
					PrevInputType: input.InputType,
					CardContext:   CardUndertaker,
					CardOptions:   append([]CardName{}, gs.Meadow...),
					MinToSelect:   3,
					MaxToSelect:   3,
				})
				return nil
			},
		},
		CardUniversity: {
			Name:           CardUniversity,
			Type:           CardTypeDestination,
			BaseCost:       CardCost{ResourceResin: 1, ResourcePebble: 2},
			BaseVP:         3,
			IsUnique:       true,
			IsConstruction: true,
			AssociatedCard: CardDoctor,
			// Discard a city card: refund its cost plus 1 resource of your
			// choice and 1 VP.
			visitInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectPlayedCards && input.CardContext == CardUniversity:
					selected := input.ClientOptions.SelectedPlayedCards
					if err := validateSelectedPlayedCards(selected, input.PlayedCardOptions, 1, 1); err != nil {
						return err
					}
					discarded := CardFromName(selected[0].CardName)
					if _, err := p.RemoveCardFromCity(gs, discarded.Name, true); err != nil {
						return err
					}
					p.GainResources(discarded.BaseCost)
					p.GainResources(ResourceMap{ResourceVP: 1})
					gs.QueuePendingInput(&GameInput{
						InputType:     InputSelectResources,
						PrevInputType: input.InputType,
						CardContext:   CardUniversity,
						MinResources:  1,
						MaxResources:  1,
					})
					return nil
				case input.InputType == InputSelectResources && input.CardContext == CardUniversity:
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, 1, 1, ""); err != nil {
						return err
					}
					p.GainResources(chosen)
					return nil
				}
				var options []PlayedCardRef
				for _, name := range AllCardNames() {
					if name == CardUniversity || len(p.PlayedCards[name]) == 0 {
						continue
					}
					options = append(options, PlayedCardRef{OwnerID: p.PlayerID, CardName: name})
				}
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:         InputSelectPlayedCards,
					PrevInputType:     input.InputType,
					CardContext:       CardUniversity,
					PlayedCardOptions: options,
					MinToSelect:       1,
					MaxToSelect:       1,
				})
				return nil
			},
		},
		CardWanderer: {
			Name:           CardWanderer,
			Type:           CardTypeTraveler,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         1,
			AssociatedCard: CardLookout,
			playInner:      gainResourcesFactory(nil, 3),
		},
		CardWife: {
			Name:           CardWife,
			Type:           CardTypeProsperity,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         2,
			AssociatedCard: CardFarm,
			// 3 points per wife paired with a husband.
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				return 3 * p.NumHusbandWifePairs()
			},
		},
		CardWoodcarver: {
			Name:           CardWoodcarver,
			Type:           CardTypeProduction,
			BaseCost:       CardCost{ResourceBerry: 2},
			BaseVP:         2,
			AssociatedCard: CardStorehouse,
			playInner:      spendResourcesForVPFactory(CardWoodcarver, ResourceTwig, 3),
		},
	}
}
