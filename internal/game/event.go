package game

import (
	"fmt"
	"math/rand"
	"sort"
)

// Event is a static registry entry for a claimable achievement. Basic events
// are always on the board; four random special events join them at setup.
type Event struct {
	Name          EventName
	Type          EventType
	BaseVP        int
	RequiredCards []CardName

	playInner            PlayFn
	canPlayCheckInner    func(gs *GameState, input *GameInput) error
	playedEventInfoInner func() *PlayedEventInfo
	pointsInner          PointsFn
}

// CanPlayCheck explains why the active player cannot claim this event, or
// returns nil when they can.
func (e *Event) CanPlayCheck(gs *GameState, input *GameInput) error {
	if _, onBoard := gs.EventsMap[e.Name]; !onBoard {
		return fmt.Errorf("%w: event %s is not part of this game", ErrIllegalAction, e.Name)
	}
	p := gs.ActivePlayer()
	if input.InputType == InputClaimEvent {
		if claimedBy := gs.EventsMap[e.Name]; claimedBy != "" {
			return fmt.Errorf("%w: event %s is already claimed", ErrIllegalAction, e.Name)
		}
		if p.NumAvailableWorkers() <= 0 {
			return fmt.Errorf("%w: no workers left to place", ErrIllegalAction)
		}
		for _, required := range e.RequiredCards {
			if !p.HasCardInCity(required) {
				return fmt.Errorf("%w: need %s in city to claim %s", ErrIllegalAction, required, e.Name)
			}
		}
	}
	if e.canPlayCheckInner != nil {
		return e.canPlayCheckInner(gs, input)
	}
	return nil
}

// CanPlay reports whether the active player may claim this event.
func (e *Event) CanPlay(gs *GameState, input *GameInput) bool {
	return e.CanPlayCheck(gs, input) == nil
}

// Play claims the event for the active player and runs its effect.
func (e *Event) Play(gs *GameState, input *GameInput) error {
	if err := e.CanPlayCheck(gs, input); err != nil {
		return err
	}
	p := gs.ActivePlayer()
	if input.InputType == InputClaimEvent {
		if err := p.PlaceWorkerOnEvent(e.Name); err != nil {
			return err
		}
		gs.EventsMap[e.Name] = p.PlayerID
	}
	if e.playInner != nil {
		return e.playInner(gs, input)
	}
	return nil
}

// resolveContinuation routes a continuation input tagged with this event's
// name back into its effect.
func (e *Event) resolveContinuation(gs *GameState, input *GameInput) error {
	if e.playInner == nil {
		return fmt.Errorf("%w: %s has no pending effect", ErrInvariant, e.Name)
	}
	return e.playInner(gs, input)
}

func (e *Event) newPlayedEventInfo() *PlayedEventInfo {
	if e.playedEventInfoInner != nil {
		return e.playedEventInfoInner()
	}
	return &PlayedEventInfo{}
}

// GetPoints returns the points this event contributes to the given player's
// score. Pure read.
func (e *Event) GetPoints(gs *GameState, playerID string) int {
	points := e.BaseVP
	if e.pointsInner != nil {
		points += e.pointsInner(gs, playerID)
	}
	return points
}

// EventFromName looks up an event's registry entry.
func EventFromName(name EventName) *Event {
	event, ok := eventRegistry[name]
	if !ok {
		panic(fmt.Sprintf("unknown event: %s", name))
	}
	return event
}

// EventsByType returns the names of every registered event of the given
// type, sorted.
func EventsByType(t EventType) []EventName {
	var names []EventName
	for name, event := range eventRegistry {
		if event.Type == t {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// initialEventsMap builds the event board for a fresh game: the four basic
// events plus four random special events, all unclaimed.
func initialEventsMap(r *rand.Rand) map[EventName]string {
	events := map[EventName]string{}
	for _, name := range EventsByType(EventTypeBasic) {
		events[name] = ""
	}
	specials := EventsByType(EventTypeSpecial)
	if r != nil {
		r.Shuffle(len(specials), func(i, j int) {
			specials[i], specials[j] = specials[j], specials[i]
		})
	}
	for _, name := range specials[:4] {
		events[name] = ""
	}
	return events
}

// basicEvent builds a "have at least count cards of one type" event.
func basicEvent(name EventName, t CardType, count int) *Event {
	return &Event{
		Name:   name,
		Type:   EventTypeBasic,
		BaseVP: 3,
		canPlayCheckInner: func(gs *GameState, input *GameInput) error {
			if gs.ActivePlayer().NumCardType(t) < count {
				return fmt.Errorf("%w: need at least %d %s cards to claim %s", ErrIllegalAction, count, t, name)
			}
			return nil
		},
	}
}

// storeResourcesEvent builds a "place up to max of one resource type here"
// event worth vpPer points per stored resource.
func storeResourcesEvent(name EventName, required []CardName, rt ResourceType, max, vpPer int) *Event {
	return &Event{
		Name:          name,
		Type:          EventTypeSpecial,
		RequiredCards: required,
		playedEventInfoInner: func() *PlayedEventInfo {
			return &PlayedEventInfo{StoredResources: ResourceMap{rt: 0}}
		},
		playInner: func(gs *GameState, input *GameInput) error {
			p := gs.ActivePlayer()
			if input.InputType == InputSelectResources && input.EventContext == name {
				chosen := input.ClientOptions.Resources
				if err := validateResourceSelection(chosen, 0, max, rt); err != nil {
					return err
				}
				if err := p.SpendResources(chosen); err != nil {
					return err
				}
				info := p.ClaimedEvents[name]
				if info == nil {
					return fmt.Errorf("%w: event %s not claimed", ErrInvariant, name)
				}
				info.StoredResources[rt] += chosen[rt]
				return nil
			}
			gs.QueuePendingInput(&GameInput{
				InputType:        InputSelectResources,
				PrevInputType:    input.InputType,
				EventContext:     name,
				MaxResources:     max,
				SpecificResource: rt,
				ToSpend:          true,
			})
			return nil
		},
		pointsInner: func(gs *GameState, playerID string) int {
			p, err := gs.GetPlayer(playerID)
			if err != nil {
				return 0
			}
			info := p.ClaimedEvents[name]
			if info == nil || info.StoredResources == nil {
				return 0
			}
			return vpPer * info.StoredResources[rt]
		},
	}
}

// workersOnCardEvent builds a "points per worker committed to a card" event.
func workersOnCardEvent(name EventName, required []CardName, card CardName, vpPer int) *Event {
	return &Event{
		Name:          name,
		Type:          EventTypeSpecial,
		RequiredCards: required,
		pointsInner: func(gs *GameState, playerID string) int {
			p, err := gs.GetPlayer(playerID)
			if err != nil {
				return 0
			}
			infos := p.GetPlayedCardInfos(card)
			if len(infos) == 0 {
				return 0
			}
			return vpPer * len(infos[0].Workers)
		},
	}
}

// eventRegistry is assigned in an init function for the same reason as
// cardRegistry: its closures resolve names through EventFromName.
var eventRegistry map[EventName]*Event

func init() {
	eventRegistry = map[EventName]*Event{
		EventBasicFourProduction:   basicEvent(EventBasicFourProduction, CardTypeProduction, 4),
		EventBasicThreeDestination: basicEvent(EventBasicThreeDestination, CardTypeDestination, 3),
		EventBasicThreeGovernance:  basicEvent(EventBasicThreeGovernance, CardTypeGovernance, 3),
		EventBasicThreeTraveler:    basicEvent(EventBasicThreeTraveler, CardTypeTraveler, 3),

		// Donate up to 3 resources to opponents, 2 VP stored here per donation.
		EventBrilliantMarketingPlan: {
			Name:          EventBrilliantMarketingPlan,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardShopkeeper, CardPostOffice},
			playedEventInfoInner: func() *PlayedEventInfo {
				return &PlayedEventInfo{StoredResources: ResourceMap{ResourceVP: 0}}
			},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				switch {
				case input.InputType == InputSelectPlayer && input.EventContext == EventBrilliantMarketingPlan:
					// Declining to pick a player ends the donations.
					if input.ClientOptions.SelectedPlayer == "" {
						return nil
					}
					if err := validateSelectedPlayer(input.ClientOptions.SelectedPlayer, input.PlayerOptions); err != nil {
						return err
					}
					gs.QueuePendingInput(&GameInput{
						InputType:     InputSelectResources,
						PrevInputType: input.InputType,
						PrevInput:     input,
						EventContext:  EventBrilliantMarketingPlan,
						MaxResources:  input.MaxResources,
						ToSpend:       true,
					})
					return nil
				case input.InputType == InputSelectResources && input.EventContext == EventBrilliantMarketingPlan:
					given := input.ClientOptions.Resources
					if err := validateResourceSelection(given, 0, input.MaxResources, ""); err != nil {
						return err
					}
					target, err := gs.GetPlayer(input.PrevInput.ClientOptions.SelectedPlayer)
					if err != nil {
						return err
					}
					if err := p.SpendResources(given); err != nil {
						return err
					}
					target.GainResources(given)
					info := p.ClaimedEvents[EventBrilliantMarketingPlan]
					if info == nil {
						return fmt.Errorf("%w: event %s not claimed", ErrInvariant, EventBrilliantMarketingPlan)
					}
					donated := given.Sum()
					info.StoredResources[ResourceVP] += 2 * donated
					if remaining := input.MaxResources - donated; remaining > 0 {
						gs.QueuePendingInput(&GameInput{
							InputType:     InputSelectPlayer,
							PrevInputType: input.InputType,
							EventContext:  EventBrilliantMarketingPlan,
							PlayerOptions: gs.OpponentIDs(),
							MaxResources:  remaining,
						})
					}
					return nil
				}
				if len(gs.OpponentIDs()) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectPlayer,
					PrevInputType: input.InputType,
					EventContext:  EventBrilliantMarketingPlan,
					PlayerOptions: gs.OpponentIDs(),
					MaxResources:  3,
				})
				return nil
			},
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				info := p.ClaimedEvents[EventBrilliantMarketingPlan]
				if info == nil || info.StoredResources == nil {
					return 0
				}
				return info.StoredResources[ResourceVP]
			},
		},

		// Bring back one of your deployed workers.
		EventWeeRunCity: {
			Name:          EventWeeRunCity,
			Type:          EventTypeSpecial,
			BaseVP:        4,
			RequiredCards: []CardName{CardChipSweep, CardClockTower},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectWorkerPlacement && input.EventContext == EventWeeRunCity {
					selected := input.ClientOptions.SelectedWorker
					if selected == nil {
						return fmt.Errorf("%w: no worker selected", ErrInvalidInput)
					}
					if err := validateSelectedWorker(*selected, input.WorkerOptions); err != nil {
						return err
					}
					return p.RecallWorker(gs, *selected)
				}
				var options []WorkerPlacement
				for _, w := range p.RecallableWorkers() {
					// The worker claiming this event stays put.
					if w.Event != EventWeeRunCity {
						options = append(options, w)
					}
				}
				if len(options) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectWorkerPlacement,
					PrevInputType: input.InputType,
					EventContext:  EventWeeRunCity,
					WorkerOptions: options,
					MustSelectOne: true,
				})
				return nil
			},
		},

		EventEveningOfFireworks: storeResourcesEvent(
			EventEveningOfFireworks,
			[]CardName{CardLookout, CardMinerMole},
			ResourceTwig, 3, 2,
		),
		EventPerformerInResidence: storeResourcesEvent(
			EventPerformerInResidence,
			[]CardName{CardInn, CardBard},
			ResourceBerry, 3, 2,
		),

		// Reveal 5 cards; draw any into hand, the rest stay here for 1 VP each.
		EventAncientScrolls: {
			Name:          EventAncientScrolls,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardHistorian, CardRuins},
			playedEventInfoInner: func() *PlayedEventInfo {
				return &PlayedEventInfo{StoredCards: []CardName{}}
			},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectCards && input.EventContext == EventAncientScrolls {
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 0, len(input.CardOptions)); err != nil {
						return err
					}
					leftover := append([]CardName{}, input.CardOptions...)
					for _, card := range selected {
						p.AddCardToHand(gs, card)
						for i, c := range leftover {
							if c == card {
								leftover = append(leftover[:i], leftover[i+1:]...)
								break
							}
						}
					}
					info := p.ClaimedEvents[EventAncientScrolls]
					if info == nil {
						return fmt.Errorf("%w: event %s not claimed", ErrInvariant, EventAncientScrolls)
					}
					info.StoredCards = append(info.StoredCards, leftover...)
					return nil
				}
				var revealed []CardName
				for i := 0; i < 5; i++ {
					card, err := gs.DrawCard()
					if err != nil {
						return err
					}
					revealed = append(revealed, card)
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectCards,
					PrevInputType: input.InputType,
					EventContext:  EventAncientScrolls,
					CardOptions:   revealed,
					MaxToSelect:   len(revealed),
				})
				return nil
			},
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				info := p.ClaimedEvents[EventAncientScrolls]
				if info == nil {
					return 0
				}
				return len(info.StoredCards)
			},
		},

		// Move up to 2 critters from your city beneath this event, 3 VP each.
		EventCaptureOfAcornThieves: {
			Name:          EventCaptureOfAcornThieves,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardCourthouse, CardRanger},
			playedEventInfoInner: func() *PlayedEventInfo {
				return &PlayedEventInfo{StoredCards: []CardName{}}
			},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectPlayedCards && input.EventContext == EventCaptureOfAcornThieves {
					selected := input.ClientOptions.SelectedPlayedCards
					if err := validateSelectedPlayedCards(selected, input.PlayedCardOptions, 0, 2); err != nil {
						return err
					}
					info := p.ClaimedEvents[EventCaptureOfAcornThieves]
					if info == nil {
						return fmt.Errorf("%w: event %s not claimed", ErrInvariant, EventCaptureOfAcornThieves)
					}
					for _, ref := range selected {
						removed, err := p.RemoveCardFromCity(gs, ref.CardName, false)
						if err != nil {
							return err
						}
						// Paired prisoners go to the discard; the critter
						// itself stays beneath the event.
						for _, card := range removed[1:] {
							gs.DiscardPile.Push(card)
						}
						info.StoredCards = append(info.StoredCards, ref.CardName)
					}
					return nil
				}
				var options []PlayedCardRef
				for _, name := range AllCardNames() {
					if len(p.PlayedCards[name]) == 0 || !CardFromName(name).IsCritter() {
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
					EventContext:      EventCaptureOfAcornThieves,
					PlayedCardOptions: options,
					MaxToSelect:       2,
				})
				return nil
			},
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				info := p.ClaimedEvents[EventCaptureOfAcornThieves]
				if info == nil {
					return 0
				}
				return 3 * len(info.StoredCards)
			},
		},

		// Pay 2 berries and discard up to 2 cards from your city.
		EventCroakWartCure: {
			Name:          EventCroakWartCure,
			Type:          EventTypeSpecial,
			BaseVP:        6,
			RequiredCards: []CardName{CardUndertaker, CardBargeToad},
			canPlayCheckInner: func(gs *GameState, input *GameInput) error {
				if input.InputType != InputClaimEvent {
					return nil
				}
				if gs.ActivePlayer().NumResourcesByType(ResourceBerry) < 2 {
					return fmt.Errorf("%w: need 2 BERRY to claim %s", ErrIllegalAction, EventCroakWartCure)
				}
				return nil
			},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectPlayedCards && input.EventContext == EventCroakWartCure {
					selected := input.ClientOptions.SelectedPlayedCards
					if err := validateSelectedPlayedCards(selected, input.PlayedCardOptions, 0, 2); err != nil {
						return err
					}
					for _, ref := range selected {
						if _, err := p.RemoveCardFromCity(gs, ref.CardName, true); err != nil {
							return err
						}
					}
					return nil
				}
				if err := p.SpendResources(ResourceMap{ResourceBerry: 2}); err != nil {
					return err
				}
				var options []PlayedCardRef
				for _, name := range AllCardNames() {
					if len(p.PlayedCards[name]) == 0 {
						continue
					}
					options = append(options, PlayedCardRef{OwnerID: p.PlayerID, CardName: name})
				}
				gs.QueuePendingInput(&GameInput{
					InputType:         InputSelectPlayedCards,
					PrevInputType:     input.InputType,
					EventContext:      EventCroakWartCure,
					PlayedCardOptions: options,
					MaxToSelect:       2,
				})
				return nil
			},
		},

		// 3 VP per husband/wife pair in every city.
		EventFlyingDoctorService: {
			Name:          EventFlyingDoctorService,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardDoctor, CardPostalPigeon},
			pointsInner: func(gs *GameState, playerID string) int {
				pairs := 0
				for _, p := range gs.Players {
					pairs += p.NumHusbandWifePairs()
				}
				return 3 * pairs
			},
		},

		// Place up to 3 critters from your hand beneath this event, 2 VP each.
		EventGraduationOfScholars: {
			Name:          EventGraduationOfScholars,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardTeacher, CardUniversity},
			playedEventInfoInner: func() *PlayedEventInfo {
				return &PlayedEventInfo{StoredCards: []CardName{}}
			},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectCards && input.EventContext == EventGraduationOfScholars {
					selected := input.ClientOptions.SelectedCards
					if err := validateSelectedCards(selected, input.CardOptions, 0, 3); err != nil {
						return err
					}
					info := p.ClaimedEvents[EventGraduationOfScholars]
					if info == nil {
						return fmt.Errorf("%w: event %s not claimed", ErrInvariant, EventGraduationOfScholars)
					}
					for _, card := range selected {
						if err := p.RemoveCardFromHand(card); err != nil {
							return err
						}
						info.StoredCards = append(info.StoredCards, card)
					}
					return nil
				}
				var critters []CardName
				for _, card := range p.CardsInHand {
					if CardFromName(card).IsCritter() {
						critters = append(critters, card)
					}
				}
				if len(critters) == 0 {
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectCards,
					PrevInputType: input.InputType,
					EventContext:  EventGraduationOfScholars,
					CardOptions:   critters,
					MaxToSelect:   3,
				})
				return nil
			},
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				info := p.ClaimedEvents[EventGraduationOfScholars]
				if info == nil {
					return 0
				}
				return 2 * len(info.StoredCards)
			},
		},

		// 3 VP per prisoner in your Dungeon.
		EventMinisteringToMiscreants: {
			Name:          EventMinisteringToMiscreants,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardMonk, CardDungeon},
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				infos := p.GetPlayedCardInfos(CardDungeon)
				if len(infos) == 0 {
					return 0
				}
				return 3 * len(infos[0].PairedCards)
			},
		},

		EventPathOfThePilgrims: workersOnCardEvent(
			EventPathOfThePilgrims,
			[]CardName{CardMonastery, CardWanderer},
			CardMonastery, 3,
		),
		EventRememberingTheFallen: workersOnCardEvent(
			EventRememberingTheFallen,
			[]CardName{CardCemetary, CardShepherd},
			CardCemetary, 3,
		),

		// Draw a card and gain a resource per VP on your Chapel; the ceiling
		// itself is worth 2 VP per VP on the Chapel.
		EventPristineChapelCeiling: {
			Name:          EventPristineChapelCeiling,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardWoodcarver, CardChapel},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectResources && input.EventContext == EventPristineChapelCeiling {
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, 0, input.MaxResources, ""); err != nil {
						return err
					}
					p.GainResources(chosen)
					return nil
				}
				infos := p.GetPlayedCardInfos(CardChapel)
				if len(infos) == 0 {
					return fmt.Errorf("%w: no chapel in city", ErrInvariant)
				}
				numVP := infos[0].Resources[ResourceVP]
				if numVP == 0 {
					return nil
				}
				if err := p.DrawCards(gs, numVP); err != nil {
					return err
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectResources,
					PrevInputType: input.InputType,
					EventContext:  EventPristineChapelCeiling,
					MaxResources:  numVP,
				})
				return nil
			},
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				infos := p.GetPlayedCardInfos(CardChapel)
				if len(infos) == 0 {
					return 0
				}
				return 2 * infos[0].Resources[ResourceVP]
			},
		},

		// Activate all your production cards.
		EventTaxRelief: {
			Name:          EventTaxRelief,
			Type:          EventTypeSpecial,
			BaseVP:        3,
			RequiredCards: []CardName{CardJudge, CardQueen},
			playInner: func(gs *GameState, input *GameInput) error {
				if input.InputType != InputClaimEvent {
					return fmt.Errorf("%w: unexpected input for %s", ErrInvariant, EventTaxRelief)
				}
				return gs.ActivePlayer().ActivateProduction(gs, input)
			},
		},

		// 2 of every card type.
		EventTheEverdellGames: {
			Name:   EventTheEverdellGames,
			Type:   EventTypeSpecial,
			BaseVP: 9,
			canPlayCheckInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				for _, t := range []CardType{
					CardTypeProsperity, CardTypeGovernance, CardTypeProduction,
					CardTypeTraveler, CardTypeDestination,
				} {
					if p.NumCardType(t) < 2 {
						return fmt.Errorf("%w: need at least 2 %s cards to claim %s", ErrIllegalAction, t, EventTheEverdellGames)
					}
				}
				return nil
			},
		},

		// Place up to 3 resources here: twigs and berries are worth 1 VP,
		// resin and pebbles 2 VP.
		EventUnderNewManagement: {
			Name:          EventUnderNewManagement,
			Type:          EventTypeSpecial,
			RequiredCards: []CardName{CardPeddler, CardGeneralStore},
			playedEventInfoInner: func() *PlayedEventInfo {
				return &PlayedEventInfo{StoredResources: ResourceMap{
					ResourceTwig:   0,
					ResourceResin:  0,
					ResourceBerry:  0,
					ResourcePebble: 0,
				}}
			},
			playInner: func(gs *GameState, input *GameInput) error {
				p := gs.ActivePlayer()
				if input.InputType == InputSelectResources && input.EventContext == EventUnderNewManagement {
					chosen := input.ClientOptions.Resources
					if err := validateResourceSelection(chosen, 0, 3, ""); err != nil {
						return err
					}
					if err := p.SpendResources(chosen); err != nil {
						return err
					}
					info := p.ClaimedEvents[EventUnderNewManagement]
					if info == nil {
						return fmt.Errorf("%w: event %s not claimed", ErrInvariant, EventUnderNewManagement)
					}
					for t, n := range chosen {
						info.StoredResources[t] += n
					}
					return nil
				}
				gs.QueuePendingInput(&GameInput{
					InputType:     InputSelectResources,
					PrevInputType: input.InputType,
					EventContext:  EventUnderNewManagement,
					MaxResources:  3,
					ToSpend:       true,
				})
				return nil
			},
			pointsInner: func(gs *GameState, playerID string) int {
				p, err := gs.GetPlayer(playerID)
				if err != nil {
					return 0
				}
				info := p.ClaimedEvents[EventUnderNewManagement]
				if info == nil || info.StoredResources == nil {
					return 0
				}
				stored := info.StoredResources
				return stored[ResourceTwig] + stored[ResourceBerry] +
					2*stored[ResourceResin] + 2*stored[ResourcePebble]
			},
		},
	}
}
