package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicEventRequiresCardTypes(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()

	_, err := gs.Next(&GameInput{InputType: InputClaimEvent, Event: EventBasicThreeGovernance})
	require.ErrorIs(t, err, ErrIllegalAction)

	require.NoError(t, alice.AddToCity(CardJudge))
	require.NoError(t, alice.AddToCity(CardHistorian))
	require.NoError(t, alice.AddToCity(CardShopkeeper))

	next, err := gs.Next(&GameInput{InputType: InputClaimEvent, Event: EventBasicThreeGovernance})
	require.NoError(t, err)

	assert.Equal(t, alice.PlayerID, next.EventsMap[EventBasicThreeGovernance])
	p := findPlayer(t, next, alice.PlayerID)
	assert.Equal(t, 1, p.NumAvailableWorkers())
	require.Contains(t, p.ClaimedEvents, EventBasicThreeGovernance)

	// Claimed events cannot be claimed again, by anyone.
	_, err = next.Next(&GameInput{InputType: InputClaimEvent, Event: EventBasicThreeGovernance})
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestUnknownEventRejected(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	_, err := gs.Next(&GameInput{InputType: InputClaimEvent, Event: EventName("NOT_AN_EVENT")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEventNotOnBoardRejected(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardLookout))
	require.NoError(t, alice.AddToCity(CardMinerMole))
	// Only four of the sixteen specials are dealt; force this one off the
	// board regardless of the shuffle.
	delete(gs.EventsMap, EventEveningOfFireworks)

	_, err := gs.Next(&GameInput{InputType: InputClaimEvent, Event: EventEveningOfFireworks})
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestEveningOfFireworksStoresTwigs(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	gs.EventsMap[EventEveningOfFireworks] = ""
	require.NoError(t, alice.AddToCity(CardLookout))
	require.NoError(t, alice.AddToCity(CardMinerMole))
	alice.GainResources(ResourceMap{ResourceTwig: 3})

	next, err := gs.Next(&GameInput{InputType: InputClaimEvent, Event: EventEveningOfFireworks})
	require.NoError(t, err)

	require.Len(t, next.PendingInputs, 1)
	pending := next.PendingInputs[0]
	assert.Equal(t, InputSelectResources, pending.InputType)
	assert.Equal(t, EventEveningOfFireworks, pending.EventContext)
	assert.Equal(t, ResourceTwig, pending.SpecificResource)
	assert.True(t, pending.ToSpend)

	// Berries are not an option here.
	wrong := pending.Clone()
	wrong.ClientOptions = &ClientOptions{Resources: ResourceMap{ResourceBerry: 1}}
	_, err = next.Next(wrong)
	assert.ErrorIs(t, err, ErrInvalidInput)

	answer := pending.Clone()
	answer.ClientOptions = &ClientOptions{Resources: ResourceMap{ResourceTwig: 3}}
	final, err := next.Next(answer)
	require.NoError(t, err)

	p := findPlayer(t, final, alice.PlayerID)
	assert.Equal(t, 0, p.Resources[ResourceTwig])
	info := p.ClaimedEvents[EventEveningOfFireworks]
	require.NotNil(t, info)
	assert.Equal(t, 3, info.StoredResources[ResourceTwig])
	// Two points per stored twig.
	assert.Equal(t, 6, EventFromName(EventEveningOfFireworks).GetPoints(final, alice.PlayerID))
}

func TestCroakWartCureNeedsTwoBerries(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	gs.EventsMap[EventCroakWartCure] = ""
	require.NoError(t, alice.AddToCity(CardUndertaker))
	require.NoError(t, alice.AddToCity(CardBargeToad))
	alice.GainResources(ResourceMap{ResourceBerry: 1})

	_, err := gs.Next(&GameInput{InputType: InputClaimEvent, Event: EventCroakWartCure})
	assert.ErrorIs(t, err, ErrIllegalAction)

	alice.GainResources(ResourceMap{ResourceBerry: 1})
	next, err := gs.Next(&GameInput{InputType: InputClaimEvent, Event: EventCroakWartCure})
	require.NoError(t, err)

	p := findPlayer(t, next, alice.PlayerID)
	assert.Equal(t, 0, p.Resources[ResourceBerry])
	require.Len(t, next.PendingInputs, 1)
	assert.Equal(t, InputSelectPlayedCards, next.PendingInputs[0].InputType)
}

func TestEverdellGamesNeedsTwoOfEachType(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	gs.EventsMap[EventTheEverdellGames] = ""

	trial := &GameInput{InputType: InputClaimEvent, Event: EventTheEverdellGames}
	assert.False(t, EventFromName(EventTheEverdellGames).CanPlay(gs, trial))

	for _, card := range []CardName{
		CardWife, CardKing, // prosperity
		CardJudge, CardHistorian, // governance
		CardFarm, CardFarm, // production
		CardWanderer, CardRanger, // traveler
		CardInn, CardLookout, // destination
	} {
		require.NoError(t, alice.AddToCity(card))
	}
	assert.True(t, EventFromName(EventTheEverdellGames).CanPlay(gs, trial))
}

func TestFlyingDoctorCountsAllCities(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	bob := gs.Players[1]
	require.NoError(t, alice.AddToCity(CardHusband))
	require.NoError(t, alice.AddToCity(CardWife))
	require.NoError(t, bob.AddToCity(CardHusband))
	require.NoError(t, bob.AddToCity(CardWife))

	// Three points per pair across every city.
	assert.Equal(t, 6, EventFromName(EventFlyingDoctorService).GetPoints(gs, alice.PlayerID))
}

func TestInitialEventsBoard(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")

	basics, specials := 0, 0
	for name := range gs.EventsMap {
		if EventFromName(name).Type == EventTypeBasic {
			basics++
		} else {
			specials++
		}
	}
	assert.Equal(t, 4, basics)
	assert.Equal(t, 4, specials)
}
