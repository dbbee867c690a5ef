package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRegistryIsComplete(t *testing.T) {
	names := AllCardNames()
	require.Len(t, names, 48)
	for _, name := range names {
		assert.Equal(t, name, CardFromName(name).Name)
	}
}

func TestPlayFarmFromHand(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	alice.CardsInHand = []CardName{CardFarm}
	alice.GainResources(ResourceMap{ResourceTwig: 2, ResourceResin: 1})

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardFarm,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceTwig: 2, ResourceResin: 1}},
	})
	require.NoError(t, err)

	p := findPlayer(t, next, alice.PlayerID)
	assert.True(t, p.HasCardInCity(CardFarm))
	assert.Empty(t, p.CardsInHand)
	assert.Equal(t, 0, p.Resources[ResourceTwig])
	assert.Equal(t, 0, p.Resources[ResourceResin])
	assert.Equal(t, 1, p.Resources[ResourceBerry], "the farm produces on play")
	assert.NotEqual(t, alice.PlayerID, next.ActivePlayerID)
}

func TestPlayCardOverpayRejected(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	alice.CardsInHand = []CardName{CardFarm}
	alice.GainResources(ResourceMap{ResourceTwig: 3, ResourceResin: 1})

	_, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardFarm,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceTwig: 3, ResourceResin: 1}},
	})
	assert.ErrorIs(t, err, ErrOverpay)
}

func TestPlayCardNotInHand(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	alice.CardsInHand = []CardName{}
	alice.GainResources(ResourceMap{ResourceBerry: 6})

	_, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardKing,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceBerry: 6}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlayCardFromMeadowReplenishes(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	gs.Meadow[0] = CardFarm
	alice.GainResources(ResourceMap{ResourceTwig: 2, ResourceResin: 1})

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardFarm,
		FromMeadow:     true,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceTwig: 2, ResourceResin: 1}},
	})
	require.NoError(t, err)

	p := findPlayer(t, next, alice.PlayerID)
	assert.True(t, p.HasCardInCity(CardFarm))
	assert.Len(t, next.Meadow, MeadowSize)
	assert.Equal(t, gs.Deck.Len()-1, next.Deck.Len())
}

func TestBardDiscardForPoints(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	alice.CardsInHand = []CardName{CardBard, CardFarm, CardMine, CardKing, CardWanderer, CardCastle}
	alice.GainResources(ResourceMap{ResourceBerry: 3})

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardBard,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceBerry: 3}},
	})
	require.NoError(t, err)

	// The discard choice is pending, so the turn has not passed.
	require.Len(t, next.PendingInputs, 1)
	assert.Equal(t, alice.PlayerID, next.ActivePlayerID)
	pending := next.PendingInputs[0]
	assert.Equal(t, InputDiscardCards, pending.InputType)
	assert.Equal(t, CardBard, pending.CardContext)
	assert.Equal(t, 5, pending.MaxToSelect)

	answer := pending.Clone()
	answer.ClientOptions = &ClientOptions{CardsToDiscard: []CardName{CardFarm, CardMine, CardKing}}
	final, err := next.Next(answer)
	require.NoError(t, err)

	p := findPlayer(t, final, alice.PlayerID)
	assert.Equal(t, 3, p.Resources[ResourceVP])
	assert.Equal(t, []CardName{CardWanderer, CardCastle}, p.CardsInHand)
	assert.Empty(t, final.PendingInputs)
	assert.NotEqual(t, alice.PlayerID, final.ActivePlayerID)
}

func TestBardDiscardTooManyCards(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	alice.CardsInHand = []CardName{CardFarm, CardFarm, CardFarm, CardFarm, CardFarm, CardFarm}
	gs.QueuePendingInput(&GameInput{
		InputType:     InputDiscardCards,
		PrevInputType: InputPlayCard,
		CardContext:   CardBard,
		MaxToSelect:   5,
	})

	answer := gs.PendingInputs[0].Clone()
	answer.ClientOptions = &ClientOptions{CardsToDiscard: alice.CardsInHand}
	_, err := gs.Next(answer)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUniversityVisitChain(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardUniversity))
	require.NoError(t, alice.AddToCity(CardFarm))

	next, err := gs.Next(&GameInput{InputType: InputVisitDestinationCard, Card: CardUniversity})
	require.NoError(t, err)

	p := findPlayer(t, next, alice.PlayerID)
	assert.Equal(t, 1, p.NumAvailableWorkers())
	require.Len(t, next.PendingInputs, 1)
	pending := next.PendingInputs[0]
	assert.Equal(t, InputSelectPlayedCards, pending.InputType)
	assert.Equal(t, CardUniversity, pending.CardContext)
	require.Equal(t, []PlayedCardRef{{OwnerID: alice.PlayerID, CardName: CardFarm}}, pending.PlayedCardOptions)

	answer := pending.Clone()
	answer.ClientOptions = &ClientOptions{SelectedPlayedCards: pending.PlayedCardOptions}
	next2, err := next.Next(answer)
	require.NoError(t, err)

	p = findPlayer(t, next2, alice.PlayerID)
	assert.False(t, p.HasCardInCity(CardFarm))
	// Refund of the farm's cost plus a point token.
	assert.Equal(t, 2, p.Resources[ResourceTwig])
	assert.Equal(t, 1, p.Resources[ResourceResin])
	assert.Equal(t, 1, p.Resources[ResourceVP])
	assert.Equal(t, gs.DiscardPile.Len()+1, next2.DiscardPile.Len())

	require.Len(t, next2.PendingInputs, 1)
	resAnswer := next2.PendingInputs[0].Clone()
	resAnswer.ClientOptions = &ClientOptions{Resources: ResourceMap{ResourcePebble: 1}}
	final, err := next2.Next(resAnswer)
	require.NoError(t, err)

	p = findPlayer(t, final, alice.PlayerID)
	assert.Equal(t, 1, p.Resources[ResourcePebble])
	assert.Empty(t, final.PendingInputs)
	assert.NotEqual(t, alice.PlayerID, final.ActivePlayerID)
}

func TestVisitOpenDestinationPaysOwner(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	bob := gs.Players[1]
	require.NoError(t, bob.AddToCity(CardInn))

	next, err := gs.Next(&GameInput{
		InputType:   InputVisitDestinationCard,
		Card:        CardInn,
		CityOwnerID: bob.PlayerID,
	})
	require.NoError(t, err)

	owner := findPlayer(t, next, bob.PlayerID)
	assert.Equal(t, 1, owner.Resources[ResourceVP])
	visitor := findPlayer(t, next, alice.PlayerID)
	assert.Equal(t, 1, visitor.NumAvailableWorkers())
}

func TestVisitClosedDestinationInOpponentCity(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	bob := gs.Players[1]
	require.NoError(t, bob.AddToCity(CardUniversity))

	_, err := gs.Next(&GameInput{
		InputType:   InputVisitDestinationCard,
		Card:        CardUniversity,
		CityOwnerID: bob.PlayerID,
	})
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestClockTowerDormantOnPlay(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.PlaceWorkerOnLocation(LocationBasicThreeTwigs))
	gs.LocationsMap[LocationBasicThreeTwigs] = append(gs.LocationsMap[LocationBasicThreeTwigs], alice.PlayerID)
	alice.CardsInHand = []CardName{CardClockTower}
	alice.GainResources(ResourceMap{ResourceTwig: 3, ResourcePebble: 1})

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardClockTower,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceTwig: 3, ResourcePebble: 1}},
	})
	require.NoError(t, err)

	// The re-activation ability waits for season prep, even with a worker out.
	assert.Empty(t, next.PendingInputs)
	assert.NotEqual(t, alice.PlayerID, next.ActivePlayerID)

	p := findPlayer(t, next, alice.PlayerID)
	infos := p.GetPlayedCardInfos(CardClockTower)
	require.Len(t, infos, 1)
	assert.Equal(t, 3, infos[0].Resources[ResourceVP])
}

func TestClockTowerOffersReactivationOnSeasonPrep(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardClockTower))
	require.NoError(t, alice.PlaceWorkerOnLocation(LocationBasicThreeTwigs))
	gs.LocationsMap[LocationBasicThreeTwigs] = append(gs.LocationsMap[LocationBasicThreeTwigs], alice.PlayerID)
	require.NoError(t, alice.PlaceWorkerOnLocation(LocationBasicOneBerry))
	gs.LocationsMap[LocationBasicOneBerry] = append(gs.LocationsMap[LocationBasicOneBerry], alice.PlayerID)
	require.Equal(t, 0, alice.NumAvailableWorkers())

	next, err := gs.Next(&GameInput{InputType: InputPrepareForSeason})
	require.NoError(t, err)

	require.Len(t, next.PendingInputs, 1)
	pending := next.PendingInputs[0]
	assert.Equal(t, InputSelectWorkerPlacement, pending.InputType)
	assert.Equal(t, CardClockTower, pending.CardContext)
	assert.Len(t, pending.WorkerOptions, 2)

	// The season only turns once the tower's choice resolves.
	p := findPlayer(t, next, alice.PlayerID)
	assert.Equal(t, SeasonWinter, p.CurrentSeason)
	assert.True(t, p.IsPreparingSeason)
	assert.Equal(t, alice.PlayerID, next.ActivePlayerID)
}

func TestMonasteryVisitNeedsSpendableResources(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardMonastery))
	alice.GainResources(ResourceMap{ResourceVP: 5})

	// Point tokens are not a currency the monastery takes.
	_, err := gs.Next(&GameInput{InputType: InputVisitDestinationCard, Card: CardMonastery})
	assert.ErrorIs(t, err, ErrIllegalAction)

	alice.GainResources(ResourceMap{ResourceTwig: 2})
	next, err := gs.Next(&GameInput{InputType: InputVisitDestinationCard, Card: CardMonastery})
	require.NoError(t, err)
	require.Len(t, next.PendingInputs, 1)
	assert.Equal(t, InputSelectResources, next.PendingInputs[0].InputType)
	assert.Equal(t, CardMonastery, next.PendingInputs[0].CardContext)
}

func TestCourthouseTriggersOnConstruction(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardCourthouse))
	alice.CardsInHand = []CardName{CardFarm}
	alice.GainResources(ResourceMap{ResourceTwig: 2, ResourceResin: 1})

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardFarm,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceTwig: 2, ResourceResin: 1}},
	})
	require.NoError(t, err)

	require.Len(t, next.PendingInputs, 1)
	pending := next.PendingInputs[0]
	assert.Equal(t, InputSelectResources, pending.InputType)
	assert.Equal(t, CardCourthouse, pending.CardContext)

	berries := pending.Clone()
	berries.ClientOptions = &ClientOptions{Resources: ResourceMap{ResourceBerry: 1}}
	_, err = next.Next(berries)
	assert.ErrorIs(t, err, ErrInvalidInput, "the courthouse never grants berries")

	twigs := pending.Clone()
	twigs.ClientOptions = &ClientOptions{Resources: ResourceMap{ResourceTwig: 1}}
	final, err := next.Next(twigs)
	require.NoError(t, err)
	p := findPlayer(t, final, alice.PlayerID)
	assert.Equal(t, 1, p.Resources[ResourceTwig])
}

func TestShopkeeperAndHistorianTriggers(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardShopkeeper))
	require.NoError(t, alice.AddToCity(CardHistorian))
	alice.CardsInHand = []CardName{CardWanderer}
	alice.GainResources(ResourceMap{ResourceBerry: 2})

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardWanderer,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{ResourceBerry: 2}},
	})
	require.NoError(t, err)

	p := findPlayer(t, next, alice.PlayerID)
	// Wanderer draws three, the historian a fourth.
	assert.Len(t, p.CardsInHand, 4)
	assert.Equal(t, 1, p.Resources[ResourceBerry], "the shopkeeper pays out for critters")
}

func TestCranePaysForConstruction(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardCrane))
	alice.CardsInHand = []CardName{CardFarm}

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardFarm,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{}, CardToUse: CardCrane},
	})
	require.NoError(t, err)

	p := findPlayer(t, next, alice.PlayerID)
	assert.True(t, p.HasCardInCity(CardFarm))
	assert.False(t, p.HasCardInCity(CardCrane), "the crane is single use")
}

func TestFreeCritterOccupiesConstruction(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardFarm))
	alice.CardsInHand = []CardName{CardHusband, CardHusband}

	next, err := gs.Next(&GameInput{
		InputType:      InputPlayCard,
		Card:           CardHusband,
		PaymentOptions: &PaymentOptions{Resources: ResourceMap{}},
	})
	require.NoError(t, err)

	p := findPlayer(t, next, alice.PlayerID)
	assert.True(t, p.HasCardInCity(CardHusband))
	assert.True(t, p.PlayedCards[CardFarm][0].UsedForCritter)

	// The farm is spent; it cannot host a second free husband.
	assert.False(t, p.CanAffordCard(CardHusband, false))
}

func TestWifePointsCountPairsOncePerName(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardHusband))
	require.NoError(t, alice.AddToCity(CardHusband))
	require.NoError(t, alice.AddToCity(CardWife))
	require.NoError(t, alice.AddToCity(CardWife))

	points, err := gs.GetPoints(alice.PlayerID)
	require.NoError(t, err)
	// Two husbands (2 each), two wives (2 each), two pairs (3 each).
	assert.Equal(t, 14, points)
}

func TestKingScoresClaimedEvents(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardKing))
	alice.ClaimedEvents[EventBasicThreeTraveler] = &PlayedEventInfo{}
	alice.ClaimedEvents[EventTaxRelief] = &PlayedEventInfo{}

	points, err := gs.GetPoints(alice.PlayerID)
	require.NoError(t, err)
	// King 4 + basic event 3 + its king bonus 1 + special event 3 + its
	// king bonus 2.
	assert.Equal(t, 13, points)
}
