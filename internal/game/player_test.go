package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPaidResourcesValidExact(t *testing.T) {
	p := NewPlayer("alice")
	cost := ResourceMap{ResourceTwig: 2, ResourceResin: 1}

	ok, err := p.isPaidResourcesValid(ResourceMap{ResourceTwig: 2, ResourceResin: 1}, cost, discountNone, true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.isPaidResourcesValid(ResourceMap{ResourceTwig: 1, ResourceResin: 1}, cost, discountNone, false)
	require.NoError(t, err)
	assert.False(t, ok, "shortfall should not validate")
}

func TestIsPaidResourcesValidOverpay(t *testing.T) {
	p := NewPlayer("alice")
	cost := ResourceMap{ResourceTwig: 2}

	_, err := p.isPaidResourcesValid(ResourceMap{ResourceTwig: 3}, cost, discountNone, true)
	assert.ErrorIs(t, err, ErrOverpay)

	// Without the strict flag overpay still counts as affordable.
	ok, err := p.isPaidResourcesValid(ResourceMap{ResourceTwig: 3}, cost, discountNone, false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsPaidResourcesValidBerryDiscount(t *testing.T) {
	p := NewPlayer("alice")

	// Innkeeper wipes up to three berries off the cost.
	ok, err := p.isPaidResourcesValid(ResourceMap{}, ResourceMap{ResourceBerry: 3}, discountBerry, true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.isPaidResourcesValid(ResourceMap{ResourceBerry: 1}, ResourceMap{ResourceBerry: 4}, discountBerry, true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsPaidResourcesValidAnyDiscount(t *testing.T) {
	p := NewPlayer("alice")
	cost := ResourceMap{ResourceTwig: 2, ResourceResin: 2}

	ok, err := p.isPaidResourcesValid(ResourceMap{ResourceTwig: 1}, cost, discountAny, false)
	require.NoError(t, err)
	assert.True(t, ok, "three owed resources fit under the ANY discount")

	ok, err = p.isPaidResourcesValid(ResourceMap{}, cost, discountAny, false)
	require.NoError(t, err)
	assert.False(t, ok, "four owed resources exceed the ANY discount")
}

func TestJudgeSubstitution(t *testing.T) {
	p := NewPlayer("alice")
	require.NoError(t, p.AddToCity(CardJudge))
	cost := ResourceMap{ResourceBerry: 2}

	ok, err := p.isPaidResourcesValid(ResourceMap{ResourceBerry: 1, ResourceTwig: 1}, cost, discountNone, true)
	require.NoError(t, err)
	assert.True(t, ok)

	// Substituting one unit does not license paying extra.
	_, err = p.isPaidResourcesValid(ResourceMap{ResourceBerry: 1, ResourceTwig: 2}, cost, discountNone, true)
	assert.ErrorIs(t, err, ErrOverpay)

	// Two owed units are beyond the Judge.
	ok, err = p.isPaidResourcesValid(ResourceMap{ResourceTwig: 2}, cost, discountNone, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanAddToCityUniqueness(t *testing.T) {
	p := NewPlayer("alice")
	require.NoError(t, p.AddToCity(CardQueen))
	assert.False(t, p.CanAddToCity(CardQueen))
	assert.Error(t, p.AddToCity(CardQueen))

	// Commons stack freely.
	require.NoError(t, p.AddToCity(CardFarm))
	assert.True(t, p.CanAddToCity(CardFarm))
}

func TestCanAddToCityCapacity(t *testing.T) {
	p := NewPlayer("alice")
	for i := 0; i < 14; i++ {
		require.NoError(t, p.AddToCity(CardFarm))
	}
	require.NoError(t, p.AddToCity(CardHusband))
	require.Equal(t, MaxCitySize, p.NumCardsInCity())

	assert.False(t, p.CanAddToCity(CardFarm))
	assert.True(t, p.CanAddToCity(CardWanderer), "the wanderer never occupies a slot")
	assert.True(t, p.CanAddToCity(CardWife), "a wife shares her husband's slot")

	require.NoError(t, p.AddToCity(CardWife))
	assert.False(t, p.CanAddToCity(CardWife), "no unpaired husband remains")
}

func TestCanAddToCityHusbandJoinsUnpairedWife(t *testing.T) {
	p := NewPlayer("alice")
	for i := 0; i < 14; i++ {
		require.NoError(t, p.AddToCity(CardFarm))
	}
	require.NoError(t, p.AddToCity(CardWife))
	require.Equal(t, MaxCitySize, p.NumCardsInCity())

	assert.True(t, p.CanAddToCity(CardHusband), "a husband shares his wife's slot")
	require.NoError(t, p.AddToCity(CardHusband))
	assert.False(t, p.CanAddToCity(CardHusband), "no unpaired wife remains")
}

func TestQueenFreePlayRejectsPayment(t *testing.T) {
	p := NewPlayer("alice")
	require.NoError(t, p.AddToCity(CardQueen))
	p.GainResources(ResourceMap{ResourceBerry: 2})

	input := &GameInput{
		InputType: InputPlayCard,
		Card:      CardWife,
		PaymentOptions: &PaymentOptions{
			CardToUse: CardQueen,
			Resources: ResourceMap{ResourceBerry: 2},
		},
	}
	assert.ErrorIs(t, p.ValidatePaymentOptions(input), ErrOverpay)

	input.PaymentOptions.Resources = ResourceMap{}
	assert.NoError(t, p.ValidatePaymentOptions(input))
}

func TestWorkerPlacementBookkeeping(t *testing.T) {
	p := NewPlayer("alice")
	require.Equal(t, 2, p.NumAvailableWorkers())

	require.NoError(t, p.PlaceWorkerOnLocation(LocationBasicOneBerry))
	require.NoError(t, p.PlaceWorkerOnLocation(LocationBasicThreeTwigs))
	assert.Equal(t, 0, p.NumAvailableWorkers())

	err := p.PlaceWorkerOnLocation(LocationBasicTwoResin)
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestRecallSkipsPermanentPlacements(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	require.NoError(t, alice.AddToCity(CardMonastery))

	require.NoError(t, alice.PlaceWorkerOnLocation(LocationBasicOneBerry))
	require.NoError(t, alice.PlaceWorkerOnCard(CardMonastery, alice))
	gs.LocationsMap[LocationBasicOneBerry] = append(gs.LocationsMap[LocationBasicOneBerry], alice.PlayerID)

	recallable := alice.RecallableWorkers()
	require.Len(t, recallable, 1)
	assert.Equal(t, LocationBasicOneBerry, recallable[0].Location)

	require.NoError(t, alice.RecallWorkers(gs))
	assert.Len(t, alice.PlacedWorkers, 1, "the monastery worker never comes back")
	assert.Equal(t, CardMonastery, alice.PlacedWorkers[0].Card)
}

func TestCanAffordCard(t *testing.T) {
	p := NewPlayer("alice")
	assert.False(t, p.CanAffordCard(CardFarm, false))

	p.GainResources(ResourceMap{ResourceTwig: 2, ResourceResin: 1})
	assert.True(t, p.CanAffordCard(CardFarm, false))
}

func TestCanAffordCardWithCrane(t *testing.T) {
	p := NewPlayer("alice")
	require.NoError(t, p.AddToCity(CardCrane))
	// The crane covers up to three resources of a construction's cost.
	assert.True(t, p.CanAffordCard(CardFarm, false))
	assert.False(t, p.CanAffordCard(CardWife, false), "the crane does not pay for critters")
}

func TestCanAffordCardWithInnkeeper(t *testing.T) {
	p := NewPlayer("alice")
	require.NoError(t, p.AddToCity(CardInnkeeper))
	assert.True(t, p.CanAffordCard(CardWife, false))
	assert.False(t, p.CanAffordCard(CardFarm, false), "the innkeeper only discounts berry critters")
}

func TestCanAffordCardFreeViaAssociatedConstruction(t *testing.T) {
	p := NewPlayer("alice")
	require.NoError(t, p.AddToCity(CardFarm))
	// Husband's associated construction is the farm.
	assert.True(t, p.CanAffordCard(CardHusband, false))

	require.NoError(t, p.UseConstructionToPlayCritter(CardFarm))
	assert.False(t, p.CanAffordCard(CardHusband, false), "an occupied construction grants no second free critter")
}

func TestHandLimitOverflowsToDiscard(t *testing.T) {
	gs := newTestGame(t, "alice", "bob")
	alice := gs.ActivePlayer()
	discarded := gs.DiscardPile.Len()

	for len(alice.CardsInHand) < MaxHandSize {
		alice.AddCardToHand(gs, CardFarm)
	}
	alice.AddCardToHand(gs, CardMine)

	assert.Len(t, alice.CardsInHand, MaxHandSize)
	assert.Equal(t, discarded+1, gs.DiscardPile.Len())
}
