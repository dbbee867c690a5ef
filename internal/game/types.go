package game

// Enumerated names are string-valued so that serialized snapshots stay
// readable and stable across versions. The snapshot JSON is the persisted
// contract; renumbering an iota would silently corrupt saved games.

// ResourceType identifies one of the five resource counters a player owns.
type ResourceType string

const (
	ResourceTwig   ResourceType = "TWIG"
	ResourceResin  ResourceType = "RESIN"
	ResourceBerry  ResourceType = "BERRY"
	ResourcePebble ResourceType = "PEBBLE"
	ResourceVP     ResourceType = "VP"
)

// SpendableResourceTypes lists the resources a card cost may name. VP is
// generated, never part of a cost.
var SpendableResourceTypes = []ResourceType{
	ResourceTwig,
	ResourceResin,
	ResourceBerry,
	ResourcePebble,
}

// Season is one of the four per-player turn-order phases. It advances
// monotonically via PREPARE_FOR_SEASON and never wraps.
type Season string

const (
	SeasonWinter Season = "WINTER"
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonAutumn Season = "AUTUMN"
)

// Next returns the following season and false if the season is AUTUMN,
// which has no successor.
func (s Season) Next() (Season, bool) {
	switch s {
	case SeasonWinter:
		return SeasonSpring, true
	case SeasonSpring:
		return SeasonSummer, true
	case SeasonSummer:
		return SeasonAutumn, true
	default:
		return s, false
	}
}

// numWorkersForSeason is the total worker count a player owns once they have
// reached the given season.
func numWorkersForSeason(s Season) int {
	switch s {
	case SeasonWinter:
		return 2
	case SeasonSpring:
		return 3
	case SeasonSummer:
		return 4
	case SeasonAutumn:
		return 6
	}
	return 0
}

// CardType is the color band of a card.
type CardType string

const (
	CardTypeTraveler    CardType = "TRAVELER"    // tan
	CardTypeProduction  CardType = "PRODUCTION"  // green
	CardTypeDestination CardType = "DESTINATION" // red
	CardTypeGovernance  CardType = "GOVERNANCE"  // blue
	CardTypeProsperity  CardType = "PROSPERITY"  // purple
)

// LocationOccupancy is the rule governing how many workers a location may
// hold simultaneously.
type LocationOccupancy string

const (
	// OccupancyExclusive allows at most one worker, ever.
	OccupancyExclusive LocationOccupancy = "EXCLUSIVE"
	// OccupancyExclusiveFour allows one worker in games with fewer than four
	// players and two otherwise.
	OccupancyExclusiveFour LocationOccupancy = "EXCLUSIVE_FOUR"
	// OccupancyUnlimited has no cap.
	OccupancyUnlimited LocationOccupancy = "UNLIMITED"
)

// LocationType groups locations for setup and for effects that reference a
// group (Lookout copies basic/forest, Clock Tower re-activates basic/forest).
type LocationType string

const (
	LocationTypeBasic   LocationType = "BASIC"
	LocationTypeForest  LocationType = "FOREST"
	LocationTypeHaven   LocationType = "HAVEN"
	LocationTypeJourney LocationType = "JOURNEY"
)

// EventType distinguishes the four always-available basic events from the
// special events drafted at setup.
type EventType string

const (
	EventTypeBasic   EventType = "BASIC"
	EventTypeSpecial EventType = "SPECIAL"
)

// GameInputType tags a GameInput. The first block are top-level actions a
// player may freely choose; the second are continuation inputs created by
// effect hooks and resolved against the pending-input queue.
type GameInputType string

const (
	InputPlayCard             GameInputType = "PLAY_CARD"
	InputPlaceWorker          GameInputType = "PLACE_WORKER"
	InputVisitDestinationCard GameInputType = "VISIT_DESTINATION_CARD"
	InputClaimEvent           GameInputType = "CLAIM_EVENT"
	InputPrepareForSeason     GameInputType = "PREPARE_FOR_SEASON"
	InputGameEnd              GameInputType = "GAME_END"

	InputSelectCards           GameInputType = "SELECT_CARDS"
	InputSelectPlayedCards     GameInputType = "SELECT_PLAYED_CARDS"
	InputSelectPlayer          GameInputType = "SELECT_PLAYER"
	InputSelectResources       GameInputType = "SELECT_RESOURCES"
	InputDiscardCards          GameInputType = "DISCARD_CARDS"
	InputSelectLocation        GameInputType = "SELECT_LOCATION"
	InputSelectPaymentForCard  GameInputType = "SELECT_PAYMENT_FOR_CARD"
	InputSelectWorkerPlacement GameInputType = "SELECT_WORKER_PLACEMENT"
	InputSelectOptionGeneric   GameInputType = "SELECT_OPTION_GENERIC"
)

// IsContinuation reports whether t is a multi-step follow-up input rather
// than a top-level action.
func (t GameInputType) IsContinuation() bool {
	switch t {
	case InputSelectCards, InputSelectPlayedCards, InputSelectPlayer,
		InputSelectResources, InputDiscardCards, InputSelectLocation,
		InputSelectPaymentForCard, InputSelectWorkerPlacement,
		InputSelectOptionGeneric:
		return true
	}
	return false
}

// CardName identifies a card in the catalog.
type CardName string

const (
	CardArchitect     CardName = "ARCHITECT"
	CardBard          CardName = "BARD"
	CardBargeToad     CardName = "BARGE_TOAD"
	CardCastle        CardName = "CASTLE"
	CardCemetary      CardName = "CEMETARY"
	CardChapel        CardName = "CHAPEL"
	CardChipSweep     CardName = "CHIP_SWEEP"
	CardClockTower    CardName = "CLOCK_TOWER"
	CardCourthouse    CardName = "COURTHOUSE"
	CardCrane         CardName = "CRANE"
	CardDoctor        CardName = "DOCTOR"
	CardDungeon       CardName = "DUNGEON"
	CardEvertree      CardName = "EVERTREE"
	CardFairgrounds   CardName = "FAIRGROUNDS"
	CardFarm          CardName = "FARM"
	CardFool          CardName = "FOOL"
	CardGeneralStore  CardName = "GENERAL_STORE"
	CardHistorian     CardName = "HISTORIAN"
	CardHusband       CardName = "HUSBAND"
	CardInn           CardName = "INN"
	CardInnkeeper     CardName = "INNKEEPER"
	CardJudge         CardName = "JUDGE"
	CardKing          CardName = "KING"
	CardLookout       CardName = "LOOKOUT"
	CardMine          CardName = "MINE"
	CardMinerMole     CardName = "MINER_MOLE"
	CardMonastery     CardName = "MONASTERY"
	CardMonk          CardName = "MONK"
	CardPalace        CardName = "PALACE"
	CardPeddler       CardName = "PEDDLER"
	CardPostOffice    CardName = "POST_OFFICE"
	CardPostalPigeon  CardName = "POSTAL_PIGEON"
	CardQueen         CardName = "QUEEN"
	CardRanger        CardName = "RANGER"
	CardResinRefinery CardName = "RESIN_REFINERY"
	CardRuins         CardName = "RUINS"
	CardSchool        CardName = "SCHOOL"
	CardShepherd      CardName = "SHEPHERD"
	CardShopkeeper    CardName = "SHOPKEEPER"
	CardStorehouse    CardName = "STOREHOUSE"
	CardTeacher       CardName = "TEACHER"
	CardTheatre       CardName = "THEATRE"
	CardTwigBarge     CardName = "TWIG_BARGE"
	CardUndertaker    CardName = "UNDERTAKER"
	CardUniversity    CardName = "UNIVERSITY"
	CardWanderer      CardName = "WANDERER"
	CardWife          CardName = "WIFE"
	CardWoodcarver    CardName = "WOODCARVER"
)

// LocationName identifies a worker-placement spot.
type LocationName string

const (
	LocationBasicOneBerry           LocationName = "BASIC_ONE_BERRY"
	LocationBasicOneBerryAndOneCard LocationName = "BASIC_ONE_BERRY_AND_ONE_CARD"
	LocationBasicOneResinAndOneCard LocationName = "BASIC_ONE_RESIN_AND_ONE_CARD"
	LocationBasicOnePebble          LocationName = "BASIC_ONE_PEBBLE"
	LocationBasicThreeTwigs         LocationName = "BASIC_THREE_TWIGS"
	LocationBasicTwoCardsAndOneVP   LocationName = "BASIC_TWO_CARDS_AND_ONE_VP"
	LocationBasicTwoResin           LocationName = "BASIC_TWO_RESIN"
	LocationBasicTwoTwigsAndOneCard LocationName = "BASIC_TWO_TWIGS_AND_ONE_CARD"
	LocationHaven                   LocationName = "HAVEN"
	LocationJourneyFive             LocationName = "JOURNEY_FIVE"
	LocationJourneyFour             LocationName = "JOURNEY_FOUR"
	LocationJourneyThree            LocationName = "JOURNEY_THREE"
	LocationJourneyTwo              LocationName = "JOURNEY_TWO"

	LocationForestTwoBerryOneCard          LocationName = "FOREST_TWO_BERRY_ONE_CARD"
	LocationForestTwoWild                  LocationName = "FOREST_TWO_WILD"
	LocationForestDiscardDrawTwoPerCard    LocationName = "FOREST_DISCARD_ANY_THEN_DRAW_TWO_PER_CARD"
	LocationForestCopyBasicOneCard         LocationName = "FOREST_COPY_BASIC_ONE_CARD"
	LocationForestOnePebbleThreeCard       LocationName = "FOREST_ONE_PEBBLE_THREE_CARD"
	LocationForestOneTwigResinBerry        LocationName = "FOREST_ONE_TWIG_RESIN_BERRY"
	LocationForestThreeBerry               LocationName = "FOREST_THREE_BERRY"
	LocationForestTwoResinOneTwig          LocationName = "FOREST_TWO_RESIN_ONE_TWIG"
	LocationForestTwoCardsOneWild          LocationName = "FOREST_TWO_CARDS_ONE_WILD"
	LocationForestDiscardThreeForWild      LocationName = "FOREST_DISCARD_UP_TO_THREE_CARDS_TO_GAIN_WILD_PER_CARD"
	LocationForestDrawTwoMeadowPlayOneLess LocationName = "FOREST_DRAW_TWO_MEADOW_PLAY_ONE_FOR_ONE_LESS"
)

// EventName identifies a claimable event.
type EventName string

const (
	EventBasicFourProduction   EventName = "BASIC_FOUR_PRODUCTION_TAGS"
	EventBasicThreeDestination EventName = "BASIC_THREE_DESTINATION"
	EventBasicThreeGovernance  EventName = "BASIC_THREE_GOVERNANCE"
	EventBasicThreeTraveler    EventName = "BASIC_THREE_TRAVELER"

	EventGraduationOfScholars    EventName = "SPECIAL_GRADUATION_OF_SCHOLARS"
	EventBrilliantMarketingPlan  EventName = "SPECIAL_A_BRILLIANT_MARKETING_PLAN"
	EventPerformerInResidence    EventName = "SPECIAL_PERFORMER_IN_RESIDENCE"
	EventCaptureOfAcornThieves   EventName = "SPECIAL_CAPTURE_OF_THE_ACORN_THIEVES"
	EventMinisteringToMiscreants EventName = "SPECIAL_MINISTERING_TO_MISCREANTS"
	EventCroakWartCure           EventName = "SPECIAL_CROAK_WART_CURE"
	EventEveningOfFireworks      EventName = "SPECIAL_AN_EVENING_OF_FIREWORKS"
	EventWeeRunCity              EventName = "SPECIAL_A_WEE_RUN_CITY"
	EventTaxRelief               EventName = "SPECIAL_TAX_RELIEF"
	EventUnderNewManagement      EventName = "SPECIAL_UNDER_NEW_MANAGEMENT"
	EventAncientScrolls          EventName = "SPECIAL_ANCIENT_SCROLLS_DISCOVERED"
	EventFlyingDoctorService     EventName = "SPECIAL_FLYING_DOCTOR_SERVICE"
	EventPathOfThePilgrims       EventName = "SPECIAL_PATH_OF_THE_PILGRIMS"
	EventRememberingTheFallen    EventName = "SPECIAL_REMEMBERING_THE_FALLEN"
	EventPristineChapelCeiling   EventName = "SPECIAL_PRISTINE_CHAPEL_CEILING"
	EventTheEverdellGames        EventName = "SPECIAL_THE_EVERDELL_GAMES"
)

// Fixed table sizes.
const (
	// MeadowSize is the size of the shared face-up card offer.
	MeadowSize = 8
	// MaxHandSize caps a player's hand; overflow on draw goes to the discard.
	MaxHandSize = 8
	// MaxCitySize caps occupied city slots (husband/wife pairs share one,
	// Wanderer occupies none).
	MaxCitySize = 15
)
