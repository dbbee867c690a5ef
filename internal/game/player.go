package game

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayedCardInfo tracks the per-copy mutable state of a card in a city:
// occupancy flags for constructions, attached resources, hosted workers and
// paired cards, depending on the card type.
type PlayedCardInfo struct {
	CardName       CardName    `json:"cardName"`
	UsedForCritter bool        `json:"usedForCritter,omitempty"`
	Resources      ResourceMap `json:"resources,omitempty"`
	Workers        []string    `json:"workers,omitempty"`
	MaxWorkers     int         `json:"maxWorkers,omitempty"`
	PairedCards    []CardName  `json:"pairedCards,omitempty"`
}

// Clone returns an independent copy.
func (i *PlayedCardInfo) Clone() *PlayedCardInfo {
	out := *i
	out.Resources = i.Resources.Clone()
	out.Workers = append([]string(nil), i.Workers...)
	out.PairedCards = append([]CardName(nil), i.PairedCards...)
	return &out
}

// PlayedEventInfo accumulates resources or cards stored under a claimed
// event.
type PlayedEventInfo struct {
	StoredResources ResourceMap `json:"storedResources,omitempty"`
	StoredCards     []CardName  `json:"storedCards,omitempty"`
}

// Clone returns an independent copy.
func (i *PlayedEventInfo) Clone() *PlayedEventInfo {
	out := *i
	out.StoredResources = i.StoredResources.Clone()
	out.StoredCards = append([]CardName(nil), i.StoredCards...)
	return &out
}

// Player is one participant's mutable state: hand, city, resources, workers,
// claimed events and season.
type Player struct {
	Name          string
	PlayerID      string
	playerSecret  string
	CardsInHand   []CardName
	Resources     ResourceMap
	PlayedCards   map[CardName][]*PlayedCardInfo
	ClaimedEvents map[EventName]*PlayedEventInfo
	NumWorkers    int
	PlacedWorkers []WorkerPlacement
	CurrentSeason Season

	// IsPreparingSeason is set while a PREPARE_FOR_SEASON is underway but
	// its resolution is deferred behind pending inputs (Clock Tower).
	IsPreparingSeason bool
}

// NewPlayer creates a fresh WINTER-season player with two workers, no
// resources and an empty city.
func NewPlayer(name string) *Player {
	return &Player{
		Name:         name,
		PlayerID:     uuid.NewString(),
		playerSecret: uuid.NewString(),
		Resources: ResourceMap{
			ResourceTwig:   0,
			ResourceResin:  0,
			ResourceBerry:  0,
			ResourcePebble: 0,
			ResourceVP:     0,
		},
		PlayedCards:   map[CardName][]*PlayedCardInfo{},
		ClaimedEvents: map[EventName]*PlayedEventInfo{},
		NumWorkers:    numWorkersForSeason(SeasonWinter),
		CurrentSeason: SeasonWinter,
	}
}

// Secret returns the player's private token. Collaborators use it to map a
// request to a playerId; it never appears in non-private snapshots.
func (p *Player) Secret() string {
	return p.playerSecret
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	out := &Player{
		Name:              p.Name,
		PlayerID:          p.PlayerID,
		playerSecret:      p.playerSecret,
		CardsInHand:       append([]CardName(nil), p.CardsInHand...),
		Resources:         p.Resources.Clone(),
		PlayedCards:       make(map[CardName][]*PlayedCardInfo, len(p.PlayedCards)),
		ClaimedEvents:     make(map[EventName]*PlayedEventInfo, len(p.ClaimedEvents)),
		NumWorkers:        p.NumWorkers,
		PlacedWorkers:     append([]WorkerPlacement(nil), p.PlacedWorkers...),
		CurrentSeason:     p.CurrentSeason,
		IsPreparingSeason: p.IsPreparingSeason,
	}
	for name, infos := range p.PlayedCards {
		copies := make([]*PlayedCardInfo, len(infos))
		for i, info := range infos {
			copies[i] = info.Clone()
		}
		out.PlayedCards[name] = copies
	}
	for name, info := range p.ClaimedEvents {
		out.ClaimedEvents[name] = info.Clone()
	}
	return out
}

// --- hand ---

// DrawCards draws count cards from the deck into the hand; overflow past
// MaxHandSize routes to the discard pile.
func (p *Player) DrawCards(gs *GameState, count int) error {
	for i := 0; i < count; i++ {
		card, err := gs.DrawCard()
		if err != nil {
			return err
		}
		p.AddCardToHand(gs, card)
	}
	return nil
}

// AddCardToHand appends to the hand, or discards if the hand is full.
func (p *Player) AddCardToHand(gs *GameState, card CardName) {
	if len(p.CardsInHand) < MaxHandSize {
		p.CardsInHand = append(p.CardsInHand, card)
	} else {
		gs.DiscardPile.Push(card)
	}
}

// RemoveCardFromHand removes one copy of card from the hand.
func (p *Player) RemoveCardFromHand(card CardName) error {
	for i, c := range p.CardsInHand {
		if c == card {
			p.CardsInHand = append(p.CardsInHand[:i], p.CardsInHand[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not in hand", ErrInvalidInput, card)
}

// DiscardCard moves one copy of card from the hand to the discard pile.
func (p *Player) DiscardCard(gs *GameState, card CardName) error {
	if err := p.RemoveCardFromHand(card); err != nil {
		return err
	}
	gs.DiscardPile.Push(card)
	return nil
}

// --- city ---

// HasCardInCity reports whether at least one copy of card is played.
func (p *Player) HasCardInCity(card CardName) bool {
	return len(p.PlayedCards[card]) != 0
}

// GetPlayedCardInfos returns the played copies of card, oldest first.
func (p *Player) GetPlayedCardInfos(card CardName) []*PlayedCardInfo {
	return p.PlayedCards[card]
}

// ForEachPlayedCard calls fn once per played copy.
func (p *Player) ForEachPlayedCard(fn func(info *PlayedCardInfo)) {
	for _, infos := range p.PlayedCards {
		for _, info := range infos {
			fn(info)
		}
	}
}

// NumCardsInCity counts played copies, Wanderer included.
func (p *Player) NumCardsInCity() int {
	total := 0
	p.ForEachPlayedCard(func(*PlayedCardInfo) { total++ })
	return total
}

// NumCardType counts played copies of the given type.
func (p *Player) NumCardType(t CardType) int {
	count := 0
	p.ForEachPlayedCard(func(info *PlayedCardInfo) {
		if CardFromName(info.CardName).Type == t {
			count++
		}
	})
	return count
}

// PlayedCritters returns the critters in the city, one entry per copy.
func (p *Player) PlayedCritters() []CardName {
	var out []CardName
	p.ForEachPlayedCard(func(info *PlayedCardInfo) {
		if CardFromName(info.CardName).IsCritter() {
			out = append(out, info.CardName)
		}
	})
	return out
}

// NumHusbandWifePairs returns how many husband/wife pairs share a city slot.
func (p *Player) NumHusbandWifePairs() int {
	h := len(p.PlayedCards[CardHusband])
	w := len(p.PlayedCards[CardWife])
	if h < w {
		return h
	}
	return w
}

// CanAddToCity checks uniqueness and the city-size cap. Wanderer never
// occupies a slot and husband/wife pairs occupy one combined slot.
func (p *Player) CanAddToCity(card CardName) bool {
	c := CardFromName(card)
	if c.IsUnique && p.HasCardInCity(card) {
		return false
	}
	if card == CardWanderer {
		return true
	}
	occupied := 0
	p.ForEachPlayedCard(func(info *PlayedCardInfo) {
		if info.CardName != CardWanderer {
			occupied++
		}
	})
	occupied -= p.NumHusbandWifePairs()
	// An incoming wife pairs with an unpaired husband and shares their slot,
	// and the other way round.
	if card == CardWife && len(p.PlayedCards[CardHusband]) > len(p.PlayedCards[CardWife]) {
		occupied--
	}
	if card == CardHusband && len(p.PlayedCards[CardWife]) > len(p.PlayedCards[CardHusband]) {
		occupied--
	}
	return occupied < MaxCitySize
}

// AddToCity places a new copy of card in the city.
func (p *Player) AddToCity(card CardName) error {
	if !p.CanAddToCity(card) {
		return fmt.Errorf("%w: unable to add %s to city", ErrIllegalAction, card)
	}
	info := CardFromName(card).newPlayedCardInfo()
	p.PlayedCards[card] = append(p.PlayedCards[card], info)
	return nil
}

// RemoveCardFromCity removes one copy of the referenced card. Cards paired
// beneath it (Dungeon prisoners) are surfaced in the returned list; when
// addToDiscardPile is set everything removed goes to the discard pile.
func (p *Player) RemoveCardFromCity(gs *GameState, card CardName, addToDiscardPile bool) ([]CardName, error) {
	infos := p.PlayedCards[card]
	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: unable to remove %s from city", ErrInvalidInput, card)
	}
	last := infos[len(infos)-1]
	removed := append([]CardName{card}, last.PairedCards...)
	if len(infos) == 1 {
		delete(p.PlayedCards, card)
	} else {
		p.PlayedCards[card] = infos[:len(infos)-1]
	}
	if addToDiscardPile {
		for _, c := range removed {
			gs.DiscardPile.Push(c)
		}
	}
	return removed, nil
}

// HasUnusedConstructionFor reports whether an unoccupied copy of the given
// construction exists to host a critter for free.
func (p *Player) HasUnusedConstructionFor(card CardName) bool {
	if !CardFromName(card).IsConstruction {
		return false
	}
	for _, info := range p.PlayedCards[card] {
		if !info.UsedForCritter {
			return true
		}
	}
	return false
}

// UseConstructionToPlayCritter marks one unoccupied copy of the construction
// as occupied.
func (p *Player) UseConstructionToPlayCritter(card CardName) error {
	for _, info := range p.PlayedCards[card] {
		if !info.UsedForCritter {
			info.UsedForCritter = true
			return nil
		}
	}
	return fmt.Errorf("%w: no unoccupied %s found", ErrIllegalAction, card)
}

// CanInvokeDungeon reports whether the Dungeon discount is available: a
// played Dungeon with a free cell (two with Ranger) and a critter to lock up.
func (p *Player) CanInvokeDungeon() bool {
	dungeons := p.PlayedCards[CardDungeon]
	if len(dungeons) == 0 {
		return false
	}
	maxCells := 1
	if p.HasCardInCity(CardRanger) {
		maxCells = 2
	}
	if len(dungeons[0].PairedCards) >= maxCells {
		return false
	}
	critters := p.PlayedCritters()
	if len(critters) == 0 {
		return false
	}
	if len(critters) == 1 && critters[0] == CardRanger {
		return false
	}
	return true
}

// --- resources ---

// NumResources returns the total resource count, VP included.
func (p *Player) NumResources() int {
	return p.Resources.Sum()
}

// NumResourcesByType returns the count for one resource type.
func (p *Player) NumResourcesByType(t ResourceType) int {
	return p.Resources[t]
}

// GainResources adds the given amounts.
func (p *Player) GainResources(m ResourceMap) {
	for t, n := range m {
		p.Resources[t] += n
	}
}

// SpendResources subtracts the given amounts, failing if any counter would
// go negative.
func (p *Player) SpendResources(m ResourceMap) error {
	for t, n := range m {
		if p.Resources[t] < n {
			return fmt.Errorf("%w: insufficient %s", ErrIllegalAction, t)
		}
	}
	for t, n := range m {
		p.Resources[t] -= n
	}
	return nil
}

// --- workers ---

// NumAvailableWorkers returns total minus placed.
func (p *Player) NumAvailableWorkers() int {
	return p.NumWorkers - len(p.PlacedWorkers)
}

func (p *Player) placeWorker(w WorkerPlacement) error {
	if p.NumAvailableWorkers() <= 0 {
		return fmt.Errorf("%w: no workers left to place", ErrIllegalAction)
	}
	p.PlacedWorkers = append(p.PlacedWorkers, w)
	return nil
}

// PlaceWorkerOnLocation records a location placement.
func (p *Player) PlaceWorkerOnLocation(loc LocationName) error {
	return p.placeWorker(WorkerPlacement{Location: loc})
}

// PlaceWorkerOnEvent records an event placement and initializes the claimed
// event's storage.
func (p *Player) PlaceWorkerOnEvent(event EventName) error {
	if err := p.placeWorker(WorkerPlacement{Event: event}); err != nil {
		return err
	}
	p.ClaimedEvents[event] = EventFromName(event).newPlayedEventInfo()
	return nil
}

// CanPlaceWorkerOnCard checks availability, ownership (closed destinations
// accept only the owner) and space on the destination.
func (p *Player) CanPlaceWorkerOnCard(card CardName, cityOwner *Player) bool {
	if p.NumAvailableWorkers() <= 0 {
		return false
	}
	if cityOwner == nil {
		cityOwner = p
	}
	if !cityOwner.HasCardInCity(card) {
		return false
	}
	if cityOwner.PlayerID != p.PlayerID && !CardFromName(card).IsOpenDestination {
		return false
	}
	return cityOwner.HasSpaceOnDestinationCard(card)
}

// HasSpaceOnDestinationCard reports whether any played copy has a free
// worker slot.
func (p *Player) HasSpaceOnDestinationCard(card CardName) bool {
	for _, info := range p.PlayedCards[card] {
		if info.MaxWorkers > 0 && len(info.Workers) < info.MaxWorkers {
			return true
		}
	}
	return false
}

// PlaceWorkerOnCard records a card placement in cityOwner's city (the
// receiver's own city when nil).
func (p *Player) PlaceWorkerOnCard(card CardName, cityOwner *Player) error {
	if cityOwner == nil {
		cityOwner = p
	}
	if !p.CanPlaceWorkerOnCard(card, cityOwner) {
		return fmt.Errorf("%w: cannot place worker on %s", ErrIllegalAction, card)
	}
	if err := p.placeWorker(WorkerPlacement{Card: card, CardOwnerID: cityOwner.PlayerID}); err != nil {
		return err
	}
	for _, info := range cityOwner.PlayedCards[card] {
		if info.MaxWorkers > 0 && len(info.Workers) < info.MaxWorkers {
			info.Workers = append(info.Workers, p.PlayerID)
			return nil
		}
	}
	return fmt.Errorf("%w: no worker slot found on %s", ErrInvariant, card)
}

// isPermanentPlacement reports placements that season recall never returns:
// workers on the Cemetary or Monastery are committed once placed.
func isPermanentPlacement(w WorkerPlacement) bool {
	return w.Card == CardCemetary || w.Card == CardMonastery
}

// RecallableWorkers returns the placements that a recall effect (Ranger,
// A Wee Run City, season change) may bring back.
func (p *Player) RecallableWorkers() []WorkerPlacement {
	var out []WorkerPlacement
	for _, w := range p.PlacedWorkers {
		if !isPermanentPlacement(w) {
			out = append(out, w)
		}
	}
	return out
}

// RecallWorker returns a single worker from the given placement, updating
// the occupancy ledgers.
func (p *Player) RecallWorker(gs *GameState, w WorkerPlacement) error {
	if isPermanentPlacement(w) {
		return fmt.Errorf("%w: worker on %s is permanently placed", ErrIllegalAction, w.Card)
	}
	idx := -1
	for i, placed := range p.PlacedWorkers {
		if placed.Equal(w) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: no worker at %s", ErrInvalidInput, w)
	}
	if err := p.clearPlacement(gs, w); err != nil {
		return err
	}
	p.PlacedWorkers = append(p.PlacedWorkers[:idx], p.PlacedWorkers[idx+1:]...)
	return nil
}

// clearPlacement removes the worker from the occupancy record it sits in.
func (p *Player) clearPlacement(gs *GameState, w WorkerPlacement) error {
	switch {
	case w.Location != "":
		ids := gs.LocationsMap[w.Location]
		for i, id := range ids {
			if id == p.PlayerID {
				gs.LocationsMap[w.Location] = append(ids[:i], ids[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: no worker found at location %s", ErrInvariant, w.Location)
	case w.Event != "":
		// Event claims are permanent records; nothing to clear.
		return nil
	case w.Card != "":
		owner, err := gs.GetPlayer(w.CardOwnerID)
		if err != nil {
			return err
		}
		for _, info := range owner.PlayedCards[w.Card] {
			for i, id := range info.Workers {
				if id == p.PlayerID {
					info.Workers = append(info.Workers[:i], info.Workers[i+1:]...)
					return nil
				}
			}
		}
		return fmt.Errorf("%w: no worker found on %s", ErrInvariant, w.Card)
	}
	return fmt.Errorf("%w: empty worker placement", ErrInvariant)
}

// RecallWorkers brings back every recallable worker at a season boundary.
// It fails loudly if the player still has unplaced workers: recall is only
// legal once every worker has been deployed.
func (p *Player) RecallWorkers(gs *GameState) error {
	if p.NumAvailableWorkers() != 0 {
		return fmt.Errorf("%w: still have available workers", ErrInvariant)
	}
	var kept []WorkerPlacement
	for _, w := range p.PlacedWorkers {
		if isPermanentPlacement(w) {
			kept = append(kept, w)
			continue
		}
		if err := p.clearPlacement(gs, w); err != nil {
			return err
		}
	}
	p.PlacedWorkers = kept
	return nil
}

// --- affordability & payment ---

// paymentDiscount is the single discount in effect for a payment; discounts
// are exclusive.
type paymentDiscount int

const (
	discountNone paymentDiscount = iota
	// discountBerry knocks 3 berries off the cost (Innkeeper).
	discountBerry
	// discountAny covers up to 3 resources of any type (Dungeon, Inn on
	// meadow cards, Crane on constructions).
	discountAny
	// discountAnyOne covers a single resource of any type.
	discountAnyOne
)

func (d paymentDiscount) anyLimit() int {
	switch d {
	case discountAny:
		return 3
	case discountAnyOne:
		return 1
	}
	return 0
}

// CanAffordCard reports whether the player can pay for the card outright or
// through any applicable discount.
func (p *Player) CanAffordCard(card CardName, fromMeadow bool) bool {
	c := CardFromName(card)

	// A critter may ride for free on its unoccupied associated construction,
	// or on the Evertree which hosts any critter.
	if c.IsCritter() {
		if p.HasUnusedConstructionFor(CardEvertree) {
			return true
		}
		if c.AssociatedCard != "" && p.HasUnusedConstructionFor(c.AssociatedCard) {
			return true
		}
	}

	// Queen plays any card of base VP <= 3 for free.
	if c.BaseVP <= 3 && p.CanPlaceWorkerOnCard(CardQueen, nil) {
		return true
	}

	// Innkeeper: 3 berries off a berry-cost critter.
	if c.BaseCost[ResourceBerry] > 0 && c.IsCritter() && p.HasCardInCity(CardInnkeeper) {
		if ok, _ := p.isPaidResourcesValid(p.Resources, c.BaseCost, discountBerry, false); ok {
			return true
		}
	}

	disc := discountNone
	if p.CanInvokeDungeon() ||
		(fromMeadow && p.CanPlaceWorkerOnCard(CardInn, nil)) ||
		(c.IsConstruction && p.HasCardInCity(CardCrane)) {
		disc = discountAny
	}
	ok, _ := p.isPaidResourcesValid(p.Resources, c.BaseCost, disc, false)
	return ok
}

// isPaidResourcesValid nets paid against cost resource-by-resource after
// applying the discount. Any shortfall accumulates as outstandingOwed; the
// payment is valid when nothing is owed, when the ANY discount covers an owed
// total of at most 3, or when the Judge substitutes exactly one owed unit
// with one leftover unit of another type. With errorIfOverpay set, leftover
// payment beyond the exact cost is an ErrOverpay.
func (p *Player) isPaidResourcesValid(paid, cost ResourceMap, disc paymentDiscount, errorIfOverpay bool) (bool, error) {
	needToPay := ResourceMap{}
	payingWith := ResourceMap{}
	outstandingOwed := ResourceMap{}
	for _, t := range SpendableResourceTypes {
		needToPay[t] = cost[t]
		payingWith[t] = paid[t]
	}

	needToPaySum := needToPay.Sum()
	payingWithSum := payingWith.Sum()

	if disc == discountBerry {
		needToPay[ResourceBerry] -= 3
		if needToPay[ResourceBerry] < 0 {
			needToPay[ResourceBerry] = 0
		}
	}

	for _, t := range SpendableResourceTypes {
		count := needToPay[t]
		if count <= payingWith[t] {
			payingWith[t] -= count
		} else {
			outstandingOwed[t] = count - payingWith[t]
			payingWith[t] = 0
		}
	}

	owedSum := outstandingOwed.Sum()
	leftoverSum := payingWith.Sum()

	if limit := disc.anyLimit(); limit > 0 && owedSum <= limit {
		if errorIfOverpay && payingWithSum != 0 && payingWithSum+limit > needToPaySum {
			return false, ErrOverpay
		}
		return true, nil
	}

	// The Judge substitution only applies when no other discount is active.
	if disc == discountNone && p.HasCardInCity(CardJudge) && owedSum == 1 && leftoverSum >= 1 {
		if errorIfOverpay && leftoverSum != 1 {
			return false, ErrOverpay
		}
		return true, nil
	}

	if owedSum == 0 && leftoverSum != 0 && errorIfOverpay {
		return false, ErrOverpay
	}
	return owedSum == 0, nil
}

// ValidatePaymentOptions checks a PLAY_CARD payment against the player's
// resources and the card's discount rules.
func (p *Player) ValidatePaymentOptions(input *GameInput) error {
	if input.PaymentOptions == nil || input.PaymentOptions.Resources == nil {
		return fmt.Errorf("%w: missing payment options", ErrInvalidInput)
	}
	opts := input.PaymentOptions
	for t, n := range opts.Resources {
		if p.Resources[t] < n {
			return fmt.Errorf("%w: can't spend %d %s", ErrInvalidInput, n, t)
		}
	}

	card := CardFromName(input.Card)
	if opts.CardToDungeon != "" {
		if !p.CanInvokeDungeon() {
			return fmt.Errorf("%w: cannot use dungeon", ErrInvalidInput)
		}
		if !CardFromName(opts.CardToDungeon).IsCritter() {
			return fmt.Errorf("%w: can only dungeon a critter", ErrInvalidInput)
		}
		if !p.HasCardInCity(opts.CardToDungeon) {
			return fmt.Errorf("%w: %s is not in city", ErrInvalidInput, opts.CardToDungeon)
		}
		return p.checkPayment(opts.Resources, card.BaseCost, discountAny)
	}

	if opts.CardToUse != "" {
		if !p.HasCardInCity(opts.CardToUse) {
			return fmt.Errorf("%w: cannot use %s", ErrInvalidInput, opts.CardToUse)
		}
		switch opts.CardToUse {
		case CardCrane:
			if !card.IsConstruction {
				return fmt.Errorf("%w: cannot use Crane on %s", ErrInvalidInput, card.Name)
			}
			return p.checkPayment(opts.Resources, card.BaseCost, discountAny)
		case CardQueen:
			if card.BaseVP > 3 {
				return fmt.Errorf("%w: cannot use Queen to play %s", ErrInvalidInput, card.Name)
			}
			if !p.CanPlaceWorkerOnCard(CardQueen, nil) {
				return fmt.Errorf("%w: cannot place a worker on the Queen", ErrInvalidInput)
			}
			if opts.Resources.Sum() > 0 {
				return fmt.Errorf("%w: the Queen plays the card for free", ErrOverpay)
			}
			return nil
		case CardInn:
			if !input.FromMeadow {
				return fmt.Errorf("%w: cannot use Inn on a non-meadow card", ErrInvalidInput)
			}
			if !p.CanPlaceWorkerOnCard(CardInn, nil) {
				return fmt.Errorf("%w: cannot place a worker on the Inn", ErrInvalidInput)
			}
			return p.checkPayment(opts.Resources, card.BaseCost, discountAny)
		case CardInnkeeper:
			if !card.IsCritter() {
				return fmt.Errorf("%w: cannot use Innkeeper on %s", ErrInvalidInput, card.Name)
			}
			return p.checkPayment(opts.Resources, card.BaseCost, discountBerry)
		default:
			return fmt.Errorf("%w: unexpected payment card %s", ErrInvalidInput, opts.CardToUse)
		}
	}

	// A critter occupying its associated construction (or the Evertree)
	// plays for free.
	if card.IsCritter() && opts.Resources.Sum() == 0 {
		if card.AssociatedCard != "" && p.HasUnusedConstructionFor(card.AssociatedCard) {
			return nil
		}
		if p.HasUnusedConstructionFor(CardEvertree) {
			return nil
		}
	}

	return p.checkPayment(opts.Resources, card.BaseCost, discountNone)
}

func (p *Player) checkPayment(paid, cost ResourceMap, disc paymentDiscount) error {
	ok, err := p.isPaidResourcesValid(paid, cost, disc, true)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: payment does not cover card cost", ErrInvalidInput)
	}
	return nil
}

// PayForCard charges a validated payment: spends the resources and applies
// the side effect of the chosen discount source.
func (p *Player) PayForCard(gs *GameState, input *GameInput) error {
	if err := p.ValidatePaymentOptions(input); err != nil {
		return err
	}
	opts := input.PaymentOptions
	if err := p.SpendResources(opts.Resources); err != nil {
		return err
	}

	if opts.CardToDungeon != "" {
		if _, err := p.RemoveCardFromCity(gs, opts.CardToDungeon, false); err != nil {
			return err
		}
		dungeon := p.PlayedCards[CardDungeon][0]
		dungeon.PairedCards = append(dungeon.PairedCards, opts.CardToDungeon)
		return nil
	}

	switch opts.CardToUse {
	case "":
		if card := CardFromName(input.Card); card.IsCritter() && opts.Resources.Sum() == 0 && card.BaseCost.Sum() > 0 {
			// Free critter play occupies the matching construction.
			if card.AssociatedCard != "" && p.HasUnusedConstructionFor(card.AssociatedCard) {
				return p.UseConstructionToPlayCritter(card.AssociatedCard)
			}
			return p.UseConstructionToPlayCritter(CardEvertree)
		}
		return nil
	case CardCrane, CardInnkeeper:
		// Single use: the card leaves the city.
		_, err := p.RemoveCardFromCity(gs, opts.CardToUse, true)
		return err
	case CardQueen, CardInn:
		return p.PlaceWorkerOnCard(opts.CardToUse, nil)
	default:
		return fmt.Errorf("%w: unexpected payment card %s", ErrInvalidInput, opts.CardToUse)
	}
}

// --- production & scoring ---

// ActivateProduction runs the production effect of every green card in the
// city. Interactive production cards queue their own continuations.
func (p *Player) ActivateProduction(gs *GameState, input *GameInput) error {
	var names []CardName
	p.ForEachPlayedCard(func(info *PlayedCardInfo) {
		if CardFromName(info.CardName).Type == CardTypeProduction {
			names = append(names, info.CardName)
		}
	})
	for _, name := range names {
		if err := CardFromName(name).activateProduction(gs, input); err != nil {
			return err
		}
	}
	return nil
}

// GetPoints computes the player's final score: base and bonus points of
// played cards, claimed event points, and collected VP tokens. Pure read.
func (p *Player) GetPoints(gs *GameState) int {
	points := 0
	for name, infos := range p.PlayedCards {
		card := CardFromName(name)
		points += card.BaseVP * len(infos)
		// Point tokens stored on a card (Chapel, Clock Tower) score too.
		for _, info := range infos {
			points += info.Resources[ResourceVP]
		}
		// Bonus hooks count city-wide state, so they run once per name.
		if card.pointsInner != nil {
			points += card.pointsInner(gs, p.PlayerID)
		}
	}
	for name := range p.ClaimedEvents {
		points += EventFromName(name).GetPoints(gs, p.PlayerID)
	}
	points += p.Resources[ResourceVP]
	return points
}

// --- serialization ---

// PlayerJSON is the serialized form of a Player. Non-private snapshots omit
// the hand contents and the secret but keep the hand count.
type PlayerJSON struct {
	Name              string                         `json:"name"`
	PlayerID          string                         `json:"playerId"`
	PlayerSecret      string                         `json:"playerSecret,omitempty"`
	CardsInHand       []CardName                     `json:"cardsInHand"`
	NumCardsInHand    int                            `json:"numCardsInHand"`
	Resources         ResourceMap                    `json:"resources"`
	PlayedCards       map[CardName][]*PlayedCardInfo `json:"playedCards"`
	ClaimedEvents     map[EventName]*PlayedEventInfo `json:"claimedEvents"`
	NumWorkers        int                            `json:"numWorkers"`
	PlacedWorkers     []WorkerPlacement              `json:"placedWorkers"`
	CurrentSeason     Season                         `json:"currentSeason"`
	IsPreparingSeason bool                           `json:"isPreparingSeason"`
}

// ToJSON converts the player to its serialized form.
func (p *Player) ToJSON(includePrivate bool) PlayerJSON {
	out := PlayerJSON{
		Name:              p.Name,
		PlayerID:          p.PlayerID,
		CardsInHand:       []CardName{},
		NumCardsInHand:    len(p.CardsInHand),
		Resources:         p.Resources.Clone(),
		PlayedCards:       map[CardName][]*PlayedCardInfo{},
		ClaimedEvents:     map[EventName]*PlayedEventInfo{},
		NumWorkers:        p.NumWorkers,
		PlacedWorkers:     append([]WorkerPlacement{}, p.PlacedWorkers...),
		CurrentSeason:     p.CurrentSeason,
		IsPreparingSeason: p.IsPreparingSeason,
	}
	for name, infos := range p.PlayedCards {
		copies := make([]*PlayedCardInfo, len(infos))
		for i, info := range infos {
			copies[i] = info.Clone()
		}
		out.PlayedCards[name] = copies
	}
	for name, info := range p.ClaimedEvents {
		out.ClaimedEvents[name] = info.Clone()
	}
	if includePrivate {
		out.PlayerSecret = p.playerSecret
		out.CardsInHand = append([]CardName{}, p.CardsInHand...)
	}
	return out
}

// PlayerFromJSON rebuilds a player from its serialized form.
func PlayerFromJSON(j PlayerJSON) *Player {
	p := &Player{
		Name:              j.Name,
		PlayerID:          j.PlayerID,
		playerSecret:      j.PlayerSecret,
		CardsInHand:       append([]CardName{}, j.CardsInHand...),
		Resources:         j.Resources.Clone(),
		PlayedCards:       j.PlayedCards,
		ClaimedEvents:     j.ClaimedEvents,
		NumWorkers:        j.NumWorkers,
		PlacedWorkers:     append([]WorkerPlacement{}, j.PlacedWorkers...),
		CurrentSeason:     j.CurrentSeason,
		IsPreparingSeason: j.IsPreparingSeason,
	}
	if p.Resources == nil {
		p.Resources = ResourceMap{}
	}
	if p.PlayedCards == nil {
		p.PlayedCards = map[CardName][]*PlayedCardInfo{}
	}
	if p.ClaimedEvents == nil {
		p.ClaimedEvents = map[EventName]*PlayedEventInfo{}
	}
	return p
}
