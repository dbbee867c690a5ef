package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// GameLogEntry is one line of the per-game human-readable history. Entries
// serialize with the snapshot so viewers can replay what happened.
type GameLogEntry struct {
	PlayerID string `json:"playerId,omitempty"`
	Entry    string `json:"entry"`
}

// GameState is the root aggregate for one game instance: the active player
// pointer, the shared piles, the occupancy ledgers and the pending-input
// queue. Next is the only mutation surface and operates on a clone, so a
// held reference is never corrupted by a failed transition.
type GameState struct {
	// GameStateID increases by one per applied input; collaborators use it
	// to detect stale snapshots.
	GameStateID    int
	ActivePlayerID string
	Players        []*Player
	Meadow         []CardName
	Deck           *CardStack
	DiscardPile    *CardStack

	// LocationsMap maps each location on the board to the players occupying
	// it, in placement order. A key with an empty list is an open spot; a
	// missing key means the location is not part of this game.
	LocationsMap map[LocationName][]string

	// EventsMap maps each event on the board to the player who claimed it,
	// or "" while unclaimed.
	EventsMap map[EventName]string

	// PendingInputs is the queue of continuation inputs still required to
	// finish the current player's turn. Non-empty means the turn is not over
	// and the active player does not advance.
	PendingInputs []*GameInput

	GameLog []GameLogEntry

	rng *rand.Rand
}

// NewGameState builds a fresh game: shuffles a full deck, deals each player
// a starting hand of 5 plus their seat index (capped at the hand limit),
// fills the meadow and lays out the board. A nil rand source is seeded from
// the clock.
func NewGameState(players []*Player, r *rand.Rand) (*GameState, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: unable to create a game with %d players", ErrInvalidInput, len(players))
	}
	if len(players) > 6 {
		return nil, fmt.Errorf("%w: too many players: %d", ErrInvalidInput, len(players))
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	gs := &GameState{
		ActivePlayerID: players[0].PlayerID,
		Players:        players,
		Meadow:         []CardName{},
		Deck:           initialShuffledDeck(r),
		DiscardPile:    EmptyCardStack(),
		LocationsMap:   initialLocationsMap(r, len(players)),
		EventsMap:      initialEventsMap(r),
		PendingInputs:  []*GameInput{},
		GameLog:        []GameLogEntry{},
		rng:            r,
	}
	for i, p := range players {
		n := 5 + i
		if n > MaxHandSize {
			n = MaxHandSize
		}
		if err := p.DrawCards(gs, n); err != nil {
			return nil, err
		}
	}
	if err := gs.ReplenishMeadow(); err != nil {
		return nil, err
	}
	gs.addLog("", fmt.Sprintf("Game created with %d players.", len(players)))
	return gs, nil
}

// initialShuffledDeck builds the full card supply.
func initialShuffledDeck(r *rand.Rand) *CardStack {
	var cards []CardName
	for _, name := range AllCardNames() {
		for i := 0; i < CardFromName(name).NumInDeck(); i++ {
			cards = append(cards, name)
		}
	}
	deck := NewCardStack(cards)
	deck.Shuffle(r)
	return deck
}

func (gs *GameState) rand() *rand.Rand {
	if gs.rng == nil {
		gs.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return gs.rng
}

func (gs *GameState) addLog(playerID, entry string) {
	gs.GameLog = append(gs.GameLog, GameLogEntry{PlayerID: playerID, Entry: entry})
}

// --- queries ---

// ActivePlayer returns the player whose turn it is. Exactly one player
// matches ActivePlayerID by construction.
func (gs *GameState) ActivePlayer() *Player {
	for _, p := range gs.Players {
		if p.PlayerID == gs.ActivePlayerID {
			return p
		}
	}
	panic(fmt.Sprintf("unable to find the active player %s", gs.ActivePlayerID))
}

// GetPlayer finds a player by id.
func (gs *GameState) GetPlayer(playerID string) (*Player, error) {
	for _, p := range gs.Players {
		if p.PlayerID == playerID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: unable to find player %s", ErrInvariant, playerID)
}

// GetPlayerBySecret maps a private token back to its player.
func (gs *GameState) GetPlayerBySecret(secret string) (*Player, bool) {
	for _, p := range gs.Players {
		if p.playerSecret == secret {
			return p, true
		}
	}
	return nil, false
}

// OpponentIDs returns every other player's id in turn order, starting with
// the player after the active one.
func (gs *GameState) OpponentIDs() []string {
	idx := 0
	for i, p := range gs.Players {
		if p.PlayerID == gs.ActivePlayerID {
			idx = i
			break
		}
	}
	var ids []string
	for i := 1; i < len(gs.Players); i++ {
		ids = append(ids, gs.Players[(idx+i)%len(gs.Players)].PlayerID)
	}
	return ids
}

// GetPoints computes a player's current score. Pure read.
func (gs *GameState) GetPoints(playerID string) (int, error) {
	p, err := gs.GetPlayer(playerID)
	if err != nil {
		return 0, err
	}
	return p.GetPoints(gs), nil
}

// --- shared piles ---

// DrawCard takes the top card of the deck, reshuffling the discard pile into
// the deck first when the deck runs dry. Exhausting both piles breaks the
// card-count invariant.
func (gs *GameState) DrawCard() (CardName, error) {
	if gs.Deck.IsEmpty() {
		gs.DiscardPile.DrainInto(gs.Deck)
		gs.Deck.Shuffle(gs.rand())
	}
	card, err := gs.Deck.Draw()
	if err != nil {
		return "", fmt.Errorf("%w: no more cards to draw", ErrInvariant)
	}
	return card, nil
}

// RemoveFromMeadow takes one copy of card out of the meadow without
// replenishing it; effects that batch removals replenish once at the end.
func (gs *GameState) RemoveFromMeadow(card CardName) error {
	for i, c := range gs.Meadow {
		if c == card {
			gs.Meadow = append(gs.Meadow[:i], gs.Meadow[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not in the meadow", ErrInvalidInput, card)
}

// ReplenishMeadow refills the meadow from the deck up to its fixed size.
func (gs *GameState) ReplenishMeadow() error {
	for len(gs.Meadow) < MeadowSize {
		card, err := gs.DrawCard()
		if err != nil {
			return err
		}
		gs.Meadow = append(gs.Meadow, card)
	}
	return nil
}

// --- pending-input queue ---

// QueuePendingInput appends a continuation to the queue. Effect hooks push
// exactly one entry per non-terminal stage.
func (gs *GameState) QueuePendingInput(input *GameInput) {
	gs.PendingInputs = append(gs.PendingInputs, input)
}

// countPendingCardContinuations counts queued continuations of the given
// type owned by the given card.
func (gs *GameState) countPendingCardContinuations(t GameInputType, card CardName) int {
	count := 0
	for _, in := range gs.PendingInputs {
		if in.InputType == t && in.CardContext == card {
			count++
		}
	}
	return count
}

// --- transition ---

// Next applies one GameInput and returns the resulting state. The receiver
// is never mutated: the transition runs on a clone and is abandoned
// wholesale on error, so every call is all-or-nothing.
func (gs *GameState) Next(input *GameInput) (*GameState, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: missing input", ErrInvalidInput)
	}
	next := gs.Clone()
	if err := next.apply(input); err != nil {
		return nil, err
	}
	// A PREPARE_FOR_SEASON resolves only once its pending inputs (Clock
	// Tower) have drained.
	if len(next.PendingInputs) == 0 && next.ActivePlayer().IsPreparingSeason {
		if err := next.finishSeasonPrep(input); err != nil {
			return nil, err
		}
	}
	if len(next.PendingInputs) == 0 {
		next.advanceActivePlayer()
	}
	next.GameStateID++
	return next, nil
}

func (gs *GameState) apply(input *GameInput) error {
	if len(gs.PendingInputs) > 0 && !input.InputType.IsContinuation() {
		return fmt.Errorf("%w: a pending %s must be resolved first", ErrIllegalAction, gs.PendingInputs[0].InputType)
	}
	switch input.InputType {
	case InputPlayCard:
		return gs.applyPlayCard(input)
	case InputPlaceWorker:
		if _, ok := locationRegistry[input.Location]; !ok {
			return fmt.Errorf("%w: unknown location %s", ErrInvalidInput, input.Location)
		}
		if err := gs.visitLocation(input.Location, input); err != nil {
			return err
		}
		gs.addLog(gs.ActivePlayerID, fmt.Sprintf("Placed a worker on %s.", input.Location))
		return nil
	case InputVisitDestinationCard:
		return gs.applyVisitDestination(input)
	case InputClaimEvent:
		if _, ok := eventRegistry[input.Event]; !ok {
			return fmt.Errorf("%w: unknown event %s", ErrInvalidInput, input.Event)
		}
		if err := EventFromName(input.Event).Play(gs, input); err != nil {
			return err
		}
		gs.addLog(gs.ActivePlayerID, fmt.Sprintf("Claimed %s.", input.Event))
		return nil
	case InputPrepareForSeason:
		return gs.applyPrepareForSeason(input)
	case InputGameEnd:
		// Terminal by convention: scoring is a pure read, not a transition.
		gs.addLog(gs.ActivePlayerID, "Passed.")
		return nil
	}
	if input.InputType.IsContinuation() {
		return gs.applyContinuation(input)
	}
	return fmt.Errorf("%w: unrecognized input type %s", ErrInvalidInput, input.InputType)
}

func (gs *GameState) applyPlayCard(input *GameInput) error {
	if _, ok := cardRegistry[input.Card]; !ok {
		return fmt.Errorf("%w: unknown card %s", ErrInvalidInput, input.Card)
	}
	p := gs.ActivePlayer()
	card := CardFromName(input.Card)
	if input.FromMeadow {
		if !containsCard(gs.Meadow, input.Card) {
			return fmt.Errorf("%w: %s is not in the meadow", ErrInvalidInput, input.Card)
		}
	} else if !containsCard(p.CardsInHand, input.Card) {
		return fmt.Errorf("%w: %s is not in hand", ErrInvalidInput, input.Card)
	}
	if !card.CanPlay(gs, input) {
		return fmt.Errorf("%w: unable to play %s", ErrIllegalAction, input.Card)
	}
	if err := p.PayForCard(gs, input); err != nil {
		return err
	}
	if input.FromMeadow {
		if err := gs.RemoveFromMeadow(input.Card); err != nil {
			return err
		}
	} else if err := p.RemoveCardFromHand(input.Card); err != nil {
		return err
	}
	if err := card.Play(gs, input); err != nil {
		return err
	}
	if input.FromMeadow {
		if err := gs.ReplenishMeadow(); err != nil {
			return err
		}
	}
	if err := gs.activatePlayTriggers(card); err != nil {
		return err
	}
	gs.addLog(p.PlayerID, fmt.Sprintf("Played %s.", card.Name))
	return nil
}

// activatePlayTriggers fires the "whenever you play a card" passives after a
// card enters play, whether paid for or played for free.
func (gs *GameState) activatePlayTriggers(played *Card) error {
	p := gs.ActivePlayer()
	if played.IsConstruction && played.Name != CardCourthouse && p.HasCardInCity(CardCourthouse) {
		gs.QueuePendingInput(&GameInput{
			InputType:     InputSelectResources,
			PrevInputType: InputPlayCard,
			CardContext:   CardCourthouse,
			MinResources:  1,
			MaxResources:  1,
		})
	}
	if played.Name != CardHistorian && p.HasCardInCity(CardHistorian) {
		if err := p.DrawCards(gs, 1); err != nil {
			return err
		}
	}
	if played.IsCritter() && played.Name != CardShopkeeper && p.HasCardInCity(CardShopkeeper) {
		p.GainResources(ResourceMap{ResourceBerry: 1})
	}
	return nil
}

// playCardForFree puts a card into play without payment and without touching
// the hand or the meadow; effects that play cards (Inn, Queen, Cemetary,
// Postal Pigeon, Fool) remove the card from its source themselves.
func (gs *GameState) playCardForFree(card CardName, input *GameInput) error {
	c := CardFromName(card)
	if err := c.Play(gs, input); err != nil {
		return err
	}
	if err := gs.activatePlayTriggers(c); err != nil {
		return err
	}
	gs.addLog(gs.ActivePlayerID, fmt.Sprintf("Played %s for free.", card))
	return nil
}

func (gs *GameState) applyVisitDestination(input *GameInput) error {
	if _, ok := cardRegistry[input.Card]; !ok {
		return fmt.Errorf("%w: unknown card %s", ErrInvalidInput, input.Card)
	}
	p := gs.ActivePlayer()
	owner := p
	if input.CityOwnerID != "" && input.CityOwnerID != p.PlayerID {
		var err error
		owner, err = gs.GetPlayer(input.CityOwnerID)
		if err != nil {
			return err
		}
	}
	card := CardFromName(input.Card)
	if !card.CanVisit(gs, input, owner) {
		return fmt.Errorf("%w: unable to visit %s", ErrIllegalAction, input.Card)
	}
	if err := p.PlaceWorkerOnCard(card.Name, owner); err != nil {
		return err
	}
	// Visiting an open destination pays its owner a point token.
	if owner.PlayerID != p.PlayerID {
		owner.GainResources(ResourceMap{ResourceVP: 1})
	}
	if err := card.Visit(gs, input); err != nil {
		return err
	}
	gs.addLog(p.PlayerID, fmt.Sprintf("Visited %s.", card.Name))
	return nil
}

func (gs *GameState) applyPrepareForSeason(input *GameInput) error {
	p := gs.ActivePlayer()
	if p.IsPreparingSeason {
		return fmt.Errorf("%w: already preparing for the next season", ErrIllegalAction)
	}
	if p.CurrentSeason == SeasonAutumn {
		return fmt.Errorf("%w: no season after %s", ErrIllegalAction, SeasonAutumn)
	}
	if p.NumAvailableWorkers() > 0 {
		return fmt.Errorf("%w: still have workers to place", ErrIllegalAction)
	}
	p.IsPreparingSeason = true
	// The Clock Tower may re-activate a placed location before recall.
	if p.HasCardInCity(CardClockTower) {
		if err := CardFromName(CardClockTower).playInner(gs, input); err != nil {
			return err
		}
	}
	gs.addLog(p.PlayerID, "Preparing for the next season.")
	return nil
}

// finishSeasonPrep runs once the PREPARE_FOR_SEASON pending inputs drain:
// recall workers, advance the season and fire the season effect.
func (gs *GameState) finishSeasonPrep(input *GameInput) error {
	p := gs.ActivePlayer()
	p.IsPreparingSeason = false
	if err := p.RecallWorkers(gs); err != nil {
		return err
	}
	prev := p.CurrentSeason
	next, ok := prev.Next()
	if !ok {
		return fmt.Errorf("%w: no season after %s", ErrInvariant, prev)
	}
	p.CurrentSeason = next
	p.NumWorkers = numWorkersForSeason(next)
	gs.addLog(p.PlayerID, fmt.Sprintf("Advanced to %s.", next))
	switch prev {
	case SeasonWinter, SeasonSummer:
		return p.ActivateProduction(gs, input)
	case SeasonSpring:
		gs.QueuePendingInput(&GameInput{
			InputType:     InputSelectCards,
			PrevInputType: InputPrepareForSeason,
			CardOptions:   append([]CardName{}, gs.Meadow...),
			MinToSelect:   2,
			MaxToSelect:   2,
		})
	}
	return nil
}

// applyContinuation matches an incoming answer against the head of the
// pending queue and re-dispatches it to the context that queued it.
func (gs *GameState) applyContinuation(input *GameInput) error {
	if len(gs.PendingInputs) == 0 {
		return fmt.Errorf("%w: no pending input to resolve", ErrInvalidInput)
	}
	pending := gs.PendingInputs[0]
	if !input.StructurallyMatches(pending) {
		return fmt.Errorf("%w: input does not match the pending %s", ErrInvalidInput, pending.InputType)
	}
	if input.ClientOptions == nil {
		input.ClientOptions = &ClientOptions{}
	}
	gs.PendingInputs = gs.PendingInputs[1:]
	switch {
	case input.CardContext != "":
		return CardFromName(input.CardContext).resolveContinuation(gs, input)
	case input.LocationContext != "":
		return LocationFromName(input.LocationContext).resolveContinuation(gs, input)
	case input.EventContext != "":
		return EventFromName(input.EventContext).resolveContinuation(gs, input)
	}
	return gs.resolveStateContinuation(input)
}

// resolveStateContinuation handles the continuations the state machine owns
// itself: the spring meadow draft.
func (gs *GameState) resolveStateContinuation(input *GameInput) error {
	if input.InputType == InputSelectCards && input.PrevInputType == InputPrepareForSeason {
		p := gs.ActivePlayer()
		selected := input.ClientOptions.SelectedCards
		if err := validateSelectedCards(selected, input.CardOptions, input.MinToSelect, input.MaxToSelect); err != nil {
			return err
		}
		for _, card := range selected {
			if err := gs.RemoveFromMeadow(card); err != nil {
				return err
			}
			p.AddCardToHand(gs, card)
		}
		return gs.ReplenishMeadow()
	}
	return fmt.Errorf("%w: no handler for pending %s", ErrInvariant, input.InputType)
}

func (gs *GameState) advanceActivePlayer() {
	for i, p := range gs.Players {
		if p.PlayerID == gs.ActivePlayerID {
			gs.ActivePlayerID = gs.Players[(i+1)%len(gs.Players)].PlayerID
			return
		}
	}
}

// --- board helpers used by effects ---

// placeableLocations returns the on-board locations the active player could
// move a worker to right now, sorted for stable option lists.
func (gs *GameState) placeableLocations() []LocationName {
	names := make([]LocationName, 0, len(gs.LocationsMap))
	for name := range gs.LocationsMap {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	var out []LocationName
	for _, name := range names {
		trial := &GameInput{InputType: InputPlaceWorker, Location: name}
		if LocationFromName(name).CanPlay(gs, trial) {
			out = append(out, name)
		}
	}
	return out
}

// visitLocation places the active player's worker on a location and runs its
// effect. Also the landing point for the Ranger's re-placement.
func (gs *GameState) visitLocation(name LocationName, input *GameInput) error {
	loc := LocationFromName(name)
	if !loc.CanPlay(gs, input) {
		return fmt.Errorf("%w: unable to place a worker on %s", ErrIllegalAction, name)
	}
	p := gs.ActivePlayer()
	if err := p.PlaceWorkerOnLocation(name); err != nil {
		return err
	}
	gs.LocationsMap[name] = append(gs.LocationsMap[name], p.PlayerID)
	return loc.Activate(gs, input)
}

// --- legal-move enumeration ---

// GetPossibleGameInputs lists the inputs the active player may submit. When
// a continuation is pending the queue is the only choice.
func (gs *GameState) GetPossibleGameInputs() []*GameInput {
	if len(gs.PendingInputs) > 0 {
		out := make([]*GameInput, 0, len(gs.PendingInputs))
		for _, in := range gs.PendingInputs {
			out = append(out, in.Clone())
		}
		return out
	}

	p := gs.ActivePlayer()
	var out []*GameInput

	if p.NumAvailableWorkers() > 0 {
		for _, name := range gs.placeableLocations() {
			out = append(out, &GameInput{InputType: InputPlaceWorker, Location: name})
		}
		for _, name := range gs.claimableEvents() {
			out = append(out, &GameInput{InputType: InputClaimEvent, Event: name})
		}
		out = append(out, gs.visitableDestinations()...)
	}

	for _, card := range dedupeCards(p.CardsInHand) {
		in := &GameInput{InputType: InputPlayCard, Card: card}
		if CardFromName(card).CanPlay(gs, in) {
			out = append(out, in)
		}
	}
	for _, card := range dedupeCards(gs.Meadow) {
		in := &GameInput{InputType: InputPlayCard, Card: card, FromMeadow: true}
		if CardFromName(card).CanPlay(gs, in) {
			out = append(out, in)
		}
	}

	if p.NumAvailableWorkers() == 0 && p.CurrentSeason != SeasonAutumn {
		out = append(out, &GameInput{InputType: InputPrepareForSeason})
	}
	if len(out) == 0 {
		out = append(out, &GameInput{InputType: InputGameEnd})
	}
	return out
}

func (gs *GameState) claimableEvents() []EventName {
	names := make([]EventName, 0, len(gs.EventsMap))
	for name := range gs.EventsMap {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	var out []EventName
	for _, name := range names {
		trial := &GameInput{InputType: InputClaimEvent, Event: name}
		if EventFromName(name).CanPlay(gs, trial) {
			out = append(out, name)
		}
	}
	return out
}

func (gs *GameState) visitableDestinations() []*GameInput {
	p := gs.ActivePlayer()
	var out []*GameInput
	for _, owner := range gs.Players {
		for _, card := range AllCardNames() {
			if len(owner.PlayedCards[card]) == 0 {
				continue
			}
			in := &GameInput{InputType: InputVisitDestinationCard, Card: card}
			if owner.PlayerID != p.PlayerID {
				in.CityOwnerID = owner.PlayerID
			}
			if CardFromName(card).CanVisit(gs, in, owner) {
				out = append(out, in)
			}
		}
	}
	return out
}

func dedupeCards(cards []CardName) []CardName {
	seen := map[CardName]bool{}
	var out []CardName
	for _, c := range cards {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// --- serialization ---

// GameStateJSON is the persisted-state contract. Private snapshots are
// full fidelity; non-private ones hide hands, secrets and pile contents.
type GameStateJSON struct {
	GameStateID    int                       `json:"gameStateId"`
	ActivePlayerID string                    `json:"activePlayerId"`
	Players        []PlayerJSON              `json:"players"`
	MeadowCards    []CardName                `json:"meadowCards"`
	Deck           CardStackJSON             `json:"deck"`
	DiscardPile    CardStackJSON             `json:"discardPile"`
	LocationsMap   map[LocationName][]string `json:"locationsMap"`
	EventsMap      map[EventName]string      `json:"eventsMap"`
	PendingInputs  []*GameInput              `json:"pendingGameInputs"`
	GameLog        []GameLogEntry            `json:"gameLog"`
}

// ToJSON converts the state to its serialized form.
func (gs *GameState) ToJSON(includePrivate bool) GameStateJSON {
	out := GameStateJSON{
		GameStateID:    gs.GameStateID,
		ActivePlayerID: gs.ActivePlayerID,
		Players:        make([]PlayerJSON, 0, len(gs.Players)),
		MeadowCards:    append([]CardName{}, gs.Meadow...),
		Deck:           gs.Deck.ToJSON(includePrivate),
		DiscardPile:    gs.DiscardPile.ToJSON(includePrivate),
		LocationsMap:   map[LocationName][]string{},
		EventsMap:      map[EventName]string{},
		PendingInputs:  make([]*GameInput, 0, len(gs.PendingInputs)),
		GameLog:        append([]GameLogEntry{}, gs.GameLog...),
	}
	for _, p := range gs.Players {
		out.Players = append(out.Players, p.ToJSON(includePrivate))
	}
	for name, occupants := range gs.LocationsMap {
		out.LocationsMap[name] = append([]string{}, occupants...)
	}
	for name, claimedBy := range gs.EventsMap {
		out.EventsMap[name] = claimedBy
	}
	for _, in := range gs.PendingInputs {
		out.PendingInputs = append(out.PendingInputs, in.Clone())
	}
	return out
}

// GameStateFromJSON rebuilds a state from a full-fidelity snapshot.
func GameStateFromJSON(j GameStateJSON) *GameState {
	gs := &GameState{
		GameStateID:    j.GameStateID,
		ActivePlayerID: j.ActivePlayerID,
		Players:        make([]*Player, 0, len(j.Players)),
		Meadow:         append([]CardName{}, j.MeadowCards...),
		Deck:           CardStackFromJSON(j.Deck),
		DiscardPile:    CardStackFromJSON(j.DiscardPile),
		LocationsMap:   j.LocationsMap,
		EventsMap:      j.EventsMap,
		PendingInputs:  j.PendingInputs,
		GameLog:        append([]GameLogEntry{}, j.GameLog...),
	}
	for _, pj := range j.Players {
		gs.Players = append(gs.Players, PlayerFromJSON(pj))
	}
	if gs.LocationsMap == nil {
		gs.LocationsMap = map[LocationName][]string{}
	}
	if gs.EventsMap == nil {
		gs.EventsMap = map[EventName]string{}
	}
	if gs.PendingInputs == nil {
		gs.PendingInputs = []*GameInput{}
	}
	return gs
}

// Clone deep-copies the state through its full-fidelity serialized form.
// The rand source carries over so reshuffles stay deterministic under a
// seeded game.
func (gs *GameState) Clone() *GameState {
	out := GameStateFromJSON(gs.ToJSON(true))
	out.rng = gs.rng
	return out
}
