package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GameInput is one discrete decision. It is a tagged union flattened into a
// single struct: InputType selects which fields are meaningful, everything
// else is omitted from JSON when unset. Continuation inputs carry the
// context (card/location/event) that must resolve them plus the option lists
// the player chooses from; the player's answer arrives in ClientOptions.
type GameInput struct {
	InputType GameInputType `json:"inputType"`

	// Back-references for continuation inputs.
	PrevInputType GameInputType `json:"prevInputType,omitempty"`
	PrevInput     *GameInput    `json:"prevInput,omitempty"`

	// Top-level action payloads.
	Card           CardName        `json:"card,omitempty"`
	FromMeadow     bool            `json:"fromMeadow,omitempty"`
	PaymentOptions *PaymentOptions `json:"paymentOptions,omitempty"`
	Location       LocationName    `json:"location,omitempty"`
	Event          EventName       `json:"event,omitempty"`
	// CityOwnerID identifies whose city hosts the destination card being
	// visited; empty means the active player's own city.
	CityOwnerID string `json:"cityOwnerId,omitempty"`

	// Context: which registry entry resolves this continuation.
	CardContext     CardName     `json:"cardContext,omitempty"`
	LocationContext LocationName `json:"locationContext,omitempty"`
	EventContext    EventName    `json:"eventContext,omitempty"`

	// Continuation option sets and bounds.
	CardOptions           []CardName        `json:"cardOptions,omitempty"`
	CardOptionsUnfiltered []CardName        `json:"cardOptionsUnfiltered,omitempty"`
	PlayedCardOptions     []PlayedCardRef   `json:"playedCardOptions,omitempty"`
	PlayerOptions         []string          `json:"playerOptions,omitempty"`
	LocationOptions       []LocationName    `json:"locationOptions,omitempty"`
	WorkerOptions         []WorkerPlacement `json:"workerOptions,omitempty"`
	GenericOptions        []string          `json:"genericOptions,omitempty"`
	MaxToSelect           int               `json:"maxToSelect,omitempty"`
	MinToSelect           int               `json:"minToSelect,omitempty"`
	MaxResources          int               `json:"maxResources,omitempty"`
	MinResources          int               `json:"minResources,omitempty"`
	// ToSpend distinguishes "choose resources to pay" from "choose resources
	// to gain" in SELECT_RESOURCES.
	ToSpend       bool `json:"toSpend,omitempty"`
	MustSelectOne bool `json:"mustSelectOne,omitempty"`
	// SpecificResource restricts SELECT_RESOURCES to a single type.
	SpecificResource ResourceType `json:"specificResource,omitempty"`

	// The player's answer. Ignored by structural matching.
	ClientOptions *ClientOptions `json:"clientOptions,omitempty"`
}

// ClientOptions carries the answer payload the external party fills in
// before submitting an input.
type ClientOptions struct {
	SelectedCards       []CardName       `json:"selectedCards,omitempty"`
	SelectedPlayedCards []PlayedCardRef  `json:"selectedPlayedCards,omitempty"`
	SelectedPlayer      string           `json:"selectedPlayer,omitempty"`
	Resources           ResourceMap      `json:"resources,omitempty"`
	CardsToDiscard      []CardName       `json:"cardsToDiscard,omitempty"`
	SelectedLocation    LocationName     `json:"selectedLocation,omitempty"`
	SelectedOption      string           `json:"selectedOption,omitempty"`
	SelectedWorker      *WorkerPlacement `json:"selectedWorker,omitempty"`
	Payment             *PaymentOptions  `json:"payment,omitempty"`
}

// PaymentOptions describes how a PLAY_CARD input is paid for.
type PaymentOptions struct {
	Resources ResourceMap `json:"resources,omitempty"`
	// CardToUse is a discount source: CRANE, INNKEEPER, QUEEN or INN.
	CardToUse CardName `json:"cardToUse,omitempty"`
	// CardToDungeon is the critter locked beneath the Dungeon.
	CardToDungeon CardName `json:"cardToDungeon,omitempty"`
}

// PlayedCardRef names one copy of a played card in a specific player's city.
type PlayedCardRef struct {
	OwnerID  string   `json:"ownerId"`
	CardName CardName `json:"cardName"`
}

// WorkerPlacement records where one worker stands: exactly one of Location,
// Event or Card (plus CardOwnerID) is set.
type WorkerPlacement struct {
	Location    LocationName `json:"location,omitempty"`
	Event       EventName    `json:"event,omitempty"`
	Card        CardName     `json:"card,omitempty"`
	CardOwnerID string       `json:"cardOwnerId,omitempty"`
}

// Equal compares two placements field by field.
func (w WorkerPlacement) Equal(other WorkerPlacement) bool {
	return w == other
}

func (w WorkerPlacement) String() string {
	switch {
	case w.Location != "":
		return string(w.Location)
	case w.Event != "":
		return string(w.Event)
	default:
		return fmt.Sprintf("%s@%s", w.Card, w.CardOwnerID)
	}
}

// StructurallyMatches reports whether in answers the pending entry, i.e. the
// two inputs are identical once the answer payload (ClientOptions) is
// stripped from both. Pending entries are matched by value so that stale or
// replayed continuations from older snapshots are rejected.
func (in *GameInput) StructurallyMatches(pending *GameInput) bool {
	a := *in
	b := *pending
	a.ClientOptions = nil
	b.ClientOptions = nil
	aj, err := json.Marshal(&a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(&b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

// Clone deep-copies the input via its serialized form. Inputs contain no
// runtime-only state, so the round trip is lossless.
func (in *GameInput) Clone() *GameInput {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil
	}
	var out GameInput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

func containsCard(cards []CardName, card CardName) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsLocation(list []LocationName, l LocationName) bool {
	for _, v := range list {
		if v == l {
			return true
		}
	}
	return false
}
