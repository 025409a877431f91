package game

import (
	"time"

	"github.com/aviarylabs/aviary/internal/content"
)

// EventType represents a semantic game event type.
type EventType string

const (
	EventTypeGameStarted     EventType = "game_started"
	EventTypeRoundStarted    EventType = "round_started"
	EventTypeTurnStarted     EventType = "turn_started"
	EventTypeTurnEnded       EventType = "turn_ended"
	EventTypeRoundEnded      EventType = "round_ended"
	EventTypeGameEnded       EventType = "game_ended"
	EventTypeBirdPlayed      EventType = "bird_played"
	EventTypeFoodGained      EventType = "food_gained"
	EventTypeEggsLaid        EventType = "eggs_laid"
	EventTypeCardsDrawn      EventType = "cards_drawn"
	EventTypePowerActivated  EventType = "power_activated"
	EventTypePowerDeclined   EventType = "power_declined"
	EventTypePlayerForfeited EventType = "player_forfeited"
)

func (et EventType) String() string { return string(et) }

// Event is a semantic, non-mutating notification. Events are derived
// commentary for observers and must never be relied on for state changes.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

type eventStamp struct{ at time.Time }

func (e eventStamp) Timestamp() time.Time { return e.at }

// GameStartedEvent is published once, before the starting-hand draft.
type GameStartedEvent struct {
	eventStamp
	Players []string
	Seed    int64
}

func (GameStartedEvent) EventType() EventType { return EventTypeGameStarted }

// RoundStartedEvent is published at each round boundary.
type RoundStartedEvent struct {
	eventStamp
	Round   int
	Actions int // per-player action allotment this round
}

func (RoundStartedEvent) EventType() EventType { return EventTypeRoundStarted }

// TurnStartedEvent is published when a player's turn begins.
type TurnStartedEvent struct {
	eventStamp
	Player PlayerID
	Round  int
	Turn   int
}

func (TurnStartedEvent) EventType() EventType { return EventTypeTurnStarted }

// TurnEndedEvent is published after a base action fully resolves.
type TurnEndedEvent struct {
	eventStamp
	Player PlayerID
	Action ActionType
	Round  int
	Turn   int
}

func (TurnEndedEvent) EventType() EventType { return EventTypeTurnEnded }

// RoundEndedEvent is published when every player's actions are spent.
type RoundEndedEvent struct {
	eventStamp
	Round int
}

func (RoundEndedEvent) EventType() EventType { return EventTypeRoundEnded }

// GameEndedEvent carries the final result.
type GameEndedEvent struct {
	eventStamp
	Result *GameResult
}

func (GameEndedEvent) EventType() EventType { return EventTypeGameEnded }

// BirdPlayedEvent is published when a bird lands on a board.
type BirdPlayedEvent struct {
	eventStamp
	Player  PlayerID
	Card    content.CardID
	Habitat content.Habitat
}

func (BirdPlayedEvent) EventType() EventType { return EventTypeBirdPlayed }

// FoodGainedEvent is published when a player gains food.
type FoodGainedEvent struct {
	eventStamp
	Player PlayerID
	Food   content.FoodType
	Count  int
}

func (FoodGainedEvent) EventType() EventType { return EventTypeFoodGained }

// EggsLaidEvent is published when a player lays eggs.
type EggsLaidEvent struct {
	eventStamp
	Player PlayerID
	Count  int
}

func (EggsLaidEvent) EventType() EventType { return EventTypeEggsLaid }

// CardsDrawnEvent is published when a player draws cards.
type CardsDrawnEvent struct {
	eventStamp
	Player PlayerID
	Count  int
}

func (CardsDrawnEvent) EventType() EventType { return EventTypeCardsDrawn }

// PowerActivatedEvent is published after a power handler runs to completion.
type PowerActivatedEvent struct {
	eventStamp
	Bird    BirdKey
	Kind    content.PowerKind
	Trigger content.PowerTrigger
}

func (PowerActivatedEvent) EventType() EventType { return EventTypePowerActivated }

// PowerDeclinedEvent is published when a player declines an offered power.
// A decline has no side effects and is distinct from a recorded skip.
type PowerDeclinedEvent struct {
	eventStamp
	Bird BirdKey
	Kind content.PowerKind
}

func (PowerDeclinedEvent) EventType() EventType { return EventTypePowerDeclined }

// PlayerForfeitedEvent is published when a player exhausts the retry budget.
type PlayerForfeitedEvent struct {
	eventStamp
	Player PlayerID
}

func (PlayerForfeitedEvent) EventType() EventType { return EventTypePlayerForfeited }

// EventSubscriber receives published events.
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus is a basic synchronous in-memory event bus.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish delivers an event to every subscriber synchronously.
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// Observer receives read-only hooks immediately before an Event is processed
// and before an Effect is applied. Observers must not mutate the arguments.
type Observer interface {
	OnEvent(Event)
	OnEffect(Effect)
}
