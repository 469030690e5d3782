package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies one registered handler
type Subscription struct {
	eventType EventType
	id        int
}

type subscriber struct {
	id      int
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      int
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return Subscription{eventType: eventType, id: em.nextID}
}

// Unsubscribe removes the handler registered under sub. It is safe to call
// from inside a handler while its event is being emitted.
func (em *EventManager) Unsubscribe(sub Subscription) {
	handlers, exists := em.subscribers[sub.eventType]
	if !exists {
		return
	}

	kept := make([]subscriber, 0, len(handlers))
	for _, h := range handlers {
		if h.id != sub.id {
			kept = append(kept, h)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, sub.eventType)
	} else {
		em.subscribers[sub.eventType] = kept
	}
}

// HasSubscribers reports whether any handler listens for eventType
func (em *EventManager) HasSubscribers(eventType EventType) bool {
	return len(em.subscribers[eventType]) > 0
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	handlers, exists := em.subscribers[event.Type()]
	if !exists {
		return
	}

	for _, h := range handlers {
		h.handler(event)
	}
}
