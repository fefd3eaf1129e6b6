package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/bramble"
)

// InteractionEventType is the Donburi event type for bramble interaction
// events. Subscribe to it in ECS systems to receive clicks, hovers, scrolls
// and key actions of bound widgets.
var InteractionEventType = events.NewEventType[bramble.InteractionEvent]()

// WidgetData links an entity to its widget and keeps a summary of what the
// player did with it.
type WidgetData struct {
	Widget  *bramble.Widget
	Hovered bool
	Clicks  int
}

// WidgetComponent is the component type holding WidgetData.
var WidgetComponent = donburi.NewComponentType[WidgetData]()

// DonburiStore is a bramble.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	nextID   uint32
}

// NewDonburiStore creates a store publishing to world. Interaction events are
// queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[uint32]donburi.Entity)}
}

// World returns the backing world.
func (s *DonburiStore) World() donburi.World { return s.world }

// Bind creates an entity carrying a WidgetComponent for w and gives w the
// entity ID that its interaction events are tagged with.
func (s *DonburiStore) Bind(w *bramble.Widget) donburi.Entity {
	e := s.world.Create(WidgetComponent)
	WidgetComponent.SetValue(s.world.Entry(e), WidgetData{Widget: w})
	s.nextID++
	w.EntityID = s.nextID
	s.entities[s.nextID] = e
	return e
}

// Entity returns the entity bound to a widget's EntityID.
func (s *DonburiStore) Entity(id uint32) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	if !ok || !s.world.Valid(e) {
		return donburi.Null, false
	}
	return e, true
}

// EmitEvent implements bramble.EntityStore.
func (s *DonburiStore) EmitEvent(event bramble.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// TrackInteractions subscribes a system that keeps WidgetData in step with
// the events of bound widgets. Events for removed entities are ignored.
func (s *DonburiStore) TrackInteractions() {
	InteractionEventType.Subscribe(s.world, func(w donburi.World, ev bramble.InteractionEvent) {
		e, ok := s.Entity(ev.EntityID)
		if !ok {
			return
		}
		data := WidgetComponent.Get(w.Entry(e))
		switch ev.Kind {
		case bramble.EventMouseEnter:
			data.Hovered = true
		case bramble.EventMouseExit:
			data.Hovered = false
		case bramble.EventMouseClick:
			if ev.Handled {
				data.Clicks++
			}
		}
	})
}

// ProcessEvents delivers queued interaction events to subscribers. Call it
// once per frame, typically from the game's updater.
func (s *DonburiStore) ProcessEvents() {
	InteractionEventType.ProcessEvents(s.world)
}
