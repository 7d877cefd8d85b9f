// Package ecs provides ECS adapters for stipple.
package ecs

import (
	"github.com/phanxgames/stipple"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType is the Donburi event type for stipple editor events.
// Subscribe to this in your ECS systems to receive pixel change, cell
// click/hover, and scale change events.
var EditorEventType = events.NewEventType[stipple.EditorEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Editor
// events are published to EditorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) stipple.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event stipple.EditorEvent) {
	EditorEventType.Publish(s.world, event)
}
