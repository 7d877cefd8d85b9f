package ecs

import (
	"testing"

	"github.com/phanxgames/stipple"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []stipple.EditorEvent
	EditorEventType.Subscribe(world, func(w donburi.World, e stipple.EditorEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(stipple.EditorEvent{
		Type:    stipple.EventCellClick,
		SheetID: "hero",
		CellX:   3,
		CellY:   7,
	})

	sink.EmitEvent(stipple.EditorEvent{
		Type:  stipple.EventScaleChange,
		Scale: 2.0,
	})

	// Events are queued — process them.
	EditorEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != stipple.EventCellClick || e0.SheetID != "hero" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.CellX != 3 || e0.CellY != 7 {
		t.Errorf("event 0 cell: (%d,%d)", e0.CellX, e0.CellY)
	}

	e1 := received[1]
	if e1.Type != stipple.EventScaleChange || e1.Scale != 2.0 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink stipple.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	EditorEventType.Subscribe(world, func(w donburi.World, e stipple.EditorEvent) {
		count1++
	})
	EditorEventType.Subscribe(world, func(w donburi.World, e stipple.EditorEvent) {
		count2++
	})

	sink.EmitEvent(stipple.EditorEvent{Type: stipple.EventPixelChange})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
