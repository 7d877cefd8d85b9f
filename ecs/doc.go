// Package ecs provides ECS adapters for stipple's editor event system.
//
// The primary adapter is [NewDonburiSink], which bridges editor events
// (pixel changes, cell clicks, scale changes) into a [Donburi] world as
// typed events. Subscribe to [EditorEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	editor.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
