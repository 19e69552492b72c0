// Package ecs provides ECS adapters for picket's interaction event system.
//
// The primary adapter is [NewDonburiSink], which bridges every event a
// picket document dispatches into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them;
// [BindLayer] additionally publishes [DismissEventType] when a layer closes.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	doc.SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
