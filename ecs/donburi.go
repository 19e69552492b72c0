// Package ecs provides ECS adapters for picket.
package ecs

import (
	"github.com/phanxgames/picket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for picket interaction
// events. Subscribe to this in your ECS systems to receive every press and
// release a document dispatches.
var InteractionEventType = events.NewEventType[picket.Event]()

// DismissEvent is published when a layer bound with BindLayer is dismissed.
type DismissEvent struct {
	Region *picket.Node
}

// DismissEventType is the Donburi event type for layer dismissals.
var DismissEventType = events.NewEventType[DismissEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an InteractionSink backed by a Donburi world.
// Dispatched events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) picket.InteractionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Record(ev picket.Event) {
	InteractionEventType.Publish(s.world, ev)
}

// BindLayer publishes a DismissEvent to the world whenever the layer is
// dismissed. An OnDismiss callback already set on the layer keeps firing,
// after the event is published.
func BindLayer(world donburi.World, layer *picket.Layer) {
	prev := layer.OnDismiss
	layer.OnDismiss = func() {
		DismissEventType.Publish(world, DismissEvent{Region: layer.Region()})
		if prev != nil {
			prev()
		}
	}
}
