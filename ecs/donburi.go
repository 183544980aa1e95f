// Package ecs bridges micro collision events into a Donburi world.
package ecs

import (
	"github.com/rcbc-cs/micro"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for micro collision events.
// Subscribe to it in ECS systems to observe contacts found by an
// EntityManager.
var CollisionEventType = events.NewEventType[micro.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns a CollisionSink that publishes every contact to
// CollisionEventType in world. Events queue until ProcessEvents is called.
func NewDonburiSink(world donburi.World) micro.CollisionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event micro.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}

// ContactCounter tallies published contacts per entity ID. Attach it with
// Subscribe and read Counts after ProcessEvents.
type ContactCounter struct {
	Counts map[uint32]int
}

// NewContactCounter subscribes a counter to world's collision events.
func NewContactCounter(world donburi.World) *ContactCounter {
	c := &ContactCounter{Counts: make(map[uint32]int)}
	CollisionEventType.Subscribe(world, c.handle)
	return c
}

func (c *ContactCounter) handle(_ donburi.World, e micro.CollisionEvent) {
	c.Counts[e.A.ID]++
	c.Counts[e.B.ID]++
}
