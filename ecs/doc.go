// Package ecs provides ECS adapters for micro's collision reporting.
//
// The primary adapter is [NewDonburiSink], which forwards every contact an
// [micro.EntityManager] detects into a [Donburi] world as a typed event.
// Subscribe to [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	mgr.SetCollisionSink(ecs.NewDonburiSink(world))
//	// after mgr.Update:
//	ecs.CollisionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
