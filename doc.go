// Package micro is a small 2D framework for palette-indexed pixel games on
// [Ebitengine].
//
// A game draws into a [FrameBuffer], a fixed grid of palette indices, using
// the shape, text and image routines defined on it. Entities embed [Object],
// carry rectangular [Collider]s and are driven by an [EntityManager], which
// updates them in insertion order and reports overlapping pairs. [CastRay]
// answers line-of-sight queries against the same colliders.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window, polls
// input and presents the buffer through a [Palette] each frame:
//
//	type game struct{ x int }
//
//	func (g *game) Update(f *micro.Frame) error { g.x++; return nil }
//	func (g *game) Draw(fb *micro.FrameBuffer)  { fb.DrawRect(g.x%256, 100, 16, 16, 15) }
//
//	micro.Run(&game{}, micro.RunConfig{Title: "My Game"})
//
// Larger games stack [Sequence]s (title screen, level, pause menu) on a
// [SequenceStack] and run it with [StackGame].
//
// # Coordinates
//
// Raster coordinates are integers with the origin at the top-left and Y
// increasing downward. Simulation positions are float64 in the same frame.
// Every FrameBuffer write is bounds-checked; shapes that hang off the edge
// are clipped, never rejected.
//
// # Tiles
//
// [GenerateTileMap] repeats a tile across a grid, [FrameBuffer.Section]
// extracts a rectangular view, and [WriteInto] pastes one buffer into
// another. A [Scene] tracks a scrolling origin and keeps each entity's
// viewport position up to date.
//
// # Collisions
//
// Collision detection is a plain pairwise scan, O(n²) in the number of
// entities with colliders. For each pair only the first overlapping collider
// combination is reported, to both entities, with snapshots taken before
// either reaction runs. Rectangles that only share an edge do not overlap.
// Install a [CollisionSink] to forward contacts elsewhere; the ecs
// sub-module publishes them into a Donburi world.
//
// # Logging
//
// micro is silent by default. Pass a [log/slog.Logger] to [SetLogger] to
// see rejected compositions, frame stats and lifecycle events.
//
// # Testing
//
// [LoadTestScript] replays input presses, waits and screenshots frame by
// frame; attach the result with RunConfig.TestRunner.
//
// Sub-packages: sound (play-by-name audio on beep) and termview (terminal
// presentation on tcell).
//
// [Ebitengine]: https://ebitengine.org
package micro
