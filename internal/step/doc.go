// Package step provides the core primitives for paced, cancellable algorithm
// traces.
//
// The package defines the data unit and contracts shared by every algorithm
// and renderer:
//
//   - [Frame]: immutable snapshot of an array plus highlight and color tags
//   - [Renderer]: consumer of frames, called sequentially per run
//   - [Token]: one-way cancellation flag polled by a running algorithm
//   - [Tracer]: emits frames, pauses between them, reports stop requests
//   - [Algorithm]: stepping logic driven through a Tracer
//
// # Example
//
//	rec := &step.Recorder{}
//	tr := step.NewTracer(step.NewToken(), rec, 0)
//	final := algo.NewBubble().Run([]int{5, 3, 8, 1}, tr)
//	_ = rec.Frames() // six frames, final == [1 3 5 8]
//
// # Thread Safety
//
// A Tracer belongs to a single run goroutine. Token is safe for concurrent
// use; RequestStop may be called from any goroutine while the run polls it.
package step
