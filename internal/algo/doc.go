// Package algo provides the stepping algorithms behind the visualizer.
//
// Each algorithm implements [step.Algorithm]. It copies its input, works on
// the copy and surfaces every comparison or shift through a [step.Tracer]:
//
//   - [Insertion], [Bubble], [Selection], [Shell], [Quick]: in-place sorts
//   - [Parity]: tags each value odd or even
//   - [Primes]: tags each value prime or composite
//
// Every algorithm returns as soon as the tracer reports a stop request, so a
// cancelled run leaves the copy partially processed.
package algo
