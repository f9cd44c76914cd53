// Package viz turns frames into terminal bar charts.
//
//   - [Theme]: maps frame color tags to terminal colors
//   - [Heights]: scales values to bar heights, negatives by magnitude
//   - [Bars]: renders a frame as vertical bars with value labels
//
// Drawing decisions live here and nowhere else; the step engine only emits
// color tags.
package viz
