// Package chartview maps chart data values to screen pixels and back, and
// manages the pan and zoom state of a chart's plot area.
//
// It is the geometric core of a charting library and does no drawing of its
// own. Renderers use it to position bars, lines and labels, gesture handlers
// use it to turn touches into zoom and pan, and hit testing uses it to find
// the value under a pixel.
//
// # Coordinate spaces
//
// Data values are mapped to pixels in two steps. A [Transformer]'s value
// matrix maps the data range onto the content rect, the area of the chart
// inside its axes and margins. The touch matrix of a [Viewport] is then
// applied on top, in pixel space, to zoom and pan the content. Both are
// [Affine] transformations.
//
// Screen y grows downwards. Unless an axis is inverted, larger data y values
// therefore map to smaller pixel y values.
//
// # Proposals and commits
//
// Viewport methods such as [Viewport.Zoom] and [Viewport.Drag] don't change
// the viewport. They return a proposed touch matrix, which
// [Viewport.Refresh] clamps to the configured scale and drag limits and
// commits. [Chart] wraps both steps and recomputes axis ticks afterwards.
//
// # Ticks and labels
//
// [ComputeTicks] divides a value range into ticks at round intervals and
// [FormatLabel] formats tick values with the number of decimals the interval
// calls for.
//
// # Concurrency
//
// Viewports, transformers and charts are not safe for concurrent use. Hosts
// that render on one goroutine and handle gestures on another should take a
// [Viewport.Snapshot] per frame.
package chartview
