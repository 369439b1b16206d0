// Package scene records the instruction stream of a diagram. A Diagram is
// a render.Renderer that keeps every call, grouped into named panels, so a
// figure can be inspected, serialized, or replayed onto any output device.
package scene
