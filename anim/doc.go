// Package anim implements time-parameterized drawing primitives.
//
// A Timed primitive is either a line that grows from its first endpoint or a
// ring that drops into place while its stroke fills in. Every sample derives
// progress from absolute timestamps, so a primitive may be rendered any number
// of times per tick without double-advancing, and always converges to a fixed
// terminal geometry once its window has elapsed. Removal replays the window in
// reverse until the primitive is Gone; owners discard Gone primitives.
//
// Group composes primitives with independent start offsets.
package anim
