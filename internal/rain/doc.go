// Package rain implements the falling-glyph background animation.
//
// The pieces, leaves first:
//
//   - [Palette]: 128 contiguous code points, fixed for a renderer's lifetime
//   - [ColumnStore]: one position and glyph per 20px column
//   - [ResizeCoordinator]: recomputes the column count and replaces the store
//   - [Compositor]: paints the translucent fade, then one glyph per column,
//     and advances or resets each column
//   - [Driver]: runs the compositor once per host frame until cancelled
//
// [Renderer] wires them to a [Surface] and a [Host]. Everything runs on the
// host's goroutine; nothing here locks.
//
// # Reset rule
//
// Every frame, every column rolls a fresh threshold of 100 + r*10000 pixels
// and resets to 0 if its position before the step exceeds it. The threshold
// is not remembered between frames.
package rain
