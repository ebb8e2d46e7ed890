// Package viz provides drawing surfaces and styling for the rain renderer.
//
//   - [CellSurface]: terminal cell grid implementing rain.Surface, with
//     translucent fills blended per cell
//   - [Recorder]: captures CellSurface frames into an animated GIF
//   - Themes: five built-in color schemes supplying the fade base and
//     glyph accent colors
//
// # Coordinates
//
// The renderer works in pixels. A CellSurface maps pixels onto terminal
// cells of CellW x CellH pixels; with the default 10x20 cells every rain
// column spans two terminal columns and advances one row per frame.
package viz
