// Package tui hosts the rain renderer inside a Bubble Tea program.
//
// [TeaHost] adapts Bubble Tea's message loop to the renderer's host
// contract: frame requests become tea.Tick commands tagged with a sequence
// number, and window size messages become pixel resize notifications.
// [Model] is the page itself: the rain behind a landing-page header.
//
// # Key Bindings
//
//	q/esc - Quit (unmounts the renderer first)
//	h     - Toggle header
//	s     - Toggle stats line
//	?     - Show help overlay
package tui
