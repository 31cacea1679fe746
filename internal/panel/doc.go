// Package panel implements the sx terminal panel: a file explorer list on the
// left and a live CPU/memory readout on the right, inside one fixed-size
// window, plus a small frame-timing overlay.
//
// # Frame loop
//
// The panel is a Bubble Tea model. A frameMsg fires every frame interval and
// calls Model.RenderFrame, which
//
//  1. ticks the FrameClock,
//  2. re-enumerates the current directory (ListView.Sync), and
//  3. takes a fresh metrics.Sample and appends its CPU reading to the
//     history shown as a sparkline.
//
// View() then rebuilds the whole window from that state. Nothing is cached
// between frames except the explorer's navigation state, the list cursor,
// and the CPU history.
//
// # Layout
//
// Geometry is fixed: a WindowWidth x WindowHeight window at the origin and an
// OverlayWidth x OverlayHeight frame-stats box at (OverlayX, OverlayY). The
// window does not resize with the terminal.
//
// # Input
//
//	up/k, down/j        Move the cursor
//	pgup, pgdown        Move a page
//	home/g, end/G       First / last row
//	enter, l, right     Open: enter a directory and select the row
//	space               Select the row without entering it
//	backspace, h, u     Go up
//	left click          Open the clicked row, or Go Up on the button
//	f                   Toggle the frame-stats overlay
//	?                   Toggle help
//	q, ctrl+c           Quit
package panel
