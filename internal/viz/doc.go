// Package viz renders algorithm state for the terminal.
//
// The package turns projected replay layers into drawable text:
//
//   - [Canvas]: Braille-based dot canvas, 2x4 dots per character cell
//   - [Viewport]: world-to-dot coordinate mapping with margins
//   - [Frame]: one replay position rendered as a canvas block
//
// Rendering is layered background to foreground: field points draw as
// single dots, chain and hull vertices as 2x2 blocks joined by lines, and
// the point under test as a 3x3 marker, so the eye can pick the moving
// part out of a still frame.
package viz
