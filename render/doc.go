// Package render defines the window a demo application draws textures into,
// and a headless implementation backed by a gg drawing context.
//
// The headless window renders frames off screen. It closes itself after a
// configured number of frames and can save the last frame as a PNG, which
// makes the application loop testable without a display.
package render
