package render

import "log/slog"

// HeadlessOption configures a Headless window.
type HeadlessOption func(*Headless)

// WithMaxFrames closes the window after n frames have been displayed.
// Zero means the window stays open until closed.
func WithMaxFrames(n int) HeadlessOption {
	return func(h *Headless) {
		if n >= 0 {
			h.maxFrames = n
		}
	}
}

// WithSnapshot saves the last displayed frame as a PNG at path on Destroy.
func WithSnapshot(path string) HeadlessOption {
	return func(h *Headless) {
		h.snapshot = path
	}
}

// WithLogger sets the logger used for diagnostics.
// A nil logger discards output.
func WithLogger(logger *slog.Logger) HeadlessOption {
	return func(h *Headless) {
		h.logger = logger
	}
}
