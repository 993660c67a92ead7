package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether UI components may draw to a terminal.
type HeadlessManager struct {
	forced *bool
	fd     uintptr
}

// NewHeadlessManager creates a HeadlessManager that detects
// headless mode from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{fd: os.Stdin.Fd()}
}

// NewHeadlessManagerFor detects headless mode from the given file
// descriptor instead of os.Stdin.
func NewHeadlessManagerFor(fd uintptr) *HeadlessManager {
	return &HeadlessManager{fd: fd}
}

// IsHeadless returns true when the UI should operate in headless mode.
// IsTerminalOutput reports whether w is a terminal. A forced mode applies
// here as well, so a forced interactive manager accepts any writer.
func (h *HeadlessManager) IsTerminalOutput(w io.Writer) bool {
	if h.forced != nil {
		return !*h.forced
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// CanDraw reports whether animated output may be written to w: the
// session is interactive and w itself is a terminal.
func (h *HeadlessManager) CanDraw(w io.Writer) bool {
	return !h.IsHeadless() && h.IsTerminalOutput(w)
}

// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(h.fd) && !isatty.IsCygwinTerminal(h.fd)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
