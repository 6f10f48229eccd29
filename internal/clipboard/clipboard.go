// Package clipboard shells out to the platform clipboard utility. It is
// best-effort: callers treat failures as non-fatal.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	switch runtime.GOOS {
	case "darwin":
		return pipe(text, "pbcopy")
	case "windows":
		return pipe(text, "cmd", "/c", "clip")
	case "linux":
		return copyLinux(text)
	default:
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
}

// copyLinux tries the common X11 and Wayland utilities in order.
func copyLinux(text string) error {
	var lastErr error
	for _, candidate := range [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
	} {
		if !available(candidate[0]) {
			continue
		}
		if err := pipe(text, candidate[0], candidate[1:]...); err == nil {
			return nil
		} else {
			lastErr = fmt.Errorf("%s failed: %w", candidate[0], err)
		}
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("no clipboard utility found (install xclip, xsel, or wl-clipboard)")
}

func pipe(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Available reports whether a clipboard utility can be found.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		return available("pbcopy")
	case "windows":
		return true
	case "linux":
		return available("xclip") || available("xsel") || available("wl-copy")
	default:
		return false
	}
}
