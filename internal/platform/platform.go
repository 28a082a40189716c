// Package platform exposes host platform checks consumed by keyboard
// handling layers to pick shortcut modifiers.
package platform

import (
	"runtime"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	platform = defaultPlatform()
)

// defaultPlatform derives a browser-style platform string from the OS.
func defaultPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		return "MacIntel"
	case "windows":
		return "Win32"
	default:
		return runtime.GOOS
	}
}

// Platform returns the current platform string.
func Platform() string {
	mu.RLock()
	defer mu.RUnlock()
	return platform
}

// SetPlatform overrides the platform string, e.g. with a host-provided
// user agent platform. Returns a func restoring the previous value.
func SetPlatform(s string) (restore func()) {
	mu.Lock()
	prev := platform
	platform = s
	mu.Unlock()
	return func() {
		mu.Lock()
		platform = prev
		mu.Unlock()
	}
}

// IsMac reports whether the platform string contains "mac",
// case-insensitively.
func IsMac() bool {
	return strings.Contains(strings.ToLower(Platform()), "mac")
}
