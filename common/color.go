package common

import "sync/atomic"

const (
	ColorReset       = "\033[0m"
	ColorRed         = "\033[31m"
	ColorGreen       = "\033[32m"
	ColorBlue        = "\033[34m"
	ColorYellow      = "\033[33m"
	ColorCyan        = "\033[36m"
	ColorBrightWhite = "\033[97m"
)

var colorsDisabled atomic.Bool

// DisableColors turns off Colorize, e.g. for CI logs or --no-color.
func DisableColors() {
	colorsDisabled.Store(true)
}

func EnableColors() {
	colorsDisabled.Store(false)
}

func ColorsEnabled() bool {
	return !colorsDisabled.Load()
}

// Colorize wraps s in color unless colors are disabled.
func Colorize(color, s string) string {
	if colorsDisabled.Load() || color == "" {
		return s
	}
	return color + s + ColorReset
}
