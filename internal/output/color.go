package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by --color and the settings file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidateColorMode rejects anything other than auto, always, never, or "".
func ValidateColorMode(colorMode string) error {
	switch colorMode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", colorMode)
	}
}

// ResolveColorMode determines the effective isTTY value from a color mode
// and actual TTY detection. "never" and "always" override detection;
// anything else uses isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
