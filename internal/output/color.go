package output

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// ColorModes lists the accepted values of the --color flag.
var ColorModes = []string{"auto", "always", "never"}

// ValidateColorMode rejects --color values other than auto, always and never.
// An empty mode means auto.
func ValidateColorMode(mode string) error {
	if mode == "" || slices.Contains(ColorModes, mode) {
		return nil
	}
	return NewUserError(fmt.Sprintf("invalid --color value %q (want auto, always or never)", mode))
}

// ResolveColorMode determines the effective isTTY value based on the --color
// flag and actual TTY detection:
//   - "never":  always disable colors (returns false)
//   - "always": always enable colors (returns true)
//   - "auto":   use the detected isTTY value
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// UseColor resolves colorMode against writer. In auto mode a non-empty
// NO_COLOR environment variable disables colors.
func UseColor(colorMode string, writer io.Writer) bool {
	if (colorMode == "" || colorMode == "auto") && os.Getenv("NO_COLOR") != "" {
		return false
	}
	return ResolveColorMode(colorMode, IsTTY(writer))
}

// IsTTY checks if a writer is a terminal.
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
