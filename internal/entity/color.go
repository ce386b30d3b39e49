package entity

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"gray":   "#808080",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
	"pink":   "#ffc0cb",
	"teal":   "#008080",
	"brown":  "#a52a2a",
}

// NormalizeColor accepts a basic CSS color name, #rgb or #rrggbb and returns #rrggbb.
func NormalizeColor(value string) (string, error) {
	color := strings.ToLower(strings.TrimSpace(value))

	if hex, ok := namedColors[color]; ok {
		return hex, nil
	}

	if len(color) != len("#rgb") && len(color) != len("#rrggbb") {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidColor, value)
	}

	parsed, err := colorful.Hex(color)
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidColor, value)
	}

	return parsed.Hex(), nil
}
