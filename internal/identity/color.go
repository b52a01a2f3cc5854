package identity

import (
	"fmt"
	"unicode/utf16"
)

const (
	colorSaturation = 70
	colorLightness  = 45
)

// Hue folds the UTF-16 code units of nick into a 32-bit rolling hash
// (acc*31 + unit, wrapping on overflow) and reduces it to a hue in [0, 360).
func Hue(nick string) int {
	var acc int32
	for _, unit := range utf16.Encode([]rune(nick)) {
		acc = acc*31 + int32(unit)
	}

	h := int64(acc)
	if h < 0 {
		h = -h
	}
	return int(h % 360)
}

// Color returns the CSS color assigned to nick. The same nickname always maps
// to the same color.
func Color(nick string) string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)", Hue(nick), colorSaturation, colorLightness)
}
