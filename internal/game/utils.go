package game

import (
	"image"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/config"
)

// buttonRect places the Play/Pause button centred at the bottom of a w x h canvas.
func buttonRect(w, h int) image.Rectangle {
	x := (w - config.ButtonWidth) / 2
	y := h - config.ButtonHeight - config.ButtonMargin
	return image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
