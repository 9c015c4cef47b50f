package chart

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	captionLineHeight = 12
	captionPad        = 4
	captionBaseline   = 9 // proggy TinySZ ascent
)

var captionFont tinyfont.Fonter = &proggy.TinySZ8pt7b

func captionHeight(lines int) int {
	if lines == 0 {
		return 0
	}
	return lines*captionLineHeight + 2*captionPad
}

func writeCaption(d *rgbaDisplay, x, y, width int16, lines []string) {
	h := int16(captionHeight(len(lines)))
	_ = d.FillRectangle(x, y, width, h, colorCaptionBG)

	maxW := int(width) - 2*captionPad
	for i, s := range lines {
		by := y + captionPad + int16(i)*captionLineHeight + captionBaseline
		tinyfont.WriteLine(d, captionFont, x+captionPad, by, truncateToWidth(captionFont, s, maxW), colorCaptionFG)
	}
}

func truncateToWidth(f tinyfont.Fonter, s string, maxW int) string {
	if textWidth(f, s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if textWidth(f, string(r)+"...") <= maxW {
			return string(r) + "..."
		}
	}
	return ""
}

func textWidth(f tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(f, s)
	return int(w)
}
