package theme

import (
	"image/color"
	"math"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Mood endpoints. The round starts on paper and drifts toward indigo with
// each correct answer and toward vermilion with each miss.
var (
	MoodNeutral   = colorful.Color{R: 248.0 / 255, G: 245.0 / 255, B: 240.0 / 255}
	MoodCorrect   = colorful.Color{R: 30.0 / 255, G: 58.0 / 255, B: 138.0 / 255}
	MoodIncorrect = colorful.Color{R: 169.0 / 255, G: 50.0 / 255, B: 38.0 / 255}
)

// darkThreshold is the perceived brightness below which text turns light.
const darkThreshold = 140

// moodScale is the number of answers it takes to reach a pure endpoint.
// It is fixed at the full round size, so a round shorter than that never
// reaches full indigo or vermilion.
const moodScale = 5

// Mood blends the three endpoints weighted by correct answers (score),
// misses (answered - score) and the moodScale - answered answers still
// ahead of a full round. Out-of-range inputs are clamped.
func Mood(score, answered int) colorful.Color {
	answered = clamp(answered, 0, moodScale)
	score = clamp(score, 0, answered)

	wc := float64(score)
	wi := float64(answered - score)
	wn := float64(moodScale - answered)

	nr, ng, nb := MoodNeutral.RGB255()
	cr, cg, cb := MoodCorrect.RGB255()
	ir, ig, ib := MoodIncorrect.RGB255()

	mix := func(neutral, correct, incorrect uint8) float64 {
		v := (float64(neutral)*wn + float64(correct)*wc + float64(incorrect)*wi) / moodScale
		return math.Round(v) / 255
	}
	return colorful.Color{
		R: mix(nr, cr, ir),
		G: mix(ng, cg, ig),
		B: mix(nb, cb, ib),
	}
}

// Brightness returns the perceived brightness (0–255) of c.
func Brightness(c colorful.Color) float64 {
	r, g, b := c.RGB255()
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000
}

// IsDark reports whether light text should be drawn on c.
func IsDark(c colorful.Color) bool {
	return Brightness(c) < darkThreshold
}

// MoodStyle returns a style painting the mood background with readable text.
func MoodStyle(score, answered int) lipgloss.Style {
	bg := Mood(score, answered)
	var fg color.Color = TextInk
	if IsDark(bg) {
		fg = Text
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(fg)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
