package terrain

import (
	"errors"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnsupportedClassification = errors.New("unsupported classification")

// A ClassificationMethod determines how a ColorScale maps values to colors.
type ClassificationMethod int

// Only ClassificationEqualInterval is implemented.
const (
	ClassificationEqualInterval ClassificationMethod = iota
	ClassificationGaussian
	ClassificationQuantile
	ClassificationCategories
	ClassificationUserDefinition
)

// A Color is an RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGBA returns c as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Colorful returns c as a colorful.Color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// BlendLab returns the blend of c and other in CIE L*a*b* space, t in [0, 1].
func (c Color) BlendLab(other Color, t float64) Color {
	r, g, b := c.Colorful().BlendLab(other.Colorful(), t).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// A ColorScale maps a range of values to a sequence of colors interpolated
// between key colors.
type ColorScale struct {
	KeyColors      []Color
	Colors         []Color
	Minimum        float64
	Maximum        float64
	Classification ClassificationMethod
}

// NewColorScale returns a ColorScale with a single black key color and a
// single output color.
func NewColorScale() *ColorScale {
	return &ColorScale{
		KeyColors:      make([]Color, 1),
		Colors:         make([]Color, 1),
		Minimum:        NoData,
		Maximum:        NoData,
		Classification: ClassificationEqualInterval,
	}
}

// NewDefaultDTMScale returns the default elevation color scale.
func NewDefaultDTMScale() *ColorScale {
	s := NewColorScale()
	_ = s.SetDefaultDTMScale()
	return s
}

// Clone returns a deep copy of s.
func (s *ColorScale) Clone() *ColorScale {
	clone := *s
	clone.KeyColors = append([]Color(nil), s.KeyColors...)
	clone.Colors = append([]Color(nil), s.Colors...)
	return &clone
}

// SetKeyColors sets s's key colors and its number of output colors. The
// output colors are reset to black until s is classified.
func (s *ColorScale) SetKeyColors(keyColors []Color, nrColors int) error {
	if len(keyColors) < 1 || nrColors < len(keyColors) {
		return ErrInvalidRange
	}
	s.KeyColors = append(s.KeyColors[:0], keyColors...)
	s.Colors = make([]Color, nrColors)
	return nil
}

// SetDefaultDTMScale configures s as a green, yellow, brown and white
// gradient of 256 colors, suitable for elevations.
func (s *ColorScale) SetDefaultDTMScale() error {
	if err := s.SetKeyColors([]Color{
		{R: 32, G: 160, B: 32},   // Green.
		{R: 255, G: 255, B: 0},   // Yellow.
		{R: 160, G: 64, B: 0},    // Brown.
		{R: 255, G: 255, B: 255}, // White.
	}, 256); err != nil {
		return err
	}
	s.Classification = ClassificationEqualInterval
	return s.Classify()
}

// SetRange sets s's domain.
func (s *ColorScale) SetRange(minimum, maximum float64) error {
	if maximum < minimum {
		return ErrInvalidRange
	}
	s.Minimum = minimum
	s.Maximum = maximum
	return nil
}

// Classify computes s's output colors from its key colors. s must have at
// least one key color and one output color.
func (s *ColorScale) Classify() error {
	if s.Classification != ClassificationEqualInterval {
		return ErrUnsupportedClassification
	}

	nrColors := len(s.Colors)
	nrIntervals := len(s.KeyColors) - 1
	if nrIntervals == 0 {
		for i := range s.Colors {
			s.Colors[i] = s.KeyColors[0]
		}
		return nil
	}

	step := float64(nrColors) / float64(nrIntervals)
	for i := range nrIntervals {
		k0, k1 := s.KeyColors[i], s.KeyColors[i+1]
		dR := float64(int(k1.R)-int(k0.R)) / step
		dG := float64(int(k1.G)-int(k0.G)) / step
		dB := float64(int(k1.B)-int(k0.B)) / step
		for j := 0; float64(j) < step; j++ {
			n := int(step)*i + j
			if n >= nrColors {
				break
			}
			s.Colors[n] = Color{
				R: uint8(int(k0.R) + int(dR*float64(j))),
				G: uint8(int(k0.G) + int(dG*float64(j))),
				B: uint8(int(k0.B) + int(dB*float64(j))),
			}
		}
	}
	s.Colors[nrColors-1] = s.KeyColors[nrIntervals]
	return nil
}

// ColorIndex returns the index of the output color for value. NaN maps to
// the first color. s's domain must not be empty.
func (s *ColorScale) ColorIndex(value float64) int {
	switch {
	case math.IsNaN(value):
		return 0
	case value <= s.Minimum:
		return 0
	case value >= s.Maximum:
		return len(s.Colors) - 1
	case s.Classification == ClassificationEqualInterval:
		return int(math.Round(float64(len(s.Colors)-1) * ((value - s.Minimum) / (s.Maximum - s.Minimum))))
	default:
		return 0
	}
}

// Color returns the output color for value. s must have at least one
// output color.
func (s *ColorScale) Color(value float64) Color {
	return s.Colors[s.ColorIndex(value)]
}

// Round widens s's domain to round boundaries, centered on its rounded
// midpoint, so that a legend of nrIntervals intervals shows round values.
// Rounding is on the second significant digit, or the third if lessRounded
// is true.
//
// The domain spans 2×⌊nrIntervals/2⌋ rounded intervals, so an odd
// nrIntervals gets one interval fewer and an nrIntervals of 1 collapses the
// domain onto its rounded midpoint.
func (s *ColorScale) Round(nrIntervals int, lessRounded bool) error {
	switch {
	case s.Minimum == NoData || s.Maximum == NoData:
		return ErrInvalidRange
	case nrIntervals < 1:
		return ErrInvalidRange
	case s.Minimum >= s.Maximum:
		return ErrInvalidRange
	}

	avg := s.Minimum + (s.Maximum-s.Minimum)*0.5
	level := (s.Maximum - s.Minimum) / float64(nrIntervals)
	logLevel := math.Log10(level)

	// The midpoint only constrains the exponent when it has a logarithm.
	exp := math.Floor(logLevel) - 1
	if avg > 0 {
		avgExp := math.Floor(math.Log10(avg)) - 1
		if lessRounded {
			exp = math.Min(exp, avgExp)
		} else {
			exp = math.Max(exp, avgExp)
		}
	}

	pow10 := math.Pow(10, exp)
	roundAvg := avg
	if avg != 0 {
		roundAvg = math.Round(avg/pow10) * pow10
	}
	roundLevel := math.Ceil(level/pow10) * pow10

	halfIntervals := float64(nrIntervals / 2)
	s.Minimum = roundAvg - roundLevel*halfIntervals
	s.Maximum = roundAvg + roundLevel*halfIntervals
	return nil
}
