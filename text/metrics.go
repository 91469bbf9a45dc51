package text

// Metrics holds font metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// Unlike FontMetrics.Descent, this is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Extent is the measured box of a string set on one line.
// The box's top edge sits Ascent above the baseline.
type Extent struct {
	Width   float64
	Height  float64
	Ascent  float64
	Descent float64
}
