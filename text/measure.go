package text

// Measure returns the box s occupies when set on one line with face.
// Width is the shaped advance and Height is ascent plus descent, the same
// box a platform string-size call reports for a font without leading.
func Measure(face *Face, s string) Extent {
	m := face.Metrics()
	return Extent{
		Width:   face.Advance(s),
		Height:  m.Ascent + m.Descent,
		Ascent:  m.Ascent,
		Descent: m.Descent,
	}
}
