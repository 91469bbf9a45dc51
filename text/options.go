package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{parserName: defaultParserName}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	hinting Hinting
	shaper  Shaper
}

// Icon glyphs are drawn unhinted so that the same glyph scales smoothly
// between sizes.
func defaultFaceConfig() faceConfig {
	return faceConfig{hinting: HintingNone}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithShaper sets the shaper used by Measure for this face.
// A nil shaper selects the global shaper.
func WithShaper(s Shaper) FaceOption {
	return func(c *faceConfig) {
		c.shaper = s
	}
}
