package glyphs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/glyphs/icontable"
)

// DefaultSize is the icon size, in points, used when a caller passes 0.
const DefaultSize = 64

// Config holds the settings New reads before applying options.
// LoadConfig fills it from GLYPHS_* environment variables.
type Config struct {
	// FontPath is the icon font file read when no font data or fs.FS
	// option is given.
	FontPath string `env:"GLYPHS_FONT_PATH" envDefault:"FontAwesome.ttf"`

	// FontFamily is the family name the icon-font path looks up. It must
	// match the family recorded inside the font file.
	FontFamily string `env:"GLYPHS_FONT_FAMILY" envDefault:"FontAwesome"`

	// DefaultSize is the size used by CreateImage and CreateRawImage
	// when they are passed 0.
	DefaultSize float64 `env:"GLYPHS_DEFAULT_SIZE" envDefault:"64"`

	// DeviceScale is the display scale, in pixels per point, used when
	// the requested scale is 0.
	DeviceScale float64 `env:"GLYPHS_DEVICE_SCALE" envDefault:"1"`

	// MaxSize is the largest accepted size in points.
	MaxSize float64 `env:"GLYPHS_MAX_SIZE" envDefault:"4096"`

	// DefaultMode is the default of the glyphs command's -mode flag.
	// Library calls always take their mode as an argument.
	DefaultMode Mode `env:"GLYPHS_MODE" envDefault:"auto"`

	// Shaper names the text shaper used to measure glyph strings:
	// "builtin" or "harfbuzz".
	Shaper string `env:"GLYPHS_SHAPER" envDefault:"builtin"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		FontPath:    "FontAwesome.ttf",
		FontFamily:  icontable.FontAwesomeFamily,
		DefaultSize: DefaultSize,
		DeviceScale: 1,
		MaxSize:     4096,
		DefaultMode: ModeAuto,
		Shaper:      "builtin",
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("glyphs: parse env: %w", err)
	}
	return cfg, nil
}
