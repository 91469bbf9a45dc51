package symbols

import (
	"image"
	"image/color"
	"image/draw"
	"maps"
	"slices"
	"sync"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// MaterialLibrary maps symbol names to Material Design IconVG data.
type MaterialLibrary struct {
	data map[string][]byte
}

// Material returns the built-in library.
// Names follow SF Symbols conventions ("gear", "house", "trash").
func Material() *MaterialLibrary {
	return material()
}

var material = sync.OnceValue(func() *MaterialLibrary {
	return &MaterialLibrary{data: materialNames}
})

// Symbol implements Library.
func (l *MaterialLibrary) Symbol(name string) (Symbol, bool) {
	data, ok := l.data[name]
	if !ok {
		return nil, false
	}
	return iconvgSymbol{name: name, data: data}, true
}

// Names returns the symbol names in sorted order.
func (l *MaterialLibrary) Names() []string {
	return slices.Sorted(maps.Keys(l.data))
}

type iconvgSymbol struct {
	name string
	data []byte
}

func (s iconvgSymbol) Name() string { return s.name }

// Draw implements Symbol. Material icons paint with palette entry 0, so
// replacing it recolors the whole symbol.
func (s iconvgSymbol) Draw(dst draw.Image, r image.Rectangle, c color.Color) error {
	if r.Empty() {
		return ErrEmptyRect
	}
	pal := iconvg.DefaultPalette
	pal[0] = color.RGBAModel.Convert(c).(color.RGBA)

	var z iconvg.Rasterizer
	z.SetDstImage(dst, r, draw.Over)
	return iconvg.Decode(&z, s.data, &iconvg.DecodeOptions{Palette: &pal})
}

var materialNames = map[string][]byte{
	"arrow.clockwise":          icons.NavigationRefresh,
	"arrow.down":               icons.NavigationArrowDownward,
	"arrow.left":               icons.NavigationArrowBack,
	"arrow.right":              icons.NavigationArrowForward,
	"arrow.up":                 icons.NavigationArrowUpward,
	"bell":                     icons.SocialNotifications,
	"bookmark":                 icons.ActionBookmark,
	"calendar":                 icons.ActionEvent,
	"camera":                   icons.ImageCameraAlt,
	"cart":                     icons.ActionShoppingCart,
	"checkmark":                icons.NavigationCheck,
	"clock":                    icons.DeviceAccessTime,
	"cloud":                    icons.FileCloud,
	"doc":                      icons.ActionDescription,
	"ellipsis":                 icons.NavigationMoreHoriz,
	"envelope":                 icons.CommunicationEmail,
	"exclamationmark.triangle": icons.AlertWarning,
	"eye":                      icons.ActionVisibility,
	"eye.slash":                icons.ActionVisibilityOff,
	"flag":                     icons.ContentFlag,
	"folder":                   icons.FileFolder,
	"gear":                     icons.ActionSettings,
	"gearshape":                icons.ActionSettings,
	"globe":                    icons.SocialPublic,
	"heart":                    icons.ActionFavorite,
	"house":                    icons.ActionHome,
	"info.circle":              icons.ActionInfo,
	"line.3.horizontal":        icons.NavigationMenu,
	"link":                     icons.ContentLink,
	"lock":                     icons.ActionLock,
	"magnifyingglass":          icons.ActionSearch,
	"map":                      icons.MapsMap,
	"mappin":                   icons.MapsPlace,
	"mic":                      icons.AVMic,
	"minus":                    icons.ContentRemove,
	"paperplane":               icons.ContentSend,
	"pause.fill":               icons.AVPause,
	"pencil":                   icons.ContentCreate,
	"person":                   icons.SocialPerson,
	"phone":                    icons.CommunicationCall,
	"photo":                    icons.ImagePhoto,
	"play.fill":                icons.AVPlayArrow,
	"plus":                     icons.ContentAdd,
	"power":                    icons.ActionPowerSettingsNew,
	"printer":                  icons.ActionPrint,
	"questionmark.circle":      icons.ActionHelp,
	"speaker.wave.3":           icons.AVVolumeUp,
	"square.and.arrow.up":      icons.SocialShare,
	"star":                     icons.ToggleStar,
	"stop.fill":                icons.AVStop,
	"tag":                      icons.ActionLabel,
	"trash":                    icons.ActionDelete,
	"xmark":                    icons.NavigationClose,
}
