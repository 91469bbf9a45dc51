package icontable

import "sync"

// FontAwesomeFamily is the family name recorded in the FontAwesome 4 font file.
const FontAwesomeFamily = "FontAwesome"

// FontAwesome returns the shared FontAwesome 4 name table.
// Aliases such as "gear" and "cog" map to the same codepoint.
func FontAwesome() *Table {
	return fontAwesome()
}

var fontAwesome = sync.OnceValue(func() *Table {
	return New(fontAwesomeEntries)
})

var fontAwesomeEntries = map[string]string{
	"address-book":         "\uF2B9",
	"ambulance":            "\uF0F9",
	"arrow-down":           "\uF063",
	"arrow-left":           "\uF060",
	"arrow-right":          "\uF061",
	"arrow-up":             "\uF062",
	"asterisk":             "\uF069",
	"bar-chart":            "\uF080",
	"barcode":              "\uF02A",
	"bars":                 "\uF0C9",
	"bath":                 "\uF2CD",
	"battery-full":         "\uF240",
	"beer":                 "\uF0FC",
	"bell":                 "\uF0F3",
	"bluetooth":            "\uF293",
	"bold":                 "\uF032",
	"bolt":                 "\uF0E7",
	"book":                 "\uF02D",
	"bookmark":             "\uF02E",
	"briefcase":            "\uF0B1",
	"building-o":           "\uF0F7",
	"calculator":           "\uF1EC",
	"calendar":             "\uF073",
	"camera":               "\uF030",
	"camera-retro":         "\uF083",
	"check":                "\uF00C",
	"check-circle":         "\uF058",
	"circle":               "\uF111",
	"clipboard":            "\uF0EA",
	"clock-o":              "\uF017",
	"close":                "\uF00D",
	"cloud":                "\uF0C2",
	"code":                 "\uF121",
	"coffee":               "\uF0F4",
	"cog":                  "\uF013",
	"cogs":                 "\uF085",
	"comment":              "\uF075",
	"comments":             "\uF086",
	"compress":             "\uF066",
	"copy":                 "\uF0C5",
	"credit-card":          "\uF09D",
	"cut":                  "\uF0C4",
	"cutlery":              "\uF0F5",
	"desktop":              "\uF108",
	"download":             "\uF019",
	"envelope":             "\uF0E0",
	"envelope-o":           "\uF003",
	"exclamation":          "\uF12A",
	"exclamation-triangle": "\uF071",
	"expand":               "\uF065",
	"eye":                  "\uF06E",
	"eye-slash":            "\uF070",
	"facebook":             "\uF09A",
	"file-o":               "\uF016",
	"file-text-o":          "\uF0F6",
	"film":                 "\uF008",
	"filter":               "\uF0B0",
	"flag":                 "\uF024",
	"floppy-o":             "\uF0C7",
	"folder":               "\uF07B",
	"folder-open":          "\uF07C",
	"font":                 "\uF031",
	"frown-o":              "\uF119",
	"gamepad":              "\uF11B",
	"gear":                 "\uF013",
	"gears":                "\uF085",
	"github":               "\uF09B",
	"glass":                "\uF000",
	"globe":                "\uF0AC",
	"headphones":           "\uF025",
	"heart":                "\uF004",
	"heart-o":              "\uF08A",
	"history":              "\uF1DA",
	"home":                 "\uF015",
	"hospital-o":           "\uF0F8",
	"id-card":              "\uF2C2",
	"image":                "\uF03E",
	"inbox":                "\uF01C",
	"info-circle":          "\uF05A",
	"italic":               "\uF033",
	"key":                  "\uF084",
	"keyboard-o":           "\uF11C",
	"laptop":               "\uF109",
	"lightbulb-o":          "\uF0EB",
	"link":                 "\uF0C1",
	"list":                 "\uF03A",
	"lock":                 "\uF023",
	"magnet":               "\uF076",
	"map":                  "\uF279",
	"map-marker":           "\uF041",
	"medkit":               "\uF0FA",
	"meh-o":                "\uF11A",
	"microchip":            "\uF2DB",
	"minus":                "\uF068",
	"minus-circle":         "\uF056",
	"mobile":               "\uF10B",
	"music":                "\uF001",
	"navicon":              "\uF0C9",
	"paper-plane":          "\uF1D8",
	"paperclip":            "\uF0C6",
	"paste":                "\uF0EA",
	"pause":                "\uF04C",
	"pencil":               "\uF040",
	"phone":                "\uF095",
	"photo":                "\uF03E",
	"picture-o":            "\uF03E",
	"plane":                "\uF072",
	"play":                 "\uF04B",
	"plus":                 "\uF067",
	"plus-circle":          "\uF055",
	"power-off":            "\uF011",
	"print":                "\uF02F",
	"qrcode":               "\uF029",
	"question-circle":      "\uF059",
	"random":               "\uF074",
	"refresh":              "\uF021",
	"remove":               "\uF00D",
	"retweet":              "\uF079",
	"road":                 "\uF018",
	"rss":                  "\uF09E",
	"save":                 "\uF0C7",
	"search":               "\uF002",
	"search-minus":         "\uF010",
	"search-plus":          "\uF00E",
	"share":                "\uF064",
	"share-alt":            "\uF1E0",
	"shopping-bag":         "\uF290",
	"shopping-cart":        "\uF07A",
	"shower":               "\uF2CC",
	"sign-out":             "\uF08B",
	"signal":               "\uF012",
	"sitemap":              "\uF0E8",
	"smile-o":              "\uF118",
	"snowflake-o":          "\uF2DC",
	"spinner":              "\uF110",
	"star":                 "\uF005",
	"star-half":            "\uF089",
	"stop":                 "\uF04D",
	"tablet":               "\uF10A",
	"tag":                  "\uF02B",
	"tags":                 "\uF02C",
	"th":                   "\uF00A",
	"th-large":             "\uF009",
	"th-list":              "\uF00B",
	"thermometer-full":     "\uF2C7",
	"thumbs-o-down":        "\uF088",
	"thumbs-o-up":          "\uF087",
	"times":                "\uF00D",
	"times-circle":         "\uF057",
	"trash":                "\uF1F8",
	"trash-o":              "\uF014",
	"trophy":               "\uF091",
	"tv":                   "\uF26C",
	"twitter":              "\uF099",
	"umbrella":             "\uF0E9",
	"unlock":               "\uF09C",
	"upload":               "\uF093",
	"user":                 "\uF007",
	"user-circle":          "\uF2BD",
	"user-md":              "\uF0F0",
	"users":                "\uF0C0",
	"volume-down":          "\uF027",
	"volume-off":           "\uF026",
	"volume-up":            "\uF028",
	"warning":              "\uF071",
	"wifi":                 "\uF1EB",
	"window-close":         "\uF2D3",
	"wrench":               "\uF0AD",
}
