// Command glyphs renders a named icon to an image file.
//
//	glyphs -font FontAwesome.ttf -name home -size 32 -scale 3 -out home.png
//	glyphs -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glyphs"
	"github.com/gogpu/glyphs/symbols"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := glyphs.LoadConfig()
	if err != nil {
		return err
	}

	fset := flag.NewFlagSet("glyphs", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		name       = fset.String("name", "", "icon name")
		size       = fset.Float64("size", cfg.DefaultSize, "icon size in points")
		scale      = fset.Float64("scale", 0, "pixels per point (0 = device scale)")
		fontPath   = fset.String("font", cfg.FontPath, "icon font file")
		family     = fset.String("family", cfg.FontFamily, "icon font family name")
		symbolsDir = fset.String("symbols", "", "directory of extra SVG symbols")
		output     = fset.String("out", "", "output file (default <name>.png)")
		list       = fset.Bool("list", false, "list known icon and symbol names")
		verbose    = fset.Bool("v", false, "verbose logging")
	)
	mode := cfg.DefaultMode
	fset.TextVar(&mode, "mode", cfg.DefaultMode, "render mode: auto, iconfont or symbol")
	if err := fset.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	glyphs.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg.FontPath = *fontPath
	cfg.FontFamily = *family

	lib, err := symbolLibrary(*symbolsDir)
	if err != nil {
		return err
	}

	g, err := glyphs.New(glyphs.WithConfig(cfg), glyphs.WithScale(*scale), glyphs.WithSymbols(lib))
	if err != nil {
		return err
	}

	if *list {
		return listNames(stdout, g, lib)
	}
	if *name == "" {
		fset.Usage()
		return fmt.Errorf("glyphs: -name is required")
	}

	img, ok, err := g.CreateImage(*name, mode, *size)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("glyphs: no icon named %q for mode %v", *name, mode)
	}

	out := *output
	if out == "" {
		out = *name + ".png"
	}
	if err := img.Save(out); err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Fprintf(stdout, "%s: %s via %v, %dx%d px\n", out, *name, img.Raw().Backend(), b.Dx(), b.Dy())
	return nil
}

// symbolLibrary puts the SVG set from dir, if any, in front of Material.
func symbolLibrary(dir string) (symbols.Library, error) {
	if dir == "" {
		return symbols.Material(), nil
	}
	svg, err := symbols.NewSVGLibrary(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	return symbols.Chain(svg, symbols.Material()), nil
}

func listNames(w io.Writer, g *glyphs.Glyphs, lib symbols.Library) error {
	for _, n := range g.Table().Names() {
		if _, err := fmt.Fprintf(w, "iconfont\t%s\n", n); err != nil {
			return err
		}
	}
	named, ok := lib.(interface{ Names() []string })
	if !ok {
		return nil
	}
	for _, n := range named.Names() {
		if _, err := fmt.Fprintf(w, "symbol\t%s\n", n); err != nil {
			return err
		}
	}
	return nil
}
