// Command tmxinfo prints a summary of TMX map files.
//
// Usage:
//
//	tmxinfo [--format text|json|yaml] [--debug] FILE...
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-tmx"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "tmxinfo",
		Usage:     "print a summary of TMX map files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "output format: text, json or yaml",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log reader events to stderr",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("tmxinfo: no input files", 2)
	}
	render, ok := renderers[c.String("format")]
	if !ok {
		return cli.Exit(fmt.Sprintf("tmxinfo: unknown format %q", c.String("format")), 2)
	}

	log := zap.NewNop()
	if c.Bool("debug") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()
		log = l
	}

	// Maps named together often share tilesets.
	cache := tmx.NewCache(tmx.DirFetcher("."))

	views := make([]mapView, 0, c.NArg())
	for _, name := range c.Args().Slice() {
		m, err := tmx.ReadFile(name, tmx.WithLogger(log), tmx.WithFetcher(relativeTo(name, cache)))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		views = append(views, newMapView(name, m))
	}
	return render(c.App.Writer, views)
}

type renderer func(w io.Writer, views []mapView) error

var renderers = map[string]renderer{
	"text": writeText,
	"json": writeJSON,
	"yaml": writeYAML,
}
