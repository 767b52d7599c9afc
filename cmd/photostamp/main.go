package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/menta2k/photostamp"
	"github.com/menta2k/photostamp/internal/config"
	"github.com/menta2k/photostamp/internal/utils"
	"github.com/menta2k/photostamp/pkg/annotate"
	"github.com/menta2k/photostamp/pkg/batch"
	"github.com/menta2k/photostamp/pkg/types"
)

func main() {
	cfg := config.Default()

	fontSize := flag.Int("font-size", cfg.FontSize, "label font size in points")
	colorStr := flag.String("color", cfg.Color, "label color as R,G,B (0-255 each)")
	position := flag.String("position", cfg.Position,
		"label position: top_left|top_right|bottom_left|bottom_right|center")
	quality := flag.Int("quality", cfg.Quality, "JPEG output quality (1-100)")
	workers := flag.Int("workers", cfg.Workers, "number of concurrent workers")
	fontPath := flag.String("font", cfg.FontPath, "path to a .ttf/.ttc font file to try first")
	configPath := flag.String("config", "", "path to a JSON config file with defaults")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Photostamp - annotate photos with their capture date\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [options] <image file or directory>\n\nOptions:\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("version %s\n", photostamp.Version)
		return
	}

	// A config file supplies defaults; explicit flags win. Without
	// --config, the user config file is picked up when present.
	if *configPath == "" {
		if p := config.GetConfigPath(); utils.FileExists(p) {
			*configPath = p
		}
	}
	if *configPath != "" {
		loaded, err := config.LoadFromFile(*configPath)
		if err != nil {
			log.Fatalf("error: %v", err)
		}
		if err := loaded.Validate(); err != nil {
			log.Fatalf("error: invalid config: %v", err)
		}
		if !flag.CommandLine.Changed("font-size") {
			*fontSize = loaded.FontSize
		}
		if !flag.CommandLine.Changed("color") {
			*colorStr = loaded.Color
		}
		if !flag.CommandLine.Changed("position") {
			*position = loaded.Position
		}
		if !flag.CommandLine.Changed("quality") {
			*quality = loaded.Quality
		}
		if !flag.CommandLine.Changed("workers") {
			*workers = loaded.Workers
		}
		if !flag.CommandLine.Changed("font") {
			*fontPath = loaded.FontPath
		}
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	aopts := annotate.DefaultOptions()
	aopts.FontSize = float64(*fontSize)
	aopts.Quality = *quality

	if c, err := config.ParseColor(*colorStr); err != nil {
		log.Printf("warning: invalid color value, using default white: %v", err)
	} else {
		aopts.Color = c
	}

	if anchor, ok := types.ParseAnchor(*position); ok {
		aopts.Anchor = anchor
	} else {
		log.Printf("warning: unknown position %q, using bottom_right", *position)
	}

	if *fontPath != "" {
		aopts.FontPaths = []string{*fontPath}
	}

	orchestrator := batch.NewWithOptions(aopts, batch.Options{Workers: *workers})
	result, err := orchestrator.Run(path)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	fmt.Printf("\n%s\n", result.Summary())
	fmt.Printf("version %s\n", photostamp.Version)
}
