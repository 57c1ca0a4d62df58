// seehuhn.de/go/nametag - name-tag textures for sprite labels
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command nametag renders name-tag textures to PNG files.
//
// Usage:
//
//	nametag [-config labels.yaml] [-out dir] [-v]
//
// Without a configuration file, the labels of the three demo characters
// are written.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/nametag"
	"seehuhn.de/go/nametag/raster"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "nametag:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("nametag", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "label set `file` (YAML)")
	outDir := flags.String("out", ".", "output `directory`")
	verbose := flags.Bool("v", false, "log every generated label")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	nametag.SetLogger(log)
	defer nametag.SetLogger(nil)

	cfg := defaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = loadConfigFile(*configFile); err != nil {
			return err
		}
	}

	jobs, err := cfg.jobs()
	if err != nil {
		return err
	}
	weight, err := cfg.weight()
	if err != nil {
		return err
	}
	provider, err := raster.NewProvider(weight)
	if err != nil {
		return err
	}
	gen := nametag.NewGenerator(provider)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}
	for _, j := range jobs {
		b, err := gen.Generate(j.spec)
		if err != nil {
			return err
		}
		out := filepath.Join(*outDir, j.file)
		if err := writePNG(out, b); err != nil {
			return err
		}

		sx, sy := nametag.SpriteScale(b, cfg.pixelScale())
		offset := nametag.LabelOffset(cfg.headTop(), j.spec.FontSize, cfg.pixelScale())
		log.Info("label written",
			slog.String("name", j.spec.Name),
			slog.String("file", out),
			slog.Int("width", b.Width),
			slog.Int("height", b.Height),
			slog.Float64("scale", b.ScaleFactor),
			slog.Float64("spriteX", sx),
			slog.Float64("spriteY", sy),
			slog.Float64("offsetY", offset))
	}
	return nil
}

func loadConfigFile(name string) (*config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readConfig(f)
}

func writePNG(name string, b *nametag.Bitmap) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, b.Image())
}
