package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/prompt"
	"github.com/tdewolff/webfont"
)

type Prep struct {
	Quiet    bool     `short:"q" desc:"Suppress output except for errors."`
	Force    bool     `short:"f" desc:"Force overwriting existing files."`
	Config   string   `short:"c" desc:"TOML batch configuration file."`
	Ranges   string   `short:"r" name:"range" desc:"Comma-separated unicode ranges to keep, eg. U+0020-007E."`
	Chars    string   `name:"chars" desc:"Literal characters to keep."`
	Features []string `name:"feature" desc:"OpenType feature tags to hand to the subsetter."`
	Metrics  string   `short:"m" desc:"Also write an aggregate metrics file in this format: js, json, css or scss."`
	Out      string   `short:"o" desc:"Output directory, next to the inputs when empty."`
	Input    string   `index:"0" desc:"Input font directory."`
}

func (cmd *Prep) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	opts := webfont.PrepOptions{
		Chars:        cmd.Chars,
		UnicodeRange: cmd.Ranges,
		Features:     cmd.Features,
	}
	formatName := cmd.Metrics
	if cmd.Config != "" {
		cfg, err := webfont.LoadConfig(cmd.Config)
		if err != nil {
			return err
		}
		if cfg.Chars != "" {
			opts.Chars = cfg.Chars
		}
		if cfg.UnicodeRange != "" {
			opts.UnicodeRange = cfg.UnicodeRange
		}
		if 0 < len(cfg.Features) {
			opts.Features = cfg.Features
		}
		if cfg.Out != "" && cmd.Out == "" {
			cmd.Out = cfg.Out
		}
		if cfg.Format != "" && formatName == "" {
			formatName = cfg.Format
		}
	}

	if cmd.Out != "" {
		if err := os.MkdirAll(cmd.Out, 0755); err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(cmd.Input)
	if err != nil {
		return err
	}

	batch := webfont.NewBatch(Warning)
	for _, entry := range entries {
		if entry.IsDir() || !isFontFile(entry.Name()) {
			continue
		}
		path := filepath.Join(cmd.Input, entry.Name())
		outPath := webfont.WOFF2Path(path, cmd.Out)
		if _, err := os.Stat(outPath); err == nil {
			if !cmd.Force && !prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", outPath), false) {
				continue
			}
		}

		n, wLen, err := batch.PrepFile(path, outPath, opts)
		if err != nil {
			// a broken font never aborts the batch
			Warning.Printf("%s: %v", entry.Name(), err)
			continue
		}
		if !cmd.Quiet {
			ratio := 1.0
			if 0 < n {
				ratio = float64(wLen) / float64(n)
			}
			fmt.Printf("%v:  %v => %v (%.1f%%)\n", filepath.Base(outPath), formatBytes(uint64(n)), formatBytes(uint64(wLen)), ratio*100.0)
		}
	}

	if formatName == "" {
		return nil
	}
	format, err := webfont.ParseFormat(formatName)
	if err != nil {
		return err
	}
	records, err := batch.ProcessDir(cmd.Input)
	if err != nil {
		return err
	}

	outDir := cmd.Out
	if outDir == "" {
		outDir = cmd.Input
	}
	// JSON documents cannot be concatenated, the other formats aggregate
	// across runs
	appendMode := format != webfont.FormatJSON
	w, err := openOutput(filepath.Join(outDir, "metrics"+format.Ext()), appendMode, cmd.Force)
	if err != nil {
		return err
	}
	if err := webfont.WriteRecords(w, format, records); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}
