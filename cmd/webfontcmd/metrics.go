package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/tdewolff/webfont"
)

type Metrics struct {
	Quiet  bool   `short:"q" desc:"Suppress output except for errors."`
	Force  bool   `short:"f" desc:"Force overwriting existing files."`
	Append bool   `short:"a" desc:"Append to the output file instead of overwriting."`
	Config string `short:"c" desc:"TOML batch configuration file."`
	Format string `short:"t" desc:"Output format: js, json, css or scss." default:"json"`
	Output string `short:"o" desc:"Aggregate metrics output file name, stdout when empty."`
	Input  string `index:"0" desc:"Input font directory."`
}

func (cmd *Metrics) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	name := cmd.Format
	if cmd.Config != "" {
		cfg, err := webfont.LoadConfig(cmd.Config)
		if err != nil {
			return err
		}
		if cfg.Format != "" {
			name = cfg.Format
		}
	}
	format, err := webfont.ParseFormat(name)
	if err != nil {
		return err
	}

	records, err := webfont.NewBatch(Warning).ProcessDir(cmd.Input)
	if err != nil {
		return err
	}

	var w io.WriteCloser = os.Stdout
	if cmd.Output != "" {
		if w, err = openOutput(cmd.Output, cmd.Append, cmd.Force); err != nil {
			return err
		}
	}

	b := bufio.NewWriter(w)
	if err := webfont.WriteRecords(b, format, records); err != nil {
		w.Close()
		return err
	}
	if err := b.Flush(); err != nil {
		w.Close()
		return err
	}
	if cmd.Output != "" {
		return w.Close()
	}
	return nil
}
