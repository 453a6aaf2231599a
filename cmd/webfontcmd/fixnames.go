package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tdewolff/webfont"
)

type FixNames struct {
	Quiet  bool   `short:"q" desc:"Suppress output except for errors."`
	Force  bool   `short:"f" desc:"Force overwriting existing files."`
	Family string `desc:"Family name override, resolved from the font when empty."`
	Output string `short:"o" desc:"Output font file name, rewrites the input when empty."`
	Input  string `index:"0" desc:"Input font file."`
}

func (cmd *FixNames) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	path := resolveFontPath(cmd.Input)
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, family, err := webfont.FixFamilyNames(b, cmd.Family)
	if err != nil {
		return fmt.Errorf("%v: %v", cmd.Input, err)
	}
	if family == "" {
		Warning.Printf("%s: no family name records found", cmd.Input)
		return nil
	}

	output := cmd.Output
	if output == "" {
		output = path
	}
	w, err := openOutput(output, false, cmd.Force || output == path)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if !cmd.Quiet {
		fmt.Printf("%v: %s\n", output, family)
	}
	return nil
}
