package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/font"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/webfont"
)

type Info struct {
	Index int    `short:"i" desc:"Index into font collection (used with TTC or OTC)."`
	Input string `index:"0" desc:"Input font file."`
}

func (cmd *Info) Run() error {
	path := resolveFontPath(cmd.Input)
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	} else if b, err = font.ToSFNT(b); err != nil {
		return err
	}

	r := parse.NewBinaryReaderBytes(b)
	sfntVersion := r.ReadString(4)
	if sfntVersion == "ttcf" {
		_ = r.ReadUint32() // majorVersion and minorVersion
	}
	numTables := int(r.ReadUint16())
	_ = r.ReadBytes(6)

	fmt.Printf("File: %s\n\nTable directory:\n", cmd.Input)
	nLen := int(math.Log10(float64(len(b))) + 1)
	for i := 0; i < numTables; i++ {
		tag := r.ReadString(4)
		checksum := r.ReadUint32()
		offset := r.ReadUint32()
		length := r.ReadUint32()
		fmt.Printf("  %2d  %s  checksum=0x%08X  offset=%*d  length=%*d\n", i, tag, checksum, nLen, offset, nLen, length)
	}

	sfnt, err := webfont.LoadFont(path, cmd.Index)
	if err != nil {
		return err
	}
	res := webfont.NewResource(sfnt)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	family := webfont.FamilyName(res, stem)

	fmt.Printf("\nFamily: %s  (regular variant: %v)\n", family, webfont.IsRegular(stem))
	fmt.Printf("unitsPerEm=%d  ascent=%d  descent=%d  sCapHeight=%d  sxHeight=%d  xAvgCharWidth=%d\n",
		res.UnitsPerEm(), res.Ascent(), res.Descent(), res.CapHeight(), res.XHeight(), res.AvgCharWidth())

	fmt.Printf("\nNormalized metrics:\n%s", webfont.Measure(res, family).Render(webfont.FormatJSON))
	return nil
}
