package main

import (
	"log"
	"os"

	"github.com/tdewolff/argp"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	cmd := argp.New("Batch toolkit for preparing web font assets - Taco de Wolff")
	cmd.AddCmd(&Metrics{}, "metrics", "Derive normalized font family metrics")
	cmd.AddCmd(&Prep{}, "prep", "Subset fonts and convert to WOFF2")
	cmd.AddCmd(&FixNames{}, "fixnames", "Normalize font family name records")
	cmd.AddCmd(&Info{}, "info", "Inspect font tables and raw metric fields")
	cmd.Parse()
}
