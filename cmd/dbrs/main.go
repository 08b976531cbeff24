package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/tbrv/dbrs"
	"github.com/tbrv/dbrs/internal/repl"
)

func main() {
	cfg := dbrs.DefaultConfig()
	flag.IntVar(&cfg.MaxPages, "max-pages", cfg.MaxPages, "maximum number of 4096-byte pages the table may allocate")
	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt printed before each input line")
	flag.Parse()

	db := dbrs.Open(cfg)

	err := repl.New(db, os.Stdout, cfg.Prompt).Run(os.Stdin)
	if err != nil && !errors.Is(err, repl.ErrExit) {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
