// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/creachadair/jnav/ast"
	"github.com/mitchellh/go-homedir"
	"github.com/peterh/liner"
)

const (
	prompt   = "jnav> "
	quitWord = ":quit"
)

// interact reads selectors from the terminal and prints the value of each,
// until the user exits with Ctrl-D or :quit. Ctrl-C discards the current line.
func interact(root ast.Value, opts options) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	hist, err := homedir.Expand(opts.History)
	if err != nil {
		log.Warningf("History disabled: %v", err)
		hist = ""
	}
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			n, _ := line.ReadHistory(f)
			f.Close()
			log.Debugf("Read %d history entries from %q", n, hist)
		}
	}

	for {
		in, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
		sel := strings.TrimSpace(in)
		if sel == "" {
			continue
		} else if sel == quitWord {
			break
		}
		line.AppendHistory(sel)
		if err := printSelected(root, sel, opts.JSON); err != nil {
			log.Warning(err)
		}
	}

	if hist != "" {
		f, err := os.Create(hist)
		if err != nil {
			log.Warningf("Saving history: %v", err)
			return nil
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			log.Warningf("Saving history: %v", err)
		}
	}
	return nil
}
