// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jnav loads a JSON-like document and prints values selected from it.
//
// Usage:
//
//	jnav [options] FILE [SELECTOR...]
//
// Each selector is a path into the document, for example 78.name or
// [78]["name"]. Every selector is evaluated and its value printed, one per
// line; a selector that matches nothing prints Null. With no selectors, the
// whole document is printed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/creachadair/jnav"
	"github.com/creachadair/jnav/ast"
	"github.com/creachadair/jnav/ast/cursor"
	"github.com/creachadair/jnav/internal/selector"
	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/go-homedir"
	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = logging.MustGetLogger("jnav")

var stderrLogFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}]%{color:reset} %{message}`,
)

var fileLogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

// Output destinations, replaced during tests.
var (
	stdout    io.Writer = os.Stdout
	logStderr io.Writer = os.Stderr
)

type options struct {
	LogLevel    string `short:"l" long:"loglevel" default:"warning" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	JSON        bool   `short:"j" long:"json" description:"print values as compact JSON"`
	HuJSON      bool   `long:"hujson" description:"allow comments and trailing commas in the input"`
	Tokens      bool   `short:"t" long:"tokens" description:"print the tokens of the input instead of parsing it"`
	Interactive bool   `short:"i" long:"interactive" description:"prompt for selectors after printing any given as arguments"`
	History     string `long:"history" default:"~/.jnav_history" description:"history file for interactive mode"`
	LogFile     string `long:"logfile" description:"also write logs to this file, rotated by size"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] FILE [SELECTOR...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2) // the parser has already printed the error
	}
	if err := run(opts, args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(opts options, args []string) error {
	closeLog, err := setupLogging(opts.LogLevel, opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	if len(args) == 0 {
		return errors.New("missing input FILE")
	}
	path, sels := args[0], args[1:]

	start := time.Now()
	src, err := jnav.ReadFile(path, &jnav.ReadOptions{Standardize: opts.HuJSON})
	if err != nil {
		return err
	}
	log.Debugf("Loaded %d bytes from %q", len(src), path)

	if opts.Tokens {
		return printTokens(src)
	}

	lx := jnav.NewLexer(src)
	root, err := ast.NewParser(lx).ParseValue()
	if err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}
	log.Debugf("Parsed %d tokens [%v elapsed]", lx.Scanned(), time.Since(start))
	if tok, ok := lx.Next(); ok {
		log.Warningf("Ignored input after the first value in %q, at offset %d", path, tok.Span.Pos)
	} else if err := lx.Err(); err != nil {
		log.Warningf("Ignored input after the first value in %q: %v", path, err)
	}

	if len(sels) == 0 && !opts.Interactive {
		printValue(root, opts.JSON)
		return nil
	}
	for _, sel := range sels {
		if err := printSelected(root, sel, opts.JSON); err != nil {
			return err
		}
	}
	if opts.Interactive {
		return interact(root, opts)
	}
	return nil
}

// printTokens prints each token of src on its own line. No marker is printed
// at the end of the stream.
func printTokens(src string) error {
	lx := jnav.NewLexer(src)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		fmt.Fprintln(stdout, tok)
	}
	log.Debugf("Scanned %d tokens", lx.Scanned())
	return lx.Err()
}

// printSelected evaluates sel against root and prints the result.
func printSelected(root ast.Value, sel string, asJSON bool) error {
	path, err := selector.Parse(sel)
	if err != nil {
		return fmt.Errorf("invalid selector %q: %w", sel, err)
	}
	v := cursor.Path(root, path...)
	if v == ast.Null {
		log.Infof("Selector %s matched nothing", selector.Format(path))
	}
	printValue(v, asJSON)
	return nil
}

func printValue(v ast.Value, asJSON bool) {
	if asJSON {
		fmt.Fprintln(stdout, v.JSON())
	} else {
		fmt.Fprintln(stdout, v)
	}
}

// setupLogging directs logs at or above level to stderr, and to logFile if it
// is non-empty. The caller must call the returned function when done logging.
func setupLogging(level, logFile string) (func(), error) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	backends := []logging.Backend{
		logging.NewBackendFormatter(logging.NewLogBackend(logStderr, "", 0), stderrLogFormat),
	}
	closeLog := func() {}
	if logFile != "" {
		path, err := homedir.Expand(logFile)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		w := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
		}
		backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), fileLogFormat))
		closeLog = func() { w.Close() }
	}
	leveled := logging.MultiLogger(backends...)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return closeLog, nil
}
