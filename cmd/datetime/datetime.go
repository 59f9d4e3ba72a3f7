// Copyright (c) 2023-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/decred/datetime/instant"
)

const (
	tableTop = "┌────────────────────┬──────────────────────────┐"
	tableMid = "├────────────────────┼──────────────────────────┤"
	tableBot = "└────────────────────┴──────────────────────────┘"
)

// renderFunc writes a single conversion result.  A render failure is a
// broken output stream and is fatal to the caller.
type renderFunc func(io.Writer, instant.Timestamp) error

func renderTable(w io.Writer, ts instant.Timestamp) error {
	_, err := fmt.Fprintf(w, "%s\n"+
		"│ ISO 8601 timestamp │ %-24s │\n%s\n"+
		"│ Epoch seconds      │ %24d │\n%s\n"+
		"│ Epoch milliseconds │ %24d │\n%s\n",
		tableTop, ts.ISO8601, tableMid, ts.EpochSecs, tableMid,
		ts.EpochMillis, tableBot)
	return err
}

func renderJSON(w io.Writer, ts instant.Timestamp) error {
	b, err := json.Marshal(ts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// convertArgs converts each value in order.  Failures are reported on
// ew without stopping; the number of failures is returned so that the
// process can exit non-zero when any value did not parse.
func convertArgs(values []string, w, ew io.Writer, render renderFunc) (int, error) {
	var failed int
	for _, value := range values {
		t, err := instant.Parse(value)
		if err != nil {
			fmt.Fprintln(ew, err)
			failed++
			continue
		}
		if err := render(w, instant.Convert(t)); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// convertStream runs one parse/render cycle per line of r until the
// stream ends.  A line that does not parse is reported on ew and the
// loop keeps going; only a read or write failure aborts it.
func convertStream(r io.Reader, w, ew io.Writer, render renderFunc) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t, err := instant.Parse(scanner.Text())
		if err != nil {
			fmt.Fprintln(ew, err)
			continue
		}
		if err := render(w, instant.Convert(t)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func _main() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return err
	}

	render := renderTable
	if cfg.JSON {
		render = renderJSON
	}

	if args := cfg.Args.DateTime; len(args) > 0 {
		failed, err := convertArgs(args, os.Stdout, os.Stderr, render)
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%v of %v values could not be parsed",
				failed, len(args))
		}
		return nil
	}

	log.Debugf("no value given, reading from stdin")
	return convertStream(os.Stdin, os.Stdout, os.Stderr, render)
}

func main() {
	err := _main()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
