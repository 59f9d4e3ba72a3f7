// Copyright (c) 2023-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/decred/dcrd/dcrutil/v3"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "datetime.conf"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = dcrutil.AppDataDir("datetime", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// config defines the configuration options for datetime.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	JSON        bool   `short:"j" long:"json" description:"Print results as JSON objects instead of a table"`
	Args        struct {
		DateTime []string `positional-arg-name:"DATE_TIME" description:"Date/time value to convert: ISO 8601 or raw epoch (milli)seconds. If omitted standard input is read line by line."`
	} `positional-args:"true"`
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1) Start with a default config with sane settings
//  2) Load any settings from the config file, if it exists
//  3) Parse CLI options, overriding the above
func loadConfig() (*config, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	// The config file is optional; this tool keeps no state of its
	// own so the home directory is never created.
	err := flags.IniParse(defaultConfigFile, &cfg)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err = parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		return nil, err
	}

	if cfg.ShowVersion {
		fmt.Printf("datetime version %s (Go version %s %s/%s)\n",
			version(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}

	return &cfg, nil
}
