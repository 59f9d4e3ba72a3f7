// Copyright (c) 2023-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/decred/datetime/instant"
	"github.com/decred/slog"
)

// All output the user asked for goes to stdout; logging is diagnostics
// only and stays on stderr.
var (
	backendLog = slog.NewBackend(os.Stderr)

	log        = backendLog.Logger("MAIN")
	instantLog = backendLog.Logger("INST")
)

func init() {
	instant.UseLogger(instantLog)
}

// setLogLevels sets the logging level for all subsystems.
func setLogLevels(level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("unknown log level: %v", level)
	}
	log.SetLevel(lvl)
	instantLog.SetLevel(lvl)
	return nil
}
