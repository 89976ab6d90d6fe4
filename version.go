/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mapperconfig

import (
	"fmt"
	"runtime"
)

// Build information, overridden with -ldflags "-X".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo formats the version banner printed by the beandump command.
func BuildInfo(program string) string {
	return fmt.Sprintf("%s version %s\nGit commit: %s\nBuild date: %s\nGo version: %s\n",
		program, Version, GitCommit, BuildDate, runtime.Version())
}
