package main

import (
	"runtime/debug"

	"shoutbox/cmd"
)

// Build information. Populated at build-time via -ldflags; when
// installed with go install, init falls back to debug.BuildInfo.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	if version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if mv := info.Main.Version; mv != "" && mv != "(devel)" {
		version = mv
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			date = s.Value
		}
	}
}

func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
