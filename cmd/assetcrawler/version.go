package main

import "runtime/debug"

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

// getVersion prefers ldflags, then module build info, then "(devel)".
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}
