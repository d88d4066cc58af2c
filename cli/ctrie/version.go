package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

type CmdVersion struct{}

func (c *CmdVersion) Execute(args []string) error {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}

	_, err := fmt.Fprintf(stdout, "%s version %s %s/%s\n", bin, version, runtime.GOOS, runtime.GOARCH)
	return err
}
