package main

import (
	"os"

	"github.com/s0up4200/lidarrctl/cmd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cmd.SetVersion(version, buildTime)
	os.Exit(cmd.Execute())
}
