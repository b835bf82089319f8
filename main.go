package main

import (
	"fmt"

	"synth/cmd"
)

var (
	version string
	commit  string
)

func main() {
	ver := fmt.Sprintf("%s-%s", version, commit)
	cmd.Run(ver)
}
