// Command demomod is the demo HUD mod packaged as a client mod. Build with
// GOOS=wasip1 GOARCH=wasm and load the result through the client or the
// modhost development runner.
package main

import (
	"github.com/ugaris/modkit/demomod"
	"github.com/ugaris/modkit/guest"
)

func init() {
	guest.Register(demomod.New())
}

func main() {
	// The client drives the mod through its exports; main only keeps the
	// module alive under wasip1's reactor model.
}
