package main

import (
	"github.com/kestrel-sys/danktracker/cmd"
	"github.com/kestrel-sys/danktracker/common"
)

func main() {
	if err := cmd.Run(); err != nil {
		common.Log.Fatalf("Error: %v", err)
	}
}
