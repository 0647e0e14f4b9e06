// Package common holds the global logger and version info shared by every
// other package.
package common

import (
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
)

// Version is set at build time with -ldflags.
var Version = "[unknown]"

func init() {
	// missing .env files are fine, configuration can come from the real
	// environment
	_ = godotenv.Load()

	InitLog()

	if Version != "[unknown]" {
		return
	}

	git := exec.Command("git", "rev-parse", "--short", "HEAD")
	b, _ := git.Output()
	Version = strings.TrimSpace(string(b))
	if Version == "" {
		Version = "[unknown]"
	}
}
