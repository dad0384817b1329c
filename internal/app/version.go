package app

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/agbru/bignum/internal/app.Version=v0.3.0 \
//	  -X github.com/agbru/bignum/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = ""
)

// HasVersionFlag reports whether args request the version. It is checked
// before flag parsing so the version prints even alongside invalid flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		case "--":
			return false
		}
	}
	return false
}

// PrintVersion writes the version line to out.
func PrintVersion(out io.Writer) {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit != "" {
		fmt.Fprintf(out, "%s %s (%s, %s %s/%s)\n", programName, Version, commit,
			runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return
	}
	fmt.Fprintf(out, "%s %s (%s %s/%s)\n", programName, Version,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
