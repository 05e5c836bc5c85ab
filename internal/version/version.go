// Copyright 2026 The solbuild Authors
// This file is part of the solbuild library.
//
// The solbuild library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The solbuild library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the solbuild library. If not, see <http://www.gnu.org/licenses/>.

// Package version implements reading of build version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/solbuild/version"
)

const ourPath = "github.com/ethereum/solbuild" // Path to our module

// Set at link time with -ldflags "-X". They take precedence over the VCS
// stamp recorded by the go tool.
var gitCommit, gitDate string

// VCSInfo is the repository state the binary was built from.
type VCSInfo struct {
	Commit string
	Date   string // YYYYMMDD
	Dirty  bool
}

// VCS reports the repository state of the running binary, if known.
var VCS = sync.OnceValues(func() (VCSInfo, bool) {
	if gitCommit != "" {
		return VCSInfo{Commit: gitCommit, Date: gitDate}, true
	}
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path != ourPath {
		return VCSInfo{}, false
	}
	return buildInfoVCS(info)
})

func buildInfoVCS(info *debug.BuildInfo) (VCSInfo, bool) {
	var vcs VCSInfo
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			vcs.Commit = s.Value
		case "vcs.modified":
			vcs.Dirty = s.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
				vcs.Date = t.UTC().Format("20060102")
			}
		}
	}
	return vcs, vcs.Commit != "" && vcs.Date != ""
}

// Semantic holds the textual version string for major.minor.patch.
var Semantic = fmt.Sprintf("%d.%d.%d", version.Major, version.Minor, version.Patch)

// WithMeta holds the textual version string including the metadata.
var WithMeta = func() string {
	v := Semantic
	if version.Meta != "" {
		v += "-" + version.Meta
	}
	return v
}()

// WithCommit returns the version string with the first eight characters of
// the commit hash and the commit date appended.
func WithCommit(gitCommit, gitDate string) string {
	vsn := WithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if (version.Meta != "stable") && (gitDate != "") {
		vsn += "-" + gitDate
	}
	return vsn
}

// Info returns the version string of the running binary, preferring VCS
// data embedded at build time.
func Info() string {
	if vcs, ok := VCS(); ok {
		v := WithCommit(vcs.Commit, vcs.Date)
		if vcs.Dirty {
			v += "-dirty"
		}
		return v
	}
	return WithMeta
}

// Describe returns a multi-line summary of the build for the version command.
func Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", WithMeta)
	if vcs, ok := VCS(); ok {
		fmt.Fprintf(&b, "Git Commit: %s\n", vcs.Commit)
		fmt.Fprintf(&b, "Git Commit Date: %s\n", vcs.Date)
		if vcs.Dirty {
			fmt.Fprintln(&b, "Git Tree: dirty")
		}
	}
	fmt.Fprintf(&b, "Architecture: %s\n", runtime.GOARCH)
	fmt.Fprintf(&b, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(&b, "Operating System: %s\n", runtime.GOOS)
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		fmt.Fprintf(&b, "Module Version: %s\n", info.Main.Version)
	}
	return b.String()
}
