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

package compiler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ethereum/solbuild/log"
)

// WasmPlatform is the solc-bin directory holding the emscripten builds.
const WasmPlatform = "wasm"

// Build is one entry of a solc-bin list.json index.
type Build struct {
	Path        string `json:"path"`
	Version     string `json:"version"`
	LongVersion string `json:"longVersion"`
	SHA256      string `json:"sha256,omitempty"`
}

// BuildList is the solc-bin list.json index of one platform directory.
type BuildList struct {
	Builds        []Build           `json:"builds"`
	Releases      map[string]string `json:"releases,omitempty"`
	LatestRelease string            `json:"latestRelease,omitempty"`
}

// DefaultResolver is the pipeline's own compiler lookup. It reads the
// solc-bin style cache under Dir:
//
//	<Dir>/<platform>/list.json
//	<Dir>/<platform>/<build path>
//
// preferring a native build for the host platform and falling back to the
// wasm (soljson) build, which is executed through the embedded interpreter.
type DefaultResolver struct {
	Dir      string
	Platform string // native platform directory, defaults to the host's
}

// NativePlatform returns the solc-bin platform directory of the host.
func NativePlatform() string {
	goos := runtime.GOOS
	if goos == "darwin" {
		goos = "macosx"
	}
	return goos + "-" + runtime.GOARCH
}

func (r *DefaultResolver) Resolve(ctx context.Context, version string) (*Descriptor, error) {
	platform := r.Platform
	if platform == "" {
		platform = NativePlatform()
	}
	var lastErr error = ErrUnknownVersion
	for _, p := range []string{platform, WasmPlatform} {
		build, err := r.lookup(p, version)
		if err != nil {
			if !errors.Is(err, ErrUnknownVersion) {
				lastErr = err
			}
			continue
		}
		path := filepath.Join(r.Dir, p, build.Path)
		if err := verify(path, build.SHA256); err != nil {
			log.Debug("Skipping unusable compiler build", "path", path, "err", err)
			lastErr = err
			continue
		}
		return &Descriptor{
			CompilerPath: path,
			Native:       p != WasmPlatform,
			Version:      build.Version,
			LongVersion:  build.LongVersion,
		}, nil
	}
	return nil, &ResolutionError{Version: version, Err: lastErr}
}

func (r *DefaultResolver) lookup(platform, version string) (*Build, error) {
	list, err := ReadBuildList(filepath.Join(r.Dir, platform, "list.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrUnknownVersion
	}
	if err != nil {
		return nil, err
	}
	for i := range list.Builds {
		if list.Builds[i].Version == version {
			return &list.Builds[i], nil
		}
	}
	return nil, ErrUnknownVersion
}

// ReadBuildList loads a solc-bin list.json file.
func ReadBuildList(file string) (*BuildList, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var list BuildList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return &list, nil
}

// verify checks that the build exists and, when the index carries one,
// that its sha256 matches.
func verify(path, want string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotInstalled
	}
	if err != nil {
		return err
	}
	defer f.Close()
	if want == "" {
		return nil
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	got := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(strings.TrimPrefix(want, "0x"), got) {
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}
