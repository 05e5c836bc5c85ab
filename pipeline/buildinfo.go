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

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/params"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// BuildInfoFormat identifies the layout of build-info records.
const BuildInfoFormat = "hh-sol-build-info-1"

// BuildInfo records one compiler invocation.
type BuildInfo struct {
	ID              string           `json:"id"`
	Format          string           `json:"_format"`
	SolcVersion     string           `json:"solcVersion"`
	SolcLongVersion string           `json:"solcLongVersion"`
	Input           *compiler.Input  `json:"input"`
	Output          *compiler.Output `json:"output"`
}

const lockRetryDelay = 50 * time.Millisecond

// WriteBuildInfo stores a build-info record under artifacts and returns its
// path. Writers in other processes are excluded by a lock file next to the
// records.
func WriteBuildInfo(ctx context.Context, artifacts string, desc *compiler.Descriptor, input *compiler.Input, output *compiler.Output) (string, error) {
	dir := filepath.Join(artifacts, params.BuildInfoSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	lock := flock.New(filepath.Join(dir, ".lock"))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("build-info lock: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("build-info lock: %s is held", lock.Path())
	}
	defer lock.Unlock()

	info := &BuildInfo{
		ID:              uuid.NewString(),
		Format:          BuildInfoFormat,
		SolcVersion:     desc.Version,
		SolcLongVersion: desc.LongVersion,
		Input:           input,
		Output:          output,
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", err
	}
	file := filepath.Join(dir, info.ID+".json")
	if err := writeFileAtomic(file, data); err != nil {
		return "", err
	}
	return file, nil
}

// writeFileAtomic writes data next to file and renames it into place. No
// temporary file is left behind on failure.
func writeFileAtomic(file string, data []byte) error {
	tmp := file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, file); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ReadBuildInfo loads a build-info record.
func ReadBuildInfo(file string) (*BuildInfo, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var info BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return &info, nil
}
