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
	"fmt"

	"github.com/ethereum/solbuild/log"
)

// SubstitutingResolver replaces every compiler request with a fixed native
// binary when Enabled, and otherwise defers to Default unchanged.
//
// The binary at Path is neither probed nor validated: a wrong path surfaces
// when the pipeline launches it. The requested version is passed through and
// the long version is the synthetic "solx-<toolchain>-<requested>" label that
// ends up verbatim in build-info records.
type SubstitutingResolver struct {
	Default   Resolver
	Enabled   bool
	Path      string
	Toolchain string // release of the substitute, e.g. "0.1.0"
}

// SubstituteLongVersion returns the long version recorded for a substituted
// build of the requested solc version.
func SubstituteLongVersion(toolchain, requested string) string {
	return fmt.Sprintf("solx-%s-%s", toolchain, requested)
}

func (r *SubstitutingResolver) Resolve(ctx context.Context, version string) (*Descriptor, error) {
	if !r.Enabled {
		return r.Default.Resolve(ctx, version)
	}
	log.Info("Compiling with solx compiler", "path", r.Path, "requested", version)
	return &Descriptor{
		CompilerPath: r.Path,
		Native:       true,
		Version:      version,
		LongVersion:  SubstituteLongVersion(r.Toolchain, version),
	}, nil
}
