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

// Package params holds the static defaults of the build pipeline.
package params

const (
	DefaultCompilerVersion = "0.8.30"    // solc release used when none is requested
	DefaultSources         = "contracts" // contract sources root
	DefaultOptimizerRuns   = 200
	DefaultEVMVersion      = "cancun"

	DefaultExtensionsDir = "hardhat"
	DefaultCacheDir      = "cache"
	DefaultArtifactsDir  = "artifacts"
	DefaultGasReportFile = "gas-report.txt"

	// CompilersSubdir is the directory under the cache holding solc builds
	// and their list.json index.
	CompilersSubdir = "compilers"

	// BuildInfoSubdir is the directory under the artifacts holding one JSON
	// record per compiler invocation.
	BuildInfoSubdir = "build-info"
)

// SolxToolchainVersion is the release of the alternate native compiler that
// is reported in build-info records when it replaces solc.
const SolxToolchainVersion = "0.1.0"

// ExposedSourcesDir is where generated exposed contract variants are written.
const ExposedSourcesDir = "contracts-exposed"

// Documentation generator defaults.
const (
	DocgenOutputDir     = "docs/modules/api/pages"
	DocgenTemplatesDir  = "docs/templates"
	DocgenPageExtension = ".adoc"
	DocgenPages         = "files"
)

// DocgenExclude lists source directories skipped by the documentation generator.
var DocgenExclude = []string{"mocks"}

// ExposedExclude lists source globs never given exposed variants.
var ExposedExclude = []string{"vendor/**/*", "**/*WithInit.sol"}
