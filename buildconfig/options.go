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

package buildconfig

import (
	"github.com/ethereum/solbuild/internal/flags"
	"github.com/ethereum/solbuild/options"
	"github.com/ethereum/solbuild/params"
)

// Canonical option names.
const (
	OptCompiler      = "compiler"
	OptUseSolx       = "use-solx"
	OptSolx          = "solx"
	OptSources       = "src"
	OptRuns          = "runs"
	OptIR            = "ir"
	OptEVM           = "evm"
	OptCoverage      = "coverage"
	OptGas           = "gas"
	OptCoinmarketcap = "coinmarketcap"
	OptCI            = "ci"
	OptGasReportFile = "gas-report-file"
	OptJUnitReport   = "junit-report"
	OptExtensions    = "extensions"
	OptCache         = "cache"
	OptArtifacts     = "artifacts"
)

var definitions = []options.Definition{
	{
		Name:     OptCompiler,
		Alias:    "compileVersion",
		Kind:     options.String,
		Default:  params.DefaultCompilerVersion,
		Usage:    "Solidity compiler version",
		Category: flags.CompilerCategory,
	},
	{
		Name:     OptUseSolx,
		Alias:    "useSolx",
		Kind:     options.Bool,
		Default:  false,
		Usage:    "Compile with the solx native compiler instead of solc",
		Category: flags.CompilerCategory,
	},
	{
		Name:     OptSolx,
		Alias:    "solxPath",
		Kind:     options.String,
		Usage:    "Path to the solx executable",
		Category: flags.CompilerCategory,
	},
	{
		Name:     OptSources,
		Alias:    "source",
		Kind:     options.String,
		Default:  params.DefaultSources,
		Usage:    "Contracts folder to compile",
		Category: flags.PathsCategory,
	},
	{
		Name:     OptRuns,
		Alias:    "optimizationRuns",
		Kind:     options.Number,
		Default:  params.DefaultOptimizerRuns,
		Usage:    "Number of optimization runs",
		Category: flags.CompilerCategory,
	},
	{
		Name:     OptIR,
		Alias:    "enableIR",
		Kind:     options.Bool,
		Default:  false,
		Usage:    "Enable compilation through the IR pipeline",
		Category: flags.CompilerCategory,
	},
	{
		Name:     OptEVM,
		Alias:    "evmVersion",
		Kind:     options.String,
		Default:  params.DefaultEVMVersion,
		Usage:    "Target EVM version, also used as the simulated network hardfork",
		Category: flags.CompilerCategory,
	},
	{
		Name:     OptCoverage,
		Alias:    "enableCoverage",
		Kind:     options.Bool,
		Default:  false,
		Usage:    "Configure the build for a coverage run",
		Category: flags.ReportingCategory,
	},
	{
		Name:     OptGas,
		Alias:    "enableGasReport",
		Kind:     options.Bool,
		Default:  false,
		Usage:    "Enable the gas report",
		Category: flags.ReportingCategory,
	},
	{
		Name:     OptCoinmarketcap,
		Alias:    "coinmarketcapApiKey",
		Kind:     options.String,
		Usage:    "Coinmarketcap API key for USD values in the gas report",
		Category: flags.ReportingCategory,
	},
	{
		Name:     OptCI,
		Alias:    "ciMode",
		Kind:     options.Bool,
		Default:  false,
		Usage:    "Write the gas report to a file instead of stdout",
		Category: flags.ReportingCategory,
	},
	{
		Name:     OptGasReportFile,
		Alias:    "gasReportFile",
		Kind:     options.String,
		Default:  params.DefaultGasReportFile,
		Usage:    "Gas report output file in CI mode",
		Category: flags.ReportingCategory,
	},
	{
		Name:     OptJUnitReport,
		Alias:    "reportOutput",
		Kind:     options.String,
		Usage:    "Test reporter JSON output file",
		Category: flags.ReportingCategory,
	},
	{
		Name:     OptExtensions,
		Alias:    "extensionsPath",
		Kind:     options.String,
		Default:  params.DefaultExtensionsDir,
		Usage:    "Directory of extension manifests",
		Category: flags.ExtensionsCategory,
	},
	{
		Name:     OptCache,
		Alias:    "cachePath",
		Kind:     options.String,
		Default:  params.DefaultCacheDir,
		Usage:    "Cache directory holding downloaded compiler builds",
		Category: flags.PathsCategory,
	},
	{
		Name:     OptArtifacts,
		Alias:    "artifactsPath",
		Kind:     options.String,
		Default:  params.DefaultArtifactsDir,
		Usage:    "Artifacts directory",
		Category: flags.PathsCategory,
	},
}

// Definitions returns the option table of solbuild.
func Definitions() []options.Definition {
	defs := make([]options.Definition, len(definitions))
	copy(defs, definitions)
	return defs
}
