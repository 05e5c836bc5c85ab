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
	"slices"

	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/options"
	"github.com/ethereum/solbuild/params"
	"github.com/ethereum/solbuild/params/forks"
	"github.com/ethereum/solbuild/warnings"
	"github.com/holiman/uint256"
)

// Assemble derives the build configuration from cfg. It reads nothing but
// cfg, so equal inputs always yield equal outputs.
func Assemble(cfg *options.Config) (*Config, error) {
	runs, err := cfg.Uint64(OptRuns)
	if err != nil {
		return nil, err
	}
	fork, err := evmFork(cfg)
	if err != nil {
		return nil, err
	}
	coverage := cfg.Bool(OptCoverage)

	out := &Config{
		Solidity: Solidity{
			Version: cfg.String(OptCompiler),
			Settings: compiler.Settings{
				Optimizer:  compiler.Optimizer{Enabled: true, Runs: runs},
				EVMVersion: fork.EVMVersion(),
				ViaIR:      cfg.Bool(OptIR),
				OutputSelection: map[string]map[string][]string{
					"*": {"*": {"storageLayout"}},
				},
			},
		},
		Warnings: warningsPolicy(coverage),
		Network: Network{
			Hardfork:                   fork.Hardfork(),
			AllowUnlimitedContractSize: true,
			EnableRIP7212:              true,
		},
		GasReporter: GasReporter{
			Enabled:               cfg.Bool(OptGas),
			ShowMethodSig:         true,
			IncludeBytecodeInJSON: true,
			Currency:              "USD",
			CoinmarketcapKey:      optional(cfg, OptCoinmarketcap),
		},
		Docgen: Docgen{
			OutputDir:     params.DocgenOutputDir,
			Templates:     params.DocgenTemplatesDir,
			Exclude:       slices.Clone(params.DocgenExclude),
			PageExtension: params.DocgenPageExtension,
			Pages:         params.DocgenPages,
		},
		Exposed: Exposed{
			Imports:      true,
			Initializers: true,
			Exclude:      slices.Clone(params.ExposedExclude),
		},
		Mocha: Mocha{
			Reporter: "json",
			Output:   optional(cfg, OptJUnitReport),
		},
		Paths: Paths{
			Sources:   cfg.String(OptSources),
			Cache:     cfg.String(OptCache),
			Artifacts: cfg.String(OptArtifacts),
		},
	}
	// Instrumented code cannot pay fees, so coverage runs on a free network.
	if coverage {
		out.Network.InitialBaseFeePerGas = uint256.NewInt(0)
	}
	if cfg.Bool(OptCI) {
		out.GasReporter.OutputFile = cfg.String(OptGasReportFile)
		out.GasReporter.NoColors = true
	}
	return out, nil
}

func evmFork(cfg *options.Config) (forks.Fork, error) {
	v, _ := cfg.Lookup(OptEVM)
	fork, err := forks.FromEVMVersion(v.String())
	if err != nil {
		return 0, &options.ConfigError{Option: OptEVM, Source: v.Source(), Value: v.String(), Err: err}
	}
	return fork, nil
}

// warningsPolicy is the fixed per-path policy. Coverage instrumentation leaves
// parameters unused, so that rule is silenced for coverage builds only.
func warningsPolicy(coverage bool) warnings.Policy {
	unusedParam := warnings.Inherit
	if coverage {
		unusedParam = warnings.Off
	}
	return warnings.Policy{
		{
			Glob: params.ExposedSourcesDir + "/**/*",
			Rules: map[string]warnings.Severity{
				"code-size":     warnings.Off,
				"initcode-size": warnings.Off,
			},
		},
		{
			Glob: "*",
			Rules: map[string]warnings.Severity{
				"unused-param":       unusedParam,
				"transient-storage":  warnings.Off,
				warnings.DefaultRule: warnings.Error,
			},
		},
	}
}

func optional(cfg *options.Config, name string) *string {
	if s, ok := cfg.LookupString(name); ok {
		return &s
	}
	return nil
}
