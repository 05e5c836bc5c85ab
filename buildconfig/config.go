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

// Package buildconfig derives the configuration of every build tool from a
// single resolved option set.
package buildconfig

import (
	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/warnings"
	"github.com/holiman/uint256"
)

// Config is the assembled configuration handed to the pipeline runtime and
// its collaborators.
type Config struct {
	Solidity    Solidity        `json:"solidity" yaml:"solidity"`
	Warnings    warnings.Policy `json:"warnings" yaml:"warnings"`
	Network     Network         `json:"network" yaml:"network"`
	GasReporter GasReporter     `json:"gasReporter" yaml:"gasReporter"`
	Docgen      Docgen          `json:"docgen" yaml:"docgen"`
	Exposed     Exposed         `json:"exposed" yaml:"exposed"`
	Mocha       Mocha           `json:"mocha" yaml:"mocha"`
	Paths       Paths           `json:"paths" yaml:"paths"`
}

type Solidity struct {
	Version  string            `json:"version" yaml:"version"`
	Settings compiler.Settings `json:"settings" yaml:"settings"`
}

// Network configures the local network simulator.
type Network struct {
	Hardfork                   string       `json:"hardfork" yaml:"hardfork"`
	AllowUnlimitedContractSize bool         `json:"allowUnlimitedContractSize" yaml:"allowUnlimitedContractSize"`
	InitialBaseFeePerGas       *uint256.Int `json:"initialBaseFeePerGas,omitempty" yaml:"initialBaseFeePerGas,omitempty" toml:",omitempty"` // nil: simulator default
	EnableRIP7212              bool         `json:"enableRip7212" yaml:"enableRip7212"`
}

type GasReporter struct {
	Enabled               bool    `json:"enabled" yaml:"enabled"`
	ShowMethodSig         bool    `json:"showMethodSig" yaml:"showMethodSig"`
	IncludeBytecodeInJSON bool    `json:"includeBytecodeInJSON" yaml:"includeBytecodeInJSON"`
	Currency              string  `json:"currency" yaml:"currency"`
	CoinmarketcapKey      *string `json:"coinmarketcap,omitempty" yaml:"coinmarketcap,omitempty" toml:",omitempty"`
	OutputFile            string  `json:"outputFile,omitempty" yaml:"outputFile,omitempty" toml:",omitempty"`
	NoColors              bool    `json:"noColors,omitempty" yaml:"noColors,omitempty" toml:",omitempty"`
}

// Docgen configures the documentation generator.
type Docgen struct {
	OutputDir     string   `json:"outputDir" yaml:"outputDir"`
	Templates     string   `json:"templates" yaml:"templates"`
	Exclude       []string `json:"exclude" yaml:"exclude"`
	PageExtension string   `json:"pageExtension" yaml:"pageExtension"`
	Pages         string   `json:"pages" yaml:"pages"`
}

// Exposed configures generation of the contracts-exposed test harnesses.
type Exposed struct {
	Imports      bool     `json:"imports" yaml:"imports"`
	Initializers bool     `json:"initializers" yaml:"initializers"`
	Exclude      []string `json:"exclude" yaml:"exclude"`
}

type Mocha struct {
	Reporter string  `json:"reporter" yaml:"reporter"`
	Output   *string `json:"output,omitempty" yaml:"output,omitempty" toml:",omitempty"`
}

type Paths struct {
	Sources   string `json:"sources" yaml:"sources"`
	Cache     string `json:"cache" yaml:"cache"`
	Artifacts string `json:"artifacts" yaml:"artifacts"`
}
