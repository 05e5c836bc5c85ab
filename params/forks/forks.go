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

package forks

import (
	"fmt"
	"strings"
)

// Fork is a numerical identifier of specific network upgrades (forks).
type Fork int

const (
	Frontier Fork = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	MuirGlacier
	Berlin
	London
	ArrowGlacier
	GrayGlacier
	Paris
	Shanghai
	Cancun
	Prague
	Osaka
)

// forkInfo holds the two spellings a fork is known by: the solc evmVersion
// setting and the network simulator's hardfork name. Forks that only
// changed difficulty have no evmVersion.
var forkInfo = map[Fork]struct{ evm, hardfork string }{
	Frontier:         {"", "chainstart"},
	Homestead:        {"homestead", "homestead"},
	TangerineWhistle: {"tangerineWhistle", "tangerineWhistle"},
	SpuriousDragon:   {"spuriousDragon", "spuriousDragon"},
	Byzantium:        {"byzantium", "byzantium"},
	Constantinople:   {"constantinople", "constantinople"},
	Petersburg:       {"petersburg", "petersburg"},
	Istanbul:         {"istanbul", "istanbul"},
	MuirGlacier:      {"", "muirGlacier"},
	Berlin:           {"berlin", "berlin"},
	London:           {"london", "london"},
	ArrowGlacier:     {"", "arrowGlacier"},
	GrayGlacier:      {"", "grayGlacier"},
	Paris:            {"paris", "merge"},
	Shanghai:         {"shanghai", "shanghai"},
	Cancun:           {"cancun", "cancun"},
	Prague:           {"prague", "prague"},
	Osaka:            {"osaka", "osaka"},
}

// String implements fmt.Stringer, returning the simulator hardfork name.
func (f Fork) String() string {
	if info, ok := forkInfo[f]; ok {
		return info.hardfork
	}
	return fmt.Sprintf("fork(%d)", int(f))
}

// Hardfork returns the network simulator's name for the fork.
func (f Fork) Hardfork() string {
	return f.String()
}

// EVMVersion returns the solc evmVersion setting of the fork, or "" when the
// compiler has no target for it.
func (f Fork) EVMVersion() string {
	return forkInfo[f].evm
}

// FromEVMVersion maps a solc evmVersion setting to its fork. The match is
// case-insensitive so both "cancun" and "Cancun" are accepted.
func FromEVMVersion(evm string) (Fork, error) {
	for f, info := range forkInfo {
		if info.evm != "" && strings.EqualFold(info.evm, evm) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown evm version %q", evm)
}

// FromHardfork maps a simulator hardfork name to its fork.
func FromHardfork(name string) (Fork, error) {
	for f, info := range forkInfo {
		if strings.EqualFold(info.hardfork, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown hardfork %q", name)
}
