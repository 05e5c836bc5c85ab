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

package warnings

import (
	"testing"

	"github.com/ethereum/solbuild/common/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = Policy{
	{Glob: "contracts-exposed/**/*", Rules: map[string]Severity{"code-size": Off, "initcode-size": Off}},
	{Glob: "*", Rules: map[string]Severity{"unused-param": Inherit, "transient-storage": Off, DefaultRule: Error}},
}

func TestPolicySeverity(t *testing.T) {
	tests := []struct {
		file, rule string
		want       Severity
	}{
		{"contracts-exposed/token/ERC20.sol", "code-size", Off},
		{"contracts-exposed/token/ERC20.sol", "initcode-size", Off},
		{"contracts-exposed/token/ERC20.sol", "unreachable", Error},
		{"contracts/token/ERC20.sol", "code-size", Error},
		{"contracts/token/ERC20.sol", "transient-storage", Off},
		{"contracts/token/ERC20.sol", "unused-param", Error},
		{"contracts/token/ERC20.sol", DefaultRule, Error},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, testPolicy.Severity(tt.file, tt.rule), "%s %s", tt.file, tt.rule)
	}
	assert.Equal(t, Inherit, Policy(nil).Severity("a.sol", "unused-var"))
}

func TestPolicyWith(t *testing.T) {
	p := testPolicy.With(Entry{Glob: "contracts/mocks/**/*", Rules: map[string]Severity{"unreachable": Warn}})
	assert.Equal(t, Warn, p.Severity("contracts/mocks/Foo.sol", "unreachable"))
	assert.Equal(t, Error, p.Severity("contracts/Foo.sol", "unreachable"))
	assert.Len(t, testPolicy, 2, "With must not modify the receiver")
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]Severity{"off": Off, "false": Off, "WARN": Warn, "error": Error, "true": Inherit} {
		got, err := ParseSeverity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSeverity("loud")
	assert.Error(t, err)
}

func TestRuleCodes(t *testing.T) {
	code, ok := RuleCode("unused-param")
	assert.True(t, ok)
	assert.Equal(t, "5667", code)
	assert.Equal(t, "transient-storage", CodeRule("2394"))
	assert.Equal(t, DefaultRule, CodeRule("1234"))
	assert.True(t, KnownRule(DefaultRule))
	assert.False(t, KnownRule("nonsense"))
}

func TestApply(t *testing.T) {
	loc := func(file string) *compiler.SourceLocation { return &compiler.SourceLocation{File: file} }
	diags := []compiler.Diagnostic{
		{Severity: "warning", ErrorCode: "5574", SourceLocation: loc("contracts-exposed/A.sol")},
		{Severity: "warning", ErrorCode: "5574", SourceLocation: loc("contracts/A.sol")},
		{Severity: "warning", ErrorCode: "2394", SourceLocation: loc("contracts/A.sol")},
		{Severity: "error", Type: "TypeError", ErrorCode: "9574", SourceLocation: loc("contracts/A.sol")},
		{Severity: "warning", ErrorCode: "1878"},
	}
	out := testPolicy.Apply(diags)
	require.Len(t, out, 3)
	assert.Equal(t, "error", out[0].Severity)
	assert.Equal(t, "contracts/A.sol", out[0].SourceLocation.File)
	assert.Equal(t, "TypeError", out[1].Type)
	assert.Equal(t, "warning", out[2].Severity, "warnings without a location are kept as is")
}
