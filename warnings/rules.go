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

// Compiler warning codes for every named rule.
var ruleCodes = map[string]string{
	"unused-param":       "5667",
	"unused-var":         "2072",
	"unreachable":        "5740",
	"shadowing":          "2519",
	"shadowing-builtin":  "2319",
	"shadowing-opcode":   "8261",
	"code-size":          "5574",
	"initcode-size":      "3860",
	"func-mutability":    "2018",
	"unused-call-retval": "9302",
	"missing-receive":    "3628",
	"transient-storage":  "2394",
	"same-varname":       "8760",
}

var codeRules = func() map[string]string {
	m := make(map[string]string, len(ruleCodes))
	for rule, code := range ruleCodes {
		m[code] = rule
	}
	return m
}()

// RuleCode returns the compiler error code of a named rule.
func RuleCode(rule string) (string, bool) {
	code, ok := ruleCodes[rule]
	return code, ok
}

// CodeRule returns the rule name for a compiler error code. Unknown codes
// map to DefaultRule.
func CodeRule(code string) string {
	if rule, ok := codeRules[code]; ok {
		return rule
	}
	return DefaultRule
}

// KnownRule reports whether rule can appear in a policy.
func KnownRule(rule string) bool {
	_, ok := ruleCodes[rule]
	return ok || rule == DefaultRule
}
