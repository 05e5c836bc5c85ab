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
	"github.com/ethereum/solbuild/common/compiler"
	"github.com/ethereum/solbuild/log"
)

// Apply rewrites compiler warnings according to the policy. Warnings set to
// off are dropped, warn and error change the reported severity. Errors
// emitted by the compiler itself are never relaxed.
func (p Policy) Apply(diags []compiler.Diagnostic) []compiler.Diagnostic {
	out := make([]compiler.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.Severity != "warning" || d.SourceLocation == nil {
			out = append(out, d)
			continue
		}
		rule := CodeRule(d.ErrorCode)
		switch p.Severity(d.SourceLocation.File, rule) {
		case Off:
			log.Trace("Suppressed compiler warning", "file", d.SourceLocation.File, "rule", rule)
			continue
		case Warn:
			d.Severity = "warning"
		case Error:
			d.Severity = "error"
			d.Type = "Error"
		}
		out = append(out, d)
	}
	return out
}
