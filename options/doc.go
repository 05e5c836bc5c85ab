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

// Package options resolves a declared table of build options against the
// process environment and command line into one immutable, typed Config.
//
// Precedence, highest first: a command line flag naming the option or its
// alias, an environment variable named after the option, the declared default.
// Raw inputs are always strings and are coerced to the option's declared kind;
// a value that cannot be coerced is a *ConfigError naming the option.
package options
