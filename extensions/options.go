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

package extensions

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Options are the handler options given in a manifest.
type Options struct {
	val cty.Value
}

// NewOptions wraps an object value. It is mostly useful in tests.
func NewOptions(val cty.Value) Options {
	return Options{val: val}
}

// Has reports whether the option key was given.
func (o Options) Has(key string) bool {
	_, ok := o.get(key)
	return ok
}

func (o Options) get(key string) (cty.Value, bool) {
	if o.val.IsNull() || !o.val.IsKnown() {
		return cty.NilVal, false
	}
	ty := o.val.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(key) {
			return cty.NilVal, false
		}
		v := o.val.GetAttr(key)
		return v, !v.IsNull()
	case ty.IsMapType():
		k := cty.StringVal(key)
		if !o.val.HasIndex(k).True() {
			return cty.NilVal, false
		}
		v := o.val.Index(k)
		return v, !v.IsNull()
	}
	return cty.NilVal, false
}

// String returns a string option, def when it was not given.
func (o Options) String(key, def string) (string, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("option %q: %w", key, err)
	}
	return s.AsString(), nil
}

// StringMap returns an object or map option with string values.
func (o Options) StringMap(key string) (map[string]string, error) {
	v, ok := o.get(key)
	if !ok {
		return nil, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("option %q: expected an object, got %s", key, v.Type().FriendlyName())
	}
	out := make(map[string]string, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		k, ev := it.Element()
		s, err := convert.Convert(ev, cty.String)
		if err != nil || s.IsNull() {
			return nil, fmt.Errorf("option %q: entry %q is not a string", key, k.AsString())
		}
		out[k.AsString()] = s.AsString()
	}
	return out, nil
}
