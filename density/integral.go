/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package density

import (
	"github.com/gofit-project/gofit/data"
)

// Integral is a scalar objective holding a density's integral over a
// range, optionally normalized by the density's integral over the same
// range. GetVal recomputes from the density on every call, so an
// Integral always reflects the current parameter values.
type Integral struct {
	d          Density
	lo, hi     float64
	normalized bool
}

// NewIntegral returns the unnormalized integral of d over a named
// range of its domain variable (empty name: full range).
func NewIntegral(d Density, rangeName string) (*Integral, error) {
	lo, hi, err := d.Var().Range(rangeName)
	if err != nil {
		return nil, err
	}
	return &Integral{d: d, lo: lo, hi: hi}, nil
}

// NewNormalizedIntegral returns the integral of d over a named range
// divided by the integral of d over that same range. By construction
// its value is unity; it exists so self-consistency of a density's
// normalization can be asserted.
func NewNormalizedIntegral(d Density, rangeName string) (*Integral, error) {
	i, err := NewIntegral(d, rangeName)
	if err != nil {
		return nil, err
	}
	i.normalized = true
	return i, nil
}

// GetVal evaluates the integral.
func (i *Integral) GetVal() float64 {
	val := Norm(i.d, i.lo, i.hi)
	if i.normalized {
		val /= Norm(i.d, i.lo, i.hi)
	}
	return val
}

// Var returns the integration variable.
func (i *Integral) Var() *data.RealVar { return i.d.Var() }
