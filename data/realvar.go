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

package data

import (
	"github.com/pkg/errors"

	"github.com/gofit-project/gofit/internal"
)

// DefaultBins is the bin count a RealVar starts with before SetBins
// is called.
const DefaultBins = 100

// RealVar is a named, bounded real variable: the domain of a density
// or a shape parameter of one. It carries a current value, a uniform
// binning over its full range, and optional named sub-ranges with
// independent binnings.
type RealVar struct {
	name  string
	title string
	min   float64
	max   float64
	val   float64
	bins  int

	ranges map[string]*Binning
}

// NewRealVar returns a variable named name with the range [min, max].
// Its value starts at the midpoint of the range.
func NewRealVar(name, title string, min, max float64) *RealVar {
	return &RealVar{
		name:   name,
		title:  title,
		min:    min,
		max:    max,
		val:    (min + max) / 2,
		bins:   DefaultBins,
		ranges: make(map[string]*Binning),
	}
}

// NewRealVarValue returns a variable with an explicit starting value.
func NewRealVarValue(name, title string, val, min, max float64) *RealVar {
	v := NewRealVar(name, title, min, max)
	v.SetVal(val)
	return v
}

// Name returns the variable's name.
func (v *RealVar) Name() string { return v.name }

// Title returns the variable's human-readable title.
func (v *RealVar) Title() string { return v.title }

// Min returns the lower bound of the full range.
func (v *RealVar) Min() float64 { return v.min }

// Max returns the upper bound of the full range.
func (v *RealVar) Max() float64 { return v.max }

// Val returns the current value.
func (v *RealVar) Val() float64 { return v.val }

// SetVal sets the current value, clamped to the full range.
func (v *RealVar) SetVal(x float64) {
	if x < v.min {
		x = v.min
	}
	if x > v.max {
		x = v.max
	}
	v.val = x
}

// SetBins sets the bin count of the full-range binning.
func (v *RealVar) SetBins(n int) {
	if n > 0 {
		v.bins = n
	}
}

// Bins returns the bin count of the full-range binning.
func (v *RealVar) Bins() int { return v.bins }

// SetRange defines (or redefines) a named sub-range. The sub-range
// must lie within the full range. Its binning starts with DefaultBins
// until SetRangeBins is called.
func (v *RealVar) SetRange(name string, lo, hi float64) error {
	if name == "" {
		return errors.Wrap(internal.MalformedRange, "named range needs a name")
	}
	if lo >= hi || lo < v.min || hi > v.max {
		return errors.Wrapf(internal.MalformedRange, "range %q = [%g, %g] outside [%g, %g]",
			name, lo, hi, v.min, v.max)
	}
	v.ranges[name] = &Binning{Lo: lo, Hi: hi, N: DefaultBins}
	return nil
}

// SetRangeBins sets the bin count of a previously defined named range.
func (v *RealVar) SetRangeBins(name string, n int) error {
	b, ok := v.ranges[name]
	if !ok {
		return errors.Wrapf(internal.MalformedRange, "unknown range %q of variable %q", name, v.name)
	}
	if n <= 0 {
		return errors.Wrapf(internal.MalformedBinning, "bin count %d for range %q", n, name)
	}
	b.N = n
	return nil
}

// Range returns the bounds of a named range, or of the full range when
// name is empty.
func (v *RealVar) Range(name string) (lo, hi float64, err error) {
	if name == "" {
		return v.min, v.max, nil
	}
	b, ok := v.ranges[name]
	if !ok {
		return 0, 0, errors.Wrapf(internal.MalformedRange, "unknown range %q of variable %q", name, v.name)
	}
	return b.Lo, b.Hi, nil
}

// GetBinning returns the binning of a named range, or the full-range
// binning when name is empty.
func (v *RealVar) GetBinning(name string) (Binning, error) {
	if name == "" {
		return Binning{Lo: v.min, Hi: v.max, N: v.bins}, nil
	}
	b, ok := v.ranges[name]
	if !ok {
		return Binning{}, errors.Wrapf(internal.MalformedRange, "unknown range %q of variable %q", name, v.name)
	}
	return *b, nil
}

// Binning is a uniform partition of [Lo, Hi] into N bins.
type Binning struct {
	Lo float64
	Hi float64
	N  int
}

// Width returns the width of one bin.
func (b Binning) Width() float64 {
	return (b.Hi - b.Lo) / float64(b.N)
}

// Index returns the index of the bin containing x, clamped to
// [0, N-1] so boundary values always land in a bin.
func (b Binning) Index(x float64) int {
	i := int((x - b.Lo) / b.Width())
	if i < 0 {
		i = 0
	}
	if i >= b.N {
		i = b.N - 1
	}
	return i
}

// Center returns the midpoint of bin i.
func (b Binning) Center(i int) float64 {
	return b.Lo + (float64(i)+0.5)*b.Width()
}

// Edges returns the lower and upper edge of bin i.
func (b Binning) Edges(i int) (float64, float64) {
	w := b.Width()
	return b.Lo + float64(i)*w, b.Lo + float64(i+1)*w
}
