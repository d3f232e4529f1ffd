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
	"github.com/pkg/errors"

	"github.com/gofit-project/gofit/data"
	"github.com/gofit-project/gofit/internal"
)

// Add is a two-component mixture density
//
//	f·a(x)/Na + (1−f)·b(x)/Nb
//
// where the component normalizations Na, Nb are taken over the
// coefficient-normalization range, fixed with FixCoefNormalization
// (full range of the domain variable by default).
type Add struct {
	name string
	x    *data.RealVar
	a, b Density
	frac *data.RealVar

	coefRange string
	na, nb    float64
	normValid bool
}

// NewAdd returns the mixture f·a + (1−f)·b. Both components must be
// densities of the same domain variable.
func NewAdd(name string, a, b Density, frac *data.RealVar) (*Add, error) {
	if a.Var() != b.Var() {
		return nil, errors.Wrapf(internal.MalformedDensity,
			"mixture %q components observe different variables %q and %q",
			name, a.Var().Name(), b.Var().Name())
	}
	return &Add{name: name, x: a.Var(), a: a, b: b, frac: frac}, nil
}

// Name returns the density's name.
func (p *Add) Name() string { return p.name }

// Var returns the domain variable.
func (p *Add) Var() *data.RealVar { return p.x }

// FixCoefNormalization fixes the range the component normalizations
// are computed over. An empty name selects the variable's full range.
// Cached normalizations are discarded.
func (p *Add) FixCoefNormalization(rangeName string) error {
	if _, _, err := p.x.Range(rangeName); err != nil {
		return err
	}
	p.coefRange = rangeName
	p.normValid = false
	return nil
}

// Value evaluates the mixture at x with the current mixing fraction.
// Component normalizations are cached after the first evaluation; they
// do not track subsequent shape-parameter changes.
func (p *Add) Value(x float64) float64 {
	p.ensureNorms()
	f := p.frac.Val()
	return f*p.a.Value(x)/p.na + (1-f)*p.b.Value(x)/p.nb
}

// ValueBatch evaluates the mixture at every coordinate of xs.
func (p *Add) ValueBatch(xs, out []float64) {
	p.ensureNorms()
	f := p.frac.Val()

	tmp := make([]float64, len(xs))
	ValueBatch(p.a, xs, out)
	ValueBatch(p.b, xs, tmp)
	for i := range out {
		out[i] = f*out[i]/p.na + (1-f)*tmp[i]/p.nb
	}
}

func (p *Add) ensureNorms() {
	if p.normValid {
		return
	}
	lo, hi, _ := p.x.Range(p.coefRange)
	p.na = Norm(p.a, lo, hi)
	p.nb = Norm(p.b, lo, hi)
	p.normValid = true
}
