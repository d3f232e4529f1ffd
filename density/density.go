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
	"github.com/gofit-project/gofit/internal/quadrature"
)

// NormTol is the relative tolerance of normalization integrals.
const NormTol = 1e-7

// Density is a possibly unnormalized, non-negative function of one
// domain variable. Shape parameters enter through the current values
// of their RealVars, so a density owns no data of its own.
type Density interface {
	// Name returns the density's name.
	Name() string
	// Var returns the domain variable.
	Var() *data.RealVar
	// Value evaluates the unnormalized density at x.
	Value(x float64) float64
}

// Normer is implemented by densities that can integrate themselves
// over a range more precisely (or more cheaply) than generic
// quadrature of their Value. Norm must be free of side effects.
type Normer interface {
	Norm(lo, hi float64) float64
}

// Batch is implemented by densities that can evaluate many points in
// one call, backing the batch evaluation path of likelihoods.
type Batch interface {
	ValueBatch(xs, out []float64)
}

// Norm integrates d over [lo, hi], preferring the density's own
// normalization routine when it has one.
func Norm(d Density, lo, hi float64) float64 {
	if n, ok := d.(Normer); ok {
		return n.Norm(lo, hi)
	}
	return quadrature.Integrate(d.Value, lo, hi, NormTol)
}

// ValueBatch evaluates d at every coordinate of xs into out, using the
// density's batch path when it has one. The two slices must have equal
// length.
func ValueBatch(d Density, xs, out []float64) {
	if b, ok := d.(Batch); ok {
		b.ValueBatch(xs, out)
		return
	}
	for i, x := range xs {
		out[i] = d.Value(x)
	}
}
