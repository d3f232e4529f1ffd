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

// Package quadrature provides one-dimensional numeric integration with
// a relative tolerance, used for density normalization and bin
// averaging.
package quadrature

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/gofit-project/gofit/msg"
)

const (
	// initial number of Gauss-Legendre nodes
	startNodes = 5
	// node count at which refinement gives up
	maxNodes = 1280
)

// Integrate computes the integral of f over [lo, hi] to the given
// relative tolerance. It evaluates fixed-order Gauss-Legendre rules of
// doubling order until two consecutive estimates agree within tol.
// Polynomials of low degree are therefore integrated exactly by the
// first rule pair. If the estimates never converge, the last one is
// returned and a warning is emitted.
func Integrate(f func(float64) float64, lo, hi, tol float64) float64 {
	if lo == hi {
		return 0
	}
	if lo > hi {
		return -Integrate(f, hi, lo, tol)
	}

	est := quad.Fixed(f, lo, hi, startNodes, nil, 0)
	for n := 2 * startNodes; n <= maxNodes; n *= 2 {
		next := quad.Fixed(f, lo, hi, n, nil, 0)
		if converged(est, next, tol) {
			return next
		}
		est = next
	}

	msg.Logger().Warn("quadrature did not converge",
		zap.Float64("lo", lo), zap.Float64("hi", hi), zap.Float64("tol", tol))
	return est
}

func converged(prev, next, tol float64) bool {
	scale := math.Max(math.Abs(next), math.SmallestNonzeroFloat64)
	return math.Abs(next-prev) <= tol*scale
}
