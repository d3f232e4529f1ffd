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

package quadrature_test

import (
	"math"
	"testing"

	"github.com/gofit-project/gofit/internal/quadrature"
	"github.com/stretchr/testify/assert"
)

func TestQuadrature_Linear(t *testing.T) {
	// integral of x over [0.1, 5.1] is (5.1^2 - 0.1^2)/2 = 13
	got := quadrature.Integrate(func(x float64) float64 { return x }, 0.1, 5.1, 1e-3)
	assert.InDelta(t, 13.0, got, 1e-12)
}

func TestQuadrature_Cubic(t *testing.T) {
	// integral of x^3 over [0, 2] is 4
	got := quadrature.Integrate(func(x float64) float64 { return x * x * x }, 0, 2, 1e-6)
	assert.InDelta(t, 4.0, got, 1e-10)
}

func TestQuadrature_Gaussian(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-0.5 * x * x) }
	// integral over [-5, 5] is close to sqrt(2*pi)
	got := quadrature.Integrate(f, -5, 5, 1e-9)
	assert.InEpsilon(t, math.Sqrt(2*math.Pi), got, 1e-5)
}

func TestQuadrature_EmptyInterval(t *testing.T) {
	got := quadrature.Integrate(func(x float64) float64 { return x }, 2, 2, 1e-3)
	assert.Zero(t, got)
}

func TestQuadrature_ReversedInterval(t *testing.T) {
	got := quadrature.Integrate(func(x float64) float64 { return x }, 5.1, 0.1, 1e-3)
	assert.InDelta(t, -13.0, got, 1e-12)
}
