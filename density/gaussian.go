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
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gofit-project/gofit/data"
)

// Gaussian is an analytic normal density with mean and sigma given by
// shape-parameter variables.
type Gaussian struct {
	name  string
	x     *data.RealVar
	mean  *data.RealVar
	sigma *data.RealVar
}

// NewGaussian returns a Gaussian density of x with the given mean and
// sigma parameters.
func NewGaussian(name string, x, mean, sigma *data.RealVar) *Gaussian {
	return &Gaussian{name: name, x: x, mean: mean, sigma: sigma}
}

// Name returns the density's name.
func (g *Gaussian) Name() string { return g.name }

// Var returns the domain variable.
func (g *Gaussian) Var() *data.RealVar { return g.x }

// Value evaluates the normal density at x for the current mean and
// sigma. The value is normalized over the whole real line, not over
// the variable's range.
func (g *Gaussian) Value(x float64) float64 {
	dist := distuv.Normal{Mu: g.mean.Val(), Sigma: g.sigma.Val()}
	return dist.Prob(x)
}

// ValueBatch evaluates the density at every coordinate of xs.
func (g *Gaussian) ValueBatch(xs, out []float64) {
	dist := distuv.Normal{Mu: g.mean.Val(), Sigma: g.sigma.Val()}
	for i, x := range xs {
		out[i] = dist.Prob(x)
	}
}
