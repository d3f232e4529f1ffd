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

// Package density includes probability density objects over a bounded
// real variable.
//
// Package density provides the Density interface along with different
// implementations of this interface: densities built from a symbolic
// expression, analytic densities, weighted mixtures, and a
// bin-sampling adapter that replaces point evaluation by bin-averaged
// evaluation.
//
// Densities are unnormalized; normalization integrals are computed on
// demand via the Norm function and wrapped into scalar objectives by
// Integral.
package density
