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
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gofit-project/gofit/data"
	"github.com/gofit-project/gofit/internal"
	"github.com/gofit-project/gofit/msg"
)

// Formula is a density defined by a symbolic expression over the
// domain variable and optional shape parameters, e.g.
//
//	NewFormula("lin", "x", x)
//	NewFormula("gaus", "exp(-0.5*(x - mean)^2/width^2)", x, mean, width)
//
// The expression is compiled once at construction and evaluated on
// demand with the current parameter values.
type Formula struct {
	name    string
	expr    string
	x       *data.RealVar
	params  []*data.RealVar
	program *vm.Program
	env     map[string]interface{}
}

// mathFuncs are the functions available inside formula expressions.
var mathFuncs = map[string]interface{}{
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
	"pow":  math.Pow,
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"atan": math.Atan,
	"erf":  math.Erf,
}

// NewFormula compiles expression into a density of the variable x and
// the given shape parameters. Every variable referenced by the
// expression must be x or one of params.
func NewFormula(name, expression string, x *data.RealVar, params ...*data.RealVar) (*Formula, error) {
	env := make(map[string]interface{}, len(mathFuncs)+len(params)+1)
	for k, fn := range mathFuncs {
		env[k] = fn
	}
	env[x.Name()] = x.Val()
	for _, p := range params {
		env[p.Name()] = p.Val()
	}

	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, errors.Wrapf(internal.MalformedFormula, "%q: %v", expression, err)
	}

	f := &Formula{
		name:    name,
		expr:    expression,
		x:       x,
		params:  params,
		program: program,
		env:     env,
	}

	// catch undefined identifiers and non-numeric results up front
	if _, err := f.eval(x.Val()); err != nil {
		return nil, errors.Wrapf(internal.MalformedFormula, "%q: %v", expression, err)
	}
	return f, nil
}

// Name returns the density's name.
func (f *Formula) Name() string { return f.name }

// Var returns the domain variable.
func (f *Formula) Var() *data.RealVar { return f.x }

// Expression returns the source expression.
func (f *Formula) Expression() string { return f.expr }

// Value evaluates the expression at x with the current parameter
// values. Runtime evaluation failures are reported through the message
// service and yield zero.
func (f *Formula) Value(x float64) float64 {
	v, err := f.eval(x)
	if err != nil {
		msg.Logger().Error("formula evaluation failed",
			zap.String("formula", f.name), zap.Error(err))
		return 0
	}
	return v
}

// ValueBatch evaluates the expression at every coordinate of xs.
func (f *Formula) ValueBatch(xs, out []float64) {
	for i, x := range xs {
		out[i] = f.Value(x)
	}
}

func (f *Formula) eval(x float64) (float64, error) {
	f.env[f.x.Name()] = x
	for _, p := range f.params {
		f.env[p.Name()] = p.Val()
	}

	out, err := expr.Run(f.program, f.env)
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, errors.Errorf("expression result %v is not numeric", out)
	}
}
