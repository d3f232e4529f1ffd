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

package internal

import (
	"errors"
	"fmt"
)

var malformedStr = "is not of the proper form"

var MalformedRange = errors.New(fmt.Sprintf("variable range %s", malformedStr))
var MalformedBinning = errors.New(fmt.Sprintf("binning %s", malformedStr))
var MalformedFormula = errors.New(fmt.Sprintf("formula expression %s", malformedStr))
var MalformedDensity = errors.New(fmt.Sprintf("density %s", malformedStr))
var MalformedDataset = errors.New(fmt.Sprintf("dataset %s", malformedStr))
var MalformedOption = errors.New(fmt.Sprintf("likelihood option %s", malformedStr))
