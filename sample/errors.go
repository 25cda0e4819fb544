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

package sample

// WeightError reports why a weight vector cannot be turned into
// multinomial probabilities.
type WeightError int

const (
	// NegativeOrNaN means at least one weight is negative or NaN.
	NegativeOrNaN WeightError = iota + 1
	// AllZero means the weights sum to exactly zero.
	AllZero
	// Overflow means a weight is infinite or their sum overflows.
	Overflow
)

func (e WeightError) Error() string {
	switch e {
	case NegativeOrNaN:
		return "one of the weights is negative or NaN"
	case AllZero:
		return "all of the weights are zero"
	case Overflow:
		return "one of the weights is infinite or the sum overflows"
	default:
		return "invalid weights"
	}
}
