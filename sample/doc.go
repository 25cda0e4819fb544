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

// Package sample includes samplers for drawing random count vectors
// from the multinomial distribution.
//
// The central type is Multinomial, which distributes a fixed number of
// draws over a fixed number of categories according to a vector of
// non-negative weights. Sampling follows the conditional binomial
// method described by C. S. Davis in "The computer generation of
// multinomial random variates" (Computational Statistics & Data
// Analysis 16, 1993): each category receives a binomial share of the
// draws not yet allocated, and the last category takes the rest.
//
// Samplers never own their randomness. Every Sample call takes a
// rand.Source, which can be one of the sources provided here
// (seeded MT19937 or SplitMix64, the system CSPRNG, or a keyed
// salsa20 stream) or any other implementation of math/rand/v2.Source.
// Samplers are immutable and can be shared between goroutines, while
// most sources cannot.
package sample
