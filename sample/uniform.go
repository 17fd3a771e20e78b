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

import (
	"io"
	"math/big"

	"github.com/fentec-project/expelgamal/internal"
	"github.com/pkg/errors"
)

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min *big.Int
	max *big.Int
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(min, max *big.Int) *UniformRange {
	return &UniformRange{
		min: min,
		max: max,
	}
}

// NewUniform returns a sampler of values from the interval [0, max).
func NewUniform(max *big.Int) *UniformRange {
	return NewUniformRange(big.NewInt(0), max)
}

// SampleFrom draws a value from [min, max) using the bytes of rng.
// A failing rng is reported as internal.ErrEntropySource, wrapping the
// reader's own error.
func (u *UniformRange) SampleFrom(rng io.Reader) (*big.Int, error) {
	width := new(big.Int).Sub(u.max, u.min)
	if width.Sign() <= 0 {
		return nil, errors.Errorf("empty sampling interval [%v, %v)", u.min, u.max)
	}
	// rejection sampling on the smallest number of bits covering width
	bitLen := width.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	over := uint(8*len(buf) - bitLen)
	v := new(big.Int)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, internal.Entropy(err)
		}
		buf[0] &= 0xff >> over
		v.SetBytes(buf)
		if v.Cmp(width) < 0 {
			return v.Add(v, u.min), nil
		}
	}
}
