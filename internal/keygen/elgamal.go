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

package keygen

import (
	"io"
	"math/big"

	"github.com/fentec-project/expelgamal/group"
	"github.com/fentec-project/expelgamal/sample"
)

// ElGamal holds an ElGamal key pair over an elliptic curve group:
// a secret scalar X and the public point Y = X * G.
type ElGamal struct {
	X *big.Int    // secret key
	Y group.Point // public key
	G group.Group // group with fixed generator
}

// NewElGamal draws the secret key uniformly from [1, order) using the
// bytes of rng and derives the public key. Errors of rng are returned
// as internal.ErrEntropySource.
func NewElGamal(g group.Group, rng io.Reader) (*ElGamal, error) {
	x, err := sample.NewUniformRange(big.NewInt(1), g.Order()).SampleFrom(rng)
	if err != nil {
		return nil, err
	}

	return &ElGamal{
		X: x,
		Y: g.BaseMul(x),
		G: g,
	}, nil
}
