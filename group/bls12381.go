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

package group

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/fentec-project/expelgamal/internal"
	"github.com/pkg/errors"
)

// BLS12381PointLen is the length of a compressed BLS12-381 G1 point.
const BLS12381PointLen = bls12381.SizeOfG1AffineCompressed

type bls12381Group struct {
	order *big.Int
	gen   bls12381.G1Affine
}

// BLS12381 returns the G1 group of the pairing-friendly curve BLS12-381.
// Points are encoded in the standard 48-byte compressed form.
func BLS12381() Group {
	_, _, g1, _ := bls12381.Generators()
	return &bls12381Group{
		order: fr.Modulus(),
		gen:   g1,
	}
}

func (g *bls12381Group) Name() string {
	return "bls12381"
}

func (g *bls12381Group) Order() *big.Int {
	return new(big.Int).Set(g.order)
}

func (g *bls12381Group) PointLen() int {
	return BLS12381PointLen
}

func (g *bls12381Group) Generator() Point {
	return &bls12381Point{p: g.gen}
}

func (g *bls12381Group) Identity() Point {
	return &bls12381Point{}
}

func (g *bls12381Group) BaseMul(k *big.Int) Point {
	return g.Generator().Mul(k)
}

func (g *bls12381Group) DecodePoint(b []byte) (Point, error) {
	if len(b) != BLS12381PointLen {
		return nil, errors.Wrapf(internal.ErrInvalidEncoding,
			"bls12381: expected %d bytes, got %d", BLS12381PointLen, len(b))
	}
	// SetBytes checks that the point is on the curve and in the
	// prime-order subgroup.
	p := new(bls12381Point)
	if _, err := p.p.SetBytes(b); err != nil {
		return nil, errors.Wrapf(internal.ErrInvalidEncoding, "bls12381: %v", err)
	}
	if enc := p.p.Bytes(); !bytes.Equal(enc[:], b) {
		return nil, errors.Wrap(internal.ErrInvalidEncoding, "bls12381: non-canonical point encoding")
	}
	return p, nil
}

// bls12381Point wraps a point of BLS12-381 G1 in affine coordinates.
// The zero value is the point at infinity.
type bls12381Point struct {
	p bls12381.G1Affine
}

func (p *bls12381Point) jac() *bls12381.G1Jac {
	return new(bls12381.G1Jac).FromAffine(&p.p)
}

func fromJac(j *bls12381.G1Jac) *bls12381Point {
	ret := new(bls12381Point)
	ret.p.FromJacobian(j)
	return ret
}

// asBLS12381 panics with a descriptive message if q belongs to another
// group; mixing groups is a programming error.
func asBLS12381(q Point) *bls12381Point {
	p, ok := q.(*bls12381Point)
	if !ok {
		panic(fmt.Sprintf("group: bls12381 point combined with %T", q))
	}
	return p
}

func (p *bls12381Point) Add(q Point) Point {
	j := p.jac()
	j.AddAssign(asBLS12381(q).jac())
	return fromJac(j)
}

func (p *bls12381Point) Sub(q Point) Point {
	j := p.jac()
	j.SubAssign(asBLS12381(q).jac())
	return fromJac(j)
}

func (p *bls12381Point) Mul(k *big.Int) Point {
	s := new(big.Int).Mod(k, fr.Modulus())
	j := new(bls12381.G1Jac).ScalarMultiplication(p.jac(), s)
	return fromJac(j)
}

func (p *bls12381Point) Equal(q Point) bool {
	other, ok := q.(*bls12381Point)
	if !ok {
		return false
	}
	return p.p.Equal(&other.p)
}

func (p *bls12381Point) IsIdentity() bool {
	return p.p.IsInfinity()
}

func (p *bls12381Point) Bytes() []byte {
	b := p.p.Bytes()
	return b[:]
}

func (p *bls12381Point) String() string {
	return hex.EncodeToString(p.Bytes())
}
