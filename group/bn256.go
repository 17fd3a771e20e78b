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

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/expelgamal/internal"
	"github.com/pkg/errors"
)

// BN256PointLen is the length of a marshaled BN256 G1 point.
const BN256PointLen = 64

type bn256Group struct{}

// BN256 returns the G1 group of the pairing-friendly curve BN256.
// G1 has cofactor 1, so every point on the curve is in the group.
// Points are encoded as 64 bytes (both affine coordinates).
func BN256() Group {
	return bn256Group{}
}

func (bn256Group) Name() string {
	return "bn256"
}

func (bn256Group) Order() *big.Int {
	return new(big.Int).Set(bn256.Order)
}

func (bn256Group) PointLen() int {
	return BN256PointLen
}

func (g bn256Group) Generator() Point {
	return g.BaseMul(big.NewInt(1))
}

func (g bn256Group) Identity() Point {
	return g.BaseMul(big.NewInt(0))
}

func (bn256Group) BaseMul(k *big.Int) Point {
	s := new(big.Int).Mod(k, bn256.Order)
	return &bn256Point{p: new(bn256.G1).ScalarBaseMult(s)}
}

func (bn256Group) DecodePoint(b []byte) (Point, error) {
	if len(b) != BN256PointLen {
		return nil, errors.Wrapf(internal.ErrInvalidEncoding,
			"bn256: expected %d bytes, got %d", BN256PointLen, len(b))
	}
	p := new(bn256.G1)
	if _, err := p.Unmarshal(b); err != nil {
		return nil, errors.Wrapf(internal.ErrInvalidEncoding, "bn256: %v", err)
	}
	if !bytes.Equal(p.Marshal(), b) {
		return nil, errors.Wrap(internal.ErrInvalidEncoding, "bn256: non-canonical point encoding")
	}
	return &bn256Point{p: p}, nil
}

type bn256Point struct {
	p *bn256.G1
}

// asBN256 panics with a descriptive message if q belongs to another
// group; mixing groups is a programming error.
func asBN256(q Point) *bn256Point {
	p, ok := q.(*bn256Point)
	if !ok {
		panic(fmt.Sprintf("group: bn256 point combined with %T", q))
	}
	return p
}

func (p *bn256Point) Add(q Point) Point {
	return &bn256Point{p: new(bn256.G1).Add(p.p, asBN256(q).p)}
}

func (p *bn256Point) Sub(q Point) Point {
	neg := new(bn256.G1).Neg(asBN256(q).p)
	return &bn256Point{p: new(bn256.G1).Add(p.p, neg)}
}

func (p *bn256Point) Mul(k *big.Int) Point {
	s := new(big.Int).Mod(k, bn256.Order)
	return &bn256Point{p: new(bn256.G1).ScalarMult(p.p, s)}
}

func (p *bn256Point) Equal(q Point) bool {
	other, ok := q.(*bn256Point)
	if !ok {
		return false
	}
	return bytes.Equal(p.Bytes(), other.Bytes())
}

func (p *bn256Point) IsIdentity() bool {
	return p.Equal(BN256().Identity())
}

// Bytes marshals a copy of the point, since marshaling normalizes
// the receiver's internal coordinates.
func (p *bn256Point) Bytes() []byte {
	return new(bn256.G1).Set(p.p).Marshal()
}

func (p *bn256Point) String() string {
	return hex.EncodeToString(p.Bytes())
}
