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

package elgamal

import (
	"io"
	"math/big"

	"github.com/fentec-project/expelgamal/group"
	"github.com/fentec-project/expelgamal/internal"
	"github.com/fentec-project/expelgamal/internal/dlog"
	"github.com/fentec-project/expelgamal/internal/keygen"
	"github.com/fentec-project/expelgamal/msgenc"
	"github.com/fentec-project/expelgamal/sample"
	"github.com/pkg/errors"
)

// ElGamal represents an exponential ElGamal scheme over Group, with
// messages lifted into the exponent by Encoder.
// An ElGamal value holds no mutable state and may be shared between
// goroutines.
type ElGamal struct {
	Group   group.Group
	Encoder msgenc.Encoder
}

// New configures the scheme over BLS12-381 G1 with the BBS SHA-256
// message encoding.
func New() *ElGamal {
	return NewWith(group.BLS12381(), msgenc.BBSSha256())
}

// NewWith configures the scheme over group g with message encoder enc.
// The same group and encoder must be used for encryption and decryption.
func NewWith(g group.Group, enc msgenc.Encoder) *ElGamal {
	return &ElGamal{
		Group:   g,
		Encoder: enc,
	}
}

// GenerateKeys generates a key pair using the bytes of rng. If rng fails,
// an error wrapping ErrEntropySource and the reader's error is returned.
func (e *ElGamal) GenerateKeys(rng io.Reader) (*PublicKey, *SecretKey, error) {
	key, err := keygen.NewElGamal(e.Group, rng)
	if err != nil {
		return nil, nil, err
	}

	return &PublicKey{Y: key.Y}, &SecretKey{X: key.X}, nil
}

// SampleRandomness draws the randomness r for a single encryption,
// uniformly from [1, order). A value must never be used for more than
// one encryption under the same public key.
func (e *ElGamal) SampleRandomness(rng io.Reader) (*big.Int, error) {
	return sample.NewUniformRange(big.NewInt(1), e.Group.Order()).SampleFrom(rng)
}

// EncodeMessage maps msg to the scalar that Encrypt expects.
func (e *ElGamal) EncodeMessage(msg string) (*big.Int, error) {
	return e.Encoder([]byte(msg))
}

// Encrypt encrypts the encoded message m under public key pk with
// randomness r:
//
//	C1 = r * G
//	C2 = r * Y + m * G
func (e *ElGamal) Encrypt(pk *PublicKey, m, r *big.Int) *Ciphertext {
	c1 := e.Group.BaseMul(r)
	c2 := pk.Y.Mul(r).Add(e.Group.BaseMul(m))

	return &Ciphertext{C1: c1, C2: c2}
}

// Decrypt computes M = C2 - X * C1 and returns the first of candidates
// whose encoding k satisfies k * G = M. If none does, ErrDecryptionFailed
// is returned; this is also the outcome when sk does not belong to the
// public key the ciphertext was encrypted under.
func (e *ElGamal) Decrypt(sk *SecretKey, c *Ciphertext, candidates []string) (string, error) {
	m := c.C2.Sub(c.C1.Mul(sk.X))

	return dlog.FindInSet(e.Group, e.Encoder, m, candidates)
}

// Add returns a ciphertext of the sum of the messages encrypted in a
// and b, under the sum of their randomness.
func (e *ElGamal) Add(a, b *Ciphertext) *Ciphertext {
	return &Ciphertext{
		C1: a.C1.Add(b.C1),
		C2: a.C2.Add(b.C2),
	}
}

// Rerandomize returns a fresh-looking encryption of the message in c
// under pk by adding an encryption of zero with randomness r.
func (e *ElGamal) Rerandomize(pk *PublicKey, c *Ciphertext, r *big.Int) *Ciphertext {
	return e.Add(c, e.Encrypt(pk, big.NewInt(0), r))
}

// PublicKeyFromBytes decodes a public key. It fails with
// ErrInvalidEncoding if b has the wrong length, does not encode a point
// of the group, or encodes the identity element.
//
// The identity is a canonical point encoding, but it is rejected on
// purpose: it is the public key of the zero scalar, which GenerateKeys
// never produces and under which C2 reveals m * G directly.
func (e *ElGamal) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	y, err := e.Group.DecodePoint(b)
	if err != nil {
		return nil, errors.Wrap(err, "public key")
	}
	if y.IsIdentity() {
		return nil, errors.Wrap(internal.ErrInvalidEncoding, "public key: identity element")
	}

	return &PublicKey{Y: y}, nil
}

// SecretKeyFromBytes decodes a secret key. It fails with
// ErrInvalidEncoding if b is not 32 bytes long or does not encode a
// scalar in [1, order).
//
// Zero is a reduced scalar, but it is rejected on purpose, matching
// PublicKeyFromBytes: GenerateKeys draws keys from [1, order).
func (e *ElGamal) SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	x, err := group.DecodeScalar(e.Group, b)
	if err != nil {
		return nil, errors.Wrap(err, "secret key")
	}
	if x.Sign() == 0 {
		return nil, errors.Wrap(internal.ErrInvalidEncoding, "secret key: zero scalar")
	}

	return &SecretKey{X: x}, nil
}

// CiphertextFromBytes decodes a ciphertext consisting of two encoded
// points. It fails with ErrInvalidEncoding if b has the wrong length or
// either half is not a valid point; the error names the failing half.
func (e *ElGamal) CiphertextFromBytes(b []byte) (*Ciphertext, error) {
	n := e.Group.PointLen()
	if len(b) != 2*n {
		return nil, errors.Wrapf(internal.ErrInvalidEncoding,
			"ciphertext: expected %d bytes, got %d", 2*n, len(b))
	}

	c1, err := e.Group.DecodePoint(b[:n])
	if err != nil {
		return nil, errors.Wrap(err, "ciphertext c1")
	}
	c2, err := e.Group.DecodePoint(b[n:])
	if err != nil {
		return nil, errors.Wrap(err, "ciphertext c2")
	}

	return &Ciphertext{C1: c1, C2: c2}, nil
}
