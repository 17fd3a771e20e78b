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

// Package msgenc maps arbitrary byte strings to scalars, lifting
// plaintexts into the exponent for exponential ElGamal.
//
// An Encoder must be deterministic: the same instance (or configuration)
// has to be used by the encrypting and by the decrypting party, since
// decryption compares encodings of candidate plaintexts with the
// decrypted group element.
//
// The encoders provided here follow the map_to_scalar_as_hash operation
// of the BBS signature scheme: the message is expanded with
// expand_message_xmd (SHA-256) or expand_message_xof (SHAKE-256) from
// RFC 9380 into 48 uniform bytes, which are reduced modulo the group
// order.
package msgenc

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Encoder maps a message to a scalar.
type Encoder func(msg []byte) (*big.Int, error)

const (
	apiSuffix = "H2G_HM2S_MAP_MSG_TO_SCALAR_AS_HASH_"

	// BBSSha256DST is the domain separation tag of BBSSha256.
	BBSSha256DST = "BBS_BLS12381G1_XMD:SHA-256_SSWU_RO_" + apiSuffix
	// BBSShake256DST is the domain separation tag of BBSShake256.
	BBSShake256DST = "BBS_BLS12381G1_XOF:SHAKE-256_SSWU_RO_" + apiSuffix
)

// expandLen is the number of uniform bytes hashed per scalar,
// ceil((ceil(log2(r)) + 128) / 8) for a 255-bit order r.
const expandLen = 48

// BBSSha256 returns the encoder of the BBS ciphersuite
// BLS12-381-SHA-256. Scalars are reduced modulo the BLS12-381 group order.
func BBSSha256() Encoder {
	dst := []byte(BBSSha256DST)
	return func(msg []byte) (*big.Int, error) {
		els, err := fr.Hash(msg, dst, 1)
		if err != nil {
			return nil, errors.Wrap(err, "error while hashing message to scalar")
		}
		return els[0].BigInt(new(big.Int)), nil
	}
}

// BBSShake256 returns the encoder of the BBS ciphersuite
// BLS12-381-SHAKE-256. Scalars are reduced modulo the BLS12-381 group order.
func BBSShake256() Encoder {
	return XOF(fr.Modulus(), []byte(BBSShake256DST))
}

// XOF returns an encoder that expands the message with SHAKE-256 under
// the domain separation tag dst and reduces the result modulo order.
func XOF(order *big.Int, dst []byte) Encoder {
	order = new(big.Int).Set(order)
	dst = append([]byte{}, dst...)
	return func(msg []byte) (*big.Int, error) {
		uniform, err := expandMessageXOF(msg, dst, expandLen)
		if err != nil {
			return nil, err
		}
		k := new(big.Int).SetBytes(uniform)
		return k.Mod(k, order), nil
	}
}

// expandMessageXOF implements expand_message_xof from RFC 9380,
// section 5.3.2, with SHAKE-256.
func expandMessageXOF(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > 255 {
		return nil, errors.Errorf("domain separation tag too long: %d bytes", len(dst))
	}
	if lenInBytes > 0xffff {
		return nil, errors.Errorf("requested output too long: %d bytes", lenInBytes)
	}

	h := sha3.NewShake256()
	_, _ = h.Write(msg)
	_, _ = h.Write([]byte{byte(lenInBytes >> 8), byte(lenInBytes)})
	_, _ = h.Write(dst)
	_, _ = h.Write([]byte{byte(len(dst))})

	out := make([]byte, lenInBytes)
	_, _ = h.Read(out)
	return out, nil
}
