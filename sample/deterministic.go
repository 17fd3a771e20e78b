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
	"golang.org/x/crypto/chacha20"
)

// DeterministicReader is an io.Reader producing the ChaCha20 keystream
// for a fixed 32-byte seed. Two readers with the same seed yield the same
// byte sequence, which makes key generation and sampling reproducible.
// It must never be used with a seed that is not itself secret and random
// outside of tests.
type DeterministicReader struct {
	c *chacha20.Cipher
}

// NewDeterministicReader returns a DeterministicReader seeded with seed.
func NewDeterministicReader(seed [32]byte) *DeterministicReader {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// only possible for wrong key or nonce sizes
		panic(err)
	}
	return &DeterministicReader{c: c}
}

// Read fills p with the next len(p) bytes of the keystream.
func (r *DeterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.c.XORKeyStream(p, p)
	return len(p), nil
}
