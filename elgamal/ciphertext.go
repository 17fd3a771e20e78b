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
	"fmt"

	"github.com/fentec-project/expelgamal/group"
)

// Ciphertext represents an ElGamal ciphertext (C1, C2) with
// C1 = r * G and C2 = r * Y + m * G.
// Use (*ElGamal).CiphertextFromBytes to decode the output of Bytes.
type Ciphertext struct {
	C1 group.Point
	C2 group.Point
}

// Bytes returns the encoding of C1 followed by the encoding of C2.
func (c *Ciphertext) Bytes() []byte {
	c1 := c.C1.Bytes()
	c2 := c.C2.Bytes()
	ret := make([]byte, 0, len(c1)+len(c2))
	ret = append(ret, c1...)
	return append(ret, c2...)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// Equal reports whether both components of c and other are equal.
func (c *Ciphertext) Equal(other *Ciphertext) bool {
	return c.C1.Equal(other.C1) && c.C2.Equal(other.C2)
}

func (c *Ciphertext) String() string {
	return fmt.Sprintf("(%s, %s)", c.C1, c.C2)
}
