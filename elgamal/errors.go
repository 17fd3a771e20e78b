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

import "github.com/fentec-project/expelgamal/internal"

// Error kinds returned by this package. Use errors.Is to test for them.
var (
	// ErrInvalidEncoding is returned when decoding keys or ciphertexts
	// of the wrong length or not describing valid scalars or points.
	ErrInvalidEncoding = internal.ErrInvalidEncoding
	// ErrDecryptionFailed is returned by Decrypt when no candidate
	// matches the ciphertext.
	ErrDecryptionFailed = internal.ErrDecryptionFailed
	// ErrEntropySource is returned when the random source fails during
	// key generation or randomness sampling.
	ErrEntropySource = internal.ErrEntropySource
)
