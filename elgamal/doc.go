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

// Package elgamal implements exponential ElGamal encryption over a
// prime-order elliptic curve group, with decryption restricted to an
// explicit set of candidate plaintexts.
//
// A message is first encoded as a scalar m (see package msgenc) and
// encrypted under a public key pk = sk * G with fresh randomness r as
//
//	C1 = r * G
//	C2 = r * pk + m * G
//
// Decryption computes C2 - sk * C1 = m * G. Recovering m from m * G is a
// discrete logarithm problem, so instead the decryptor supplies the
// finite set of plaintexts the message may be, and the first candidate
// whose encoding matches is returned. Decryption with a candidate set that
// does not contain the message, and decryption with a wrong secret key,
// both fail with ErrDecryptionFailed and cannot be told apart.
//
// The randomness r must be sampled anew (SampleRandomness) for every
// encryption. Encrypting two messages under the same key with the same r
// reveals the difference of their encodings to anyone holding both
// ciphertexts.
//
// By default the scheme operates in the G1 group of BLS12-381, where keys
// and ciphertexts have canonical encodings of 48 bytes (public key),
// 32 bytes (secret key) and 96 bytes (ciphertext).
package elgamal
