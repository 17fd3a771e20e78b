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

// Package sample includes samplers for drawing uniformly random
// *big.Int values, used for secret keys and encryption randomness.
//
// Samplers read their randomness from a caller-supplied io.Reader, usually
// crypto/rand.Reader. For reproducible runs in tests a DeterministicReader
// expands a fixed seed with ChaCha20.
package sample
