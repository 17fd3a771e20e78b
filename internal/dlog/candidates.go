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

// Package dlog recovers the exponent of a group element h = m * G when
// m is known to be the encoding of one of a finite set of candidate
// messages.
package dlog

import (
	"github.com/fentec-project/expelgamal/group"
	"github.com/fentec-project/expelgamal/internal"
	"github.com/fentec-project/expelgamal/msgenc"
	"github.com/pkg/errors"
)

// FindInSet encodes the candidates in the given order and returns the
// first one whose encoding k satisfies k * G = h. If no candidate
// matches, it returns internal.ErrDecryptionFailed. Errors of the encoder
// are returned unchanged.
//
// Each candidate costs one scalar multiplication; nothing is cached
// between calls.
func FindInSet(g group.Group, enc msgenc.Encoder, h group.Point, candidates []string) (string, error) {
	for _, c := range candidates {
		k, err := enc([]byte(c))
		if err != nil {
			return "", err
		}
		if g.BaseMul(k).Equal(h) {
			return c, nil
		}
	}

	return "", errors.Wrapf(internal.ErrDecryptionFailed,
		"no match among %d candidates", len(candidates))
}
