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

package internal

import (
	"errors"
	"fmt"
)

var malformedStr = "is not of the proper form"

// ErrInvalidEncoding is returned when a byte string does not hold a
// canonical encoding of a scalar, a group element, a key or a ciphertext.
var ErrInvalidEncoding = errors.New(fmt.Sprintf("encoding %s", malformedStr))

// ErrDecryptionFailed is returned when none of the candidate plaintexts
// matches the decrypted group element.
var ErrDecryptionFailed = errors.New("decryption failed")

// ErrEntropySource is returned when the random source could not deliver
// the requested bytes.
var ErrEntropySource = errors.New("entropy source failure")

// KindError tags an underlying error with one of the error kinds above,
// so that both the kind and the original error can be inspected with
// errors.Is and errors.As.
type KindError struct {
	Kind error
	Err  error
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *KindError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *KindError) Cause() error {
	return e.Err
}

func (e *KindError) Is(target error) bool {
	return target == e.Kind
}

// Entropy marks err as a failure of the random source.
func Entropy(err error) error {
	if err == nil {
		return nil
	}
	return &KindError{Kind: ErrEntropySource, Err: err}
}
