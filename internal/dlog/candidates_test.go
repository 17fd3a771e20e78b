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

package dlog

import (
	"math/big"
	"testing"

	"github.com/fentec-project/expelgamal/group"
	"github.com/fentec-project/expelgamal/internal"
	"github.com/fentec-project/expelgamal/msgenc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lengthEncoder maps a message to its length, which makes collisions
// easy to construct.
func lengthEncoder(msg []byte) (*big.Int, error) {
	return big.NewInt(int64(len(msg))), nil
}

func TestFindInSet(t *testing.T) {
	g := group.BLS12381()
	enc := msgenc.BBSSha256()

	k, err := enc([]byte("blue"))
	require.NoError(t, err)
	h := g.BaseMul(k)

	m, err := FindInSet(g, enc, h, []string{"red", "green", "blue"})
	require.NoError(t, err)
	assert.Equal(t, "blue", m)

	_, err = FindInSet(g, enc, h, []string{"red", "green"})
	assert.True(t, errors.Is(err, internal.ErrDecryptionFailed))

	_, err = FindInSet(g, enc, h, nil)
	assert.True(t, errors.Is(err, internal.ErrDecryptionFailed))
}

func TestFindInSet_FirstMatchWins(t *testing.T) {
	g := group.BN256()
	h := g.BaseMul(big.NewInt(3))

	m, err := FindInSet(g, lengthEncoder, h, []string{"a", "abc", "xyz"})
	require.NoError(t, err)
	assert.Equal(t, "abc", m)
}

func TestFindInSet_EncoderError(t *testing.T) {
	encErr := errors.New("encoder broken")
	enc := func([]byte) (*big.Int, error) {
		return nil, encErr
	}
	g := group.BLS12381()

	_, err := FindInSet(g, enc, g.Generator(), []string{"a"})
	assert.Equal(t, encErr, err)
}
