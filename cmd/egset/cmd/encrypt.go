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

package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEncryptCmd(opts *options) *cobra.Command {
	var pubPath, message string

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message under a public key",
		Long: `Encrypt a message under the public key read from --pub and print the
hex encoded ciphertext. Every invocation uses fresh randomness.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pubPath == "" {
				return errors.New("--pub is required")
			}
			e, err := opts.scheme()
			if err != nil {
				return err
			}
			b, err := readHex(pubPath)
			if err != nil {
				return err
			}
			pk, err := e.PublicKeyFromBytes(b)
			if err != nil {
				return err
			}

			m, err := e.EncodeMessage(message)
			if err != nil {
				return err
			}
			r, err := e.SampleRandomness(rand.Reader)
			if err != nil {
				return errors.Wrap(err, "error during randomness sampling")
			}
			c := e.Encrypt(pk, m, r)
			opts.log.WithField("message_length", len(message)).Debug("Message encrypted")

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(c.Bytes()))
			return nil
		},
	}

	cmd.Flags().StringVar(&pubPath, "pub", "", "File holding the hex encoded public key.")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message to encrypt.")
	return cmd
}

func readHex(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", path)
	}
	return decodeHex(string(raw))
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex")
	}
	return b, nil
}
