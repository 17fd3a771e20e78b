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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newKeygenCmd(opts *options) *cobra.Command {
	var out, seed string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Long: `Generate an ElGamal key pair and write the hex encoded public and
secret keys to <out>.pub and <out>.sec.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			e, err := opts.scheme()
			if err != nil {
				return err
			}
			rng, err := opts.keyRandom(seed)
			if err != nil {
				return err
			}

			pk, sk, err := e.GenerateKeys(rng)
			if err != nil {
				return errors.Wrap(err, "error during key generation")
			}
			defer sk.Zeroize()

			if err := writeHex(out+".pub", pk.Bytes(), 0644); err != nil {
				return err
			}
			if err := writeHex(out+".sec", sk.Bytes(), 0600); err != nil {
				return err
			}
			opts.log.WithFields(logrus.Fields{
				"public": out + ".pub",
				"secret": out + ".sec",
			}).Info("Generated key pair")

			fmt.Fprintln(cmd.OutOrStdout(), pk)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Path prefix of the key files.")
	cmd.Flags().StringVar(&seed, "seed", "", "Hex encoded 32-byte seed for reproducible key generation. Testing only.")
	return cmd
}

func writeHex(path string, b []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, []byte(hex.EncodeToString(b)+"\n"), perm); err != nil {
		return errors.Wrapf(err, "error writing %s", path)
	}
	return nil
}
