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
	"fmt"
	"os"

	"github.com/fentec-project/expelgamal/elgamal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// candidateFile is the YAML layout of a candidate list. A plain YAML
// sequence of strings is accepted as well.
type candidateFile struct {
	Candidates []string `yaml:"candidates"`
}

func newDecryptCmd(opts *options) *cobra.Command {
	var secPath, ciphertext, candidatesPath string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext against a list of candidate messages",
		Long: `Decrypt the hex encoded ciphertext with the secret key read from --sec
and print the first candidate message from --candidates that matches.

The candidates file is YAML, either a sequence of strings or a mapping with
a "candidates" sequence. The command fails if no candidate matches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secPath == "" || ciphertext == "" || candidatesPath == "" {
				return errors.New("--sec, --ciphertext and --candidates are required")
			}
			e, err := opts.scheme()
			if err != nil {
				return err
			}

			b, err := readHex(secPath)
			if err != nil {
				return err
			}
			sk, err := e.SecretKeyFromBytes(b)
			if err != nil {
				return err
			}
			defer sk.Zeroize()

			b, err = decodeHex(ciphertext)
			if err != nil {
				return err
			}
			c, err := e.CiphertextFromBytes(b)
			if err != nil {
				return err
			}

			candidates, err := readCandidates(candidatesPath)
			if err != nil {
				return err
			}

			log := opts.log.WithField("candidates", len(candidates))
			msg, err := e.Decrypt(sk, c, candidates)
			if errors.Is(err, elgamal.ErrDecryptionFailed) {
				log.Info("No candidate matched")
				return err
			}
			if err != nil {
				log.WithError(err).Error("Decryption failed")
				return err
			}
			log.WithFields(logrus.Fields{"message_length": len(msg)}).Debug("Ciphertext decrypted")

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&secPath, "sec", "", "File holding the hex encoded secret key.")
	cmd.Flags().StringVarP(&ciphertext, "ciphertext", "c", "", "Hex encoded ciphertext.")
	cmd.Flags().StringVar(&candidatesPath, "candidates", "", "YAML file listing candidate messages.")
	return cmd
}

func readCandidates(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", path)
	}

	var list []string
	if err := yaml.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var file candidateFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "error parsing candidates in %s", path)
	}
	return file.Candidates, nil
}
