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
	"io"
	"os"
	"strings"

	"github.com/fentec-project/expelgamal/elgamal"
	"github.com/fentec-project/expelgamal/group"
	"github.com/fentec-project/expelgamal/msgenc"
	"github.com/fentec-project/expelgamal/sample"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envPrefix = "EGSET_"

// options are the flags shared by all subcommands.
type options struct {
	group    string
	encoder  string
	logLevel string

	log *logrus.Logger
}

// NewRootCmd builds the egset command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "egset",
		Short: "Exponential ElGamal with candidate-set decryption",
		Long: `egset generates ElGamal key pairs, encrypts short messages and
decrypts ciphertexts by matching them against a known list of candidate
plaintexts.

Keys and ciphertexts are read and written as hex strings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setFlagsFromEnv(envPrefix, cmd.Flags())
			opts.log.SetOutput(cmd.ErrOrStderr())
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.log.SetLevel(level)
			return nil
		},
	}

	fs := rootCmd.PersistentFlags()
	fs.StringVar(&opts.group, "group", "bls12381", "Elliptic curve group: bls12381 or bn256.")
	fs.StringVar(&opts.encoder, "encoder", "bbs-sha256", "Message encoding: bbs-sha256 or bbs-shake256.")
	fs.StringVar(&opts.logLevel, "log-level", "warning", "Log level (debug, info, warning, error).")

	rootCmd.AddCommand(
		newKeygenCmd(opts),
		newEncryptCmd(opts),
		newDecryptCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// scheme configures the ElGamal scheme selected by the flags.
func (o *options) scheme() (*elgamal.ElGamal, error) {
	g, err := group.ByName(o.group)
	if err != nil {
		return nil, err
	}

	var enc msgenc.Encoder
	switch strings.ToLower(o.encoder) {
	case "bbs-sha256":
		enc = msgenc.BBSSha256()
	case "bbs-shake256":
		enc = msgenc.BBSShake256()
	default:
		return nil, errors.Errorf("unknown encoder %q", o.encoder)
	}

	o.log.WithFields(logrus.Fields{
		"group":   g.Name(),
		"encoder": o.encoder,
	}).Debug("Configured scheme")
	return elgamal.NewWith(g, enc), nil
}

// keyRandom returns the source of randomness for key generation. A
// non-empty seed selects a deterministic ChaCha20 stream; encryption
// never accepts a seed, since it needs fresh randomness on every call.
func (o *options) keyRandom(seedHex string) (io.Reader, error) {
	if seedHex == "" {
		return rand.Reader, nil
	}
	b, err := hex.DecodeString(seedHex)
	if err != nil || len(b) != 32 {
		return nil, errors.New("seed must be 64 hex characters")
	}
	o.log.Warn("Using deterministic randomness from --seed")
	var seed [32]byte
	copy(seed[:], b)
	return sample.NewDeterministicReader(seed), nil
}

func setFlagsFromEnv(prefix string, fs *pflag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})
	fs.VisitAll(func(f *pflag.Flag) {
		// ignore flags set from the commandline
		if set[f.Name] {
			return
		}
		cleanPrefix := strings.TrimSuffix(prefix, "_")
		name := fmt.Sprintf("%s_%s", cleanPrefix, strings.Replace(strings.ToUpper(f.Name), "-", "_", -1))
		if e, ok := os.LookupEnv(name); ok {
			_ = f.Value.Set(e)
		}
	})
}
