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

// Package config loads the settings of the multinomial command from
// the environment or from a configuration file.
package config

import (
	"encoding/hex"
	"math/rand/v2"

	"github.com/fentec-project/gosample/sample"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Names of the supported random sources.
const (
	SourceMT19937  = "mt19937"
	SourceSplitMix = "splitmix"
	SourceCrypto   = "crypto"
	SourceKeyed    = "keyed"
)

// Config holds the parameters of a sampling run.
type Config struct {
	N       uint64    `yaml:"n" json:"n" toml:"n" env:"MULTINOMIAL_N" env-default:"100" env-description:"number of draws per sample"`
	Weights []float64 `yaml:"weights" json:"weights" toml:"weights" env:"MULTINOMIAL_WEIGHTS" env-default:"1,1" env-separator:"," env-description:"comma separated category weights"`
	Samples int       `yaml:"samples" json:"samples" toml:"samples" env:"MULTINOMIAL_SAMPLES" env-default:"10" env-description:"number of samples to draw"`
	Source  string    `yaml:"source" json:"source" toml:"source" env:"MULTINOMIAL_SOURCE" env-default:"mt19937" env-description:"random source: mt19937, splitmix, crypto or keyed"`
	Seed    uint64    `yaml:"seed" json:"seed" toml:"seed" env:"MULTINOMIAL_SEED" env-default:"0" env-description:"seed of mt19937 and splitmix, 0 picks a random seed"`
	Key     string    `yaml:"key" json:"key" toml:"key" env:"MULTINOMIAL_KEY" env-description:"hex encoded 32 byte key of the keyed source"`
	Debug   bool      `yaml:"debug" json:"debug" toml:"debug" env:"MULTINOMIAL_DEBUG" env-default:"false" env-description:"enable debug logging"`
}

// Load reads the configuration from the file at path, if path is not
// empty, and from the environment, which takes precedence. The result
// is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable
// sampling job. Weight values are checked later by the sampler.
func (c *Config) Validate() error {
	if len(c.Weights) == 0 {
		return errors.New("at least one weight is required")
	}
	if c.Samples < 0 {
		return errors.Errorf("number of samples %d is negative", c.Samples)
	}

	switch c.Source {
	case SourceMT19937, SourceSplitMix, SourceCrypto:
	case SourceKeyed:
		if _, err := c.KeyBytes(); err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown random source %q", c.Source)
	}

	return nil
}

// KeyBytes decodes the key of the keyed source.
func (c *Config) KeyBytes() (*[32]byte, error) {
	raw, err := hex.DecodeString(c.Key)
	if err != nil {
		return nil, errors.Wrap(err, "key is not hex encoded")
	}
	if len(raw) != 32 {
		return nil, errors.Errorf("key has %d bytes, 32 are required", len(raw))
	}

	var key [32]byte
	copy(key[:], raw)
	return &key, nil
}

// NewSource builds the configured random source. For seeded sources
// it also returns the seed in use, which is drawn from the system
// generator when the configured seed is 0.
func (c *Config) NewSource() (rand.Source, uint64, error) {
	seed := c.Seed
	if seed == 0 && (c.Source == SourceMT19937 || c.Source == SourceSplitMix) {
		seed = sample.NewCryptoSource().Uint64()
	}

	switch c.Source {
	case SourceMT19937:
		return sample.NewSeededSource(seed), seed, nil
	case SourceSplitMix:
		return sample.NewSplitMixSource(seed), seed, nil
	case SourceCrypto:
		return sample.NewCryptoSource(), 0, nil
	case SourceKeyed:
		key, err := c.KeyBytes()
		if err != nil {
			return nil, 0, err
		}
		return sample.NewKeyedSource(key), 0, nil
	}

	return nil, 0, errors.Errorf("unknown random source %q", c.Source)
}
