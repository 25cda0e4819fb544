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

// Command multinomial draws samples from a multinomial distribution
// and prints one sample per line.
//
// Settings are read from MULTINOMIAL_* environment variables or from
// the file given with -config; run with -h to list them.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fentec-project/gosample/data"
	"github.com/fentec-project/gosample/internal/config"
	"github.com/fentec-project/gosample/sample"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const progName = "multinomial"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	configPath := flag.String("config", "", "path to a YAML, JSON, TOML or EDN configuration file")
	header := "Environment variables:"
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), &config.Config{}, &header, flag.Usage)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	if cfg.Debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// run draws cfg.Samples samples and writes them to w, one per line.
func run(cfg *config.Config, w io.Writer) error {
	m, err := sample.NewMultinomial(cfg.N, cfg.Weights)
	if err != nil {
		return errors.Wrap(err, "invalid weights")
	}

	src, seed, err := cfg.NewSource()
	if err != nil {
		return err
	}
	if seed != 0 {
		log.Debugf("%s source seeded with %d", cfg.Source, seed)
	}
	log.Debugf("sampling from %s", m)

	mat := data.NewRandomMatrix(cfg.Samples, m, src)
	for _, row := range mat {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return errors.Wrap(err, "cannot write sample")
		}
	}

	log.Infof("drew %s samples of %s draws over %d categories",
		humanize.Comma(int64(mat.Rows())),
		humanize.BigComma(new(big.Int).SetUint64(m.N())),
		m.K())

	if mat.Rows() == 0 || m.N() == 0 {
		return nil
	}
	freq, err := mat.Frequencies()
	if err != nil {
		return err
	}
	for i, p := range m.Weights() {
		log.Infof("category %d: probability %.4f, observed %.4f", i, p, freq[i])
	}

	return nil
}
