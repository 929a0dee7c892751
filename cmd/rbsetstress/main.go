// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// rbsetstress runs the rbset scenarios from the command line, or prints sets
// built by the visual scenario.
package main

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/google/rbset/internal/scenario"
)

func main() {
	app := kingpin.New("rbsetstress", "Randomized and structured checks of the rbset red-black tree.")
	app.HelpFlag.Short('h')
	logLevel := app.Flag("log-level", "log level").Default("info").Enum("debug", "info", "warn", "error")
	noColor := app.Flag("no-color", "disable colored output").Bool()

	runCmd := app.Command("run", "run scenarios, verifying the tree as they go").Default()
	size := runCmd.Flag("size", "items generated per set").Default("2000").Envar("RBSET_SIZE").Int()
	seed := runCmd.Flag("seed", "random seed").Default("4095").Envar("RBSET_SEED").Int64()
	names := runCmd.Flag("scenario", "scenario to run (repeatable, default all)").Enums(scenario.Names()...)

	printCmd := app.Command("print", "print sets and set operation results")
	printSize := printCmd.Flag("size", "items in the largest set").Default("20").Int()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	app.FatalIfError(err, "")
	log.SetLevel(level)
	if *noColor {
		color.NoColor = true
	}

	switch cmd {
	case runCmd.FullCommand():
		if len(*names) == 0 {
			*names = scenario.Names()
		}
		if !run(log, *names, scenario.Config{Size: *size, Seed: *seed, Log: log}) {
			os.Exit(1)
		}
	case printCmd.FullCommand():
		scenario.Visual(color.Output, *printSize)
	}
}

func run(log *logrus.Logger, names []string, cfg scenario.Config) bool {
	ok := true
	for _, name := range names {
		start := time.Now()
		entry := log.WithFields(logrus.Fields{
			"scenario": name,
			"size":     humanize.Comma(int64(cfg.Size)),
			"seed":     cfg.Seed,
		})
		if err := scenario.Run(name, cfg); err != nil {
			entry.Errorf("%+v", err)
			ok = false
			continue
		}
		entry.WithField("elapsed", time.Since(start).Round(time.Microsecond)).Info("OK")
	}
	return ok
}
