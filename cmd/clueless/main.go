package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"clueless/internal/cli"
	"clueless/internal/config"
)

func main() {
	logLevel := flag.String("loglevel", "", "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", "", "Path to a JSON options file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	opts := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		opts = loaded
	}
	if *logLevel != "" {
		opts.LogLevel = *logLevel
	}
	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ui := cli.NewCLI(log)
	if err := ui.Run(flag.Args(), opts, rng); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
