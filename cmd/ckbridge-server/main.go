package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/ckbridge-starter/pkg/app"
	"github.com/chainsafe/ckbridge-starter/pkg/app/api"
	"github.com/chainsafe/ckbridge-starter/pkg/config"
)

var (
	configPath  = flag.String("config", "config.yaml", "Path to configuration file")
	environment = flag.String("env", "", "Override the environment from the config file (mainnet, sepolia)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *environment != "" {
		cfg.Environment = *environment
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid environment: %v\n", err)
			os.Exit(1)
		}
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
