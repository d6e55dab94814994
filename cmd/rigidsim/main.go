package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rigidsim/internal/config"
	"rigidsim/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "config file (TOML)")
	scenePath := flag.String("scene", "", "scene file to load, overrides the config")
	writeConfig := flag.Bool("write-config", false, "write the effective config back to -config")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *scenePath != "" {
		cfg.Scene.Path = *scenePath
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Config: wrote %s", *configPath)
	}

	game.New(cfg).Run()
}
