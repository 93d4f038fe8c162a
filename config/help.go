package config

import (
	"fmt"
)

const HelpMessage = `Teleka Taxi booking server

Usage:
  teleka [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this message

Configuration is read from the YAML file, overridable via environment
variables (SERVER_PORT, STORE_DRIVER, DATABASE_HOST, ...).
`

func PrintHelp() {
	fmt.Print(HelpMessage)
}

// PrintConfig prints the effective non-secret configuration on startup.
func PrintConfig(cfg *Config) {
	fmt.Printf("server:   %s:%s (cors origin %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.CORSOrigin)
	fmt.Printf("store:    %s", cfg.Store.Driver)
	if cfg.Store.Driver == StoreDriverFile {
		fmt.Printf(" (dir %s)", cfg.Store.Dir)
	}
	fmt.Println()
	fmt.Printf("rabbitmq: enabled=%v\n", cfg.RabbitMQ.Enabled)
	fmt.Printf("loglevel: %s\n", cfg.LogLevel)
}
