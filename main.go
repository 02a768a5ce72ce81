package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/cmd/root"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/cmd/wrap"
)

func init() {
	// Environment variables must be in place before the configuration
	// layer resolves the API key and log level.
	loadEnvSilently()

	root.Init()
	root.Cmd.AddCommand(wrap.Cmd)
}

// loadEnvSilently loads a .env file without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
