package main

import (
	"os"

	"github.com/joho/godotenv"

	"dmaia/sped-consolidate/cmd/consolidate"
	"dmaia/sped-consolidate/cmd/parse"
	"dmaia/sped-consolidate/cmd/root"
)

func init() {
	// Load environment variables before viper reads them; a missing .env
	// file is fine.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(consolidate.Cmd)
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
