package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bnema/uptimecal/internal/adapters/in/cli"
	"github.com/bnema/uptimecal/pkg/version"
)

// Set with -ldflags "-X main.buildVersion=... -X main.commit=... -X main.date=...".
var (
	buildVersion string
	commit       string
	date         string
)

func main() {
	version.Set(buildVersion, commit, date)

	if err := cli.Execute(context.Background()); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
