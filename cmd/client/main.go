package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-prompt-keeper/internal/cli"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("prompt-keeper")
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.Execute(context.Background(), os.Args[1:], log, build); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
