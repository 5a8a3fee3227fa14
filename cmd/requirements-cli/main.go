package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/sitebrief/requirements-backend/internal/builder"
	"github.com/sitebrief/requirements-backend/internal/console"
)

func main() {
	// Flags are parsed by LoadConfig together with -env, so they must be
	// registered before the builder runs.
	variant := flag.String("variant", console.VariantInterview, "Session variant: tasks, validate or interview")
	choices := flag.Bool("choices", true, "Ask follow-up questions with selectable options")
	output := flag.String("output", "website_requirements.json", "Path for the saved requirements document")

	uc, logger, err := builder.BuildConsoleUsecase()
	if err != nil {
		log.Fatal("Failed to build console session:", err)
	}
	defer logger.Sync()

	runner := console.NewRunner(uc, os.Stdin, os.Stdout, logger)

	if err := runner.Run(context.Background(), *variant, *choices, *output); err != nil {
		os.Exit(1)
	}
}
