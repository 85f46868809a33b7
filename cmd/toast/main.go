package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lasangainc/toast-thebrowser/internal/app"
)

const logFileName = "toastylog.log"

type cli struct {
	URL string `arg:"" optional:"" help:"URL to render. Prompted for if omitted."`
}

func main() {
	var cliArgs cli
	kong.Parse(&cliArgs,
		kong.Name("toast"),
		kong.Description("The browser - render web pages in your terminal"),
		kong.UsageOnError(),
	)

	if err := run(cliArgs); err != nil {
		color.Red("toast: %v", err)
		os.Exit(1)
	}
}

func run(cliArgs cli) error {
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	url, err := resolveURL(cliArgs.URL)
	if err != nil {
		return err
	}

	color.Green("\"toast\" - the browser. Rendering %s", url)

	return app.Run(context.Background(), app.Config{URL: url})
}

// resolveURL returns the target URL, prompting on stdin when none was
// given on the command line, then normalizes it to carry an explicit
// scheme.
func resolveURL(arg string) (string, error) {
	urlInput := arg
	if urlInput == "" {
		fmt.Print("\"Toast\" - the browser. Enter a URL: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read URL: %w", err)
		}
		urlInput = strings.TrimSpace(line)
	}

	if urlInput == "" {
		return "", fmt.Errorf("no URL given")
	}

	if strings.HasPrefix(urlInput, "http://") || strings.HasPrefix(urlInput, "https://") {
		return urlInput, nil
	}
	return "https://" + urlInput, nil
}
