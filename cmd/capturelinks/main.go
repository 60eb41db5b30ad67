// Command capturelinks collects match-detail links from OddsPortal listing
// pages for (sport, league, season) combinations, writing one output file per
// season. It captures links only; odds extraction is a different tool.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"

	"github.com/banditnew1978/Oddsharvesterenhanced/internal/browser"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/capture"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/storage"
	"github.com/banditnew1978/Oddsharvesterenhanced/internal/urlbuilder"
)

var cli struct {
	Sport   string `required:"" help:"Sport identifier (e.g. football, basketball)."`
	Leagues string `required:"" help:"Comma-separated league slugs (e.g. england-premier-league,spain-primera-division)."`
	Seasons string `required:"" help:"Comma-separated seasons (e.g. 2014-2015,2015-2016)."`

	Headless bool `help:"Run the browser headless (recommended for automation)."`
	MaxPages int  `name:"max-pages" help:"Optional limit on the number of pages to inspect per season."`

	BrowserUserAgent      string `name:"browser-user-agent" help:"Optional custom user agent for the browser."`
	BrowserLocaleTimezone string `name:"browser-locale-timezone" help:"Optional browser locale (e.g. fr-BE)."`
	BrowserTimezoneID     string `name:"browser-timezone-id" help:"Optional timezone ID to emulate (e.g. Europe/Paris)."`

	Format    string `help:"Output format." default:"csv" enum:"csv,json,jsonl"`
	OutputDir string `name:"output-dir" help:"Directory capture files are written to." default:"capturelinks"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("capturelinks"),
		kong.Description("Capture OddsPortal match links without scraping odds data."),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})

	if err := run(logger); err != nil {
		logger.Fatal("capture run failed", "err", err)
	}
}

type seasonResult struct {
	league string
	season string
	links  int
	file   string
}

func run(logger *log.Logger) error {
	format, err := storage.ParseFormat(cli.Format)
	if err != nil {
		return err
	}

	plan := capture.Plan{
		Sport:    cli.Sport,
		Leagues:  splitTrim(cli.Leagues, ","),
		Seasons:  splitTrim(cli.Seasons, ","),
		MaxPages: cli.MaxPages,
	}
	requests, err := plan.Requests()
	if err != nil {
		return err
	}

	writer, err := storage.NewLinkWriter(cli.OutputDir, logger)
	if err != nil {
		return err
	}

	session, err := browser.NewSession(context.Background(), browser.Options{
		Headless:   cli.Headless,
		UserAgent:  cli.BrowserUserAgent,
		Locale:     cli.BrowserLocaleTimezone,
		TimezoneID: cli.BrowserTimezoneID,
	}, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	orch := capture.NewOrchestrator(session, logger)
	spin := spinner.New(spinner.CharSets[9], 100*time.Millisecond)

	var results []seasonResult
	for _, req := range requests {
		spin.Suffix = fmt.Sprintf(" capturing %s %s %s", req.Sport, req.League, req.Season)
		spin.Start()
		links, err := orch.CaptureSeason(req)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("capture %s %s: %w", req.League, req.Season, err)
		}

		baseURL := urlbuilder.HistoricMatchesURL(req.Sport, req.League, req.Season)
		file, err := writer.Save(baseURL, links, format)
		if err != nil {
			return err
		}

		results = append(results, seasonResult{
			league: req.League,
			season: req.Season,
			links:  len(links),
			file:   file,
		})
	}

	logger.Info("capture complete", "seasons", len(results))
	for _, r := range results {
		logger.Info("season summary",
			"league", r.league, "season", r.season, "links", r.links, "file", r.file)
	}
	return nil
}

// splitTrim splits a comma-separated argument into a cleaned list.
func splitTrim(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
