package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/webperf-id/seo-audit/internal/model"
	"github.com/webperf-id/seo-audit/internal/seoaudit"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" optional:"" help:"URL to audit (scheme optional)"`
	Preview   bool          `short:"p" help:"Print the canned demonstration report instead of fetching"`
	JSON      bool          `help:"Emit the report as JSON"`
	Timeout   time.Duration `default:"10s" help:"Page fetch timeout"`
	SelfHost  string        `default:"localhost" help:"Own hostname used when splitting internal/external links"`
	UserAgent string        `default:"SEOAuditBot/1.0" help:"User-Agent header for fetches"`
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("seoaudit"),
		kong.Description("Audit a web page for SEO signals and print a scored checklist."),
	)
	kctx.FatalIfErrorf(run(context.Background(), cli, os.Stdout))
}

func run(ctx context.Context, cli *CLI, stdout io.Writer) error {
	var report *model.Report
	if cli.Preview {
		report = seoaudit.PreviewReport(cli.URL)
	} else {
		if cli.URL == "" {
			return fmt.Errorf("a URL argument is required unless --preview is set")
		}
		client := seoaudit.NewHTTPClient(cli.Timeout, cli.UserAgent)
		engine := seoaudit.NewEngine(client, client, cli.SelfHost)

		var err error
		report, err = engine.Audit(ctx, cli.URL)
		if err != nil {
			return err
		}
	}

	if cli.JSON {
		return writeJSON(stdout, report)
	}
	writeChecklist(stdout, report)
	return nil
}
