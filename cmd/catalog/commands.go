package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/observability/logging"
)

func (a *app) overviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Count authors, magazines and articles and name the top publisher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := a.service.Overview(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(overview, func(p *printer) {
				p.line("Authors:       %d", overview.Authors)
				p.line("Magazines:     %d", overview.Magazines)
				p.line("Articles:      %d", overview.Articles)
				p.line("Top publisher: %s", orNone(overview.TopPublisher))
			})
		},
	}
}

func (a *app) authorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "author <name>",
		Short: "Show an author's articles, magazines and topic areas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.FromContext(cmd.Context()).Debug("author report requested", slog.String("author", args[0]))

			report, err := a.service.AuthorReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(report, func(p *printer) {
				p.line("Author: %s", report.Name)
				p.list("Articles", report.Articles)
				p.joined("Magazines", report.Magazines)
				p.joined("Topic areas", report.TopicAreas)
			})
		},
	}
}

func (a *app) magazineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "magazine <name>",
		Short: "Show a magazine's articles and contributors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.FromContext(cmd.Context()).Debug("magazine report requested", slog.String("magazine", args[0]))

			report, err := a.service.MagazineReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(report, func(p *printer) {
				p.line("Magazine: %s (%s)", report.Name, report.Category)
				p.list("Articles", report.Articles)
				p.joined("Contributors", report.Contributors)
				p.joined("Contributing authors", report.ContributingAuthors)
			})
		},
	}
}

// topPublisherOutput is the JSON form of the top-publisher command.
// Magazine is null when no article is registered.
type topPublisherOutput struct {
	Magazine *string `json:"magazine"`
}

func (a *app) topPublisherCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "top-publisher",
		Short: "Name the magazine with the most articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := a.service.Overview(cmd.Context())
			if err != nil {
				return err
			}
			var out topPublisherOutput
			if overview.TopPublisher != "" {
				out.Magazine = &overview.TopPublisher
			}
			return a.render(out, func(p *printer) {
				p.line("%s", orNone(overview.TopPublisher))
			})
		},
	}
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the dataset satisfies every entity rule",
		Long:  `Loads and seeds the dataset. Exits non-zero with the offending record when any author, magazine or article is rejected.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.render(a.seeded, func(p *printer) {
				p.line("dataset ok: %d authors, %d magazines, %d articles",
					a.seeded.Authors, a.seeded.Magazines, a.seeded.Articles)
			})
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// render writes v as indented JSON or calls text with a printer, depending
// on the configured output format.
func (a *app) render(v any, text func(p *printer)) error {
	if a.cfg.Output == config.OutputJSON {
		return writeJSON(a.stdout, v)
	}
	p := &printer{w: a.stdout}
	text(p)
	if p.err != nil {
		return fmt.Errorf("write output: %w", p.err)
	}
	return nil
}
