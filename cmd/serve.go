package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/zaki1905/kirchhoff/internal/config"
	"github.com/zaki1905/kirchhoff/internal/httpapi"
	"github.com/zaki1905/kirchhoff/internal/problems"
	"github.com/zaki1905/kirchhoff/internal/report"
	"github.com/zaki1905/kirchhoff/internal/submission"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the checker HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}

		// Flags beat environment variables.
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if path, _ := cmd.Flags().GetString("problems"); path != "" {
			cfg.ProblemsPath = path
		}
		if url, _ := cmd.Flags().GetString("report-url"); url != "" {
			cfg.Report.URL = url
		}
		if cmd.Flags().Changed("reveal") {
			reveal, _ := cmd.Flags().GetBool("reveal")
			cfg.RevealDetail = reveal
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		return runServe(cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides KIRCHHOFF_ADDR)")
	serveCmd.Flags().String("report-url", "", "Apps Script endpoint submissions are logged to (overrides KIRCHHOFF_REPORT_URL)")
	serveCmd.Flags().Bool("reveal", false, "Include matched equation names and expected currents in responses")
}

func runServe(cfg config.Config) error {
	table := problems.Default()
	if cfg.ProblemsPath != "" {
		var err error
		table, err = problems.Load(cfg.ProblemsPath)
		if err != nil {
			return fmt.Errorf("load problems: %w", err)
		}
	}

	var reporter report.Reporter
	if cfg.Report.URL != "" {
		var err error
		reporter, err = report.NewAppsScript(report.AppsScriptOptions{
			URL:     cfg.Report.URL,
			Secret:  cfg.Report.Secret,
			Routes:  cfg.Routes(),
			Timeout: cfg.Report.Timeout,
		})
		if err != nil {
			return fmt.Errorf("configure reporter: %w", err)
		}
	} else {
		log.Println("KIRCHHOFF_REPORT_URL not set; submissions will not be logged")
	}

	svc, err := submission.NewService(submission.Options{
		Table:        table,
		Reporter:     reporter,
		Tolerance:    cfg.Tolerance(),
		RevealDetail: cfg.RevealDetail,
	})
	if err != nil {
		return err
	}

	srv, err := httpapi.New(httpapi.Options{
		Service:     svc,
		Table:       table,
		DiagramBase: cfg.DiagramBaseURL,
	})
	if err != nil {
		return err
	}

	log.Printf("kirchhoff checker listening on %s (%d problem sets)", cfg.Addr, table.Len())
	return http.ListenAndServe(cfg.Addr, srv.Handler())
}
