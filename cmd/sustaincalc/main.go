package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"sustaincalc/api"
	"sustaincalc/internal/app"
	"sustaincalc/internal/config"
	"sustaincalc/internal/logger"
	"sustaincalc/internal/report"

	"github.com/spf13/cobra"
)

func main() {
	log := logger.New()

	rootCmd := &cobra.Command{
		Use:   "sustaincalc",
		Short: "Sustainable real estate investment calculator",
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Calculate the reference portfolio and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.WithValue(cmd.Context(), logger.ContextKey, log)
			service := app.CalculatorService{}
			result, err := service.Calculate(ctx, app.DemoPortfolio())
			if err != nil {
				return err
			}
			fmt.Print(report.Render(*result))
			return nil
		},
	}

	var exportPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Calculate the reference portfolio and write the result JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.WithValue(cmd.Context(), logger.ContextKey, log)
			service := app.CalculatorService{}
			result, err := service.Calculate(ctx, app.DemoPortfolio())
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result: %w", err)
			}
			if err := os.WriteFile(exportPath, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportPath, err)
			}
			log.Infow("wrote calculation result", "path", exportPath)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "result.json", "output file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculation API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			handler := api.ApiHandler{
				CalculatorService: app.CalculatorService{},
				Logger:            log,
				Thresholds:        cfg.Thresholds,
			}
			log.Infow("starting api", "port", cfg.Port, "env", cfg.Env)
			return handler.StartApi(cfg.Port)
		},
	}

	rootCmd.AddCommand(demoCmd, exportCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
