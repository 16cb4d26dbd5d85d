// Command ticketvision extracts Powerball plays from a ticket photo.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-ticket-vision/internal/config"
	"github.com/cocosip/go-ticket-vision/internal/frame"
	"github.com/cocosip/go-ticket-vision/internal/obsmetrics"
	"github.com/cocosip/go-ticket-vision/internal/pipeline"
	"github.com/cocosip/go-ticket-vision/internal/tmplmatch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("ticketvision: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "ticketvision",
		Short: "Extract Powerball plays from ticket photos",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")

	root.AddCommand(newExtractCmd(&configPath))
	root.AddCommand(newVerifyTemplatesCmd(&configPath))
	return root
}

func newExtractCmd(configPath *string) *cobra.Command {
	var ocrTextPath string

	cmd := &cobra.Command{
		Use:   "extract IMAGE",
		Short: "Extract plays from a single ticket photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			templates, err := tmplmatch.LoadTemplateSet(cfg.TemplateDir)
			if err != nil {
				return fmt.Errorf("loading templates: %w", err)
			}

			img, err := frame.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading image: %w", err)
			}

			var ocrText string
			if ocrTextPath != "" {
				raw, err := os.ReadFile(ocrTextPath)
				if err != nil {
					return fmt.Errorf("reading ocr text: %w", err)
				}
				ocrText = string(raw)
			}

			if cfg.MetricsAddr != "" {
				go func() {
					if err := obsmetrics.Serve(cfg.MetricsAddr); err != nil {
						log.Printf("metrics server on %s stopped: %v", cfg.MetricsAddr, err)
					}
				}()
			}

			p := pipeline.New(templates, log.Default(), thresholdsFromConfig(cfg))
			plays := p.ExtractPlays(context.Background(), img, ocrText)

			return json.NewEncoder(cmd.OutOrStdout()).Encode(plays)
		},
	}

	cmd.Flags().StringVar(&ocrTextPath, "ocr-text", "", "path to a recognized-text file for the fallback extractor")
	return cmd
}

func newVerifyTemplatesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-templates",
		Short: "Check that the configured template directory loads a usable template set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			templates, err := tmplmatch.LoadTemplateSet(cfg.TemplateDir)
			if err != nil {
				return fmt.Errorf("loading templates: %w", err)
			}
			if templates.Empty() {
				return fmt.Errorf("template directory %q produced an empty template set", cfg.TemplateDir)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "template set in %q loaded: %d digit template(s), PB=%v\n",
				cfg.TemplateDir, len(templates.Digits), templates.PB != nil)
			return nil
		},
	}
}

// thresholdsFromConfig carries the loaded config's detection overrides
// into the pipeline package's own Thresholds type.
func thresholdsFromConfig(cfg config.Config) pipeline.Thresholds {
	return pipeline.Thresholds{
		PBConfidenceFloor:    cfg.PBConfidenceFloor,
		DigitConfidenceFloor: cfg.DigitConfidenceFloor,
		RowClusterTolerance:  cfg.RowClusterTolerance,
		PairingTolerance:     cfg.PairingTolerance,
		NMSRadius:            cfg.NMSRadius,
	}
}
