package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/finch-gen/finch-frontend-api/internal/adapter/outbound/cppfrontend"
	"github.com/finch-gen/finch-frontend-api/internal/adapter/outbound/headergen"
	"github.com/finch-gen/finch-frontend-api/internal/application/common/logging"
	"github.com/finch-gen/finch-frontend-api/internal/application/extraction"
	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// extractCmd implements: finch-frontend extract [--header path.h | --crate-dir dir]
// [--package name] [--format json|yaml] [--out out.json].
func newExtractCmd() *cobra.Command {
	var headerPath string
	var crateDir string
	var packageName string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Parse a binding header and emit its class model",
		RunE: func(_ *cobra.Command, _ []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported output format %q", format)
			}
			return runExtract(headerPath, crateDir, packageName, format, outPath)
		},
	}

	cmd.Flags().StringVar(&headerPath, "header", "", "Path to an already generated binding header")
	cmd.Flags().StringVar(&crateDir, "crate-dir", "", "Crate directory to generate the header from")
	cmd.Flags().StringVar(&packageName, "package", "", "Package name override for header generation")
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json, yaml)")
	cmd.Flags().StringVar(&outPath, "out", "", "Optional path to write the model to")

	return cmd
}

// runExtract performs: generate header (unless one is given) -> parse ->
// extract -> output.
func runExtract(headerPath, crateDir, packageName, format, outPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logging.WithCorrelationID(ctx, logging.NewCorrelationID())

	if headerPath == "" {
		if crateDir == "" {
			crateDir = cfg.Bindgen.CrateDir
		}
		if packageName == "" {
			packageName = cfg.Bindgen.PackageName
		}
		if crateDir == "" {
			return errors.New("either --header or --crate-dir is required")
		}

		generator := headergen.NewCbindgenGenerator(headergen.Options{
			Binary:  cfg.Bindgen.Binary,
			Timeout: cfg.Bindgen.Timeout,
		})
		generated, err := generator.GenerateHeader(ctx, outbound.HeaderGenerationSpec{
			PackageName: packageName,
			CrateDir:    crateDir,
			OutputDir:   cfg.Bindgen.OutputDir,
		})
		if err != nil {
			return fmt.Errorf("generate header: %w", err)
		}
		headerPath = generated
	}

	model, err := extractModel(ctx, headerPath)
	if err != nil {
		return err
	}

	return outputModel(model, format, outPath)
}

// extractModel parses the header and runs the extraction walk.
func extractModel(ctx context.Context, headerPath string) (*valueobject.BindingModel, error) {
	parser, err := cppfrontend.NewParser(cppfrontend.Config{
		PointerWidth: cfg.Frontend.PointerWidth,
	})
	if err != nil {
		return nil, fmt.Errorf("init header parser: %w", err)
	}

	service, err := extraction.NewService(parser)
	if err != nil {
		return nil, fmt.Errorf("init extraction service: %w", err)
	}

	model, err := service.ExtractFromHeader(ctx, headerPath)
	if err != nil {
		return nil, fmt.Errorf("extract binding model: %w", err)
	}

	return model, nil
}

// outputModel marshals the model and writes it to the output path or stdout.
func outputModel(model *valueobject.BindingModel, format, outPath string) error {
	var data []byte
	var err error

	switch format {
	case "yaml":
		data, err = yaml.Marshal(model)
	default:
		data, err = json.MarshalIndent(model, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal binding model: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o600); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	_, err = fmt.Println(string(data))
	return err
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newExtractCmd())
}
