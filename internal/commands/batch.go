package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/ledger"
	"github.com/extrato-dev/extrato/internal/logger"
	"github.com/extrato-dev/extrato/internal/pipeline"
)

func newBatchCommand() *cobra.Command {
	var outDir string
	var templatePath string
	var formatName string
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "batch <statement>...",
		Short: "Process several statements, each into its own workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args, outDir, templatePath, formatName, configPath, verbose)
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for the output workbooks")
	cmd.Flags().StringVar(&templatePath, "template", "", "workbook copied to seed each output file")
	cmd.Flags().StringVar(&formatName, "format", "", "statement format: sicoob or santander")
	cmd.Flags().StringVar(&configPath, "config", "extrato.yaml", "configuration file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

// runBatch processes each statement into an independent output workbook
// seeded from the template. Files are independent: one failure does not
// stop the rest.
func runBatch(statements []string, outDir, templatePath, formatName, configPath string, verbose bool) error {
	cfg, format, err := loadSetup(configPath, formatName)
	if err != nil {
		return err
	}
	if templatePath == "" {
		templatePath = cfg.Template
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	log := logger.New(os.Stderr, verbose)
	p := pipeline.New(log, ledger.WriteOptions{
		CopyStyles:  cfg.PreserveFormatting,
		MaxColWidth: cfg.MaxColWidth,
	})

	succeeded, failed := 0, 0
	for _, statement := range statements {
		dst := outputPath(outDir, statement)
		if err := ledger.SeedWorkbook(templatePath, dst); err != nil {
			fmt.Printf("%s: failed: %v\n", filepath.Base(statement), err)
			failed++
			continue
		}

		res := p.Process(statement, dst, format)
		logRun(cfg, statement, dst, res)
		printResult(os.Stdout, filepath.Base(statement), res)
		if res.Success {
			fmt.Printf("%s: saved to %s\n", filepath.Base(statement), dst)
			succeeded++
		} else {
			failed++
		}
	}

	fmt.Printf("batch done: %d succeeded, %d failed\n", succeeded, failed)
	if succeeded == 0 && failed > 0 {
		return fmt.Errorf("all %d statements failed", failed)
	}
	return nil
}

// outputPath names the per-statement output workbook after its source
// file.
func outputPath(outDir, statement string) string {
	base := filepath.Base(statement)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, "Processado_"+base+".xlsx")
}
