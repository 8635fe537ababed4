package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/formats"
	"github.com/extrato-dev/extrato/internal/ledger"
	"github.com/extrato-dev/extrato/internal/logger"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/pipeline"
	"github.com/extrato-dev/extrato/internal/runlog"
)

func newProcessCommand() *cobra.Command {
	var ledgerPath string
	var formatName string
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "process <statement>",
		Short: "Process one bank statement into a ledger workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args[0], ledgerPath, formatName, configPath, verbose)
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "ledger workbook to append to (required)")
	_ = cmd.MarkFlagRequired("ledger")
	cmd.Flags().StringVar(&formatName, "format", "", "statement format: sicoob or santander")
	cmd.Flags().StringVar(&configPath, "config", "extrato.yaml", "configuration file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

func runProcess(statement, ledgerPath, formatName, configPath string, verbose bool) error {
	cfg, format, err := loadSetup(configPath, formatName)
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, verbose)
	p := pipeline.New(log, ledger.WriteOptions{
		CopyStyles:  cfg.PreserveFormatting,
		MaxColWidth: cfg.MaxColWidth,
	})

	res := p.Process(statement, ledgerPath, format)
	logRun(cfg, statement, ledgerPath, res)
	printResult(os.Stdout, filepath.Base(statement), res)

	if !res.Success {
		return errors.New(res.Err)
	}
	return nil
}

// loadSetup resolves config and statement format shared by process and
// batch.
func loadSetup(configPath, formatName string) (*config.Config, formats.Format, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, err
	}

	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	format := formats.DefaultRegistry().Get(formatName)
	if format == nil {
		return nil, nil, fmt.Errorf("unknown statement format %q", formatName)
	}
	return cfg, format, nil
}

// logRun appends to the run log when one is configured. Best effort: a
// broken audit log must not fail the run itself.
func logRun(cfg *config.Config, statement, ledgerPath string, res model.Result) {
	if cfg.RunLog == "" {
		return
	}
	entry := runlog.FromResult(statement, ledgerPath, res)
	if err := runlog.Append(cfg.RunLog, []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: writing run log: %v\n", err)
	}
}

func printResult(w io.Writer, name string, res model.Result) {
	if !res.Success {
		fmt.Fprintf(w, "%s: failed: %s\n", name, res.Err)
		return
	}
	fmt.Fprintf(w, "%s: %d transactions, %d debits, %d new entries, %d duplicates skipped\n",
		name, res.TransactionsProcessed, res.DebitsFound, res.NewEntries, res.DuplicatesSkipped)
	if res.NonDebitsSkipped > 0 {
		fmt.Fprintf(w, "%s: %d non-debit rows excluded\n", name, res.NonDebitsSkipped)
	}
}
