package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/ledger"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <workbook.xlsx>",
		Short: "Create a fresh ledger workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0])
		},
	}
	return cmd
}

func runInit(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := ledger.CreateWorkbook(path); err != nil {
		return fmt.Errorf("creating ledger workbook: %w", err)
	}
	fmt.Printf("Created ledger workbook %s\n", path)
	return nil
}
