package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/refdata"
)

func newRefdataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refdata <workbook.xlsx>",
		Short: "List the supplier reference data in a ledger workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefdata(args[0])
		},
	}
	return cmd
}

func runRefdata(path string) error {
	svc, err := refdata.Load(path)
	if err != nil {
		return err
	}

	entries := svc.All()
	for _, e := range entries {
		fmt.Printf("%-50s %s\n", e.Name, e.AccountCode)
	}
	fmt.Printf("%d reference entries\n", len(entries))
	return nil
}
