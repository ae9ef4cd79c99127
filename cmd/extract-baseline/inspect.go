package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedretire/extract-baseline/pkg/baseline"
)

func newInspectCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List sheets, used ranges and defined names of the spreadsheet",
		Long: `Inspect prints what a mapping file can refer to: every sheet with the
bounding box of its populated cells, and every defined name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}

			wb, err := baseline.OpenWorkbook(opts.Spreadsheet)
			if err != nil {
				return err
			}
			defer wb.Close()

			summary, err := wb.Inspect()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := baseline.MarshalIndented(summary)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			fmt.Fprintf(out, "%s\n\nSheets:\n", summary.BookName)
			for _, sheet := range summary.Sheets {
				used := sheet.UsedRange
				if used == "" {
					used = "(empty)"
				}
				fmt.Fprintf(out, "  - %s  %s  %d cells\n", sheet.Name, used, sheet.NonEmptyCells)
			}
			if len(summary.DefinedNames) > 0 {
				fmt.Fprintln(out, "\nDefined names:")
				for _, dn := range summary.DefinedNames {
					fmt.Fprintf(out, "  - %s = %s (%s)\n", dn.Name, dn.RefersTo, dn.Scope)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of a text listing")
	return cmd
}
