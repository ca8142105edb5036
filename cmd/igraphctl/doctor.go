// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/igraphgo/native"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the native library can be found and is registered",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name, err := native.Locate()
			if err != nil {
				fmt.Fprintf(out, "library:         %v\n", err)
			} else {
				fmt.Fprintf(out, "library:         %s\n", name)
			}
			fmt.Fprintf(out, "linked version:  %s\n", native.Version())

			table := native.InstallAttributeTable()
			fmt.Fprintf(out, "attribute table: %s\n", yesNo(table.IsBinding()))
			return err
		},
	}
}

func yesNo(ok bool) string {
	if ok {
		return "ok"
	}
	return "missing"
}
