package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoahotran/resume-studio/internal/domain/resume"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range resume.Templates {
				suffix := ""
				if t == resume.DefaultTemplate {
					suffix = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", t, suffix)
			}
			return nil
		},
	}
}
