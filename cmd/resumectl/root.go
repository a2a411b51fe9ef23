package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resumectl",
		Short: "Render résumés to Word documents",
		Long: `resumectl renders a résumé described in JSON or YAML to a .docx file using
the same templates and file naming as the HTTP API.

Example:
  resumectl templates
  resumectl render --input jane.yaml --out ./out --template creative`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newTemplatesCmd())
	return root
}
