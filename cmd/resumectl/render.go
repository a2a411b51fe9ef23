package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/internal/renderer"
)

type renderOptions struct {
	input    string
	outDir   string
	template string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a JSON or YAML résumé to .docx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := runRender(opts, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "résumé file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "override selectedTemplate")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runRender(opts *renderOptions, now time.Time) (string, error) {
	rec, err := loadRecord(opts.input)
	if err != nil {
		return "", err
	}
	if opts.template != "" {
		if _, ok := resume.ParseTemplate(opts.template); !ok {
			return "", fmt.Errorf("unknown template %q", opts.template)
		}
		rec.SelectedTemplate = opts.template
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}

	out, err := renderer.New().Render(rec, now)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", opts.input, err)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(opts.outDir, out.FileName)
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func loadRecord(path string) (resume.Record, error) {
	var rec resume.Record
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("read input: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &rec)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&rec)
	default:
		return rec, fmt.Errorf("unsupported input extension %q", filepath.Ext(path))
	}
	if err != nil {
		return rec, fmt.Errorf("decode %s: %w", path, err)
	}
	return rec, nil
}
