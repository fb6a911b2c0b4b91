package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"svast/internal/version"
)

func newVersionCmd() *cobra.Command {
	var format string
	var full bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show svast build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			switch strings.ToLower(format) {
			case "pretty":
				renderVersionPretty(cmd.OutOrStdout(), info, full)
				return nil
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	cmd.Flags().BoolVar(&full, "full", false, "include commit, build date and Go version")
	return cmd
}

func renderVersionPretty(out io.Writer, info version.Info, full bool) {
	fmt.Fprintf(out, "svast %s\n", info.Colored())
	if !full {
		return
	}
	fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	fmt.Fprintf(out, "go:     %s\n", info.GoVersion)
}

func valueOrUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return "unknown"
	}
	return v
}
