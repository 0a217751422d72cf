package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coursecast/internal/config"
	"coursecast/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tool availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				detail := status.Description
				if !status.Available {
					state = "missing"
					detail = status.Detail
					if !status.Optional {
						missing++
					}
				}
				rows = append(rows, []string{status.Name, status.Command, state, detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"TOOL", "COMMAND", "STATE", "DETAIL"}, rows))

			warnings := configWarnings(cfg)
			for _, warning := range warnings {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing", missing)
			}
			return nil
		},
	}
}

func configWarnings(cfg *config.Config) []string {
	var warnings []string
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		warnings = append(warnings, "llm.api_key is empty; text generation jobs will fail")
	}
	if strings.TrimSpace(cfg.Images.APIKey) == "" {
		warnings = append(warnings, "images.api_key is empty; slides and video fall back to placeholder images")
	}
	return warnings
}
