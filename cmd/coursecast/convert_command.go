package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coursecast/internal/jobs"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <job-id>",
		Short: "Run a single queued job to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			logger, err := ctx.newLogger(false)
			if err != nil {
				return err
			}
			orch, err := ctx.buildOrchestrator(cmd.Context(), store, logger)
			if err != nil {
				return err
			}

			jobID := args[0]
			if err := orch.Convert(cmd.Context(), jobID); err != nil {
				return err
			}
			job, err := store.GetByID(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			if job != nil && job.Status == jobs.StatusCompleted {
				files, ferr := ctx.openFiles()
				if ferr == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", files.ResolveConverted(job.OutputFile))
					return nil
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Conversion finished")
			return nil
		},
	}
}
