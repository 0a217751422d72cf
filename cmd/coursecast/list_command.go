package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coursecast/internal/jobs"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversion jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var statuses []jobs.Status
			if strings.TrimSpace(statusFlag) != "" {
				status, ok := jobs.ParseStatus(statusFlag)
				if !ok {
					return fmt.Errorf("unknown status %q", statusFlag)
				}
				statuses = append(statuses, status)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			list, err := store.List(cmd.Context(), statuses...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No jobs found")
				return nil
			}

			shorten := isTerminal(out)
			rows := make([][]string, 0, len(list))
			for _, job := range list {
				rows = append(rows, []string{
					displayID(job.ID, shorten),
					string(job.Kind),
					string(job.Status),
					job.OutputFile,
					job.UpdatedAt.Local().Format(time.DateTime),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "KIND", "STATUS", "OUTPUT", "UPDATED"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "Filter by status: "+statusList())
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show one job in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			job, err := store.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if job == nil {
				return fmt.Errorf("job %s not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:       %s\n", job.ID)
			fmt.Fprintf(out, "Kind:     %s\n", job.Kind)
			fmt.Fprintf(out, "Status:   %s\n", job.Status)
			fmt.Fprintf(out, "Sources:  %s\n", strings.Join(job.SourceFiles, ", "))
			if job.OutputFile != "" {
				files, ferr := ctx.openFiles()
				if ferr == nil {
					fmt.Fprintf(out, "Output:   %s\n", files.ResolveConverted(job.OutputFile))
				} else {
					fmt.Fprintf(out, "Output:   %s\n", job.OutputFile)
				}
			}
			if job.ErrorMessage != "" {
				fmt.Fprintf(out, "Error:    %s\n", job.ErrorMessage)
			}
			fmt.Fprintf(out, "Created:  %s\n", job.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "Updated:  %s\n", job.UpdatedAt.Local().Format(time.DateTime))
			return nil
		},
	}
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show job counts by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(stats))
			total := 0
			for _, status := range jobs.AllStatuses() {
				count := stats[status]
				total += count
				rows = append(rows, []string{string(status), fmt.Sprintf("%d", count)})
			}
			rows = append(rows, []string{"total", fmt.Sprintf("%d", total)})
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"STATUS", "JOBS"}, rows))
			return nil
		},
	}
}

func displayID(id string, shorten bool) string {
	if shorten && len(id) > 8 {
		return id[:8]
	}
	return id
}

func statusList() string {
	statuses := jobs.AllStatuses()
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
