package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"coursecast/internal/jobs"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "add <file>...",
		Short: "Upload study material and enqueue a conversion job",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := jobs.ParseKind(kindFlag)
			if !ok {
				return fmt.Errorf("unknown conversion kind %q (choose one of: %s)", kindFlag, kindList())
			}

			files, err := ctx.openFiles()
			if err != nil {
				return err
			}
			stored := make([]string, 0, len(args))
			for _, arg := range args {
				f, err := os.Open(arg)
				if err != nil {
					return fmt.Errorf("open source %s: %w", arg, err)
				}
				name, err := files.Save(filepath.Base(arg), f)
				f.Close()
				if err != nil {
					return fmt.Errorf("store source %s: %w", arg, err)
				}
				stored = append(stored, name)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			job, err := store.NewJob(cmd.Context(), stored, kind)
			if err != nil {
				return fmt.Errorf("create job: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s job %s (%d source file(s))\n", job.Kind, job.ID, len(stored))
			fmt.Fprintln(out, "Run `coursecast run` to process queued jobs, or `coursecast convert "+job.ID+"` for just this one.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Conversion kind: "+kindList())
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func kindList() string {
	kinds := jobs.AllKinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}
