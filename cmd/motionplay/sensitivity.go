package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"motionplay/internal/sensitivity"
)

func sensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Inspect and tune detection sensitivity",
	}
	cmd.AddCommand(sensitivityListCmd())
	cmd.AddCommand(sensitivitySetCmd())
	cmd.AddCommand(sensitivityResetCmd())
	return cmd
}

func sensitivityListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tuning parameters with their current values and ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			s := sensitivity.New(kv)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "PARAMETER\tVALUE\tRANGE\tDEFAULT")
			for _, p := range sensitivity.Parameters() {
				val, err := s.Get(p.Name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%.2f\t%.2f..%.2f\t%.2f\n", p.Name, val, p.Min, p.Max, p.Default)
			}
			return nil
		},
	}
}

func sensitivitySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <parameter> <value>",
		Short: "Set a tuning parameter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			kv, err := openKV()
			if err != nil {
				return err
			}
			s := sensitivity.New(kv)
			if err := s.Set(args[0], value); err != nil {
				return err
			}
			fmt.Printf("✅ %s = %.2f\n", args[0], value)
			return nil
		},
	}
}

func sensitivityResetCmd() *cobra.Command {
	var forget bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default sensitivity values",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			s := sensitivity.New(kv)
			if forget {
				if err := s.Forget(); err != nil {
					return err
				}
				fmt.Println("✅ Saved sensitivity removed; defaults active")
				return nil
			}
			s.ResetToDefault()
			fmt.Println("✅ Sensitivity reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVar(&forget, "forget", false, "remove the saved snapshot instead of saving the defaults")
	return cmd
}
