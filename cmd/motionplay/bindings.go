package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"motionplay/internal/bindings"
	"motionplay/internal/catalog"
)

func bindingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Inspect and edit movement key bindings",
	}
	cmd.AddCommand(bindingsListCmd())
	cmd.AddCommand(bindingsSetCmd())
	cmd.AddCommand(bindingsClearCmd())
	cmd.AddCommand(bindingsResetCmd())
	return cmd
}

func bindingsListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List current movement bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			b := bindings.New(kv)

			var matcher glob.Glob
			if filter != "" {
				matcher, err = glob.Compile(filter)
				if err != nil {
					return fmt.Errorf("invalid filter %q: %w", filter, err)
				}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "MOVEMENT\tKEY\tLABEL")
			for _, m := range catalog.Movements() {
				key, bound := b.KeyFor(m.ID)
				if matcher != nil &&
					!matcher.Match(m.ID) && !matcher.Match(m.Name) && !matcher.Match(key) {
					continue
				}
				if bound {
					fmt.Fprintf(w, "%s %s\t%s\t%s\n", m.Icon, m.Name, key, catalog.KeyLabel(key))
				} else {
					fmt.Fprintf(w, "%s %s\t-\t(unbound)\n", m.Icon, m.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "glob over movement ids, names, or key codes (e.g. 'Arrow*')")
	return cmd
}

func bindingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <movement> <key-code>",
		Short: "Bind a movement to a key (steals the key from any other movement)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			b := bindings.New(kv)
			if err := b.Assign(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("✅ %s → %s\n", args[0], catalog.KeyLabel(args[1]))
			return nil
		},
	}
}

func bindingsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <movement>",
		Short: "Remove a movement's key binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			b := bindings.New(kv)
			b.Clear(args[0])
			fmt.Printf("✅ %s unbound\n", args[0])
			return nil
		},
	}
}

func bindingsResetCmd() *cobra.Command {
	var forget bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			b := bindings.New(kv)
			if forget {
				if err := b.Forget(); err != nil {
					return err
				}
				fmt.Println("✅ Saved bindings removed; defaults active")
				return nil
			}
			b.ResetToDefault()
			fmt.Println("✅ Bindings reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVar(&forget, "forget", false, "remove the saved snapshot instead of saving the defaults")
	return cmd
}
