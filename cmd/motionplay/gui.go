package main

import (
	"github.com/spf13/cobra"

	"motionplay/internal/bindings"
	"motionplay/internal/gui"
	"motionplay/internal/sensitivity"
)

func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			b := bindings.New(kv)
			s := sensitivity.New(kv)
			return gui.StartGUI(cfg, b, s)
		},
	}
}
