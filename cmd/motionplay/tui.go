package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"motionplay/internal/bindings"
	"motionplay/internal/bridge"
	"motionplay/internal/log"
	"motionplay/internal/sensitivity"
	"motionplay/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the terminal interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openKV()
			if err != nil {
				return err
			}
			b := bindings.New(kv)
			s := sensitivity.New(kv)

			events := make(chan bridge.Event, 16)
			client := bridge.New(bridge.Config{
				Endpoint:    cfg.Bridge.Endpoint,
				Bindings:    b,
				Sensitivity: s,
				Notify: func(ev bridge.Event) {
					// Drop rather than block if the UI is behind; the
					// status bar reads the latest state anyway.
					select {
					case events <- ev:
					default:
					}
				},
			})

			p := tea.NewProgram(tui.New(b, s, client, events))

			// Pick up snapshots saved by another motionplay process while
			// the TUI is open. Only the update loop touches the stores, so
			// the watcher just forwards the changed key.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if changes, err := kv.Watch(ctx); err == nil {
				go func() {
					for ev := range changes {
						p.Send(tui.StoresReloadedMsg{Key: ev.Key})
					}
				}()
			} else {
				log.Warnf("tui: config watch unavailable: %v", err)
			}

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}
