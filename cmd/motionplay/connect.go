package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"motionplay/internal/bindings"
	"motionplay/internal/bridge"
	"motionplay/internal/sensitivity"
)

func connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect to the detection process and push the current configuration",
		Long: `Connect opens the bridge to the motion-detection process, sends the
current bindings and sensitivity, and holds the connection until
interrupted (Ctrl-C) or the process goes away.`,
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
				Notify:      func(ev bridge.Event) { events <- ev },
			})

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

			fmt.Printf("🔌 Connecting to %s ...\n", cfg.Bridge.Endpoint)
			client.Start()

			for {
				select {
				case ev := <-events:
					switch {
					case ev.Err != nil:
						return ev.Err
					case ev.State == bridge.Connected:
						fmt.Println("✅ Connected. Configuration sent, Ctrl-C to stop.")
					case ev.State == bridge.Disconnected:
						// Intentional stop finished.
						return nil
					}
				case <-interrupt:
					fmt.Println("\n🛑 Stopping bridge")
					client.Stop()
				}
			}
		},
	}
}
