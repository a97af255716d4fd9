package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/internal/app"
	"github.com/nfrund/wscatalog/internal/pubsub"
	"github.com/nfrund/wscatalog/internal/websocket"
)

var (
	emitData     string
	emitResource string
	emitTimeout  time.Duration
)

var emitCmd = &cobra.Command{
	Use:   "emit <topic>",
	Short: "Publish an event through the guarded bus and print the client frame",
	Long: `Emit publishes a JSON payload on a topic through the same registry-guarded
bus the gateway uses, receives it back and prints the frame a subscribed client
would get. Unknown topics are rejected before anything is published.

Examples:
  wscatalog emit tables.updated --data '{"id":"t1","seats":4}' --resource t1
  wscatalog emit tables.archived      # rejected: topic not found`,
	Args: cobra.ExactArgs(1),
	RunE: emitHandler,
}

func emitHandler(cmd *cobra.Command, args []string) error {
	topic := args[0]
	payload := json.RawMessage(emitData)
	if !json.Valid(payload) {
		return fmt.Errorf("--data is not valid JSON: %s", emitData)
	}

	reg, err := registry()
	if err != nil {
		return err
	}
	typed, err := pubsub.NewTyped[json.RawMessage](reg, topic)
	if err != nil {
		return err
	}
	bus, err := do.Invoke[*app.Bus](injector)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), emitTimeout)
	defer cancel()

	frames := make(chan []byte, 1)
	err = pubsub.Subscribe(ctx, bus.Subscriber, typed, func(_ context.Context, data json.RawMessage, msg pubsub.Message) error {
		ev, err := websocket.NewEvent(reg, msg.Topic, data)
		if err != nil {
			return err
		}
		if emitResource != "" {
			ev.WithResource(emitResource)
		}
		frame, err := ev.Marshal()
		if err != nil {
			return err
		}
		select {
		case frames <- frame:
		default:
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := pubsub.Publish(ctx, bus.Publisher, typed, payload); err != nil {
		return err
	}

	select {
	case frame := <-frames:
		fmt.Fprintln(cmd.OutOrStdout(), string(frame))
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("no delivery on %s within %s", topic, emitTimeout)
		}
		return ctx.Err()
	}
}

func init() {
	rootCmd.AddCommand(emitCmd)

	emitCmd.Flags().StringVarP(&emitData, "data", "d", "{}", "JSON payload")
	emitCmd.Flags().StringVar(&emitResource, "resource", "", "Resource ID to attach to the frame")
	emitCmd.Flags().DurationVar(&emitTimeout, "timeout", 5*time.Second, "How long to wait for the delivery")
}
