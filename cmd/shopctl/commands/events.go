package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/dddshop/backend/adapters/event/listeners"
	"github.com/dddshop/backend/adapters/redisstore"
	"github.com/spf13/cobra"
)

func eventsCmd() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print domain events forwarded to redis",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Redis.Addr == "" {
				return errors.New("REDIS_ADDR is required")
			}

			ctx := cmd.Context()

			rdb, err := redisstore.NewConnection(ctx, redisstore.ParseFromConfig(cfg))
			if err != nil {
				return err
			}
			defer rdb.Close()

			sub := redisstore.NewRedisClient(rdb).Subscribe(ctx, channel)
			defer sub.Close()

			applog.Infow("listening for domain events", "channel", channel)

			for {
				msg, err := sub.Receive(ctx)
				if err != nil {
					return err
				}

				envelope, err := listeners.DecodeEnvelope(msg.Payload)
				if err != nil {
					applog.Warnw("skipping malformed event", "payload", msg.Payload, "error", err)
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %v\n",
					envelope.OccurredAt.Format(time.RFC3339Nano), envelope.Name, envelope.Data)
			}
		},
	}

	cmd.Flags().StringVar(&channel, "channel", listeners.DomainEventsChannel, "pub/sub channel to follow")

	return cmd
}
