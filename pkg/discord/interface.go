package discord

import (
	"context"
	"errors"

	"monitor-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord webhook id and token are required")

// IDiscord is the webhook client used for team notifications and crash reports.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, options MessageOptions) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New creates a Discord webhook client.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: &webhookInfo{id: webhook.ID, token: webhook.Token},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: DefaultUsername,
	}
}
