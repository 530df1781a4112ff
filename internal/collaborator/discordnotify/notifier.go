package discordnotify

import (
	"context"

	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/log"
)

type notifier struct {
	l       log.Logger
	discord discord.IDiscord
}

// New returns a Notifier that posts team notifications to the configured
// Discord webhook. A nil client yields a no-op notifier so the engine
// keeps running when the webhook is not configured.
func New(l log.Logger, d discord.IDiscord) collaborator.Notifier {
	if d == nil {
		return noopNotifier{l: l}
	}
	return &notifier{
		l:       l,
		discord: d,
	}
}

type noopNotifier struct {
	l log.Logger
}

func (n noopNotifier) Notify(ctx context.Context, orgID, message string, account model.Account) error {
	n.l.Debugf(ctx, "internal.collaborator.discordnotify.Notify: dropped (no webhook): org %s", orgID)
	return nil
}

func (n *notifier) Notify(ctx context.Context, orgID, message string, account model.Account) error {
	fields := []discord.EmbedField{
		{Name: "Organization", Value: orgID, Inline: true},
	}
	if account.Name != "" {
		fields = append(fields, discord.EmbedField{Name: "Account", Value: account.Name, Inline: true})
	}
	if account.Domain != "" {
		fields = append(fields, discord.EmbedField{Name: "Domain", Value: account.Domain, Inline: true})
	}

	err := n.discord.SendEmbed(ctx, discord.MessageOptions{
		Type:        discord.MessageTypeInfo,
		Title:       "Account Signal",
		Description: message,
		Fields:      fields,
	})
	if err != nil {
		n.l.Errorf(ctx, "internal.collaborator.discordnotify.Notify: %v", err)
		return err
	}
	return nil
}
