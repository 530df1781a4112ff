package discord

import (
	"net/http"
	"time"

	"monitor-srv/pkg/log"
)

// Config holds client configuration.
type Config struct {
	Timeout          time.Duration
	RetryCount       int
	RetryDelay       time.Duration
	DefaultUsername  string
	DefaultAvatarURL string
}

// DiscordWebhook identifies the target webhook.
type DiscordWebhook struct {
	ID    string
	Token string
}

type webhookInfo struct {
	id    string
	token string
}

// WebhookPayload is the JSON body posted to the webhook endpoint.
type WebhookPayload struct {
	Content   string  `json:"content,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
}

// Embed is a Discord rich embed.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

// EmbedField is a name/value pair inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter is the footer line of an embed.
type EmbedFooter struct {
	Text string `json:"text"`
}

// MessageOptions describes one embed message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
	Footer      *EmbedFooter
	Timestamp   time.Time
	Username    string
	AvatarURL   string
}

type discordImpl struct {
	l       log.Logger
	webhook *webhookInfo
	config  Config
	client  *http.Client
}
