package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// UserAgent identifies this service on webhook requests.
	UserAgent = "monitor-srv/1.0"

	// DefaultTimeout is the HTTP timeout for webhook requests.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryCount is the number of retries after a failed delivery.
	DefaultRetryCount = 2
	// DefaultRetryDelay is the delay between retries.
	DefaultRetryDelay = 2 * time.Second
	// DefaultUsername is the display name used when none is provided.
	DefaultUsername = "Monitor Service"

	// MaxMessageLength is Discord's plain-message limit.
	MaxMessageLength = 2000
	// MaxEmbedLength is Discord's total embed character limit.
	MaxEmbedLength = 6000
	// MaxTitleLen is Discord's embed title limit.
	MaxTitleLen = 256
	// MaxDescriptionLen is Discord's embed description limit.
	MaxDescriptionLen = 4096
)

// Embed colors per message type.
const (
	ColorInfo    = 0x3498DB
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xF1C40F
	ColorError   = 0xE74C3C
)

// MessageType selects the embed color and tone.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeSuccess MessageType = "success"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)
