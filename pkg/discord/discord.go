package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf(webhookURLTemplate, d.webhook.id, d.webhook.token)
}

func (d *discordImpl) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.sendWithRetry: retrying attempt %d/%d", attempt, d.config.RetryCount)
			}
			time.Sleep(d.config.RetryDelay)
		}
		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (d *discordImpl) colorForType(msgType MessageType) int {
	switch msgType {
	case MessageTypeSuccess:
		return ColorSuccess
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	default:
		return ColorInfo
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	if len(content) > MaxMessageLength {
		return fmt.Errorf("message too long: %d characters (max: %d)", len(content), MaxMessageLength)
	}
	payload := &WebhookPayload{
		Content:   content,
		Username:  d.config.DefaultUsername,
		AvatarURL: d.config.DefaultAvatarURL,
	}
	return d.sendWithRetry(ctx, payload)
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := Embed{
		Title:       truncateString(options.Title, MaxTitleLen),
		Description: truncateString(options.Description, MaxDescriptionLen),
		Color:       d.colorForType(options.Type),
		Fields:      options.Fields,
		Footer:      options.Footer,
	}
	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.Format(time.RFC3339)
	}

	total := len(embed.Title) + len(embed.Description)
	for _, f := range embed.Fields {
		total += len(f.Name) + len(f.Value)
	}
	if total > MaxEmbedLength {
		return fmt.Errorf("embed too long: %d characters (max: %d)", total, MaxEmbedLength)
	}

	payload := &WebhookPayload{
		Embeds:    []Embed{embed},
		Username:  options.Username,
		AvatarURL: options.AvatarURL,
	}
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	if payload.AvatarURL == "" {
		payload.AvatarURL = d.config.DefaultAvatarURL
	}
	return d.sendWithRetry(ctx, payload)
}

// ReportBug posts an internal error report. Used by the recovery path,
// so it must never panic itself.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Internal Error Report",
		Description: truncateString(message, MaxDescriptionLen),
		Timestamp:   time.Now(),
		Footer:      &EmbedFooter{Text: "monitor-srv crash reporter"},
	})
}
