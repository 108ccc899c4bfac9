package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Poster delivers one message
type Poster interface {
	Post(ctx context.Context, params *discordgo.WebhookParams) error
}

// DiscordWebhook posts through a Discord incoming webhook
type DiscordWebhook struct {
	session *discordgo.Session
	id      string
	token   string
}

// NewDiscordWebhook parses a webhook URL of the form
// https://discord.com/api/webhooks/{id}/{token}
func NewDiscordWebhook(rawURL string) (*DiscordWebhook, error) {
	id, token, err := ParseWebhookURL(rawURL)
	if err != nil {
		return nil, err
	}
	// Webhooks need no bot token
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Client.Timeout = WebhookTimeout
	return &DiscordWebhook{session: session, id: id, token: token}, nil
}

// Post sends the message without waiting for Discord to echo it back
func (d *DiscordWebhook) Post(ctx context.Context, params *discordgo.WebhookParams) error {
	_, err := d.session.WebhookExecute(d.id, d.token, false, params, discordgo.WithContext(ctx))
	return err
}

// ParseWebhookURL extracts the webhook id and token
func ParseWebhookURL(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid webhook url: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("invalid webhook url: expected /api/webhooks/{id}/{token}")
}
