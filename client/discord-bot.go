package client

import (
	"fmt"
	"strings"

	"sargalayam/config"
	"sargalayam/ranking"

	"github.com/bwmarrin/discordgo"
)

// DiscordAnnouncer posts podiums to the festival announcement channel.
type DiscordAnnouncer struct {
	session   *discordgo.Session
	channelId string
}

func NewDiscordAnnouncer() (*DiscordAnnouncer, error) {
	cfg := config.Env()
	if cfg.DiscordBotToken == "" || cfg.DiscordChannelId == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN or DISCORD_CHANNEL_ID not set")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}
	return &DiscordAnnouncer{
		session:   session,
		channelId: cfg.DiscordChannelId,
	}, nil
}

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

func (a *DiscordAnnouncer) AnnouncePodium(program string, category string, year string, podium ranking.Podium) error {
	lines := []string{
		fmt.Sprintf("**%s** - %s (%s)", strings.ToUpper(program), category, year),
	}
	for position := 1; position <= 3; position++ {
		winner := podium.At(position)
		if winner == nil {
			continue
		}
		line := fmt.Sprintf("%s %s", medals[position], winner.Participant)
		if winner.School != "" {
			line += fmt.Sprintf(" (%s)", winner.School)
		}
		lines = append(lines, line)
	}
	_, err := a.session.ChannelMessageSend(a.channelId, strings.Join(lines, "\n"))
	return err
}
