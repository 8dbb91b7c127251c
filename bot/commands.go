package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// minBet is the smallest wager the slot command accepts.
const minBet = 10

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	minBetValue := float64(minBet)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "slot",
			Description: "Spin the slot machine",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bet",
					Description: "Amount to wager",
					Required:    true,
					MinValue:    &minBetValue,
				},
			},
		},
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily reward",
		},
		{
			Name:        "jackpot",
			Description: "Show the current jackpot pool",
		},
		{
			Name:        "rank",
			Description: "Show the balance leaderboard",
		},
		{
			Name:        "help_slot",
			Description: "How to play",
		},
	}

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}
