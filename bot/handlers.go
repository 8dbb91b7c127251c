package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"slotbot/bot/common"
	"slotbot/service"

	"github.com/bwmarrin/discordgo"
)

const leaderboardSize = 10

// handleCommands dispatches slash command interactions
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "slot":
		b.handleSlot(s, i)
	case "balance":
		b.handleBalance(s, i)
	case "daily":
		b.handleDaily(s, i)
	case "jackpot":
		b.handleJackpot(s, i)
	case "rank":
		b.handleRank(s, i)
	case "help_slot":
		b.handleHelp(s, i)
	}
}

// interactionUserID returns the invoking user's ID for both guild and DM
// interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) handleSlot(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i)
	bet := i.ApplicationCommandData().Options[0].IntValue()

	if bet < minBet {
		respondEphemeral(s, i, fmt.Sprintf("Minimum bet is %d G.", minBet))
		return
	}

	report, err := b.spinService.Spin(ctx, userID, bet, time.Now())
	if err != nil {
		var insufficientErr *service.InsufficientBalanceError
		var cooldownErr *service.CooldownError
		switch {
		case errors.As(err, &insufficientErr):
			respondEphemeral(s, i, fmt.Sprintf("Not enough balance: you have **%s G**. Try /daily or a smaller bet.",
				common.FormatAmount(insufficientErr.Balance)))
		case errors.As(err, &cooldownErr):
			respondEphemeral(s, i, fmt.Sprintf("Cooldown active: **%s** remaining.",
				common.FormatDuration(cooldownErr.Remaining)))
		case errors.Is(err, service.ErrInvalidBet):
			respondEphemeral(s, i, "Bet must be a positive amount.")
		default:
			log.Errorf("Spin failed for user %s: %v", userID, err)
			respondEphemeral(s, i, "Something went wrong running your spin. Please try again.")
		}
		return
	}

	respondEmbed(s, i, buildSpinEmbed(report), false)
}

func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i)

	account, err := b.accountService.GetOrCreateAccount(ctx, userID)
	if err != nil {
		log.Errorf("Failed to get account for user %s: %v", userID, err)
		respondEphemeral(s, i, "Something went wrong fetching your balance.")
		return
	}

	respond(s, i, fmt.Sprintf("💰 Balance: **%s G**", common.FormatAmount(account.Balance)), false)
}

func (b *Bot) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i)

	result, err := b.accountService.ClaimDaily(ctx, userID, time.Now())
	if err != nil {
		var notReadyErr *service.DailyNotReadyError
		if errors.As(err, &notReadyErr) {
			respondEphemeral(s, i, fmt.Sprintf("Not yet! Next daily reward in **%s**.",
				common.FormatDuration(notReadyErr.Remaining)))
			return
		}
		log.Errorf("Daily claim failed for user %s: %v", userID, err)
		respondEphemeral(s, i, "Something went wrong claiming your daily reward.")
		return
	}

	respond(s, i, fmt.Sprintf("🎁 Daily reward: **%s G**! (%d day streak)",
		common.FormatAmount(result.Amount), result.Streak), false)
}

func (b *Bot) handleJackpot(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	amount, err := b.spinService.CurrentJackpot(ctx)
	if err != nil {
		log.Errorf("Failed to get jackpot: %v", err)
		respondEphemeral(s, i, "Something went wrong fetching the jackpot.")
		return
	}

	respond(s, i, fmt.Sprintf("👑 Current JACKPOT: **%s G**", common.FormatAmount(amount)), false)
}

func (b *Bot) handleRank(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	entries, err := b.accountService.TopBalances(ctx, leaderboardSize)
	if err != nil {
		log.Errorf("Failed to get leaderboard: %v", err)
		respondEphemeral(s, i, "Something went wrong fetching the leaderboard.")
		return
	}

	if len(entries) == 0 {
		respond(s, i, "Nobody has spun yet. Be the first with /slot!", false)
		return
	}

	var body strings.Builder
	body.WriteString("🏆 **Balance leaderboard**\n")
	for rank, entry := range entries {
		body.WriteString(fmt.Sprintf("%d. <@%s> - %s G (biggest win %s G)\n",
			rank+1, entry.UserID, common.FormatAmount(entry.Balance), common.FormatAmount(entry.BiggestWin)))
	}

	respond(s, i, body.String(), false)
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEmbed(s, i, buildHelpEmbed(), true)
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	respond(s, i, content, true)
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}
