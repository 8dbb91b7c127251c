package bot

import (
	"fmt"
	"strings"

	"slotbot/bot/common"
	"slotbot/models"

	"github.com/bwmarrin/discordgo"
)

const (
	colorWin  = 0x2ecc71
	colorLoss = 0xe74c3c
	colorHelp = 0xe67e22

	// Discord caps embed descriptions at 4096 characters
	maxDescriptionLength = 4000
)

// buildSpinEmbed renders a full spin: one log line per round plus the money
// fields.
func buildSpinEmbed(report *models.SpinReport) *discordgo.MessageEmbed {
	var description strings.Builder
	freeRound := 0
	for _, round := range report.Rounds {
		label := fmt.Sprintf("%d", round.Round)
		if round.Free {
			freeRound++
			label = fmt.Sprintf("FREE %d", freeRound)
		}
		description.WriteString(fmt.Sprintf("[%s] %s -> %s (%sG)\n",
			label,
			strings.Join(round.Outcome.Reels, " | "),
			round.Outcome.Description,
			common.FormatAmount(round.Outcome.Payout)))
	}

	text := description.String()
	if len(text) > maxDescriptionLength {
		text = text[:maxDescriptionLength]
	}

	color := colorWin
	if report.Net() < 0 {
		color = colorLoss
	}

	return &discordgo.MessageEmbed{
		Title:       "🎰 SLOT RESULT",
		Description: text,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "BET", Value: common.FormatAmount(report.TotalBet) + " G", Inline: true},
			{Name: "PAYOUT", Value: common.FormatAmount(report.TotalPayout) + " G", Inline: true},
			{Name: "NET", Value: common.FormatSigned(report.Net()) + " G", Inline: true},
			{Name: "BALANCE", Value: common.FormatAmount(report.NewBalance) + " G", Inline: true},
			{Name: "JACKPOT", Value: common.FormatAmount(report.NextJackpot) + " G", Inline: true},
		},
	}
}

func buildHelpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎰 Slot Machine Guide",
		Description: "Play with /slot bet:<amount>.",
		Color:       colorHelp,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Wins",
				Value: "777: x50, 💎7️⃣🃏: x75, any triple: x2-x35",
			},
			{
				Name:  "Specials",
				Value: "2+ 🃏 pays a wild bonus, 2+ 🎰 grants free spins",
			},
			{
				Name:  "Economy",
				Value: "2% of every bet feeds the jackpot. 777 has a 25% chance to pay the whole pool.",
			},
		},
	}
}
