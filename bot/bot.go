package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"slotbot/bot/common"
	"slotbot/events"
	"slotbot/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config         Config
	session        *discordgo.Session
	accountService service.AccountService
	spinService    service.SpinService
	eventBus       *events.Bus
}

func New(config Config, accountService service.AccountService, spinService service.SpinService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:         config,
		session:        dg,
		accountService: accountService,
		spinService:    spinService,
		eventBus:       eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Surface jackpot wins in the bot's presence
	eventBus.Subscribe(events.EventTypeJackpotWon, func(ctx context.Context, event events.Event) {
		won, ok := event.(events.JackpotWonEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"userID": won.UserID,
			"amount": won.Amount,
		}).Info("Jackpot won")
		if err := bot.session.UpdateGameStatus(0, fmt.Sprintf("💥 JACKPOT HIT: %s G!", common.FormatAmount(won.Amount))); err != nil {
			log.Errorf("Failed to update status after jackpot win: %v", err)
		}
	})

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}
