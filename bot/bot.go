package bot

import (
	"context"
	"errors"
	"fmt"

	"lottotrack/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds notifier configuration
type Config struct {
	Token     string
	ChannelID string
}

// messageSender is the part of the discord session the notifier uses
type messageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts announcements to a Discord channel when statistics are
// refreshed or draws are imported. It only uses the REST API, so no
// gateway connection is opened.
type Notifier struct {
	config  Config
	session *discordgo.Session
	sender  messageSender
}

// New creates a notifier and subscribes it to the event bus
func New(config Config, eventBus *events.Bus) (*Notifier, error) {
	if config.Token == "" || config.ChannelID == "" {
		return nil, errors.New("discord token and channel ID are required")
	}

	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}

	n := newNotifier(config, dg)
	n.session = dg
	n.Subscribe(eventBus)
	return n, nil
}

func newNotifier(config Config, sender messageSender) *Notifier {
	return &Notifier{config: config, sender: sender}
}

// Subscribe registers the notifier's handlers on the bus
func (n *Notifier) Subscribe(eventBus *events.Bus) {
	eventBus.Subscribe(events.EventTypeStatsRefreshed, n.handleStatsRefreshed)
	eventBus.Subscribe(events.EventTypeDrawsImported, n.handleDrawsImported)

	log.WithField("channelID", n.config.ChannelID).Info("Discord notifier subscribed to events")
}

func (n *Notifier) handleStatsRefreshed(ctx context.Context, event events.Event) {
	e, ok := event.(events.StatsRefreshedEvent)
	if !ok {
		return
	}
	n.send(ctx, event.Type(), BuildStatsRefreshedEmbed(e))
}

func (n *Notifier) handleDrawsImported(ctx context.Context, event events.Event) {
	e, ok := event.(events.DrawsImportedEvent)
	if !ok {
		return
	}
	n.send(ctx, event.Type(), BuildDrawsImportedEmbed(e))
}

func (n *Notifier) send(ctx context.Context, eventType events.EventType, embed *discordgo.MessageEmbed) {
	if _, err := n.sender.ChannelMessageSendEmbed(n.config.ChannelID, embed, discordgo.WithContext(ctx)); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"channelID": n.config.ChannelID,
			"eventType": eventType,
		}).Error("Failed to send discord notification")
		return
	}

	log.WithFields(log.Fields{
		"channelID": n.config.ChannelID,
		"eventType": eventType,
	}).Debug("Sent discord notification")
}

// Close releases the discord session
func (n *Notifier) Close() error {
	if n.session == nil {
		return nil
	}
	return n.session.Close()
}
