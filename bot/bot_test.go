package bot

import (
	"context"
	"errors"
	"sync"
	"testing"

	"lottotrack/events"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentEmbed
	err  error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmbed{channelID: channelID, embed: embed})
	if f.err != nil {
		return nil, f.err
	}
	return &discordgo.Message{ChannelID: channelID}, nil
}

func TestNotifier_SendsOnSubscribedEvents(t *testing.T) {
	bus := events.NewBus()
	sender := &fakeSender{}
	n := newNotifier(Config{ChannelID: "chan-1"}, sender)
	n.Subscribe(bus)

	bus.Emit(context.Background(), events.StatsRefreshedEvent{DrawCount: 1101, LatestDrawNo: 1101})
	bus.Emit(context.Background(), events.DrawsImportedEvent{Source: "draws.csv", Inserted: 3})
	bus.Emit(context.Background(), events.PickSavedEvent{UserID: 1, PickID: 2})
	bus.Wait()

	require.Len(t, sender.sent, 2)
	titles := []string{sender.sent[0].embed.Title, sender.sent[1].embed.Title}
	assert.ElementsMatch(t, []string{"📊 Number Statistics Updated", "🎱 Draw History Imported"}, titles)
	for _, s := range sender.sent {
		assert.Equal(t, "chan-1", s.channelID)
	}
}

func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	bus := events.NewBus()
	sender := &fakeSender{err: errors.New("rate limited")}
	n := newNotifier(Config{ChannelID: "chan-1"}, sender)
	n.Subscribe(bus)

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), events.DrawsImportedEvent{Inserted: 1})
		bus.Wait()
	})
	assert.Len(t, sender.sent, 1)
}

func TestNew_RequiresTokenAndChannel(t *testing.T) {
	_, err := New(Config{Token: "abc"}, events.NewBus())
	assert.Error(t, err)

	_, err = New(Config{ChannelID: "chan-1"}, events.NewBus())
	assert.Error(t, err)
}

func TestNotifier_CloseWithoutSession(t *testing.T) {
	n := newNotifier(Config{ChannelID: "chan-1"}, &fakeSender{})
	assert.NoError(t, n.Close())
}
