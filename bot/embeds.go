package bot

import (
	"fmt"
	"time"

	"lottotrack/bot/common"
	"lottotrack/events"

	"github.com/bwmarrin/discordgo"
)

// BuildStatsRefreshedEmbed creates the announcement for a statistics refresh
func BuildStatsRefreshedEmbed(e events.StatsRefreshedEvent) *discordgo.MessageEmbed {
	refreshedAt := e.RefreshedAt
	if refreshedAt.IsZero() {
		refreshedAt = time.Now()
	}

	embed := &discordgo.MessageEmbed{
		Title:     "📊 Number Statistics Updated",
		Color:     common.ColorPrimary,
		Timestamp: refreshedAt.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Draws",
				Value:  common.FormatCount(e.DrawCount),
				Inline: true,
			},
		},
	}

	if e.DrawCount == 0 {
		embed.Description = "No draw history yet. Every number is at zero."
		embed.Color = common.ColorWarning
		return embed
	}

	embed.Description = fmt.Sprintf("Statistics now cover every draw up to #%d.", e.LatestDrawNo)
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:   "Latest Draw",
			Value:  fmt.Sprintf("#%d", e.LatestDrawNo),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:  "🔥 Hottest",
			Value: common.FormatNumbers(e.Hottest),
		},
		&discordgo.MessageEmbedField{
			Name:  "⏳ Most Overdue",
			Value: common.FormatNumbers(e.MostOverdue),
		},
	)

	if e.TriggeredBy != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Refreshed by " + e.TriggeredBy}
	}
	return embed
}

// BuildDrawsImportedEmbed creates the announcement for a draw import
func BuildDrawsImportedEmbed(e events.DrawsImportedEvent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "🎱 Draw History Imported",
		Color:     common.ColorSuccess,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "New Draws",
				Value:  common.FormatCount(e.Inserted),
				Inline: true,
			},
			{
				Name:   "Skipped",
				Value:  common.FormatCount(e.Skipped),
				Inline: true,
			},
		},
	}

	if e.Inserted == 0 {
		embed.Color = common.ColorInfo
		embed.Description = "No new draws were found."
	} else {
		embed.Description = fmt.Sprintf("History now runs through draw #%d.", e.LatestDrawNo)
	}

	if e.Source != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Source: " + e.Source}
	}
	return embed
}
