package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	"github.com/KirkDiggler/character-forge/internal/services/quiz"
)

// Common embed colors
const (
	ColorError   = 0xff0000 // Red
	ColorInfo    = 0x0099ff // Blue
	ColorPrimary = 0x7289da // Discord Blurple
)

// Discord allows at most five buttons per row
const maxButtonsPerRow = 5

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Field adds a field to the embed; empty values are skipped
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if value == "" {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// QuestionEmbed shows a question with its options
func QuestionEmbed(view *quiz.QuestionView) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, opt := range view.Question.Options {
		sb.WriteString(fmt.Sprintf("**%s)** %s\n", strings.ToUpper(opt.Key), opt.Text))
	}

	return NewEmbed().
		Title(fmt.Sprintf("Question %d of %d", view.Index+1, view.Total)).
		Description(fmt.Sprintf("%s\n\n%s", view.Question.Prompt, sb.String())).
		Color(ColorInfo).
		Footer("Answer as your character, not yourself").
		Build()
}

// QuestionButtons builds one button per option
func QuestionButtons(sessionID string, view *quiz.QuestionView) ([]discordgo.MessageComponent, error) {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent

	for _, opt := range view.Question.Options {
		customID, err := answerID(sessionID, opt.Key)
		if err != nil {
			return nil, err
		}
		row = append(row, discordgo.Button{
			Label:    strings.ToUpper(opt.Key),
			Style:    discordgo.PrimaryButton,
			CustomID: customID,
		})
		if len(row) == maxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows, nil
}

// CharacterEmbed shows a forged character
func CharacterEmbed(char *character.Character) *discordgo.MessageEmbed {
	b := NewEmbed().
		Title("🎲 " + char.Title()).
		Description(char.Summary).
		Color(ColorPrimary).
		Footer(fmt.Sprintf("Seed %d", char.Seed))

	b.Field("Background", char.Background, true).
		Field("Alignment", char.Alignment, true).
		Field("Tone", char.Tone, true).
		Field("Dominant Traits", dominantTraits(char.Stats), false).
		Field("Stats", statBlock(char.Stats), false).
		Field("Tips", bullets(char.Tips), false).
		Field("Hooks", bullets(char.Hooks), false)

	if ref := char.Reference; ref != nil {
		if ref.Class != nil {
			b.Field("Hit Die", fmt.Sprintf("d%d", ref.Class.HitDie), true)
			b.Field("Proficiencies", strings.Join(ref.Class.Proficiencies, ", "), false)
		}
		if ref.Race != nil {
			b.Field("Speed", fmt.Sprintf("%d ft", ref.Race.Speed), true)
		}
	}

	return b.Build()
}

// ErrorEmbed shows a failure to the user
func ErrorEmbed(message string) *discordgo.MessageEmbed {
	return NewEmbed().
		Title("❌ Something went wrong").
		Description(message).
		Color(ColorError).
		Build()
}

func statBlock(v traits.Vector) string {
	var sb strings.Builder
	sb.WriteString("```\n")
	for _, t := range traits.All {
		sb.WriteString(fmt.Sprintf("%-12s %+d\n", t, v[t]))
	}
	sb.WriteString("```")
	return sb.String()
}

// dominantTraits names every trait tied for the highest value
func dominantTraits(v traits.Vector) string {
	if len(v) == 0 {
		return "none"
	}
	tier := v.TopTier()
	names := make([]string, len(tier))
	for i, t := range tier {
		names[i] = string(t)
	}
	return fmt.Sprintf("%s (%+d)", strings.Join(names, ", "), v[tier[0]])
}

func bullets(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "• " + strings.Join(items, "\n• ")
}
