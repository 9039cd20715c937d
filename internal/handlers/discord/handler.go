// Package discord serves the quiz as a Discord slash command with one
// button per answer.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/character-forge/internal/services/quiz"
)

const (
	commandName     = "forge"
	subcommandStart = "start"
	subcommandDemo  = "demo"
	optionSeed      = "seed"
)

// Responder is the part of *discordgo.Session used to answer interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// CommandRegistrar is the part of *discordgo.Session used to register commands
type CommandRegistrar interface {
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	QuizService quiz.Service
}

// Handler handles all Discord interactions
type Handler struct {
	quiz quiz.Service
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.QuizService == nil {
		panic("quiz service is required")
	}
	return &Handler{quiz: cfg.QuizService}
}

// Commands lists the application commands the handler serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandName,
			Description: "Forge a character from a personality quiz",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        subcommandStart,
					Description: "Take the quiz",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        subcommandDemo,
					Description: "Forge a character from random answers",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionSeed,
							Description: "Seed for a repeatable result",
							Required:    false,
						},
					},
				},
			},
		},
	}
}

// RegisterCommands registers the slash commands. An empty guildID
// registers them globally.
func (h *Handler) RegisterCommands(s CommandRegistrar, appID, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		logrus.WithField("command", cmd.Name).Info("registered command")
	}
	return nil
}

// HandleInteraction is the discordgo event callback
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Handle(context.Background(), s, i.Interaction); err != nil {
		logrus.WithError(err).WithField("interaction_id", i.ID).Error("failed to handle interaction")
	}
}

// Handle routes one interaction
func (h *Handler) Handle(ctx context.Context, r Responder, i *discordgo.Interaction) error {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return h.handleCommand(ctx, r, i)
	case discordgo.InteractionMessageComponent:
		return h.handleComponent(ctx, r, i)
	}
	return nil
}

func (h *Handler) handleCommand(ctx context.Context, r Responder, i *discordgo.Interaction) error {
	data := i.ApplicationCommandData()
	if data.Name != commandName || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case subcommandStart:
		return h.handleStart(ctx, r, i)
	case subcommandDemo:
		var seed *int64
		for _, opt := range sub.Options {
			if opt.Name == optionSeed {
				value := opt.IntValue()
				seed = &value
			}
		}
		return h.handleDemo(ctx, r, i, seed)
	}
	return nil
}

func (h *Handler) handleStart(ctx context.Context, r Responder, i *discordgo.Interaction) error {
	session, err := h.quiz.StartSession(ctx, userID(i))
	if err != nil {
		return respondError(r, i, err)
	}

	view, err := h.quiz.CurrentQuestion(ctx, session.ID)
	if err != nil {
		return respondError(r, i, err)
	}

	data, err := questionData(session.ID, view)
	if err != nil {
		return respondError(r, i, err)
	}
	data.Flags = discordgo.MessageFlagsEphemeral

	return r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func (h *Handler) handleDemo(ctx context.Context, r Responder, i *discordgo.Interaction, seed *int64) error {
	run, err := h.quiz.Demo(ctx, seed)
	if err != nil {
		return respondError(r, i, err)
	}

	return r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Demo run (seed %d)", run.Seed),
			Embeds:  []*discordgo.MessageEmbed{CharacterEmbed(run.Character)},
		},
	})
}

func (h *Handler) handleComponent(ctx context.Context, r Responder, i *discordgo.Interaction) error {
	id, err := ParseCustomID(i.MessageComponentData().CustomID)
	if err != nil || id.Domain != domainForge {
		return nil
	}
	if id.Action != actionAnswer || len(id.Args) != 1 {
		return nil
	}

	session, err := h.quiz.GetSession(ctx, id.Target)
	if err != nil {
		return respondError(r, i, err)
	}
	if session.OwnerID != userID(i) {
		return respondEphemeral(r, i, "This quiz belongs to someone else. Use `/forge start` to take your own.")
	}

	// A fully answered session only needs finishing, e.g. after a failed archive
	if !session.Answered(h.quiz.Questions()) {
		result, err := h.quiz.Answer(ctx, session.ID, id.Args[0])
		if err != nil {
			return respondError(r, i, err)
		}

		if result.Next != nil {
			data, err := questionData(session.ID, result.Next)
			if err != nil {
				return respondError(r, i, err)
			}
			return r.InteractionRespond(i, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseUpdateMessage,
				Data: data,
			})
		}
	}

	char, err := h.quiz.Finish(ctx, &quiz.FinishInput{SessionID: session.ID})
	if err != nil {
		return respondError(r, i, err)
	}

	logrus.WithFields(logrus.Fields{
		"session_id":   session.ID,
		"character_id": char.ID,
	}).Info("quiz finished on discord")

	return r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "Your character is ready!",
			Embeds:     []*discordgo.MessageEmbed{CharacterEmbed(char)},
			Components: []discordgo.MessageComponent{},
		},
	})
}

func questionData(sessionID string, view *quiz.QuestionView) (*discordgo.InteractionResponseData, error) {
	buttons, err := QuestionButtons(sessionID, view)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{QuestionEmbed(view)},
		Components: buttons,
	}, nil
}

func respondError(r Responder, i *discordgo.Interaction, cause error) error {
	logrus.WithError(cause).WithField("interaction_id", i.ID).Warn("interaction failed")
	return r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{ErrorEmbed(cause.Error())},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEphemeral(r Responder, i *discordgo.Interaction, content string) error {
	return r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// userID works for guild and direct-message interactions
func userID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
