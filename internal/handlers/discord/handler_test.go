package discord_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	quizdomain "github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	"github.com/KirkDiggler/character-forge/internal/handlers/discord"
	"github.com/KirkDiggler/character-forge/internal/repositories/characters"
	"github.com/KirkDiggler/character-forge/internal/repositories/quizsessions"
	"github.com/KirkDiggler/character-forge/internal/services/quiz"
	mockquiz "github.com/KirkDiggler/character-forge/internal/services/quiz/mock"
	"github.com/KirkDiggler/character-forge/internal/testutils"
)

type recordingResponder struct {
	responses []*discordgo.InteractionResponse
	err       error
}

func (r *recordingResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return r.err
}

func (r *recordingResponder) last() *discordgo.InteractionResponse {
	return r.responses[len(r.responses)-1]
}

type recordingRegistrar struct {
	appID, guildID string
	commands       []*discordgo.ApplicationCommand
}

func (r *recordingRegistrar) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	r.appID, r.guildID = appID, guildID
	r.commands = append(r.commands, cmd)
	return cmd, nil
}

func newHandler() *discord.Handler {
	svc := quiz.NewService(&quiz.ServiceConfig{
		Sessions:   quizsessions.NewInMemoryRepository(),
		Characters: characters.NewInMemoryRepository(),
		SeedSource: func() (int64, error) { return 7, nil },
	})
	return discord.NewHandler(&discord.HandlerConfig{QuizService: svc})
}

func member(id string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: id}}
}

func command(userID string, sub *discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:     "interaction-1",
		Type:   discordgo.InteractionApplicationCommand,
		Member: member(userID),
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    "forge",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{sub},
		},
	}
}

func press(userID, customID string) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:     "interaction-2",
		Type:   discordgo.InteractionMessageComponent,
		Member: member(userID),
		Data:   discordgo.MessageComponentInteractionData{CustomID: customID},
	}
}

func buttons(t *testing.T, resp *discordgo.InteractionResponse) []discordgo.Button {
	t.Helper()
	require.NotNil(t, resp.Data)
	var out []discordgo.Button
	for _, c := range resp.Data.Components {
		row, ok := c.(discordgo.ActionsRow)
		require.True(t, ok)
		for _, b := range row.Components {
			button, ok := b.(discordgo.Button)
			require.True(t, ok)
			out = append(out, button)
		}
	}
	return out
}

func TestRegisterCommands(t *testing.T) {
	reg := &recordingRegistrar{}
	require.NoError(t, newHandler().RegisterCommands(reg, "app-1", "guild-1"))

	assert.Equal(t, "app-1", reg.appID)
	assert.Equal(t, "guild-1", reg.guildID)
	require.Len(t, reg.commands, 1)
	assert.Equal(t, "forge", reg.commands[0].Name)
	assert.Len(t, reg.commands[0].Options, 2)
}

func TestQuizFlow(t *testing.T) {
	h := newHandler()
	r := &recordingResponder{}
	ctx := context.Background()

	start := &discordgo.ApplicationCommandInteractionDataOption{
		Name: "start",
		Type: discordgo.ApplicationCommandOptionSubCommand,
	}
	require.NoError(t, h.Handle(ctx, r, command("user-1", start)))

	first := r.last()
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, first.Type)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, first.Data.Flags)
	require.Len(t, first.Data.Embeds, 1)
	assert.Equal(t, "Question 1 of 18", first.Data.Embeds[0].Title)

	total := quizdomain.DefaultCatalog().Len()
	resp := first
	for n := 0; n < total; n++ {
		bs := buttons(t, resp)
		require.Len(t, bs, 5)
		assert.Equal(t, "A", bs[0].Label)

		require.NoError(t, h.Handle(ctx, r, press("user-1", bs[0].CustomID)))
		resp = r.last()
		assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
		if n < total-1 {
			assert.Equal(t, fmt.Sprintf("Question %d of 18", n+2), resp.Data.Embeds[0].Title)
		}
	}

	require.Len(t, resp.Data.Embeds, 1)
	embed := resp.Data.Embeds[0]
	assert.Equal(t, "🎲 Tiefling Paladin (Oath of the Ancients)", embed.Title)
	assert.Equal(t, "Seed 7", embed.Footer.Text)
	assert.Empty(t, resp.Data.Components)
}

func TestAnswer_AnsweredSessionRetriesFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockquiz.NewMockService(ctrl)
	catalog := quizdomain.DefaultCatalog()
	session := &quizdomain.Session{
		ID:      "session-1",
		OwnerID: "user-1",
		Current: catalog.Len(),
		Status:  quizdomain.SessionStatusInProgress,
	}
	char := testutils.CreateTestCharacter("char-1", "user-1")

	svc.EXPECT().GetSession(gomock.Any(), "session-1").Return(session, nil).Times(2)
	svc.EXPECT().Questions().Return(catalog).AnyTimes()
	gomock.InOrder(
		svc.EXPECT().Finish(gomock.Any(), &quiz.FinishInput{SessionID: "session-1"}).Return(nil, errors.New("archive unavailable")),
		svc.EXPECT().Finish(gomock.Any(), &quiz.FinishInput{SessionID: "session-1"}).Return(char, nil),
	)

	h := discord.NewHandler(&discord.HandlerConfig{QuizService: svc})
	r := &recordingResponder{}
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, r, press("user-1", "forge:answer:session-1:a")))
	assert.Equal(t, "archive unavailable", r.last().Data.Embeds[0].Description)

	require.NoError(t, h.Handle(ctx, r, press("user-1", "forge:answer:session-1:a")))
	resp := r.last()
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Equal(t, "🎲 Halfling Rogue (Thief)", resp.Data.Embeds[0].Title)
	assert.Empty(t, resp.Data.Components)
}

func TestCharacterEmbed_DominantTraits(t *testing.T) {
	char := testutils.CreateTestCharacter("char-1", "user-1")
	char.Stats[traits.Mischief] = 4

	embed := discord.CharacterEmbed(char)

	var dominant string
	for _, f := range embed.Fields {
		if f.Name == "Dominant Traits" {
			dominant = f.Value
		}
	}
	assert.Equal(t, "Cunning, Mischief (+4)", dominant)
}

func TestAnswer_OtherUser(t *testing.T) {
	h := newHandler()
	r := &recordingResponder{}
	ctx := context.Background()

	start := &discordgo.ApplicationCommandInteractionDataOption{Name: "start", Type: discordgo.ApplicationCommandOptionSubCommand}
	require.NoError(t, h.Handle(ctx, r, command("user-1", start)))
	customID := buttons(t, r.last())[0].CustomID

	require.NoError(t, h.Handle(ctx, r, press("user-2", customID)))
	assert.Equal(t, discordgo.MessageFlagsEphemeral, r.last().Data.Flags)
	assert.Contains(t, r.last().Data.Content, "belongs to someone else")
}

func TestAnswer_UnknownSession(t *testing.T) {
	r := &recordingResponder{}
	require.NoError(t, newHandler().Handle(context.Background(), r, press("user-1", "forge:answer:missing:a")))

	require.Len(t, r.responses, 1)
	require.Len(t, r.last().Data.Embeds, 1)
	assert.Equal(t, "❌ Something went wrong", r.last().Data.Embeds[0].Title)
}

func TestIgnoresForeignComponents(t *testing.T) {
	r := &recordingResponder{}
	require.NoError(t, newHandler().Handle(context.Background(), r, press("user-1", "character_create:race_select")))
	assert.Empty(t, r.responses)
}

func TestDemo(t *testing.T) {
	r := &recordingResponder{}
	demo := &discordgo.ApplicationCommandInteractionDataOption{
		Name: "demo",
		Type: discordgo.ApplicationCommandOptionSubCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "seed", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(1234)},
		},
	}

	require.NoError(t, newHandler().Handle(context.Background(), r, command("user-1", demo)))

	resp := r.last()
	assert.Equal(t, "Demo run (seed 1234)", resp.Data.Content)
	require.Len(t, resp.Data.Embeds, 1)
	assert.Equal(t, "🎲 Half-Elf Paladin (Oath of Devotion)", resp.Data.Embeds[0].Title)
}

func TestDemo_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockquiz.NewMockService(ctrl)
	svc.EXPECT().Demo(gomock.Any(), gomock.Nil()).Return(nil, errors.New("no entropy"))

	h := discord.NewHandler(&discord.HandlerConfig{QuizService: svc})
	r := &recordingResponder{}
	demo := &discordgo.ApplicationCommandInteractionDataOption{Name: "demo", Type: discordgo.ApplicationCommandOptionSubCommand}

	require.NoError(t, h.Handle(context.Background(), r, command("user-1", demo)))
	assert.Equal(t, "no entropy", r.last().Data.Embeds[0].Description)
}

func TestParseCustomID(t *testing.T) {
	id, err := discord.ParseCustomID("forge:answer:session-1:c")
	require.NoError(t, err)
	assert.Equal(t, "forge", id.Domain)
	assert.Equal(t, "answer", id.Action)
	assert.Equal(t, "session-1", id.Target)
	assert.Equal(t, []string{"c"}, id.Args)

	encoded, err := id.Encode()
	require.NoError(t, err)
	assert.Equal(t, "forge:answer:session-1:c", encoded)

	_, err = discord.ParseCustomID("forge")
	assert.Error(t, err)
	_, err = discord.ParseCustomID("")
	assert.Error(t, err)
}

