package bot

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tbc02/pokecalc-plus/pkg/command"
	"github.com/tbc02/pokecalc-plus/pkg/config"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type Bot struct {
	config   config.Config
	catalog  *model.Catalog
	session  *discordgo.Session
	commands map[string]command.Command
}

func New(ctx context.Context, cfg config.Config, catalog *model.Catalog) (*Bot, error) {
	if cfg.Discord.Token == "" {
		return nil, config.ErrMissingToken
	}

	return &Bot{
		config:  cfg,
		catalog: catalog,
	}, nil
}

func logger() *zerolog.Logger {
	l := log.With().Str("module", "bot").Logger()
	return &l
}

func (bot *Bot) Close() {
	logger().Info().Msg("shutting down")
	if bot.session == nil {
		return
	}

	err := bot.session.Close()
	if err != nil {
		logger().Error().Err(err).Msg("error while closing discord session")
	}
}

func (bot *Bot) emojis() (command.Emojis, error) {
	if bot.config.Bot.EmojiGuild == "" {
		return command.Emojis{}, nil
	}

	emojis, err := bot.session.GuildEmojis(bot.config.Bot.EmojiGuild)
	if err != nil {
		return nil, fmt.Errorf("could not fetch emojis from guild %q: %w", bot.config.Bot.EmojiGuild, err)
	}

	return command.NewEmojis(emojis), nil
}

func (bot *Bot) initialize(ctx context.Context) error {
	sess, err := discordgo.New("Bot " + bot.config.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to instantiate discord bot: %w", err)
	}
	bot.session = sess

	err = bot.session.Open()
	if err != nil {
		return fmt.Errorf("failed to start discord session: %w", err)
	}

	emojis, err := bot.emojis()
	if err != nil {
		return fmt.Errorf("error while loading type emojis: %w", err)
	}

	builder := command.NewBuilder(bot.catalog, bot.config, emojis, rand.New(rand.NewSource(time.Now().UnixNano())))
	bot.commands = builder.Commands()

	bot.session.AddHandler(func(sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
		err := bot.dispatch(ctx, sess, interaction)
		if err != nil {
			logger().Error().Err(err).Str("guild", interaction.GuildID).Msg("error while handling interaction")
		}
	})

	err = bot.registerCommands()
	if err != nil {
		return fmt.Errorf("error while registering commands: %w", err)
	}

	return nil
}

func (bot *Bot) Run(ctx context.Context) error {
	defer bot.Close()

	err := bot.initialize(ctx)
	if err != nil {
		return fmt.Errorf("error while initializing bot: %w", err)
	}

	logger().Info().Int("commands", len(bot.commands)).Msg("hosting type tester bot")
	<-ctx.Done()

	return nil
}

var ErrUnknownCommand = errors.New("unknown command")

func (bot *Bot) command(name string) (command.Command, error) {
	cmd, ok := bot.commands[name]
	if !ok {
		return nil, fmt.Errorf("no command named %q: %w", name, ErrUnknownCommand)
	}

	return cmd, nil
}

func (bot *Bot) dispatch(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) error {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		cmd, err := bot.command(interaction.ApplicationCommandData().Name)
		if err != nil {
			return err
		}
		logger().Info().Str("command", cmd.Name()).Str("guild", interaction.GuildID).Msg("command")
		return cmd.Handle(ctx, sess, interaction)
	case discordgo.InteractionApplicationCommandAutocomplete:
		cmd, err := bot.command(interaction.ApplicationCommandData().Name)
		if err != nil {
			return err
		}
		return cmd.Autocomplete(ctx, sess, interaction)
	case discordgo.InteractionMessageComponent:
		name, reader, err := command.ButtonFollowUp(interaction.MessageComponentData().CustomID)
		if err != nil {
			return fmt.Errorf("error while reading button: %w", err)
		}
		cmd, err := bot.command(name)
		if err != nil {
			return err
		}
		return cmd.Button(ctx, sess, interaction, reader)
	default:
		return fmt.Errorf("unexpected interaction type %s: %w", interaction.Type, command.ErrUnrecognizedInteraction)
	}
}

func (bot *Bot) registerCommands() error {
	for _, cmd := range bot.commands {
		_, err := bot.session.ApplicationCommandCreate(bot.session.State.User.ID, "", cmd.ApplicationCommand())
		if err != nil {
			return fmt.Errorf("failed to create command %q: %w", cmd.Name(), err)
		}
		logger().Debug().Str("command", cmd.Name()).Msg("registered command")
	}

	return nil
}
