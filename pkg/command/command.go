package command

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/bwmarrin/discordgo"
)

type (
	Page struct {
		Limit  int
		Offset int
	}

	Command interface {
		ApplicationCommand() *discordgo.ApplicationCommand
		Handle(context.Context, *discordgo.Session, *discordgo.InteractionCreate) error
		Autocomplete(context.Context, *discordgo.Session, *discordgo.InteractionCreate) error
		Button(context.Context, *discordgo.Session, *discordgo.InteractionCreate, io.Reader) error
		Name() string
	}

	action interface {
		Name() byte
	}

	handler[S any, T any] func(context.Context, *discordgo.Session, *discordgo.InteractionCreate, S) (T, error)
	paginator[T any]      struct {
		Options T
		Page    Page
	}

	command[T any] struct {
		applicationCommand *discordgo.ApplicationCommand
		handle             handler[*T, *discordgo.InteractionResponseData]
		autocomplete       handler[*T, []*discordgo.ApplicationCommandOptionChoice]
		paginate           handler[paginator[T], *discordgo.InteractionResponseData]
		limit              *int
	}
)

func (paginator[T]) Name() byte {
	return 'p'
}

// customID packs the command name, the action and its state into a button
// ID. Four random bytes keep IDs unique within a message.
func customID(a action, cmdName *string) (string, error) {
	cmdData, err := marshal(cmdName)
	if err != nil {
		return "", fmt.Errorf("failed to marshal follow-up command: %w", err)
	}

	actionData, err := marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to marshal button data: %w", err)
	}

	var nonce [4]byte
	_, err = rand.Read(nonce[:])
	if err != nil {
		return "", fmt.Errorf("failed to generate button nonce: %w", err)
	}

	raw := cmdData + string(a.Name()) + actionData + string(nonce[:])
	return base64.RawURLEncoding.EncodeToString([]byte(raw)), nil
}

// ButtonFollowUp decodes a button ID, returning the name of the command that
// owns it and a reader positioned at the command's action.
func ButtonFollowUp(id string) (string, io.Reader, error) {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return "", nil, fmt.Errorf("malformed button id: %w", err)
	}

	reader := bytes.NewReader(raw)
	name, err := unmarshal[*string](reader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal follow-up command: %w", err)
	}
	if *name == nil {
		return "", nil, fmt.Errorf("button has no command: %w", ErrUnrecognizedInteraction)
	}

	return **name, reader, nil
}

func buttonState[T action](reader io.Reader) (*T, error) {
	state, err := unmarshal[T](reader)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal button state: %w", err)
	}

	return state, nil
}

func (cmd command[T]) ApplicationCommand() *discordgo.ApplicationCommand {
	return cmd.applicationCommand
}

func (cmd command[T]) Name() string {
	return cmd.applicationCommand.Name
}

var ErrUnrecognizedInteraction = errors.New("could not handle interaction")

func (cmd command[T]) responseBody(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt T,
) (*discordgo.InteractionResponseData, error) {
	var body *discordgo.InteractionResponseData
	var err error
	if cmd.handle != nil {
		body, err = cmd.handle(ctx, sess, interaction, &opt)
		if err != nil {
			return nil, fmt.Errorf("error while calling handler: %w", err)
		}
	} else if cmd.paginate != nil && cmd.limit != nil {
		paginator := paginator[T]{
			Options: opt,
			Page: Page{
				Limit:  *cmd.limit,
				Offset: 0,
			},
		}
		body, err = cmd.paginate(ctx, sess, interaction, paginator)
		if err != nil {
			return nil, fmt.Errorf("error while calling handler: %w", err)
		}
	} else {
		return nil, fmt.Errorf("no handler for command: %w", ErrUnrecognizedInteraction)
	}

	return body, nil
}

func (cmd command[T]) Handle(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	data := interaction.ApplicationCommandData()

	var structure T
	err := decodeOptions(data.Options, &structure)
	if err != nil {
		return fmt.Errorf("error while decoding options for command %q: %w", data.Name, err)
	}

	body, err := cmd.responseBody(ctx, sess, interaction, structure)
	if err != nil {
		return fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: body,
	})
	if err != nil {
		return fmt.Errorf("error while responding to command %q: %w", cmd.Name(), err)
	}

	return nil
}

func (cmd command[T]) Button(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	reader io.Reader,
) error {
	var action [1]byte
	_, err := io.ReadFull(reader, action[:])
	if err != nil {
		return fmt.Errorf("could not read action from button state: %w", err)
	}

	switch action[0] {
	case paginator[T]{}.Name():
		if cmd.paginate == nil {
			return fmt.Errorf("command %q does not paginate: %w", cmd.Name(), ErrUnrecognizedInteraction)
		}

		page, err := buttonState[paginator[T]](reader)
		if err != nil {
			return fmt.Errorf("error while deserializing pagination data: %w", err)
		}

		body, err := cmd.paginate(ctx, sess, interaction, *page)
		if err != nil {
			return fmt.Errorf("error while calling pagination handler: %w", err)
		}

		err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: body,
		})
		if err != nil {
			return fmt.Errorf("failed to update paginated message: %w", err)
		}

	default:
		return fmt.Errorf("unknown button action %q: %w", action, ErrUnrecognizedInteraction)
	}

	return nil
}

func (cmd command[T]) Autocomplete(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	if cmd.autocomplete == nil {
		return fmt.Errorf("command %q has no autocompletion: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	var structure T
	err := decodeOptions(interaction.ApplicationCommandData().Options, &structure)
	if err != nil {
		return fmt.Errorf("error while decoding options for autocomplete: %w", err)
	}

	choices, err := cmd.autocomplete(ctx, sess, interaction, &structure)
	if err != nil {
		return fmt.Errorf("error while calling autocompletion handler: %w", err)
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		return fmt.Errorf("error while sending autocompletions: %w", err)
	}

	return nil
}
