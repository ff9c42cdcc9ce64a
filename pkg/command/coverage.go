package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type coverageOptions struct {
	Type discordField[string] `option:"type"`
}

type coverageResponder struct {
	catalog           *model.Catalog
	emojis            Emojis
	autocompleteLimit int
}

func (resp coverageResponder) Handle(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *coverageOptions,
) (*discordgo.InteractionResponseData, error) {
	attack, err := resp.catalog.Lookup(opt.Type.Value)
	if err != nil {
		return invalidTypeResponse(err), nil
	}

	fields := efficaciesToFields(resp.catalog.AttackingEfficacies(attack), true, efficacyNames{
		strong:  "Super effective (2x)",
		neutral: "Effective (1x)",
		weak:    "Not very effective (0.5x)",
		immune:  "No effect (0x)",
	}, resp.emojis)

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       resp.emojis.Label(attack),
				Description: "Offensive type chart for " + attack.String(),
				Fields:      fields,
			},
		},
	}, nil
}

func (resp coverageResponder) Autocomplete(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *coverageOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	prefix, err := focusedPrefix(opt.Type)
	if err != nil {
		return nil, err
	}

	s := typeSearcher{
		catalog: resp.catalog,
		prefix:  prefix,
		limit:   resp.autocompleteLimit,
	}
	return s.Choices(), nil
}

func (builder *Builder) coverage() Command {
	resp := coverageResponder{
		catalog:           builder.catalog,
		emojis:            builder.emojis,
		autocompleteLimit: builder.config.Bot.AutocompleteLimit,
	}

	return command[coverageOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "coverage",
			Description: "View type chart for an attacking type.",
			Options: []*discordgo.ApplicationCommandOption{
				typeOption("type", "Name of the attacking type", true),
			},
		},
		handle:       resp.Handle,
		autocomplete: resp.Autocomplete,
	}
}
