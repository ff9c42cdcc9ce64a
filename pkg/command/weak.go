package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type weakOptions struct {
	Type1  discordField[string]  `option:"type_1"`
	Type2  *discordField[string] `option:"type_2"`
	Immune *discordField[string] `option:"immune"`
}

type weakResponder struct {
	catalog           *model.Catalog
	emojis            Emojis
	autocompleteLimit int
}

func (resp weakResponder) Handle(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *weakOptions,
) (*discordgo.InteractionResponseData, error) {
	types, err := lookupTypes(resp.catalog, opt.Type1, opt.Type2)
	if err != nil {
		return invalidTypeResponse(err), nil
	}

	combo := model.SingleType(types[0])
	if len(types) > 1 {
		combo = model.DualType(types[0], types[1])
	}
	if opt.Immune != nil {
		immune, err := resp.catalog.Lookup(opt.Immune.Value)
		if err != nil {
			return invalidTypeResponse(err), nil
		}
		combo = combo.WithExtraImmunities(immune)
	}

	fields := efficaciesToFields(resp.catalog.DefensiveChart(combo), false, efficacyNames{
		doubleStrong: "Weaknesses (4x)",
		strong:       "Weaknesses (2x)",
		weak:         "Resistances (0.5x)",
		doubleWeak:   "Resistances (0.25x)",
		immune:       "Immunities",
	}, resp.emojis)

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       resp.emojis.ComboLabel(combo),
				Description: "Defensive type chart for " + combo.String(),
				Fields:      fields,
			},
		},
	}, nil
}

func (resp weakResponder) Autocomplete(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *weakOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	prefix, err := focusedPrefix(opt.Type1, opt.Type2, opt.Immune)
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

func (builder *Builder) weak() Command {
	resp := weakResponder{
		catalog:           builder.catalog,
		emojis:            builder.emojis,
		autocompleteLimit: builder.config.Bot.AutocompleteLimit,
	}

	return command[weakOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "weak",
			Description: "View type chart against a defending type combination.",
			Options: []*discordgo.ApplicationCommandOption{
				typeOption("type_1", "Name of the first type", true),
				typeOption("type_2", "Name of the second type", false),
				typeOption("immune", "Attacking type to treat as an extra immunity", false),
			},
		},
		handle:       resp.Handle,
		autocomplete: resp.Autocomplete,
	}
}
