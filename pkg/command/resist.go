package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type resistOptions struct {
	Type1 discordField[string]  `option:"type_1"`
	Type2 *discordField[string] `option:"type_2"`
	Type3 *discordField[string] `option:"type_3"`
	Type4 *discordField[string] `option:"type_4"`
}

type resistResponder struct {
	catalog           *model.Catalog
	emojis            Emojis
	autocompleteLimit int
}

func (resp resistResponder) Paginate(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	p paginator[resistOptions],
) (*discordgo.InteractionResponseData, error) {
	opt := p.Options
	attacks, err := lookupTypes(resp.catalog, opt.Type1, opt.Type2, opt.Type3, opt.Type4)
	if err != nil {
		return invalidTypeResponse(err), nil
	}

	combos, err := resp.catalog.FindAllResistantCombinations(attacks)
	if err != nil {
		return nil, fmt.Errorf("error while searching for resistant combinations: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Resists " + resp.emojis.Labels(attacks),
		Description: "No such type combination exists.",
	}
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			embed,
		},
	}
	if len(combos) == 0 {
		return data, nil
	}

	start, end := p.Page.window(len(combos))
	lines := make([]string, 0, end-start)
	for _, combo := range combos[start:end] {
		lines = append(lines, fmt.Sprintf("%s ▸ %s", resp.emojis.ComboLabel(combo), combo))
	}
	embed.Description = strings.Join(lines, "\n")
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%d-%d of %d", start+1, end, len(combos)),
	}

	buttons, err := p.pageButtons("resist", len(combos))
	if err != nil {
		return nil, fmt.Errorf("error while creating page buttons: %w", err)
	}
	if buttons != nil {
		data.Components = []discordgo.MessageComponent{
			buttons,
		}
	}

	return data, nil
}

func (resp resistResponder) Autocomplete(
	ctx context.Context,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	opt *resistOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	prefix, err := focusedPrefix(opt.Type1, opt.Type2, opt.Type3, opt.Type4)
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

func typeOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     required,
		Autocomplete: true,
	}
}

func (builder *Builder) resist() Command {
	resp := resistResponder{
		catalog:           builder.catalog,
		emojis:            builder.emojis,
		autocompleteLimit: builder.config.Bot.AutocompleteLimit,
	}

	return command[resistOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "resist",
			Description: "Find every type combination resisting or immune to all of the given attack types.",
			Options: []*discordgo.ApplicationCommandOption{
				typeOption("type_1", "First attacking type", true),
				typeOption("type_2", "Second attacking type", false),
				typeOption("type_3", "Third attacking type", false),
				typeOption("type_4", "Fourth attacking type", false),
			},
		},
		paginate:     resp.Paginate,
		autocomplete: resp.Autocomplete,
		limit:        &builder.config.Bot.ResultLimit,
	}
}
