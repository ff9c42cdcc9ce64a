package command

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

var ErrCommandFormat = errors.New("invalid command format")

// lookupTypes resolves option values against the catalog, skipping absent
// optional fields and repeated types.
func lookupTypes(catalog *model.Catalog, first discordField[string], rest ...*discordField[string]) ([]model.Type, error) {
	names := []string{first.Value}
	for _, field := range rest {
		if field != nil {
			names = append(names, field.Value)
		}
	}

	types := make([]model.Type, 0, len(names))
	seen := model.TypeSet(0)
	for _, name := range names {
		t, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		if seen.Has(t) {
			continue
		}
		seen = seen.With(t)
		types = append(types, t)
	}
	return types, nil
}

// focusedPrefix returns the partial value of whichever field is being typed.
func focusedPrefix(first discordField[string], rest ...*discordField[string]) (string, error) {
	if first.Focused {
		return first.Value, nil
	}
	for _, field := range rest {
		if field != nil && field.Focused {
			return field.Value, nil
		}
	}
	return "", fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
}

func invalidTypeResponse(err error) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("Could not read types: %v.", err),
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

type efficacyNames struct {
	doubleStrong string
	strong       string
	neutral      string
	weak         string
	doubleWeak   string
	immune       string
}

func efficaciesToFields(
	effs []model.TypeEfficacy,
	includeAll bool,
	names efficacyNames,
	emojis Emojis,
) []*discordgo.MessageEmbedField {
	groups := model.GroupByLevel(effs)
	fields := make([]*discordgo.MessageEmbedField, 0, 6)
	add := func(name string, level model.EfficacyLevel, always bool) {
		types := groups[level]
		switch {
		case len(types) > 0:
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:  name,
				Value: emojis.Labels(types),
			})
		case always:
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:  name,
				Value: "_None_",
			})
		}
	}

	add(names.doubleStrong, model.DoubleSuperEffective, false)
	add(names.strong, model.SuperEffective, includeAll)
	if includeAll {
		add(names.neutral, model.NormalEffective, true)
	}
	add(names.weak, model.NotVeryEffective, includeAll)
	add(names.doubleWeak, model.DoubleNotVeryEffective, false)
	add(names.immune, model.Immune, includeAll)

	return fields
}

// pageButtons returns the navigation row for a paginated response, or nil
// when everything fits on one page.
func (p paginator[T]) pageButtons(cmdName string, total int) (*discordgo.ActionsRow, error) {
	hasNext := p.Page.Offset+p.Page.Limit < total
	if p.Page.Offset == 0 && !hasNext {
		return nil, nil
	}

	button := func(label string, offset int, disabled bool) (discordgo.Button, error) {
		next := paginator[T]{
			Options: p.Options,
			Page: Page{
				Limit:  p.Page.Limit,
				Offset: offset,
			},
		}
		id, err := customID(next, &cmdName)
		if err != nil {
			return discordgo.Button{}, fmt.Errorf("failed to create %q button: %w", label, err)
		}
		return discordgo.Button{
			Style:    discordgo.PrimaryButton,
			Label:    label,
			CustomID: id,
			Disabled: disabled,
		}, nil
	}

	home, err := button("⏮", 0, p.Page.Offset == 0)
	if err != nil {
		return nil, err
	}

	prevOffset := p.Page.Offset - p.Page.Limit
	prev, err := button("⏴", max(prevOffset, 0), prevOffset < 0)
	if err != nil {
		return nil, err
	}

	next, err := button("⏵", p.Page.Offset+p.Page.Limit, !hasNext)
	if err != nil {
		return nil, err
	}

	return &discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			home,
			prev,
			next,
		},
	}, nil
}

// window clamps a page to the bounds of a slice of length n.
func (p Page) window(n int) (int, int) {
	start := min(max(p.Offset, 0), n)
	end := min(start+p.Limit, n)
	return start, end
}
