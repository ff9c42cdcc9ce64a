package command

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/tbc02/pokecalc-plus/pkg/generate"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type randomOptions struct{}

func (builder *Builder) random() Command {
	catalog := builder.catalog
	emojis := builder.emojis
	r := builder.rand
	var mu sync.Mutex

	return command[randomOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "random",
			Description: "Roll a random type combination and show what it is weak to.",
		},
		handle: func(
			ctx context.Context,
			sess *discordgo.Session,
			interaction *discordgo.InteractionCreate,
			opt *randomOptions,
		) (*discordgo.InteractionResponseData, error) {
			mu.Lock()
			combo := generate.Combo(r)
			mu.Unlock()

			effs := catalog.Weaknesses(combo)
			description := "No weaknesses."
			if len(effs) > 0 {
				types := make([]model.Type, len(effs))
				for i, te := range effs {
					types[i] = te.OpposingType
				}
				description = "Weak to " + emojis.Labels(types)
			}

			return &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{
					{
						Title:       combo.String(),
						Description: description,
					},
				},
			}, nil
		},
	}
}
