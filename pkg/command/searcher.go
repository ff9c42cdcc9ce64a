package command

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type typeSearcher struct {
	catalog *model.Catalog
	prefix  string
	limit   int
}

// Search returns the types whose names start with the prefix, ignoring case,
// in canonical order.
func (s typeSearcher) Search() []model.Type {
	prefix := strings.ToLower(strings.TrimSpace(s.prefix))
	results := make([]model.Type, 0, s.limit)
	for _, t := range s.catalog.All() {
		if len(results) == s.limit {
			break
		}
		if strings.HasPrefix(strings.ToLower(t.String()), prefix) {
			results = append(results, t)
		}
	}
	return results
}

func (s typeSearcher) Choices() []*discordgo.ApplicationCommandOptionChoice {
	results := s.Search()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(results))
	for i, t := range results {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  t.String(),
			Value: strings.ToLower(t.String()),
		}
	}
	return choices
}
