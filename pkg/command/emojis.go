package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

// Emojis holds custom emojis keyed by name. Each type is drawn with two
// halves, "fire1" and "fire2".
type Emojis map[string]*discordgo.Emoji

func NewEmojis(emojis []*discordgo.Emoji) Emojis {
	m := make(Emojis, len(emojis))
	for _, emoji := range emojis {
		m[emoji.Name] = emoji
	}
	return m
}

// Label renders a type as its emoji pair, or as its name when the pair is not
// available.
func (emojis Emojis) Label(t model.Type) string {
	name := strings.ToLower(t.String())
	emoji1, ok1 := emojis[name+"1"]
	emoji2, ok2 := emojis[name+"2"]
	if !ok1 || !ok2 {
		return fmt.Sprintf("`%s`", t)
	}

	return fmt.Sprintf("<:%v:%v><:%v:%v>", emoji1.Name, emoji1.ID, emoji2.Name, emoji2.ID)
}

func (emojis Emojis) Labels(types []model.Type) string {
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = emojis.Label(t)
	}
	return strings.Join(labels, " ")
}

func (emojis Emojis) ComboLabel(combo model.TypeCombo) string {
	return emojis.Labels(combo.Types())
}
