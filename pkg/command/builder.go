package command

import (
	"math/rand"

	"github.com/tbc02/pokecalc-plus/pkg/config"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

type commandFunc func(*Builder) Command

type Builder struct {
	catalog *model.Catalog
	config  config.Config
	emojis  Emojis
	rand    *rand.Rand
	funcs   []commandFunc
}

func NewBuilder(catalog *model.Catalog, cfg config.Config, emojis Emojis, r *rand.Rand) *Builder {
	return &Builder{
		catalog: catalog,
		config:  cfg,
		emojis:  emojis,
		rand:    r,
		funcs: []commandFunc{
			(*Builder).resist,
			(*Builder).weak,
			(*Builder).coverage,
			(*Builder).random,
		},
	}
}

// Commands builds every command, keyed by name.
func (builder *Builder) Commands() map[string]Command {
	cmds := make(map[string]Command, len(builder.funcs))
	for _, f := range builder.funcs {
		cmd := f(builder)
		cmds[cmd.Name()] = cmd
	}
	return cmds
}
