package pokeapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tbc02/pokecalc-plus/pkg/model"
)

func logger() *zerolog.Logger {
	l := log.With().Str("module", "pokeapi").Logger()
	return &l
}

// DB is a read-only handle on a PokeAPI sqlite dump.
type DB struct {
	db *sqlx.DB
}

func Open(ctx context.Context, dbPath string) (*DB, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

type typeRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type efficacyRow struct {
	DamageFactor int `db:"damage_factor"`
	DamageTypeID int `db:"damage_type_id"`
	TargetTypeID int `db:"target_type_id"`
}

// types maps database type IDs to chart types. Rows that are not part of the
// 18-type chart, such as "unknown" and "shadow", are skipped.
func (d *DB) types(ctx context.Context) (map[int]model.Type, error) {
	var rows []typeRow
	err := d.db.SelectContext(ctx, &rows,
		/* sql */ `
		SELECT id, name
		FROM pokemon_v2_type
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting all types: %w", err)
	}

	dbLog := logger()
	types := make(map[int]model.Type, model.NumTypes)
	for _, row := range rows {
		typ, err := model.TypeString(row.Name)
		if err != nil {
			dbLog.Debug().Int("id", row.ID).Str("name", row.Name).Msg("skipping type outside the chart")
			continue
		}
		types[row.ID] = typ
	}

	return types, nil
}

var ErrUnexpectedDamageFactor = errors.New("unexpected damage factor")

// Catalog builds a type chart from the pokemon_v2_typeefficacy table.
func (d *DB) Catalog(ctx context.Context) (*model.Catalog, error) {
	types, err := d.types(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not resolve chart types: %w", err)
	}

	var effs []efficacyRow
	err = d.db.SelectContext(ctx, &effs,
		/* sql */ `
		SELECT damage_factor, damage_type_id, target_type_id
		FROM pokemon_v2_typeefficacy
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting type efficacies: %w", err)
	}

	rows := make(map[model.Type]model.Relations, model.NumTypes)
	for _, typ := range types {
		rows[typ] = model.Relations{}
	}

	for _, eff := range effs {
		attack, ok := types[eff.DamageTypeID]
		if !ok {
			continue
		}
		defender, ok := types[eff.TargetTypeID]
		if !ok {
			continue
		}

		rel := rows[defender]
		switch model.EfficacyLevel(eff.DamageFactor) {
		case model.SuperEffective:
			rel.WeakTo = rel.WeakTo.With(attack)
		case model.NotVeryEffective:
			rel.ResistantTo = rel.ResistantTo.With(attack)
		case model.Immune:
			rel.ImmuneTo = rel.ImmuneTo.With(attack)
		case model.NormalEffective:
		default:
			return nil, fmt.Errorf("factor %d for %s against %s: %w",
				eff.DamageFactor, attack, defender, ErrUnexpectedDamageFactor)
		}
		rows[defender] = rel
	}

	catalog, err := model.NewCatalog(rows)
	if err != nil {
		return nil, fmt.Errorf("type efficacies do not form a valid chart: %w", err)
	}
	logger().Debug().Int("types", len(types)).Int("efficacies", len(effs)).Msg("loaded type chart")

	return catalog, nil
}
