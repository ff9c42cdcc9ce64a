package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tbc02/pokecalc-plus/pkg/bot"
	"github.com/tbc02/pokecalc-plus/pkg/config"
	"github.com/tbc02/pokecalc-plus/pkg/generate"
	"github.com/tbc02/pokecalc-plus/pkg/model"
	"github.com/tbc02/pokecalc-plus/pkg/pokeapi"
)

var ErrChartMismatch = errors.New("type chart differs from database")

type app struct {
	catalog *model.Catalog
	config  *config.Config

	configPath string
	format     string

	in  io.Reader
	out io.Writer
}

func (a *app) renderer() (Renderer, error) {
	f := a.format
	if f == "" {
		f = a.config.Output.Format
	}

	format, err := ParseFormat(f)
	if err != nil {
		return Renderer{}, fmt.Errorf("could not select output format: %w", err)
	}
	return NewRenderer(format, a.out), nil
}

// NewRoot builds the typetester command tree reading from in, printing results
// to out and logs to errOut.
func NewRoot(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		catalog: model.Default(),
		in:      in,
		out:     out,
	}

	root := &cobra.Command{
		Use:           "typetester",
		Short:         "Find the type combinations that resist a set of attacking types.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(a.configPath)
			if err != nil {
				return fmt.Errorf("error while reading config: %w", err)
			}
			a.config = cfg

			err = setupLogging(cfg, errOut)
			if err != nil {
				return fmt.Errorf("error while configuring logging: %w", err)
			}
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "path to the TOML config file")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format: text, json or yaml")

	root.AddCommand(
		a.resistCommand(),
		a.weakCommand(),
		a.coverageCommand(),
		a.randomCommand(),
		a.verifyCommand(),
		a.botCommand(),
	)

	return root
}

func (a *app) resistCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resist [type...]",
		Short: "List every single or dual type resisting or immune to all given attack types.",
		Long: "List every single or dual type resisting or immune to all given attack types.\n" +
			"Without arguments the attack types are read interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}

			var attacks []model.Type
			if len(args) == 0 {
				attacks, err = NewPrompter(a.in, a.out).AttackTypes(a.catalog)
				if errors.Is(err, ErrNoInput) {
					return nil
				}
			} else {
				attacks, err = ResolveAttackTypes(a.catalog, args)
			}
			if err != nil {
				return err
			}

			combos, err := a.catalog.FindAllResistantCombinations(attacks)
			if err != nil {
				return fmt.Errorf("error while searching type combinations: %w", err)
			}
			log.Debug().Stringer("attacks", model.NewTypeSet(attacks...)).Int("results", len(combos)).Msg("search finished")

			return r.Resist(NewResistReport(attacks, combos))
		},
	}
}

func (a *app) weakCommand() *cobra.Command {
	var immune []string
	cmd := &cobra.Command{
		Use:   "weak <type> [type]",
		Short: "Show the defensive type chart of a single or dual type.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}

			types, err := ResolveAttackTypes(a.catalog, args)
			if err != nil {
				return fmt.Errorf("could not resolve defending types: %w", err)
			}
			combo := model.SingleType(types[0])
			if len(types) == 2 {
				combo = model.DualType(types[0], types[1])
			}

			for _, name := range immune {
				typ, err := a.catalog.Lookup(name)
				if err != nil {
					return fmt.Errorf("could not resolve extra immunity: %w", err)
				}
				combo = combo.WithExtraImmunities(typ)
			}

			return r.Chart(NewDefensiveReport(a.catalog, combo))
		},
	}
	cmd.Flags().StringSliceVar(&immune, "immune", nil, "extra immunities granted by an ability, e.g. --immune ground")

	return cmd
}

func (a *app) coverageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <type>",
		Short: "Show the offensive type chart of an attack type.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}

			typ, err := a.catalog.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("could not resolve attack type: %w", err)
			}

			return r.Chart(NewOffensiveReport(a.catalog, typ))
		},
	}
}

func (a *app) randomCommand() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random single or dual type and show its defensive chart.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			log.Debug().Int64("seed", seed).Msg("generating random type combination")

			combo := generate.Combo(rand.New(rand.NewSource(seed)))
			return r.Chart(NewDefensiveReport(a.catalog, combo))
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, defaults to the current time")

	return cmd
}

func (a *app) verifyCommand() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the embedded type chart against a PokeAPI sqlite database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = a.config.DB.Path
			}
			if dbPath == "" {
				return config.ErrMissingDB
			}

			db, err := pokeapi.Open(cmd.Context(), dbPath)
			if err != nil {
				return fmt.Errorf("error while opening database %q: %w", dbPath, err)
			}
			defer func() {
				err := db.Close()
				if err != nil {
					log.Warn().Err(err).Msg("error while closing database")
				}
			}()

			loaded, err := db.Catalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("error while loading type chart: %w", err)
			}

			diffs := pokeapi.Diff(a.catalog, loaded)
			for _, diff := range diffs {
				fmt.Fprintln(a.out, diff)
			}
			if len(diffs) > 0 {
				return fmt.Errorf("%d differences: %w", len(diffs), ErrChartMismatch)
			}

			fmt.Fprintln(a.out, "Type chart matches the database.")
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "PokeAPI sqlite database, defaults to [database] path")

	return cmd
}

func (a *app) botCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve the type chart commands on Discord.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bot.New(cmd.Context(), *a.config, a.catalog)
			if err != nil {
				return fmt.Errorf("error while creating bot: %w", err)
			}

			return b.Run(cmd.Context())
		},
	}
}
