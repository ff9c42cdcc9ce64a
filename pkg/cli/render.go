package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tbc02/pokecalc-plus/pkg/model"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

type ResistReport struct {
	Attacks      []string `json:"attacks" yaml:"attacks"`
	Combinations []string `json:"combinations" yaml:"combinations"`
}

func NewResistReport(attacks []model.Type, combos []model.TypeCombo) ResistReport {
	report := ResistReport{
		Attacks:      make([]string, len(attacks)),
		Combinations: make([]string, len(combos)),
	}
	for i, typ := range attacks {
		report.Attacks[i] = typ.String()
	}
	for i, combo := range combos {
		report.Combinations[i] = combo.String()
	}
	return report
}

type Efficacy struct {
	Type       string  `json:"type" yaml:"type"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

func newEfficacies(effs []model.TypeEfficacy) []Efficacy {
	out := make([]Efficacy, len(effs))
	for i, te := range effs {
		out[i] = Efficacy{Type: te.OpposingType.String(), Multiplier: te.Level.Multiplier()}
	}
	return out
}

// ChartReport is a type chart seen from one side: the defending combination
// or the attacking type named by Subject.
type ChartReport struct {
	Subject    string     `json:"subject" yaml:"subject"`
	Offensive  bool       `json:"offensive" yaml:"offensive"`
	Efficacies []Efficacy `json:"efficacies" yaml:"efficacies"`

	effs []model.TypeEfficacy
}

func NewDefensiveReport(catalog *model.Catalog, combo model.TypeCombo) ChartReport {
	effs := catalog.DefensiveChart(combo)

	return ChartReport{
		Subject:    combo.String(),
		Efficacies: newEfficacies(effs),
		effs:       effs,
	}
}

func NewOffensiveReport(catalog *model.Catalog, attack model.Type) ChartReport {
	effs := catalog.AttackingEfficacies(attack)
	return ChartReport{
		Subject:    attack.String(),
		Offensive:  true,
		Efficacies: newEfficacies(effs),
		effs:       effs,
	}
}

type Renderer struct {
	format Format
	out    io.Writer
}

func NewRenderer(format Format, out io.Writer) Renderer {
	return Renderer{format: format, out: out}
}

func (r Renderer) structured(v any) (bool, error) {
	switch r.format {
	case FormatJSON:
		b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(r.out, string(b))
		return true, err
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if err != nil {
			return true, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func (r Renderer) Resist(report ResistReport) error {
	ok, err := r.structured(report)
	if ok {
		return err
	}

	var subject string
	if len(report.Attacks) == 1 {
		subject = report.Attacks[0]
	} else {
		subject = "[" + strings.Join(report.Attacks, ", ") + "]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nThe following type combination(s) resist %s:\n", subject)
	if len(report.Combinations) == 0 {
		b.WriteString("No such type combination exists.\n")
	}
	for _, combo := range report.Combinations {
		b.WriteString(combo)
		b.WriteByte('\n')
	}

	_, err = io.WriteString(r.out, b.String())
	return err
}

type efficacyNames struct {
	doubleStrong string
	strong       string
	neutral      string
	weak         string
	doubleWeak   string
	immune       string
}

var (
	defensiveNames = efficacyNames{
		doubleStrong: "Weaknesses (4x)",
		strong:       "Weaknesses (2x)",
		weak:         "Resistances (0.5x)",
		doubleWeak:   "Resistances (0.25x)",
		immune:       "Immunities",
	}
	offensiveNames = efficacyNames{
		strong:  "Super Effective (2x)",
		neutral: "Neutral (1x)",
		weak:    "Resists (0.5x)",
		immune:  "Immune",
	}
)

// chartLines lays a chart out as "name: types" lines. Defensive charts skip
// empty groups, offensive charts list every group.
func chartLines(effs []model.TypeEfficacy, includeAll bool, names efficacyNames) []string {
	groups := model.GroupByLevel(effs)
	order := []struct {
		name  string
		level model.EfficacyLevel
	}{
		{names.doubleStrong, model.DoubleSuperEffective},
		{names.strong, model.SuperEffective},
		{names.neutral, model.NormalEffective},
		{names.weak, model.NotVeryEffective},
		{names.doubleWeak, model.DoubleNotVeryEffective},
		{names.immune, model.Immune},
	}

	lines := make([]string, 0, len(order))
	for _, group := range order {
		if group.name == "" {
			continue
		}

		types := groups[group.level]
		if len(types) == 0 {
			if includeAll {
				lines = append(lines, group.name+": None")
			}
			continue
		}

		typeNames := make([]string, len(types))
		for i, typ := range types {
			typeNames[i] = typ.String()
		}
		lines = append(lines, group.name+": "+strings.Join(typeNames, ", "))
	}

	return lines
}

func (r Renderer) Chart(report ChartReport) error {
	ok, err := r.structured(report)
	if ok {
		return err
	}

	var lines []string
	if report.Offensive {
		lines = append([]string{report.Subject, "Offensive type chart"}, chartLines(report.effs, true, offensiveNames)...)
	} else {
		lines = append([]string{report.Subject, "Defensive type chart"}, chartLines(report.effs, false, defensiveNames)...)
	}

	_, err = fmt.Fprintln(r.out, strings.Join(lines, "\n"))
	return err
}
