package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tbc02/pokecalc-plus/pkg/model"
)

const (
	welcome = `Welcome to Pokemon Type Tester!

This program will return a list of all Pokemon type combinations which resist a set of types.
Enter the name of a Pokemon type to add it to the list of types to check and enter "done" to finalize your list.
`
	promptLine = "Enter the name of a Pokemon type: "
	doneWord   = "done"
	noInput    = "Don't know why you used this program if you weren't going to test any types... kinda weird.."
)

var ErrNoInput = errors.New("no attack types entered")

// Prompter collects attack types interactively, one name per line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// AttackTypes reads names until "done" or end of input. Unknown names are
// reported and skipped, repeated names are ignored. It returns ErrNoInput when
// the list is finished empty.
func (p *Prompter) AttackTypes(catalog *model.Catalog) ([]model.Type, error) {
	fmt.Fprint(p.out, welcome+"\n")

	var types []model.Type
	seen := model.TypeSet(0)
	for {
		fmt.Fprint(p.out, promptLine)
		if !p.in.Scan() {
			err := p.in.Err()
			if err != nil {
				return nil, fmt.Errorf("failed to read attack types: %w", err)
			}
			fmt.Fprintln(p.out)
			break
		}

		line := strings.TrimSpace(p.in.Text())
		if strings.EqualFold(line, doneWord) {
			break
		}

		typ, err := catalog.Lookup(line)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid type: %s\n", line)
			continue
		}
		if seen.Has(typ) {
			continue
		}
		seen = seen.With(typ)
		types = append(types, typ)
	}

	if len(types) == 0 {
		fmt.Fprintln(p.out, noInput)
		return nil, ErrNoInput
	}

	return types, nil
}

// ResolveAttackTypes turns command line names into a de-duplicated list,
// keeping first occurrences in order.
func ResolveAttackTypes(catalog *model.Catalog, names []string) ([]model.Type, error) {
	types := make([]model.Type, 0, len(names))
	seen := model.TypeSet(0)
	for _, name := range names {
		typ, err := catalog.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("could not resolve attack type: %w", err)
		}
		if seen.Has(typ) {
			continue
		}
		seen = seen.With(typ)
		types = append(types, typ)
	}

	if len(types) == 0 {
		return nil, ErrNoInput
	}

	return types, nil
}
