package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/tbc02/pokecalc-plus/pkg/config"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut strings.Builder
	root := NewRoot(strings.NewReader(input), &out, &errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestResistCommandArgs(t *testing.T) {
	out, err := execute(t, "", "resist", "fire", "WATER", "fire")
	if err != nil {
		t.Fatalf("resist error = %v", err)
	}

	wantPrefix := "\nThe following type combination(s) resist [Fire, Water]:\nWater\nDragon\nNormal & Dragon\n"
	if !strings.HasPrefix(out, wantPrefix) {
		t.Errorf("resist output starts with %q, want %q", out[:min(len(out), len(wantPrefix))], wantPrefix)
	}
	if lines := strings.Count(out, "\n"); lines != 23 {
		t.Errorf("resist printed %d lines, want 23:\n%s", lines, out)
	}
}

func TestResistCommandInteractive(t *testing.T) {
	out, err := execute(t, "normal\nfighting\nghost\ndark\ndone\n", "resist")
	if err != nil {
		t.Fatalf("resist error = %v", err)
	}
	if !strings.HasSuffix(out, "resist [Normal, Fighting, Ghost, Dark]:\nNo such type combination exists.\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestResistCommandInteractiveEmpty(t *testing.T) {
	out, err := execute(t, "done\n", "resist")
	if err != nil {
		t.Fatalf("resist error = %v", err)
	}
	if strings.Contains(out, "The following type combination(s)") {
		t.Errorf("search should not run without attack types:\n%s", out)
	}
}

func TestResistCommandUnknownType(t *testing.T) {
	_, err := execute(t, "", "resist", "fire", "lava")
	if err == nil {
		t.Error("resist error = nil, want unknown type error")
	}
}

func TestResistCommandJSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "resist", "normal")
	if err != nil {
		t.Fatalf("resist error = %v", err)
	}

	var report ResistReport
	err = sonic.UnmarshalString(out, &report)
	if err != nil {
		t.Fatalf("could not decode %q: %v", out, err)
	}
	if len(report.Combinations) != 51 {
		t.Errorf("got %d combinations, want 51", len(report.Combinations))
	}
}

func TestWeakCommand(t *testing.T) {
	out, err := execute(t, "", "weak", "ghost", "--immune", "ground")
	if err != nil {
		t.Fatalf("weak error = %v", err)
	}
	if !strings.Contains(out, "Immunities: Normal, Fighting, Ground\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCoverageCommand(t *testing.T) {
	out, err := execute(t, "", "coverage", "ground")
	if err != nil {
		t.Fatalf("coverage error = %v", err)
	}
	if !strings.Contains(out, "Immune: Flying\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRandomCommandSeeded(t *testing.T) {
	first, err := execute(t, "", "random", "--seed", "7")
	if err != nil {
		t.Fatalf("random error = %v", err)
	}
	second, err := execute(t, "", "random", "--seed", "7")
	if err != nil {
		t.Fatalf("random error = %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different charts:\n%s\n%s", first, second)
	}
}

func TestVerifyCommandWithoutDatabase(t *testing.T) {
	_, err := execute(t, "", "verify")
	if !errors.Is(err, config.ErrMissingDB) {
		t.Errorf("verify error = %v, want %v", err, config.ErrMissingDB)
	}
}

func TestBotCommandWithoutToken(t *testing.T) {
	_, err := execute(t, "", "bot")
	if !errors.Is(err, config.ErrMissingToken) {
		t.Errorf("bot error = %v, want %v", err, config.ErrMissingToken)
	}
}
