package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca/internal/census"
	"eca/internal/rule"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "eca", cmd.Use)

	for _, name := range []string{"print", "preview", "census"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "preview", "30", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPrintGolden(t *testing.T) {
	out, _, err := execute(t, "print", "--rule", "30", "--width", "15", "--rows", "8", "--live", "#", "--dead", ".")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "print_rule30", []byte(out))
}

func TestPrintJSON(t *testing.T) {
	out, _, err := execute(t, "print", "--rule", "0b00011110", "--width", "7", "--rows", "2", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   PrintResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 30, resp.Data.Rule)
	assert.Equal(t, []string{"0001000", "0011100"}, resp.Data.Rows)
}

func TestPrintRejectsInvalidArguments(t *testing.T) {
	cases := [][]string{
		{"print", "--rule", "256"},
		{"print", "--width", "2"},
		{"print", "--rows", "0"},
	}
	for _, args := range cases {
		_, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
		assert.Equal(t, ExitCommandError, GetExitCode(err), "%v", args)
	}

	_, _, err := execute(t, "print", "--rule", "300")
	assert.True(t, errors.Is(err, rule.ErrInvalidArgument))
}

func TestPrintPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	out, _, err := execute(t, "print", "--rule", "90", "--width", "31", "--rows", "16", "--png", path, "--scale", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestPrintUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: elementary\noptions:\n  w: 7\n  h: 2\n  rule: 204\n"), 0o644))

	out, _, err := execute(t, "print", "--config", path, "--live", "#", "--dead", ".")
	require.NoError(t, err)
	assert.Equal(t, "...#...\n...#...\n", out)

	out, _, err = execute(t, "print", "--config", path, "--rule", "30", "--live", "#", "--dead", ".")
	require.NoError(t, err)
	assert.Equal(t, "...#...\n..###..\n", out)
}

func TestPrintRejectsForeignConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: life\n"), 0o644))

	_, _, err := execute(t, "print", "--config", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPreviewGolden(t *testing.T) {
	out, _, err := execute(t, "preview", "30")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "preview_rule30", []byte(out))
}

func TestPreviewJSON(t *testing.T) {
	out, _, err := execute(t, "preview", "110", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data PreviewResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "01101110", resp.Data.Binary)
	assert.Equal(t, 124, resp.Data.Mirror)
	assert.Equal(t, 137, resp.Data.Complement)
	require.Len(t, resp.Data.Transitions, 8)
	assert.Equal(t, TransitionView{Neighbourhood: "111", Next: 0}, resp.Data.Transitions[0])
	assert.Equal(t, TransitionView{Neighbourhood: "110", Next: 1}, resp.Data.Transitions[1])
}

func TestCensusJSON(t *testing.T) {
	out, _, err := execute(t, "census", "--rules", "110,0,30", "--width", "64", "--steps", "128", "--workers", "2", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data CensusResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data.Results, 3)
	assert.Equal(t, rule.Rule(0), resp.Data.Results[0].Rule)
	assert.Equal(t, census.ClassUniform, resp.Data.Results[0].Class)
	assert.Equal(t, census.ClassComplex, resp.Data.Results[1].Class)
	assert.Equal(t, 2, resp.Data.Summary[census.ClassComplex])
}

func TestCensusText(t *testing.T) {
	out, _, err := execute(t, "census", "--rules", "204", "--width", "16", "--steps", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "RULE")
	assert.Contains(t, out, "periodic")
	assert.Contains(t, out, "0 uniform, 1 periodic, 0 complex (width 16, 8 steps)")
}

func TestCensusUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options:\n  w: 16\n  rule: 204\n"), 0o644))

	out, _, err := execute(t, "census", "--config", path, "--steps", "8", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Data CensusResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 16, resp.Data.Width)
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, rule.Rule(204), resp.Data.Results[0].Rule)

	out, _, err = execute(t, "census", "--config", path, "--rules", "0,30", "--width", "32", "--steps", "8", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 32, resp.Data.Width)
	assert.Len(t, resp.Data.Results, 2)
}

func TestCensusInterruptedIsFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"census", "--rules", "0-255", "--steps", "64"})
	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestPreviewUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: elementary\noptions:\n  rule: 110\n"), 0o644))

	out, _, err := execute(t, "preview", "--config", path, "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Data PreviewResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 110, resp.Data.Rule)

	out, _, err = execute(t, "preview", "30", "--config", path, "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 30, resp.Data.Rule)

	_, _, err = execute(t, "preview")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	foreign := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(foreign, []byte("sim: life\n"), 0o644))
	_, _, err = execute(t, "preview", "30", "--config", foreign)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParseRuleSet(t *testing.T) {
	rules, err := ParseRuleSet("30, 0-3,2,0x6e")
	require.NoError(t, err)
	assert.Equal(t, []rule.Rule{30, 0, 1, 2, 3, 110}, rules)

	all, err := ParseRuleSet("0-255")
	require.NoError(t, err)
	assert.Len(t, all, 256)

	for _, bad := range []string{"", " , ", "5-2", "0-256", "x"} {
		_, err := ParseRuleSet(bad)
		assert.ErrorIs(t, err, rule.ErrInvalidArgument, bad)
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", errors.New("x"))))
}

func TestFormatterError(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out}
	require.NoError(t, f.Error(NewExitError(ExitCommandError, "bad flag")))

	var resp Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ExitCommandError, resp.Error.Code)
	assert.Equal(t, "bad flag", resp.Error.Message)
}
