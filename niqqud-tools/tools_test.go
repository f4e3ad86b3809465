package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/niqqud"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"github.com/thatisuday/commando"
)

// --- Test Suite Preparation ------------------------------------------------

type ToolsTestEnviron struct {
	suite.Suite
	dir string
}

// listen for 'go test' command --> run test methods
func TestTools(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "niqqud")
	defer teardown()
	suite.Run(t, new(ToolsTestEnviron))
}

// run once, before test suite methods
func (env *ToolsTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("niqqud").SetTraceLevel(tracing.LevelInfo)
	env.dir = env.T().TempDir()
	env.writeFile("psalm.txt", "מִזְמוֹר לְדָוִד\nשִׁיר ״חָדָשׁ״\n")
	env.writeFile("plain.txt", "no niqqud here\nצה״ל\n")
}

// --- Tests -----------------------------------------------------------------

func (env *ToolsTestEnviron) TestStripFiles() {
	var out bytes.Buffer
	err := stripFiles([]string{env.path("psalm.txt"), env.path("plain.txt")}, niqqud.Plain, nil, &out)
	env.Require().NoError(err)
	env.Equal("מזמור לדוד\nשיר ״חדש״\nno niqqud here\nצה״ל\n", out.String())
}

func (env *ToolsTestEnviron) TestStripFilesThorough() {
	var out bytes.Buffer
	err := stripFiles([]string{env.path("psalm.txt")}, niqqud.Thorough, nil, &out)
	env.Require().NoError(err)
	env.Equal("מזמור לדוד\nשיר חדש\n", out.String())
}

func (env *ToolsTestEnviron) TestStripStdin() {
	var out bytes.Buffer
	err := stripFiles(nil, niqqud.Plain, strings.NewReader("נִקּוּד"), &out)
	env.Require().NoError(err)
	env.Equal("נקוד", out.String())
}

func (env *ToolsTestEnviron) TestStripCollectsErrors() {
	var out bytes.Buffer
	err := stripFiles([]string{
		env.path("missing-1.txt"),
		env.path("plain.txt"),
		env.path("missing-2.txt"),
	}, niqqud.Plain, nil, &out)
	env.Require().Error(err)
	env.True(errors.Is(err, fs.ErrNotExist), "expected not-exist errors, got %v", err)
	env.Contains(err.Error(), "missing-1.txt")
	env.Contains(err.Error(), "missing-2.txt")
	env.Equal("no niqqud here\nצה״ל\n", out.String(), "readable files are still processed")
}

func (env *ToolsTestEnviron) TestStripInPlace() {
	env.writeFile("inplace.txt", "נִקּוּד\n״שָׁלוֹם״\n")
	path := env.path("inplace.txt")
	err := stripToPath([]string{path}, niqqud.Plain, nil, path)
	env.Require().NoError(err)
	data, err := os.ReadFile(path)
	env.Require().NoError(err)
	env.Equal("נקוד\n״שלום״\n", string(data))
}

func (env *ToolsTestEnviron) TestStripToPathKeepsReadableInputs() {
	out := env.path("partial-out.txt")
	err := stripToPath([]string{env.path("missing-3.txt"), env.path("psalm.txt")}, niqqud.Thorough, nil, out)
	env.Require().Error(err)
	env.True(errors.Is(err, fs.ErrNotExist))
	data, rerr := os.ReadFile(out)
	env.Require().NoError(rerr)
	env.Equal("מזמור לדוד\nשיר חדש\n", string(data))
}

func (env *ToolsTestEnviron) TestStripToPathReportsOutputErrors() {
	out := filepath.Join(env.dir, "no-such-dir", "out.txt")
	err := stripToPath([]string{env.path("plain.txt")}, niqqud.Plain, nil, out)
	env.Require().Error(err)
	env.Contains(err.Error(), "cannot create output file")
}

func (env *ToolsTestEnviron) TestCheckFiles() {
	var out bytes.Buffer
	n, err := checkFiles([]string{env.path("psalm.txt"), env.path("plain.txt")}, niqqud.Plain, nil, &out)
	env.Require().NoError(err)
	env.Equal(2, n)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	env.Require().Len(lines, 2)
	env.True(strings.HasSuffix(lines[0], "psalm.txt:1: מִזְמוֹר לְדָוִד"), lines[0])
	env.True(strings.HasSuffix(lines[1], "psalm.txt:2: שִׁיר ״חָדָשׁ״"), lines[1])
}

func (env *ToolsTestEnviron) TestCheckThoroughReportsQuotes() {
	var out bytes.Buffer
	n, err := checkFiles([]string{env.path("plain.txt")}, niqqud.Thorough, nil, &out)
	env.Require().NoError(err)
	env.Equal(1, n)
	env.True(strings.HasSuffix(strings.TrimSpace(out.String()), "plain.txt:2: צה״ל"))
}

func (env *ToolsTestEnviron) TestCheckStdin() {
	var out bytes.Buffer
	n, err := checkFiles(nil, niqqud.Plain, strings.NewReader("abc\nשָׁלוֹם\n"), &out)
	env.Require().NoError(err)
	env.Equal(1, n)
	env.Equal("-:2: שָׁלוֹם\n", out.String())
}

func (env *ToolsTestEnviron) TestCheckMissingFile() {
	var out bytes.Buffer
	_, err := checkFiles([]string{env.path("nope.txt")}, niqqud.Plain, nil, &out)
	env.Error(err)
}

// --- Helpers ---------------------------------------------------------------

func (env *ToolsTestEnviron) path(name string) string {
	return filepath.Join(env.dir, name)
}

func (env *ToolsTestEnviron) writeFile(name, content string) {
	err := os.WriteFile(env.path(name), []byte(content), 0o600)
	env.Require().NoError(err)
}

// --- Plain tests -------------------------------------------------------------

func TestSplitVariadic(t *testing.T) {
	if got := splitVariadic(commando.ArgValue{Value: ""}); len(got) != 0 {
		t.Fatalf("expected no files, got %v", got)
	}
	got := splitVariadic(commando.ArgValue{Value: "a.txt, b.txt,,c.txt"})
	if strings.Join(got, "|") != "a.txt|b.txt|c.txt" {
		t.Fatalf("unexpected split: %v", got)
	}
}

func TestSetTraceLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "niqqud")
	defer teardown()
	for _, l := range []string{"Debug", "info", "ERROR", ""} {
		if err := setTraceLevel(l); err != nil {
			t.Errorf("level %q: %v", l, err)
		}
	}
	if err := setTraceLevel("chatty"); err == nil {
		t.Error("expected error for unknown trace level")
	}
}
