package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ui/terminal"
	"github.com/aalvaropc/ryujin/internal/ui/tui"
)

type testApp struct {
	*app
	out     *bytes.Buffer
	home    string
	tuiDeps *tui.Deps
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()

	var out bytes.Buffer
	a := newApp(strings.NewReader(input), &out)
	a.term = terminal.New(terminal.WithInput(strings.NewReader(input)), terminal.WithOutput(&out), terminal.WithNoColor(true))
	a.getenv = func(string) string { return "" }

	wd := t.TempDir()
	a.getwd = func() (string, error) { return wd, nil }

	ta := &testApp{app: a, out: &out, home: filepath.Join(t.TempDir(), "home")}
	a.runTUI = func(d tui.Deps) error {
		ta.tuiDeps = &d
		return nil
	}
	t.Cleanup(a.close)
	return ta
}

func (ta *testApp) run(args ...string) error {
	cmd := newRootCmd(ta.app)
	cmd.SetArgs(append([]string{"--home", ta.home}, args...))
	return cmd.Execute()
}

// initHome scaffolds the starter home with a fresh app so later commands
// start from a clean invocation.
func initHome(t *testing.T) string {
	t.Helper()
	ta := newTestApp(t, "")
	require.NoError(t, ta.run("init"))
	return ta.home
}

func appAt(t *testing.T, home, input string) *testApp {
	ta := newTestApp(t, input)
	ta.home = home
	return ta
}

func readSelection(t *testing.T, home string) []string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(home, "conf", "conf.json"))
	require.NoError(t, err)
	var doc struct {
		Selected []string `json:"selected_services"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	return doc.Selected
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd(newApp(strings.NewReader(""), &bytes.Buffer{}))
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[strings.Fields(sub.Use)[0]] = true
	}
	for _, expected := range []string{"select", "compose", "catalog", "service", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_NoSubcommandOpensBrowser(t *testing.T) {
	home := initHome(t)
	ta := appAt(t, home, "")

	require.NoError(t, ta.run())
	require.NotNil(t, ta.tuiDeps)
	assert.Equal(t, home, ta.tuiDeps.Root)
	assert.NotNil(t, ta.tuiDeps.Catalog)
	assert.NotNil(t, ta.tuiDeps.Selection)
}

func TestInitCmd_WritesStarterHome(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run("init"))

	assert.FileExists(t, filepath.Join(ta.home, "ryujin.yaml"))
	assert.FileExists(t, filepath.Join(ta.home, "services", "services.json"))
	assert.Contains(t, ta.out.String(), "created services/services.json")

	ta.out.Reset()
	require.NoError(t, ta.run("init"))
	assert.Contains(t, ta.out.String(), "already initialized")
}

func TestVersionCmd(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.run("version"))
	assert.True(t, strings.HasPrefix(ta.out.String(), "ryujin "))
}

// --- select ---

func TestSelectCmd_NewLowerCasesAndPersists(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	require.NoError(t, ta.run("select", "--new", "-s", "Postgres,REDIS"))
	assert.Equal(t, []string{"postgres", "redis"}, readSelection(t, home))
	assert.Contains(t, ta.out.String(), "postgres added to the selection")

	ta = appAt(t, home, "")
	require.NoError(t, ta.run("select", "--add", "-s", "redis,nginx", "--print"))
	out := ta.out.String()
	assert.Contains(t, out, "redis is already selected")
	assert.Contains(t, out, "nginx added to the selection")
	assert.Contains(t, out, "Selected services\n  postgres\n  redis\n  nginx\n")

	ta = appAt(t, home, "")
	require.NoError(t, ta.run("select", "--remove", "-s", "redis,mysql"))
	assert.Contains(t, ta.out.String(), "mysql is not in the selection")
	assert.Equal(t, []string{"postgres", "nginx"}, readSelection(t, home))

	ta = appAt(t, home, "")
	require.NoError(t, ta.run("select", "--delete"))
	assert.Empty(t, readSelection(t, home))
}

func TestSelectCmd_NoFlagsPrints(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	err := ta.run("select")
	assert.True(t, domain.IsKind(err, domain.KindEmptySelection), "got %v", err)
}

func TestSelectCmd_UnknownServiceSavesNothing(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	err := ta.run("select", "--new", "-s", "redis,mysql,kafka")
	var us *domain.UnknownServiceError
	require.ErrorAs(t, err, &us)
	assert.Equal(t, []string{"mysql", "kafka"}, us.Names)
	assert.Empty(t, readSelection(t, home))
	assert.Equal(t, "unknown service(s): mysql, kafka", errorMessage(err))
}

func TestSelectCmd_FlagRules(t *testing.T) {
	home := initHome(t)

	cases := [][]string{
		{"select", "--add"},
		{"select", "--remove"},
		{"select", "--delete", "--new"},
		{"select", "--delete", "--print"},
		{"select", "--remove", "--add", "-s", "redis"},
		{"select", "--remove", "--new", "-s", "redis"},
	}
	for _, args := range cases {
		ta := appAt(t, home, "")
		err := ta.run(args...)
		require.Error(t, err, "args=%v", args)
		assert.Equal(t, err.Error(), errorMessage(err))
	}
}

// --- compose ---

func TestComposeCmd_AnswersFile(t *testing.T) {
	home := initHome(t)
	answers := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte("vars:\n  REDIS_PORT: \"6380\"\n  NGINX_PORT: \"8080;\"\n"), 0o644))

	ta := appAt(t, home, "")
	require.NoError(t, ta.run("select", "--new", "-s", "redis,nginx"))

	outDir := filepath.Join(t.TempDir(), "stack")
	ta = appAt(t, home, "")
	require.NoError(t, ta.run("compose", "-o", outDir, "--answers", answers, "--yes"))

	b, err := os.ReadFile(filepath.Join(outDir, "docker-compose.yml"))
	require.NoError(t, err)
	compose := string(b)
	assert.Contains(t, compose, `"6380:6379"`)
	assert.Contains(t, compose, `"8080:80"`)
	assert.NotContains(t, compose, "depends_on")
	assert.Less(t, strings.Index(compose, "  redis:"), strings.Index(compose, "  nginx:"))

	readme, err := os.ReadFile(filepath.Join(outDir, "readme-compose.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "## redis")
}

func TestComposeCmd_InteractiveAnswers(t *testing.T) {
	home := initHome(t)
	outDir := t.TempDir()

	ta := appAt(t, home, "6390\n")
	require.NoError(t, ta.run("compose", "-s", "REDIS", "-o", outDir))
	assert.Contains(t, ta.out.String(), "Host port for redis: ")

	b, err := os.ReadFile(filepath.Join(outDir, "docker-compose.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"6390:6379"`)
}

func TestComposeCmd_EmptySelection(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	err := ta.run("compose", "-o", t.TempDir())
	assert.True(t, domain.IsKind(err, domain.KindEmptySelection), "got %v", err)
}

func TestComposeCmd_MissingFragmentWritesNothing(t *testing.T) {
	home := initHome(t)
	require.NoError(t, os.Remove(filepath.Join(home, "services", "templates", "compose", "nginx.yml")))
	outDir := t.TempDir()

	ta := appAt(t, home, "80\n")
	err := ta.run("compose", "-s", "nginx", "-o", outDir)
	var tm *domain.TemplateMissingError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, "nginx", tm.Service)
	assert.NoFileExists(t, filepath.Join(outDir, "docker-compose.yml"))
	assert.NoFileExists(t, filepath.Join(outDir, "readme-compose.md"))
}

func TestComposeCmd_RequiresOutputDir(t *testing.T) {
	ta := newTestApp(t, "")
	require.Error(t, ta.run("compose"))
}

// --- catalog / service ---

func TestCatalogCmd_ShortColumns(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	require.NoError(t, ta.run("catalog"))

	lines := strings.Split(strings.TrimRight(ta.out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, []string{"nginx", "postgres", "redis"}, strings.Fields(lines[0]))
	assert.Equal(t, shortColumnWidth, strings.Index(lines[0], "postgres"))
}

func TestCatalogCmd_LongWithTags(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	require.NoError(t, ta.run("catalog", "--long", "--tags", "DB"))

	out := ta.out.String()
	assert.Contains(t, out, "Current Version")
	assert.Contains(t, out, "postgres")
	assert.Contains(t, out, "redis")
	assert.NotContains(t, out, "nginx")
}

func TestCatalogCmd_NoMatch(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	err := ta.run("catalog", "-n", "mongo")
	assert.True(t, domain.IsKind(err, domain.KindNoMatch), "got %v", err)
}

func TestServiceCmd(t *testing.T) {
	home := initHome(t)

	ta := appAt(t, home, "")
	require.NoError(t, ta.run("service", "Postgres"))
	out := ta.out.String()
	assert.Contains(t, out, "Version: 16.2")
	assert.Contains(t, out, "Modified: no")
	assert.Contains(t, out, "  - docs: https://www.postgresql.org/docs/")

	ta = appAt(t, home, "")
	err := ta.run("service", "mongo")
	assert.True(t, domain.IsKind(err, domain.KindUnknownService), "got %v", err)
}

func TestMissingCatalogIsNotFound(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, os.MkdirAll(ta.home, 0o755))

	err := ta.run("catalog")
	assert.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
	assert.True(t, strings.HasPrefix(errorMessage(err), "Catalog not found: "))
}

// --- output directory dialog ---

type scriptedPrompter struct {
	lines    []string
	confirms []bool
	asked    []string
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.lines) == 0 {
		return "", errors.New("no more input")
	}
	l := p.lines[0]
	p.lines = p.lines[1:]
	return l, nil
}

func (p *scriptedPrompter) Confirm(prompt string) (bool, error) {
	p.asked = append(p.asked, prompt)
	if len(p.confirms) == 0 {
		return false, errors.New("no more input")
	}
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	return c, nil
}

func (p *scriptedPrompter) Warning(string, ...any) {}
func (p *scriptedPrompter) Info(string, ...any)    {}

func TestPrepareOutputDir_CreatesOnConfirm(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new")
	p := &scriptedPrompter{confirms: []bool{true}}

	got, err := prepareOutputDir(p, dir, "docker-compose.yml", false)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.DirExists(t, dir)
}

func TestPrepareOutputDir_DeclineThenEmptyAborts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new")
	p := &scriptedPrompter{confirms: []bool{false}, lines: []string{"   "}}

	_, err := prepareOutputDir(p, dir, "docker-compose.yml", false)
	assert.ErrorIs(t, err, domain.ErrAborted)
	assert.NoDirExists(t, dir)
}

func TestPrepareOutputDir_RetriesWithNewPath(t *testing.T) {
	base := t.TempDir()
	existing := filepath.Join(base, "out")
	require.NoError(t, os.Mkdir(existing, 0o755))

	p := &scriptedPrompter{confirms: []bool{false}, lines: []string{existing}}
	got, err := prepareOutputDir(p, filepath.Join(base, "missing"), "docker-compose.yml", false)
	require.NoError(t, err)
	assert.Equal(t, existing, got)
	assert.Len(t, p.asked, 2)
}

func TestPrepareOutputDir_SanitizesPath(t *testing.T) {
	base := t.TempDir()
	p := &scriptedPrompter{}

	got, err := prepareOutputDir(p, base+"/my stack", "docker-compose.yml", true)
	require.NoError(t, err)
	assert.Equal(t, base+"/my_stack", got)
	assert.DirExists(t, got)
	assert.Empty(t, p.asked)
}

func TestPrepareOutputDir_Overwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docker-compose.yml"), []byte("x"), 0o644))

	_, err := prepareOutputDir(&scriptedPrompter{confirms: []bool{false}}, dir, "docker-compose.yml", false)
	assert.ErrorIs(t, err, domain.ErrAborted)

	got, err := prepareOutputDir(&scriptedPrompter{confirms: []bool{true}}, dir, "docker-compose.yml", false)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	p := &scriptedPrompter{}
	_, err = prepareOutputDir(p, dir, "docker-compose.yml", true)
	require.NoError(t, err)
	assert.Empty(t, p.asked)
}
