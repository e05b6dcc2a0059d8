package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"text/template"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

// maxIncludeDepth bounds nested include calls so a self-including fragment fails.
const maxIncludeDepth = 16

// Layout names the template files inside the template tree. Fragment entries
// are format strings taking the service name.
type Layout struct {
	ComposeRoot         string
	ComposeFragment     string
	ReadmeRoot          string
	ReadmeInformation   string
	ReadmeConfiguration string
}

func DefaultLayout() Layout {
	return Layout{
		ComposeRoot:         "compose/template-docker-compose.yml",
		ComposeFragment:     "compose/%s.yml",
		ReadmeRoot:          "readme/readme-template-readme.md",
		ReadmeInformation:   "readme/partials/%s-information.md",
		ReadmeConfiguration: "readme/partials/%s-configuration.md",
	}
}

// ComposeFragmentPath is the fragment location for service.
func (l Layout) ComposeFragmentPath(service string) string {
	return fmt.Sprintf(l.ComposeFragment, service)
}

// Renderer executes the compose and README templates found in fsys.
type Renderer struct {
	fsys        fs.FS
	layout      Layout
	displayRoot string
	log         *slog.Logger
}

type Option func(*Renderer)

func WithLayout(l Layout) Option {
	return func(r *Renderer) { r.layout = l }
}

// WithDisplayRoot prefixes paths shown in placeholder text with root.
func WithDisplayRoot(root string) Option {
	return func(r *Renderer) { r.displayRoot = root }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRenderer(fsys fs.FS, opts ...Option) *Renderer {
	r := &Renderer{
		fsys:   fsys,
		layout: DefaultLayout(),
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.Renderer = (*Renderer)(nil)

type composeData struct {
	Services []string
	Vars     map[string]string
}

type readmeData struct {
	Services []domain.ReadmePartial
	Vars     map[string]string
}

// RenderCompose renders the root compose template. Every service included
// through the include function must have a fragment; a missing one fails the
// whole render with a TemplateMissingError.
func (r *Renderer) RenderCompose(rc domain.RenderContext) ([]byte, error) {
	data := composeData{Services: rc.Services, Vars: rc.Vars}
	inc := &includer{r: r}

	out, err := r.execute(r.layout.ComposeRoot, data, inc.funcs(data))
	if inc.missing != nil {
		return nil, inc.missing
	}
	if err != nil {
		return nil, err
	}

	r.log.Debug("template.compose.rendered", "services", rc.Services, "bytes", len(out))
	return out, nil
}

// RenderReadme renders the root README. Missing partials degrade to a
// "Could not read <path>" placeholder.
func (r *Renderer) RenderReadme(rc domain.RenderContext) ([]byte, error) {
	data := readmeData{
		Services: make([]domain.ReadmePartial, 0, len(rc.Services)),
		Vars:     rc.Vars,
	}
	for _, name := range rc.Services {
		data.Services = append(data.Services, domain.ReadmePartial{
			Service:       name,
			Information:   r.readPartial(fmt.Sprintf(r.layout.ReadmeInformation, name)),
			Configuration: r.readPartial(fmt.Sprintf(r.layout.ReadmeConfiguration, name)),
		})
	}

	out, err := r.execute(r.layout.ReadmeRoot, data, baseFuncs())
	if err != nil {
		return nil, err
	}

	r.log.Debug("template.readme.rendered", "services", rc.Services, "bytes", len(out))
	return out, nil
}

func (r *Renderer) readPartial(p string) string {
	b, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		shown := r.display(p)
		r.log.Warn("template.readme.partial_missing", "path", shown, "err", err)
		return fmt.Sprintf("Could not read %s", shown)
	}
	return string(b)
}

func (r *Renderer) display(p string) string {
	if r.displayRoot == "" {
		return p
	}
	return path.Join(r.displayRoot, p)
}

func (r *Renderer) execute(name string, data any, funcs template.FuncMap) ([]byte, error) {
	src, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.RenderError{
			Template: name,
			Err: &domain.OpError{
				Op:   "template.read",
				Kind: kind,
				Path: r.display(name),
				Err:  err,
			},
		}
	}

	tmpl, err := template.New(path.Base(name)).
		Funcs(funcs).
		Option("missingkey=zero").
		Parse(string(src))
	if err != nil {
		return nil, &domain.RenderError{Template: name, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, &domain.RenderError{Template: name, Err: err}
	}
	return buf.Bytes(), nil
}

// includer renders compose fragments on behalf of the root template and
// remembers the first missing one so it can be reported as-is.
type includer struct {
	r       *Renderer
	depth   int
	missing error
}

func (inc *includer) funcs(data composeData) template.FuncMap {
	fm := baseFuncs()
	fm["include"] = func(service string) (string, error) {
		return inc.include(service, data, fm)
	}
	return fm
}

func (inc *includer) include(service string, data composeData, fm template.FuncMap) (string, error) {
	if inc.depth >= maxIncludeDepth {
		return "", fmt.Errorf("include depth exceeded at %q", service)
	}

	p := inc.r.layout.ComposeFragmentPath(service)
	if _, err := fs.Stat(inc.r.fsys, p); err != nil {
		missing := &domain.TemplateMissingError{Service: service, Path: inc.r.display(p)}
		if inc.missing == nil {
			inc.missing = missing
		}
		return "", missing
	}

	inc.depth++
	defer func() { inc.depth-- }()

	out, err := inc.r.execute(p, data, fm)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
