package pages

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/we"
)

const tracerName = "wee-counter"

//go:embed templates/*.html
var files embed.FS

// SeedSource supplies the home page's link seed.
type SeedSource interface {
	Seed(ctx context.Context) (int, error)
}

type RendererOption func(renderer *Renderer)

func Logger(log *zerolog.Logger) RendererOption {
	return func(renderer *Renderer) {
		renderer.log = log
	}
}

type Renderer struct {
	log     *zerolog.Logger
	seeds   SeedSource
	home    *template.Template
	counter *template.Template
}

func NewRenderer(seeds SeedSource, options ...RendererOption) (*Renderer, error) {
	home, err := template.ParseFS(files, "templates/layout.html", "templates/home.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse home templates")
	}

	page, err := template.ParseFS(files, "templates/layout.html", "templates/counter.html", "templates/widget.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse counter templates")
	}

	renderer := &Renderer{seeds: seeds, home: home, counter: page}
	for _, option := range options {
		option(renderer)
	}
	if renderer.log == nil {
		renderer.log = &log.Logger
	}

	return renderer, nil
}

type homePage struct {
	Title string
	Link  string
}

type button struct {
	Command we.CommandName
	Label   string
}

type widgetView struct {
	Action  string
	Value   int
	Buttons []button
}

type counterPage struct {
	Title   string
	Initial string
	Widget  widgetView
}

var buttons = []button{
	{Command: counter.IncrementCmd, Label: "Increment"},
	{Command: counter.DecrementCmd, Label: "Decrement"},
	{Command: counter.ResetCmd, Label: "Reset"},
}

// Home renders the welcome page. A failure to obtain a seed is logged and
// the link falls back to /counter/0; it never fails the render.
func (r *Renderer) Home(ctx context.Context) ([]byte, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render home")
	defer span.End()

	seed, err := r.seeds.Seed(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch error")
		seed = 0
	}
	span.SetAttributes(attribute.Int("seed", seed))

	return execute(r.home, homePage{
		Title: "Counter App",
		Link:  CounterPath(strconv.Itoa(seed)),
	})
}

// Counter renders the counter page with a new widget seeded from segment.
func (r *Renderer) Counter(ctx context.Context, segment string) ([]byte, error) {
	widget := counter.NewWidget(r.log, counter.ParseSeed(Segments(segment)))

	return r.CounterWith(ctx, segment, widget)
}

// CounterWith renders the counter page around an existing widget.
func (r *Renderer) CounterWith(ctx context.Context, segment string, widget *counter.Widget) ([]byte, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "render counter")
	defer span.End()

	span.SetAttributes(
		attribute.String("segment", segment),
		attribute.Int("value", widget.Value()),
	)

	return execute(r.counter, counterPage{
		Title:   "Counter Page",
		Initial: counter.DisplaySeed(segment),
		Widget: widgetView{
			Action:  CounterPath(segment),
			Value:   widget.Value(),
			Buttons: buttons,
		},
	})
}

func CounterPath(segment string) string {
	return "/counter/" + url.PathEscape(segment)
}

// Segments wraps a single route segment the way the seed parser expects.
func Segments(segment string) []string {
	if segment == "" {
		return nil
	}

	return []string{segment}
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, errors.Wrap(err, "failed to render page")
	}

	return buf.Bytes(), nil
}
