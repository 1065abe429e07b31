package deck

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"

	models "pitchdeck/internal/domain/models/deck"
)

//go:embed templates/deck.yaml
var templateFiles embed.FS

// Defaults substituted when the optional generate arguments are absent or empty
const (
	DefaultIndustry  = "technology"
	DefaultStage     = "Seed"
	DefaultAskAmount = "$2M"
	DefaultTraction  = "Growing rapidly"
)

// GenerateParams are the values substituted into the deck template
type GenerateParams struct {
	Company     string
	Description string
	Industry    string
	Stage       string
	Ask         string
	Traction    string
}

type metricSource struct {
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

type slideSource struct {
	Kind     string         `yaml:"kind"`
	Title    string         `yaml:"title"`
	Subtitle string         `yaml:"subtitle"`
	Content  string         `yaml:"content"`
	Icon     string         `yaml:"icon"`
	Bullets  []string       `yaml:"bullets"`
	Metrics  []metricSource `yaml:"metrics"`
}

type templateFile struct {
	Slides []slideSource `yaml:"slides"`
}

// compiled text field; nil means the field is empty in the template
type field = *template.Template

type compiledMetric struct {
	label, value, description field
}

type compiledSlide struct {
	kind     models.Kind
	icon     string
	title    field
	subtitle field
	content  field
	bullets  []field
	metrics  []compiledMetric
}

// Generator builds the canonical nine-slide deck from the embedded template.
// It is immutable after construction and safe for concurrent use.
type Generator struct {
	slides []compiledSlide
}

// NewGenerator loads and compiles the embedded deck template
func NewGenerator() (*Generator, error) {
	data, err := templateFiles.ReadFile("templates/deck.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read deck template: %w", err)
	}
	return newGeneratorFromYAML(data)
}

func newGeneratorFromYAML(data []byte) (*Generator, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deck template: %w", err)
	}
	if len(file.Slides) == 0 {
		return nil, fmt.Errorf("deck template has no slides")
	}

	g := &Generator{slides: make([]compiledSlide, 0, len(file.Slides))}
	for i, src := range file.Slides {
		cs, err := compileSlide(src)
		if err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i, src.Kind, err)
		}
		g.slides = append(g.slides, cs)
	}
	return g, nil
}

func compileSlide(src slideSource) (compiledSlide, error) {
	cs := compiledSlide{
		kind: models.Kind(src.Kind),
		icon: src.Icon,
	}
	var err error
	if cs.title, err = compileField("title", src.Title); err != nil {
		return cs, err
	}
	if cs.subtitle, err = compileField("subtitle", src.Subtitle); err != nil {
		return cs, err
	}
	if cs.content, err = compileField("content", src.Content); err != nil {
		return cs, err
	}
	for i, b := range src.Bullets {
		f, err := compileField(fmt.Sprintf("bullet%d", i), b)
		if err != nil {
			return cs, err
		}
		cs.bullets = append(cs.bullets, f)
	}
	for i, m := range src.Metrics {
		var cm compiledMetric
		if cm.label, err = compileField(fmt.Sprintf("metric%d.label", i), m.Label); err != nil {
			return cs, err
		}
		if cm.value, err = compileField(fmt.Sprintf("metric%d.value", i), m.Value); err != nil {
			return cs, err
		}
		if cm.description, err = compileField(fmt.Sprintf("metric%d.description", i), m.Description); err != nil {
			return cs, err
		}
		cs.metrics = append(cs.metrics, cm)
	}
	return cs, nil
}

func compileField(name, src string) (field, error) {
	if src == "" {
		return nil, nil
	}
	t, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return t, nil
}

// SlideCount is the number of slides every generated deck has
func (g *Generator) SlideCount() int {
	return len(g.slides)
}

// Build renders the template with p. newID must return a fresh slide id per call;
// ids already used in this deck are skipped.
func (g *Generator) Build(p GenerateParams, newID func() string) ([]models.Slide, error) {
	slides := make([]models.Slide, 0, len(g.slides))
	used := make(map[string]bool, len(g.slides))

	for _, cs := range g.slides {
		s := models.Slide{Kind: cs.kind, Icon: cs.icon}

		id := newID()
		for used[id] {
			id = newID()
		}
		used[id] = true
		s.ID = id

		var err error
		if s.Title, err = execute(cs.title, p); err != nil {
			return nil, err
		}
		if s.Subtitle, err = execute(cs.subtitle, p); err != nil {
			return nil, err
		}
		if s.Content, err = execute(cs.content, p); err != nil {
			return nil, err
		}
		for _, b := range cs.bullets {
			text, err := execute(b, p)
			if err != nil {
				return nil, err
			}
			s.Bullets = append(s.Bullets, text)
		}
		for _, cm := range cs.metrics {
			var m models.Metric
			if m.Label, err = execute(cm.label, p); err != nil {
				return nil, err
			}
			if m.Value, err = execute(cm.value, p); err != nil {
				return nil, err
			}
			if m.Description, err = execute(cm.description, p); err != nil {
				return nil, err
			}
			s.Metrics = append(s.Metrics, m)
		}

		slides = append(slides, s)
	}

	return slides, nil
}

func execute(t field, p GenerateParams) (string, error) {
	if t == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// ParamsFromRequest applies the documented defaults to absent or empty optional values
func ParamsFromRequest(company, description string, industry, stage, ask, traction *string) GenerateParams {
	return GenerateParams{
		Company:     company,
		Description: description,
		Industry:    orDefault(industry, DefaultIndustry),
		Stage:       orDefault(stage, DefaultStage),
		Ask:         orDefault(ask, DefaultAskAmount),
		Traction:    orDefault(traction, DefaultTraction),
	}
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
