package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
)

const minimalTemplate = `<!DOCTYPE html>
<html lang="en" data-color-theme="{{ .Options.ColorTheme }}">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<meta name="description" content="{{ .Description }}">
<style>
:root {
  --bg: {{ .Background }};
  --surface: {{ .Surface }};
  --border: {{ .Border }};
  --fg: {{ .Foreground }};
  --accent: {{ .Accent }};
  --font: "{{ .Options.Font }}", sans-serif;
}
</style>
</head>
<body>
<header>
  <h1>{{ .Portfolio.Content.HeroTitle }}</h1>
  <p>{{ .Portfolio.Content.HeroDescription }}</p>
</header>
{{ if .Portfolio.Content.About }}
<section id="about"><p>{{ .Portfolio.Content.About }}</p></section>
{{ end }}
{{ if .Portfolio.Experiences }}
<section id="experience">
<h2>Experience</h2>
<ul>
{{ range .Portfolio.Experiences }}
  <li>
    <h3>{{ .Role }} &middot; {{ .Company }}</h3>
    {{ if .EmploymentType }}<span class="tag">{{ deref .EmploymentType }}</span>{{ end }}
    <time>{{ monthYear .StartDate }} &ndash; {{ endOrPresent .EndDate }}</time>
    <p>{{ .Description }}</p>
  </li>
{{ end }}
</ul>
</section>
{{ end }}
{{ if .Portfolio.Projects }}
<section id="projects">
<h2>Projects</h2>
<ul>
{{ range .Portfolio.Projects }}
  <li>
    <h3>{{ .Title }}</h3>
    <p>{{ .Description }}</p>
    {{ if .RepositoryURL }}<a href="{{ deref .RepositoryURL }}">Source</a>{{ end }}
    {{ if .LiveURL }}<a href="{{ deref .LiveURL }}">Live</a>{{ end }}
  </li>
{{ end }}
</ul>
</section>
{{ end }}
{{ if .Portfolio.Skills }}
<section id="skills">
<h2>Skills</h2>
<ul>
{{ range .Portfolio.Skills }}
  <li style="color: {{ .Color }}">{{ .Name }}</li>
{{ end }}
</ul>
</section>
{{ end }}
{{ if .Portfolio.Educations }}
<section id="education">
<h2>Education</h2>
<ul>
{{ range .Portfolio.Educations }}
  <li>{{ .School }} &mdash; {{ .Degree }}, {{ .Field }} ({{ monthYear .StartDate }} &ndash; {{ endOrPresent .EndDate }})</li>
{{ end }}
</ul>
</section>
{{ end }}
{{ if .Portfolio.Socials }}
<footer>
{{ range .Portfolio.Socials }}
  <a href="{{ .URL }}">{{ .Platform }}</a>
{{ end }}
</footer>
{{ end }}
</body>
</html>
`

type minimalRenderer struct {
	tmpl *template.Template
}

type minimalView struct {
	Portfolio   *portfolio.Portfolio
	Options     portfolio.Options
	Title       string
	Description string
	Background  string
	Surface     string
	Border      string
	Foreground  string
	Accent      string
}

// NewMinimalTheme builds the default theme.
func NewMinimalTheme() theme.Theme {
	tmpl := template.Must(template.New("minimal").Funcs(templateFuncs()).Parse(minimalTemplate))
	return theme.Theme{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "A single-column layout with quiet typography.",
		Thumbnail:   "/themes/minimal.png",
		Premium:     false,
		Renderer:    &minimalRenderer{tmpl: tmpl},
	}
}

func (r *minimalRenderer) Render(_ context.Context, p *portfolio.Portfolio) (*theme.RenderedPage, error) {
	view := minimalView{
		Portfolio:   p,
		Options:     p.Options,
		Title:       pageTitle(p),
		Description: pageDescription(p),
		Background:  color(p.Options.Colors, 0),
		Surface:     color(p.Options.Colors, 1),
		Border:      color(p.Options.Colors, 2),
		Foreground:  color(p.Options.Colors, 3),
		Accent:      color(p.Options.Colors, 4),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("minimal theme: %w", err)
	}

	return &theme.RenderedPage{
		Title:       view.Title,
		Description: view.Description,
		HTML:        buf.Bytes(),
	}, nil
}
