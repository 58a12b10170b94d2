package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
)

const modernTemplate = `<!DOCTYPE html>
<html lang="en" data-color-theme="{{ .Options.ColorTheme }}">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<meta name="description" content="{{ .Description }}">
<style>
body { font-family: "{{ .Options.Font }}", sans-serif; background: {{ .Background }}; color: {{ .Foreground }}; }
.card { background: {{ .Surface }}; border: 1px solid {{ .Border }}; }
a { color: {{ .Accent }}; }
</style>
</head>
<body>
<main class="grid">
<aside class="card" id="intro">
  <h1>{{ .Portfolio.Content.HeroTitle }}</h1>
  <p>{{ .Portfolio.Content.HeroDescription }}</p>
  {{ if .Portfolio.Socials }}
  <nav>
  {{ range .Portfolio.Socials }}<a href="{{ .URL }}">{{ .Platform }}</a>{{ end }}
  </nav>
  {{ end }}
</aside>
<section class="card" id="work">
  {{ range .Portfolio.Experiences }}
  <article>
    {{ if .LogoURL }}<img src="{{ deref .LogoURL }}" alt="{{ .Company }}">{{ end }}
    <h2>{{ .Role }}</h2>
    <h3>{{ .Company }}{{ if .EmploymentType }} &middot; {{ deref .EmploymentType }}{{ end }}</h3>
    <time>{{ monthYear .StartDate }} &ndash; {{ endOrPresent .EndDate }}</time>
    <p>{{ .Description }}</p>
  </article>
  {{ end }}
</section>
<section class="card" id="showcase">
  {{ range .Portfolio.Projects }}
  <article>
    {{ if .ImageURL }}<img src="{{ deref .ImageURL }}" alt="{{ .Title }}">{{ end }}
    <h2>{{ .Title }}</h2>
    <p>{{ .Description }}</p>
    {{ if .RepositoryURL }}<a href="{{ deref .RepositoryURL }}">Code</a>{{ end }}
    {{ if .LiveURL }}<a href="{{ deref .LiveURL }}">Demo</a>{{ end }}
  </article>
  {{ end }}
</section>
<section class="card" id="stack">
  {{ range .Portfolio.Skills }}<span class="chip" style="border-color: {{ .Color }}">{{ .Name }}</span>{{ end }}
</section>
<section class="card" id="education">
  {{ range .Portfolio.Educations }}
  <article>
    <h2>{{ .School }}</h2>
    <p>{{ .Degree }}, {{ .Field }}</p>
    <time>{{ monthYear .StartDate }} &ndash; {{ endOrPresent .EndDate }}</time>
  </article>
  {{ end }}
</section>
{{ if .Portfolio.Content.About }}
<section class="card" id="about"><p>{{ .Portfolio.Content.About }}</p></section>
{{ end }}
</main>
</body>
</html>
`

type modernRenderer struct {
	tmpl *template.Template
}

func NewModernTheme() theme.Theme {
	tmpl := template.Must(template.New("modern").Funcs(templateFuncs()).Parse(modernTemplate))
	return theme.Theme{
		ID:          "modern",
		Name:        "Modern",
		Description: "A card grid with logos and project imagery.",
		Thumbnail:   "/themes/modern.png",
		Premium:     true,
		Renderer:    &modernRenderer{tmpl: tmpl},
	}
}

func (r *modernRenderer) Render(_ context.Context, p *portfolio.Portfolio) (*theme.RenderedPage, error) {
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
		return nil, fmt.Errorf("modern theme: %w", err)
	}

	return &theme.RenderedPage{
		Title:       view.Title,
		Description: view.Description,
		HTML:        buf.Bytes(),
	}, nil
}
