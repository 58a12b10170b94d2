// Package render holds the built-in theme implementations. Each theme is an
// html/template over the normalized portfolio aggregate, registered in the
// theme registry at startup.
package render

import (
	"html/template"
	"time"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"monthYear": func(t time.Time) string {
			return t.Format("Jan 2006")
		},
		"endOrPresent": func(t *time.Time) string {
			if t == nil {
				return "Present"
			}
			return t.Format("Jan 2006")
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}

// pageTitle picks the best available title for the response head.
func pageTitle(p *portfolio.Portfolio) string {
	if p.Content.MetaTitle != "" {
		return p.Content.MetaTitle
	}
	if p.Content.HeroTitle != "" {
		return p.Content.HeroTitle
	}
	return p.Username
}

func pageDescription(p *portfolio.Portfolio) string {
	if p.Content.MetaDescription != "" {
		return p.Content.MetaDescription
	}
	return p.Content.HeroDescription
}

// color returns the palette entry at i, guarding short palettes. Options is
// always defaulted by the assembler so the usual case has five entries.
func color(colors []string, i int) string {
	if i < len(colors) {
		return colors[i]
	}
	return "#FFFFFF"
}
