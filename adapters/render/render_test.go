package render

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
)

func renderedPortfolio() *portfolio.Portfolio {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := "https://github.com/jane-doe/folio"
	return &portfolio.Portfolio{
		ID:       uuid.New(),
		Username: "jane-doe",
		Content: portfolio.Content{
			HeroTitle:       "Jane Doe",
			HeroDescription: "Backend engineer",
			About:           "I build data plumbing.",
		},
		Options: portfolio.DefaultOptions(),
		Experiences: []portfolio.Experience{
			{
				ID:        uuid.New(),
				Role:      "Engineer",
				Company:   "Acme",
				StartDate: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   &end,
			},
			{
				ID:        uuid.New(),
				Role:      "Senior Engineer",
				Company:   "Acme",
				StartDate: end,
			},
		},
		Projects: []portfolio.Project{
			{ID: uuid.New(), Title: "FolioForge", Description: "Portfolio builder", RepositoryURL: &repo},
		},
		Skills: []portfolio.Skill{
			{ID: uuid.New(), Name: "Go", Color: "#00ADD8"},
		},
		Educations: []portfolio.Education{
			{ID: uuid.New(), School: "State University", Degree: "BSc", Field: "CS", StartDate: time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)},
		},
		Socials: []portfolio.Social{
			{ID: uuid.New(), Platform: "github", URL: "https://github.com/jane-doe"},
		},
	}
}

func TestMinimalTheme_Render(t *testing.T) {
	th := NewMinimalTheme()
	assert.Equal(t, "minimal", th.ID)
	assert.False(t, th.Premium)

	page, err := th.Renderer.Render(context.Background(), renderedPortfolio())
	assert.NoError(t, err)

	assert.Equal(t, "Jane Doe", page.Title)
	assert.Equal(t, "Backend engineer", page.Description)

	html := string(page.HTML)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "I build data plumbing.")
	assert.Contains(t, html, "Jan 2022")
	assert.Contains(t, html, "Present")
	assert.Contains(t, html, "FolioForge")
	assert.Contains(t, html, "https://github.com/jane-doe/folio")
	assert.Contains(t, html, "Go")
	assert.Contains(t, html, "State University")
	assert.Contains(t, html, `data-color-theme="light"`)
	assert.Contains(t, html, "--bg: #FFFFFF")
}

func TestModernTheme_Render(t *testing.T) {
	th := NewModernTheme()
	assert.Equal(t, "modern", th.ID)
	assert.True(t, th.Premium)

	page, err := th.Renderer.Render(context.Background(), renderedPortfolio())
	assert.NoError(t, err)
	assert.Contains(t, string(page.HTML), "Jane Doe")
}

func TestRender_EscapesUserContent(t *testing.T) {
	p := renderedPortfolio()
	p.Content.About = `<script>alert("xss")</script>`

	page, err := NewMinimalTheme().Renderer.Render(context.Background(), p)
	assert.NoError(t, err)

	html := string(page.HTML)
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestPageTitle_Fallbacks(t *testing.T) {
	p := &portfolio.Portfolio{Username: "jane-doe"}
	assert.Equal(t, "jane-doe", pageTitle(p))

	p.Content.HeroTitle = "Hero"
	assert.Equal(t, "Hero", pageTitle(p))

	p.Content.MetaTitle = "Meta"
	assert.Equal(t, "Meta", pageTitle(p))
}

func TestColor_ShortPalette(t *testing.T) {
	assert.Equal(t, "#111111", color([]string{"#111111"}, 0))
	assert.Equal(t, "#FFFFFF", color([]string{"#111111"}, 3))
	assert.Equal(t, "#FFFFFF", color(nil, 0))
}
