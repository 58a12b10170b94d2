package http

import (
	"time"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
)

// Auth DTOs

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Portfolio DTOs

type CreatePortfolioRequest struct {
	Username string `json:"username" binding:"required"`
	TenantID string `json:"tenant_id"`
}

type SetPublishedRequest struct {
	Published *bool `json:"published" binding:"required"`
}

type PortfolioDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	TenantID  string    `json:"tenant_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`

	Content     ContentDTO      `json:"content"`
	Options     OptionsDTO      `json:"options"`
	Experiences []ExperienceDTO `json:"experiences"`
	Educations  []EducationDTO  `json:"educations"`
	Projects    []ProjectDTO    `json:"projects"`
	Skills      []SkillDTO      `json:"skills"`
	Socials     []SocialDTO     `json:"socials"`
}

func ToPortfolioDTO(p *portfolio.Portfolio) PortfolioDTO {
	dto := PortfolioDTO{
		ID:        p.ID.String(),
		Username:  p.Username,
		TenantID:  p.TenantID,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		Content:   ToContentDTO(p.Content),
		Options:   ToOptionsDTO(p.Options),
	}
	dto.Experiences = make([]ExperienceDTO, len(p.Experiences))
	for i, e := range p.Experiences {
		dto.Experiences[i] = ToExperienceDTO(e)
	}
	dto.Educations = make([]EducationDTO, len(p.Educations))
	for i, e := range p.Educations {
		dto.Educations[i] = ToEducationDTO(e)
	}
	dto.Projects = make([]ProjectDTO, len(p.Projects))
	for i, pr := range p.Projects {
		dto.Projects[i] = ToProjectDTO(pr)
	}
	dto.Skills = make([]SkillDTO, len(p.Skills))
	for i, s := range p.Skills {
		dto.Skills[i] = ToSkillDTO(s)
	}
	dto.Socials = make([]SocialDTO, len(p.Socials))
	for i, s := range p.Socials {
		dto.Socials[i] = ToSocialDTO(s)
	}
	return dto
}

// Content DTOs

type ContentRequest struct {
	HeroTitle       string `json:"hero_title"`
	HeroDescription string `json:"hero_description"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	About           string `json:"about"`
}

type ContentDTO struct {
	HeroTitle       string `json:"hero_title"`
	HeroDescription string `json:"hero_description"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	About           string `json:"about"`
}

func (r ContentRequest) ToDomain() portfolio.Content {
	return portfolio.Content{
		HeroTitle:       r.HeroTitle,
		HeroDescription: r.HeroDescription,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		About:           r.About,
	}
}

func ToContentDTO(c portfolio.Content) ContentDTO {
	return ContentDTO(c)
}

// Options DTOs

type OptionsRequest struct {
	Theme      string   `json:"theme"`
	ColorTheme string   `json:"colorTheme"`
	Colors     []string `json:"colors"`
	Font       string   `json:"font"`
}

type OptionsDTO struct {
	Theme      string   `json:"theme"`
	ColorTheme string   `json:"colorTheme"`
	Colors     []string `json:"colors"`
	Font       string   `json:"font"`
}

func (r OptionsRequest) ToDomain() portfolio.Options {
	return portfolio.Options{
		Theme:      r.Theme,
		ColorTheme: r.ColorTheme,
		Colors:     r.Colors,
		Font:       r.Font,
	}
}

func ToOptionsDTO(o portfolio.Options) OptionsDTO {
	return OptionsDTO(o)
}

// Experience DTOs

type ExperienceRequest struct {
	Role           string     `json:"role" binding:"required"`
	Company        string     `json:"company" binding:"required"`
	EmploymentType *string    `json:"employment_type"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        *time.Time `json:"end_date"`
	Description    string     `json:"description"`
	LogoURL        *string    `json:"logo_url"`
}

type ExperienceDTO struct {
	ID             string     `json:"id"`
	Role           string     `json:"role"`
	Company        string     `json:"company"`
	EmploymentType *string    `json:"employment_type"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Description    string     `json:"description"`
	LogoURL        *string    `json:"logo_url"`
}

func ToExperienceDTO(e portfolio.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:             e.ID.String(),
		Role:           e.Role,
		Company:        e.Company,
		EmploymentType: e.EmploymentType,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		Description:    e.Description,
		LogoURL:        e.LogoURL,
	}
}

// Education DTOs

type EducationRequest struct {
	School    string     `json:"school" binding:"required"`
	Degree    string     `json:"degree"`
	Field     string     `json:"field"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date"`
}

type EducationDTO struct {
	ID        string     `json:"id"`
	School    string     `json:"school"`
	Degree    string     `json:"degree"`
	Field     string     `json:"field"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func ToEducationDTO(e portfolio.Education) EducationDTO {
	return EducationDTO{
		ID:        e.ID.String(),
		School:    e.School,
		Degree:    e.Degree,
		Field:     e.Field,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
	}
}

// Project DTOs

type ProjectRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	RepositoryURL *string `json:"repository_url"`
	LiveURL       *string `json:"live_url"`
	ImageURL      *string `json:"image_url"`
}

type ProjectDTO struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	RepositoryURL *string `json:"repository_url"`
	LiveURL       *string `json:"live_url"`
	ImageURL      *string `json:"image_url"`
}

func ToProjectDTO(p portfolio.Project) ProjectDTO {
	return ProjectDTO{
		ID:            p.ID.String(),
		Title:         p.Title,
		Description:   p.Description,
		RepositoryURL: p.RepositoryURL,
		LiveURL:       p.LiveURL,
		ImageURL:      p.ImageURL,
	}
}

// Skill DTOs

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

type SkillDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

func ToSkillDTO(s portfolio.Skill) SkillDTO {
	return SkillDTO{
		ID:       s.ID.String(),
		Name:     s.Name,
		Category: s.Category,
		Icon:     s.Icon,
		Color:    s.Color,
	}
}

// Social DTOs

type SocialRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
}

type SocialDTO struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

func ToSocialDTO(s portfolio.Social) SocialDTO {
	return SocialDTO{
		ID:       s.ID.String(),
		Platform: s.Platform,
		URL:      s.URL,
	}
}

// Theme DTOs

type ThemeDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Premium     bool   `json:"premium"`
}

func ToThemeDTO(t theme.Theme) ThemeDTO {
	return ThemeDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Thumbnail:   t.Thumbnail,
		Premium:     t.Premium,
	}
}

// Metadata DTO

type MetadataDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
