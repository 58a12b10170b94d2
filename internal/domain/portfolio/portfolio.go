package portfolio

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Portfolio is the canonical in-memory aggregate handed to theme renderers.
// After Assemble it is fully populated: Content is never missing, Options is
// always defaulted, and every child collection is non-nil.
type Portfolio struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Username  string    `json:"username"`
	TenantID  string    `json:"tenant_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`

	Content     Content      `json:"content"`
	Options     Options      `json:"options"`
	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
	Projects    []Project    `json:"projects"`
	Skills      []Skill      `json:"skills"`
	Socials     []Social     `json:"socials"`
}

type Content struct {
	HeroTitle       string `json:"hero_title"`
	HeroDescription string `json:"hero_description"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	About           string `json:"about"`
}

type Experience struct {
	ID             uuid.UUID  `json:"id"`
	Role           string     `json:"role"`
	Company        string     `json:"company"`
	EmploymentType *string    `json:"employment_type"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"` // nil means "present"
	Description    string     `json:"description"`
	LogoURL        *string    `json:"logo_url"`
}

type Education struct {
	ID        uuid.UUID  `json:"id"`
	School    string     `json:"school"`
	Degree    string     `json:"degree"`
	Field     string     `json:"field"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type Project struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	RepositoryURL *string   `json:"repository_url"`
	LiveURL       *string   `json:"live_url"`
	ImageURL      *string   `json:"image_url"`
}

type Skill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`
}

type Social struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
}

// Metadata is the lightweight read used for page <head> generation.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrInvalidUsername   = errors.New("username only allows lowercase letters, numbers, and hyphens")
	usernameRegex        = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func (p *Portfolio) Validate() error {
	if !usernameRegex.MatchString(p.Username) {
		return ErrInvalidUsername
	}
	return nil
}

// KeyKind selects which of the three equivalent lookup keys addresses a
// portfolio. All three feed the same fetch query.
type KeyKind string

const (
	KeyUsername KeyKind = "username"
	KeyID       KeyKind = "id"
	KeyTenant   KeyKind = "tenant"
)

type LookupKey struct {
	Kind  KeyKind
	Value string
}

func ByUsername(username string) LookupKey { return LookupKey{Kind: KeyUsername, Value: username} }
func ByID(id uuid.UUID) LookupKey          { return LookupKey{Kind: KeyID, Value: id.String()} }
func ByTenant(tenantID string) LookupKey   { return LookupKey{Kind: KeyTenant, Value: tenantID} }

func (k LookupKey) String() string {
	return string(k.Kind) + ":" + k.Value
}

type Repository interface {
	Create(ctx context.Context, p *Portfolio) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Portfolio, error)
	SetPublished(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, published bool) error
	FetchFull(ctx context.Context, key LookupKey) (*RawRow, error)
	FetchMetadata(ctx context.Context, key LookupKey) (*Metadata, error)
}

type ExperienceRepository interface {
	Save(ctx context.Context, portfolioID uuid.UUID, e *Experience) error
	Update(ctx context.Context, portfolioID uuid.UUID, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]Experience, error)
}

type EducationRepository interface {
	Save(ctx context.Context, portfolioID uuid.UUID, e *Education) error
	Update(ctx context.Context, portfolioID uuid.UUID, e *Education) error
	Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]Education, error)
}

type ProjectRepository interface {
	Save(ctx context.Context, portfolioID uuid.UUID, p *Project) error
	Update(ctx context.Context, portfolioID uuid.UUID, p *Project) error
	Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]Project, error)
}

type SkillRepository interface {
	Save(ctx context.Context, portfolioID uuid.UUID, s *Skill) error
	Update(ctx context.Context, portfolioID uuid.UUID, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]Skill, error)
}

type SocialRepository interface {
	Save(ctx context.Context, portfolioID uuid.UUID, s *Social) error
	Update(ctx context.Context, portfolioID uuid.UUID, s *Social) error
	Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]Social, error)
}

type ContentRepository interface {
	Upsert(ctx context.Context, portfolioID uuid.UUID, c *Content) error
	GetByPortfolio(ctx context.Context, portfolioID uuid.UUID) (*Content, error)
}

type OptionsRepository interface {
	Upsert(ctx context.Context, portfolioID uuid.UUID, o Options) error
	GetByPortfolio(ctx context.Context, portfolioID uuid.UUID) (Options, error)
}
