package portfolio

import (
	"go.uber.org/zap"

	"github.com/namvu-dev/folioforge/pkg/logger"
)

// Assemble normalizes a raw fetch result into the canonical aggregate.
//
// A nil row is the only failure (ErrPortfolioNotFound). Everything else is
// best effort: a missing content row becomes an empty placeholder, the
// options blob is decoded with full defaulting, skill rows are flattened
// from either storage shape and unrecognizable ones are dropped with a warn
// log, and absent child collections become empty slices. Calling Assemble
// twice on the same row yields deeply equal results.
func Assemble(raw *RawRow, log logger.Logger) (*Portfolio, error) {
	if raw == nil {
		return nil, ErrPortfolioNotFound
	}

	p := &Portfolio{
		ID:        raw.ID,
		OwnerID:   raw.OwnerID,
		Username:  raw.Username,
		TenantID:  raw.TenantID,
		Published: raw.Published,
		CreatedAt: raw.CreatedAt,
	}

	if raw.Content != nil {
		p.Content = *raw.Content
	}

	if len(raw.Options) > 0 {
		p.Options = DecodeOptions(raw.Options[0])
	} else {
		p.Options = DefaultOptions()
	}

	p.Skills = make([]Skill, 0, len(raw.Skills))
	for _, entry := range raw.Skills {
		s, ok := entry.flatten()
		if !ok {
			if log != nil {
				log.Warn("dropping skill row with unknown shape",
					zap.String("portfolio_id", raw.ID.String()),
					zap.String("skill_id", entry.ID.String()))
			}
			continue
		}
		p.Skills = append(p.Skills, s)
	}

	p.Experiences = append(make([]Experience, 0, len(raw.Experiences)), raw.Experiences...)
	p.Educations = append(make([]Education, 0, len(raw.Educations)), raw.Educations...)
	p.Projects = append(make([]Project, 0, len(raw.Projects)), raw.Projects...)
	p.Socials = append(make([]Social, 0, len(raw.Socials)), raw.Socials...)

	return p, nil
}
