package portfolio

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RawRow is the storage-boundary shape of a "fetch full portfolio" query:
// the root row plus its related collections, before normalization. Child
// slices may be nil and Content may be absent; Assemble fixes all of that.
type RawRow struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Username  string    `json:"username"`
	TenantID  string    `json:"tenant_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`

	Content *Content `json:"content"`

	// Options rows are semantically singular but historically stored as a
	// collection of opaque blobs. Only the first entry is decoded.
	Options []json.RawMessage `json:"options"`

	Experiences []Experience    `json:"experiences"`
	Educations  []Education     `json:"educations"`
	Projects    []Project       `json:"projects"`
	Skills      []RawSkillEntry `json:"skills"`
	Socials     []Social        `json:"socials"`
}

// RawSkillEntry is the tagged union of the two skill row shapes the store
// can return: a flat skill row, or a join-through row wrapping the skill in
// a nested Details object.
type RawSkillEntry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`

	Details *Skill `json:"details,omitempty"`
}

// FlatSkill wraps a flat skill row for RawRow.Skills.
func FlatSkill(s Skill) RawSkillEntry {
	return RawSkillEntry{ID: s.ID, Name: s.Name, Category: s.Category, Icon: s.Icon, Color: s.Color}
}

// WrappedSkill wraps a join-through row for RawRow.Skills.
func WrappedSkill(s Skill) RawSkillEntry {
	detail := s
	return RawSkillEntry{ID: s.ID, Details: &detail}
}

// flatten normalizes either variant into the canonical Skill shape. The
// second return is false for entries matching neither variant; those are
// dropped by the assembler.
func (e RawSkillEntry) flatten() (Skill, bool) {
	if e.Name != "" {
		return Skill{ID: e.ID, Name: e.Name, Category: e.Category, Icon: e.Icon, Color: e.Color}, true
	}
	if e.Details != nil && e.Details.Name != "" {
		s := *e.Details
		if s.ID == uuid.Nil {
			s.ID = e.ID
		}
		return s, true
	}
	return Skill{}, false
}
