package catalog

import (
	"fmt"
	"unicode/utf8"

	"github.com/tindwyr/crafthall/internal/domain"
)

// SkillCatalog is an immutable lookup table over the skill reference data
type SkillCatalog struct {
	skills []domain.Skill
	byID   map[int]*domain.Skill
	byKey  map[string]*domain.Skill
}

// NewSkillCatalog validates the given skills and builds the catalog.
// All validation issues are aggregated into a single *ValidationError.
func NewSkillCatalog(skills []domain.Skill) (*SkillCatalog, error) {
	var issues issueList
	seenIDs := make(map[int]bool, len(skills))
	seenKeys := make(map[string]bool, len(skills))

	for i := range skills {
		s := &skills[i]
		if s.ID <= 0 {
			issues.addf("skill at index %d: missing or non-positive id", i)
		} else if seenIDs[s.ID] {
			issues.addf("skill %d: duplicate id", s.ID)
		} else {
			seenIDs[s.ID] = true
		}
		if s.Name == "" {
			issues.addf("skill %d: empty name", s.ID)
		}
		if utf8.RuneCountInString(s.Key) != 1 {
			issues.addf("skill %d: key must be a single character, got %q", s.ID, s.Key)
		} else if seenKeys[s.Key] {
			issues.addf("skill %d: duplicate key %q", s.ID, s.Key)
		} else {
			seenKeys[s.Key] = true
		}
		if s.ProgressBonus <= 0 {
			issues.addf("skill %d: progress_bonus must be > 0, got %d", s.ID, s.ProgressBonus)
		}
	}

	if err := issues.err("skills"); err != nil {
		return nil, err
	}

	c := &SkillCatalog{
		skills: skills,
		byID:   make(map[int]*domain.Skill, len(skills)),
		byKey:  make(map[string]*domain.Skill, len(skills)),
	}
	for i := range c.skills {
		c.byID[c.skills[i].ID] = &c.skills[i]
		c.byKey[c.skills[i].Key] = &c.skills[i]
	}
	return c, nil
}

// All returns every skill in catalog order
func (c *SkillCatalog) All() []domain.Skill {
	out := make([]domain.Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// ByID returns the skill with the given id
func (c *SkillCatalog) ByID(id int) (*domain.Skill, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("skill %d: %w", id, domain.ErrSkillNotFound)
	}
	return s, nil
}

// ByKey returns the skill bound to the given key
func (c *SkillCatalog) ByKey(key string) (*domain.Skill, error) {
	s, ok := c.byKey[key]
	if !ok {
		return nil, fmt.Errorf("skill key %q: %w", key, domain.ErrSkillNotFound)
	}
	return s, nil
}

// ByCategory returns every skill in the given category, in catalog order
func (c *SkillCatalog) ByCategory(category string) []domain.Skill {
	var out []domain.Skill
	for _, s := range c.skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
