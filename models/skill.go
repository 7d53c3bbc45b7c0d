package models

import (
	"strconv"
	"strings"
)

// Skill is one progress bar on the public page.
type Skill struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Level        int     `json:"level"`
	Icon         *string `json:"icon,omitempty"`
	DisplayOrder int     `json:"display_order"`
}

const (
	MinLevel = 0
	MaxLevel = 100
)

// ParseLevel reads a form value as a percentage. Unparsable input is 0,
// out of range input is clamped.
func ParseLevel(s string) int {
	return ClampLevel(ParseInt(s))
}

func ClampLevel(n int) int {
	if n < MinLevel {
		return MinLevel
	}
	if n > MaxLevel {
		return MaxLevel
	}
	return n
}

// ParseInt parses a decimal form value, falling back to 0.
func ParseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// SkillGroup is a run of skills sharing a category.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// GroupSkills groups skills by category. Groups appear in order of the
// first skill of each category; skills keep their relative order.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	idx := map[string]int{}
	for _, s := range skills {
		i, ok := idx[s.Category]
		if !ok {
			i = len(groups)
			idx[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
