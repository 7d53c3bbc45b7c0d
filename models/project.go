package models

import "strings"

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusUpcoming   ProjectStatus = "upcoming"
)

// ParseProjectStatus maps form input to a status; unknown values are
// treated as completed.
func ParseProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusInProgress:
		return StatusInProgress
	case StatusUpcoming:
		return StatusUpcoming
	default:
		return StatusCompleted
	}
}

func (s ProjectStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusUpcoming:
		return "Upcoming"
	default:
		return "Completed"
	}
}

type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	TechStack    []string      `json:"tech_stack"`
	GitHubURL    *string       `json:"github_url,omitempty"`
	LiveURL      *string       `json:"live_url,omitempty"`
	ImageURL     *string       `json:"image_url,omitempty"`
	Featured     bool          `json:"featured"`
	Category     string        `json:"category"`
	Status       ProjectStatus `json:"status"`
	DisplayOrder int           `json:"display_order"`
}

// ParseTechStack splits comma separated input, trimming each entry and
// dropping empty ones.
func ParseTechStack(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinTechStack is the inverse of ParseTechStack, used to prefill forms.
func JoinTechStack(stack []string) string {
	return strings.Join(stack, ", ")
}

// OptionalString returns nil for blank input.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FilterProjects keeps projects of the given category. An empty
// category or "all" keeps everything.
func FilterProjects(projects []Project, category string) []Project {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return projects
	}
	var out []Project
	for _, p := range projects {
		if strings.ToLower(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// ProjectCategories lists the distinct non-empty categories in order of
// appearance, prefixed with "all".
func ProjectCategories(projects []Project) []string {
	out := []string{"all"}
	seen := map[string]bool{}
	for _, p := range projects {
		c := strings.ToLower(strings.TrimSpace(p.Category))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
