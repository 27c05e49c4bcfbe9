// Package types provides type definitions for structured data used throughout the resume-optimizer system.
package types

// PersonalInfo holds contact details extracted from a resume.
// All fields are optional; extraction fills in whatever it can find.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// ExperienceEntry represents a single position in a candidate's work history.
type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// EducationEntry represents a degree or certification.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ProjectEntry represents a portfolio or side project.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// CandidateProfile is the structured result of resume extraction.
// It is created once per analysis request and never mutated afterwards.
type CandidateProfile struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`
	Projects     []ProjectEntry    `json:"projects"`
}

// Normalize replaces nil slices with empty ones so downstream consumers
// and JSON serialization never see null where a sequence is expected.
func (p *CandidateProfile) Normalize() {
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	for i := range p.Experience {
		if p.Experience[i].Achievements == nil {
			p.Experience[i].Achievements = []string{}
		}
	}
	for i := range p.Projects {
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}
}
