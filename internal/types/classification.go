package types

import "sort"

// Seniority is a career-level label. Only the five defined values are valid.
type Seniority string

// Seniority levels, ordered from least to most experienced.
const (
	SeniorityJunior    Seniority = "Junior"
	SeniorityMid       Seniority = "Mid"
	SenioritySenior    Seniority = "Senior"
	SeniorityStaff     Seniority = "Staff"
	SeniorityPrincipal Seniority = "Principal"
)

// Valid reports whether s is one of the five defined seniority labels.
func (s Seniority) Valid() bool {
	switch s {
	case SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityStaff, SeniorityPrincipal:
		return true
	}
	return false
}

// DomainMatch is one career-domain candidate with a confidence score.
type DomainMatch struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// DomainClassification is the structured result of the domain/seniority stage.
// Domains are sorted descending by confidence; the first entry is treated as
// the dominant domain downstream.
type DomainClassification struct {
	Domains         []DomainMatch `json:"domains"`
	SeniorityLevel  Seniority     `json:"seniorityLevel"`
	ExperienceYears float64       `json:"experienceYears"`
	ATSScore        int           `json:"atsScore"`
}

// DominantDomain returns the name of the best-matching domain, or empty
// if no domains are present.
func (c *DomainClassification) DominantDomain() string {
	if len(c.Domains) == 0 {
		return ""
	}
	return c.Domains[0].Name
}

// Normalize clamps scores into their valid ranges and re-sorts domains
// descending by confidence. The sort is stable so equal-confidence domains
// keep their original order.
func (c *DomainClassification) Normalize() {
	for i := range c.Domains {
		c.Domains[i].Confidence = clamp(c.Domains[i].Confidence, 0, 100)
	}
	sort.SliceStable(c.Domains, func(i, j int) bool {
		return c.Domains[i].Confidence > c.Domains[j].Confidence
	})
	if c.ATSScore < 0 {
		c.ATSScore = 0
	}
	if c.ATSScore > 100 {
		c.ATSScore = 100
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
