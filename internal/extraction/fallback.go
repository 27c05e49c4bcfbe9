package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// maxFallbackExperience caps heuristic experience entries. Truncation is
// earliest-found-first, not recency-based.
const maxFallbackExperience = 5

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\(?[\d\s\-()]{10,}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
)

// skillKeywords marks lines that mention common design tools. A matching
// line is kept verbatim as a skill entry, not tokenized.
var skillKeywords = []string{"figma", "sketch", "adobe", "photoshop", "illustrator", "xd"}

// roleKeywords marks lines that look like job titles.
var roleKeywords = []string{"designer", "product", "ux", "ui"}

// defaultSkills is substituted when the keyword scan finds nothing.
var defaultSkills = []string{"Figma", "Design Systems", "User Research", "Prototyping", "Adobe Creative Suite"}

// FallbackExtract builds a CandidateProfile from resume text using fixed
// rules: the first line is the name, contact details come from regular
// expressions, and skills/experience come from keyword scans over each line.
// Education and projects are not extracted heuristically.
func FallbackExtract(resumeText string) *types.CandidateProfile {
	lines := splitLines(resumeText)

	personal := types.PersonalInfo{
		Email:    emailPattern.FindString(resumeText),
		Phone:    strings.TrimSpace(phonePattern.FindString(resumeText)),
		LinkedIn: linkedinPattern.FindString(resumeText),
	}
	if len(lines) > 0 {
		personal.Name = lines[0]
	}

	var skills []string
	var experience []types.ExperienceEntry

	for i, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, skillKeywords) {
			skills = append(skills, line)
		}

		if containsAny(lower, roleKeywords) {
			entry := types.ExperienceEntry{
				Title:        line,
				Description:  strings.Join(window(lines, i+1, i+4), " "),
				Achievements: []string{},
			}
			if i+1 < len(lines) {
				entry.Company = lines[i+1]
			}
			experience = append(experience, entry)
		}
	}

	if len(experience) > maxFallbackExperience {
		experience = experience[:maxFallbackExperience]
	}

	if len(skills) == 0 {
		skills = append(skills, defaultSkills...)
	}

	profile := &types.CandidateProfile{
		PersonalInfo: personal,
		Experience:   experience,
		Skills:       skills,
	}
	profile.Normalize()
	return profile
}

// splitLines splits text into trimmed, non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// containsAny reports whether text contains any of the given substrings.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// window returns lines[start:end] clipped to valid bounds.
func window(lines []string, start, end int) []string {
	if start > len(lines) {
		start = len(lines)
	}
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}
