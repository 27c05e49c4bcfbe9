package optimization

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// supplementarySkills are appended to the skills section of the rewritten
// resume regardless of the candidate's own list.
var supplementarySkills = []string{"Design Systems", "User Research", "A/B Testing", "Accessibility"}

// FallbackGenerate returns a fixed set of generic recommendations and skill
// lists. Only the rewritten resume text is derived from the inputs.
func FallbackGenerate(profile *types.CandidateProfile, classification *types.DomainClassification) *types.OptimizationResult {
	return &types.OptimizationResult{
		KeyRecommendations: []types.Recommendation{
			{
				Title:       "Quantify Your Impact",
				Description: "Add specific metrics and numbers to your achievements to demonstrate measurable impact.",
				Impact:      types.ImpactHigh,
			},
			{
				Title:       "Highlight Design Systems Experience",
				Description: "Emphasize your experience with design systems and component libraries.",
				Impact:      types.ImpactHigh,
			},
			{
				Title:       "Include User Research Methods",
				Description: "Specify the user research methodologies you've used in your projects.",
				Impact:      types.ImpactMedium,
			},
			{
				Title:       "Add Collaboration Examples",
				Description: "Include examples of cross-functional collaboration with engineering and product teams.",
				Impact:      types.ImpactMedium,
			},
		},
		SkillsToHighlight: []string{"Design Systems", "User Research", "Prototyping", "A/B Testing"},
		SkillsInDemand:    []string{"Figma", "React", "Design Tokens", "Accessibility", "Data-Driven Design"},
		ContentSuggestions: []types.ContentSuggestion{
			{
				Section:   "Experience",
				Current:   "Designed user interfaces",
				Improved:  "Designed and implemented user interfaces that increased user engagement by 25% through iterative testing and data analysis",
				Reasoning: "Added quantifiable metrics and process details",
			},
		},
		OptimizedResume: buildOptimizedResume(profile, classification),
	}
}

// buildOptimizedResume synthesizes a rewritten resume: a contact header, a
// seniority heading, one block per experience entry with generic bullets, and
// a skills section. The bullets are fixed text, not derived from the entry's
// own description.
func buildOptimizedResume(profile *types.CandidateProfile, classification *types.DomainClassification) string {
	var sb strings.Builder

	sb.WriteString(profile.PersonalInfo.Name + "\n")
	if profile.PersonalInfo.Email != "" {
		sb.WriteString(profile.PersonalInfo.Email + "\n")
	}
	if profile.PersonalInfo.Phone != "" {
		sb.WriteString(profile.PersonalInfo.Phone + "\n")
	}
	if profile.PersonalInfo.LinkedIn != "" {
		sb.WriteString(profile.PersonalInfo.LinkedIn + "\n")
	}

	sb.WriteString("\n" + string(classification.SeniorityLevel) + " Product Designer\n\n")
	sb.WriteString("PROFESSIONAL EXPERIENCE\n\n")

	for _, exp := range profile.Experience {
		sb.WriteString(exp.Title + "\n" + exp.Company + "\n" + exp.Duration + "\n")
		sb.WriteString("• Led end-to-end product design resulting in improved user experience\n")
		sb.WriteString("• Collaborated with cross-functional teams to deliver user-centered solutions\n")
		sb.WriteString("• Utilized data-driven design principles to optimize conversion rates\n\n")
	}

	sb.WriteString("CORE SKILLS\n")
	sb.WriteString(strings.Join(profile.Skills, ", ") + ", " + strings.Join(supplementarySkills, ", ") + "\n\n")

	return sb.String()
}
