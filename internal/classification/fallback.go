package classification

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// domainBuckets are the fixed domains scored by the fallback, in evaluation
// order. Consumer Apps has no keywords and can never score above the floor;
// that matches the long-standing behavior of the scoring table and is kept
// as-is.
var domainBuckets = []struct {
	name     string
	keywords []string
}{
	{"B2B SaaS", []string{"saas", "enterprise", "b2b"}},
	{"E-commerce", []string{"ecommerce", "shopping", "retail"}},
	{"Fintech", []string{"fintech", "banking", "financial"}},
	{"Healthcare", []string{"health", "medical", "patient"}},
	{"EdTech", []string{"education", "learning", "student"}},
	{"Consumer Apps", nil},
}

const (
	keywordScore       = 30
	minConfidence      = 25
	defaultDomainScore = 75
	defaultDomain      = "B2B SaaS"
	fallbackReasoning  = "Based on keyword analysis and experience content"

	fallbackATSBase     = 60
	fallbackATSPerSkill = 2
	fallbackATSPerRole  = 5
	fallbackATSCap      = 90
)

// FallbackClassify scores the six fixed domain buckets by keyword presence in
// the profile's experience descriptions and skills, derives seniority from
// the experience-entry count, and computes a capped linear ATS score. The
// result is fully deterministic for a given profile.
func FallbackClassify(profile *types.CandidateProfile) *types.DomainClassification {
	var sb strings.Builder
	for _, exp := range profile.Experience {
		sb.WriteString(exp.Description)
		sb.WriteString(" ")
	}
	sb.WriteString(strings.Join(profile.Skills, " "))
	allText := strings.ToLower(sb.String())

	scores := make([]float64, len(domainBuckets))
	for i, bucket := range domainBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(allText, kw) {
				scores[i] = keywordScore
				break
			}
		}
	}

	// No clear indicators at all: default to B2B SaaS.
	maxScore := 0.0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore == 0 {
		for i, bucket := range domainBuckets {
			if bucket.name == defaultDomain {
				scores[i] = defaultDomainScore
			}
		}
	}

	domains := make([]types.DomainMatch, len(domainBuckets))
	for i, bucket := range domainBuckets {
		confidence := scores[i]
		if confidence < minConfidence {
			confidence = minConfidence
		}
		domains[i] = types.DomainMatch{
			Name:       bucket.name,
			Confidence: confidence,
			Reasoning:  fallbackReasoning,
		}
	}

	seniority, years := fallbackSeniority(len(profile.Experience))

	atsScore := fallbackATSBase + fallbackATSPerSkill*len(profile.Skills) + fallbackATSPerRole*len(profile.Experience)
	if atsScore > fallbackATSCap {
		atsScore = fallbackATSCap
	}

	classification := &types.DomainClassification{
		Domains:         domains,
		SeniorityLevel:  seniority,
		ExperienceYears: years,
		ATSScore:        atsScore,
	}
	classification.Normalize()
	return classification
}

// fallbackSeniority maps the experience-entry count to a seniority label and
// an estimated year count. Principal is reachable only through the model
// path; the fallback tops out at Staff.
func fallbackSeniority(experienceCount int) (types.Seniority, float64) {
	switch {
	case experienceCount <= 1:
		return types.SeniorityJunior, 1
	case experienceCount <= 3:
		return types.SeniorityMid, 3
	case experienceCount <= 5:
		return types.SenioritySenior, 5
	default:
		return types.SeniorityStaff, 7
	}
}
