package types

// Impact describes how much a recommendation is expected to move the needle.
type Impact string

// Impact levels for recommendations.
const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Valid reports whether i is one of the defined impact levels.
func (i Impact) Valid() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	}
	return false
}

// Recommendation is a single prioritized optimization suggestion.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
}

// ContentSuggestion is a before/after rewrite of one resume section.
type ContentSuggestion struct {
	Section   string `json:"section"`
	Current   string `json:"current"`
	Improved  string `json:"improved"`
	Reasoning string `json:"reasoning"`
}

// OptimizationResult is the structured output of the optimization stage.
type OptimizationResult struct {
	KeyRecommendations []Recommendation    `json:"keyRecommendations"`
	SkillsToHighlight  []string            `json:"skillsToHighlight"`
	SkillsInDemand     []string            `json:"skillsInDemand"`
	ContentSuggestions []ContentSuggestion `json:"contentSuggestions"`
	OptimizedResume    string              `json:"optimizedResume"`
}

// Normalize replaces nil slices with empty ones.
func (o *OptimizationResult) Normalize() {
	if o.KeyRecommendations == nil {
		o.KeyRecommendations = []Recommendation{}
	}
	if o.SkillsToHighlight == nil {
		o.SkillsToHighlight = []string{}
	}
	if o.SkillsInDemand == nil {
		o.SkillsInDemand = []string{}
	}
	if o.ContentSuggestions == nil {
		o.ContentSuggestions = []ContentSuggestion{}
	}
}
