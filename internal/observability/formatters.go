// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.PersonalInfo.Name))
	if profile.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.PersonalInfo.Email))
	}
	sb.WriteString("\n")

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClassification outputs the domain matches, seniority, and ATS score.
func (p *Printer) PrintClassification(classification *types.DomainClassification) {
	if classification == nil || len(classification.Domains) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Seniority: %s (%.1f years)\n", classification.SeniorityLevel, classification.ExperienceYears))
	sb.WriteString(fmt.Sprintf("ATS Score: %d/100\n\n", classification.ATSScore))

	sb.WriteString("Domains:\n")
	count := min(len(classification.Domains), maxItemsToShow)
	for i := 0; i < count; i++ {
		domain := classification.Domains[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, domain.Name))
		sb.WriteString(fmt.Sprintf("    Confidence: %.0f%%\n", domain.Confidence))
	}
	if len(classification.Domains) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more domains\n", len(classification.Domains)-maxItemsToShow))
	}

	p.printBox("DOMAIN CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimization outputs the recommendations and skill lists.
func (p *Printer) PrintOptimization(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if len(result.KeyRecommendations) > 0 {
		sb.WriteString(fmt.Sprintf("Recommendations (%d):\n\n", len(result.KeyRecommendations)))
		count := min(len(result.KeyRecommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.KeyRecommendations[i]
			title := rec.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("• %s [%s]\n", title, rec.Impact))
		}
		if len(result.KeyRecommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.KeyRecommendations)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.SkillsToHighlight) > 0 {
		skills := strings.Join(result.SkillsToHighlight, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Highlight: %s\n", skills))
	}
	if len(result.SkillsInDemand) > 0 {
		skills := strings.Join(result.SkillsInDemand, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("In demand: %s\n", skills))
	}

	p.printBox("OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDegraded outputs which stages fell back to heuristics.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDegraded(stages []string) {
	if len(stages) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL STAGES USED THE MODEL")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d stage(s) used the fallback heuristic:\n\n", len(stages)))
	for i, stage := range stages {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", stage))
		if i < len(stages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DEGRADED STAGES", sb.String())
}
