package server

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/export"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/market"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// analyzeResponse is the payload returned by POST /api/analyze.
type analyzeResponse struct {
	Success    bool            `json:"success"`
	ResumeID   uuid.UUID       `json:"resumeId"`
	AnalysisID uuid.UUID       `json:"analysisId"`
	Results    analysisResults `json:"results"`
	// Degraded lists stages served by the deterministic fallback because
	// the model path failed. Empty means every stage used the model.
	Degraded []string `json:"degraded"`
}

type analysisResults struct {
	ATSScore           int                       `json:"atsScore"`
	SeniorityLevel     string                    `json:"seniorityLevel"`
	ExperienceYears    float64                   `json:"experienceYears"`
	Domains            []types.DomainMatch       `json:"domains"`
	Recommendations    []types.Recommendation    `json:"recommendations"`
	Skills             types.SkillsSummary       `json:"skills"`
	ContentSuggestions []types.ContentSuggestion `json:"contentSuggestions"`
	OptimizedResume    string                    `json:"optimizedResume"`
	MarketSalary       market.Salary             `json:"marketSalary"`
}

// handleAnalyze accepts a multipart resume upload and runs the full
// analysis pipeline over it.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ingestion.MaxUploadBytes)
	if err := r.ParseMultipartForm(ingestion.MaxUploadBytes); err != nil {
		tooLarge := &ErrFileTooLarge{Limit: ingestion.MaxUploadBytes}
		s.errorResponse(w, HTTPStatus(tooLarge), tooLarge.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		missing := &ErrMissingFile{}
		s.errorResponse(w, HTTPStatus(missing), missing.Error())
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	resumeText, err := ingestion.ExtractText(mimeType, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if resumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume file contains no readable text")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), types.AnalyzeRequest{
		Filename:     header.Filename,
		FileType:     mimeType,
		FileSize:     len(data),
		ResumeText:   resumeText,
		TargetDomain: r.FormValue("targetDomain"),
		UserID:       r.FormValue("userId"),
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		Success:    true,
		ResumeID:   result.ResumeID,
		AnalysisID: result.AnalysisID,
		Results: analysisResults{
			ATSScore:        result.Classification.ATSScore,
			SeniorityLevel:  string(result.Classification.SeniorityLevel),
			ExperienceYears: result.Classification.ExperienceYears,
			Domains:         result.Classification.Domains,
			Recommendations: result.Optimization.KeyRecommendations,
			Skills: types.SkillsSummary{
				Current:     result.Profile.Skills,
				ToHighlight: result.Optimization.SkillsToHighlight,
				InDemand:    result.Optimization.SkillsInDemand,
			},
			ContentSuggestions: result.Optimization.ContentSuggestions,
			OptimizedResume:    result.Optimization.OptimizedResume,
			MarketSalary:       result.MarketSalary,
		},
		Degraded: result.Degraded,
	})
}

// handleGetAnalysis returns a stored analysis by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analysis == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleGetResume returns a stored resume with its most recent analysis id.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resume == nil {
		notFound := &ErrResumeNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	response := map[string]any{"resume": resume}
	analysis, err := s.store.GetAnalysisByResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analysis != nil {
		response["latestAnalysisId"] = analysis.ID
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleAnalysisJobs returns the job postings associated with an analysis.
func (s *Server) handleAnalysisJobs(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analysis == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	postings, err := s.store.ListJobPostingsByAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if postings == nil {
		postings = []db.JobPosting{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysisId": id,
		"jobs":       postings,
	})
}

// handleExport renders a stored analysis's optimized resume as a download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("analysis_id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analysis == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	doc, err := export.Render(format, analysis.OptimizedContent)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		log.Printf("Error writing export response: %v", err)
	}
}

func parseUUID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, &ErrInvalidID{Value: value}
	}
	return id, nil
}
