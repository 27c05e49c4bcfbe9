package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
)

// fakeStore backs handler tests without a database.
type fakeStore struct {
	resumes  map[uuid.UUID]*db.Resume
	analyses map[uuid.UUID]*db.Analysis
	postings map[uuid.UUID][]db.JobPosting
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		resumes:  make(map[uuid.UUID]*db.Resume),
		analyses: make(map[uuid.UUID]*db.Analysis),
		postings: make(map[uuid.UUID][]db.JobPosting),
	}
}

func (f *fakeStore) CreateResume(_ context.Context, resume db.NewResume) (*db.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := &db.Resume{
		ID:           uuid.New(),
		UserID:       resume.UserID,
		Filename:     resume.Filename,
		OriginalText: resume.OriginalText,
		FileType:     resume.FileType,
		FileSize:     resume.FileSize,
	}
	f.resumes[stored.ID] = stored
	return stored, nil
}

func (f *fakeStore) CreateAnalysis(_ context.Context, analysis db.NewAnalysis) (*db.Analysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := &db.Analysis{
		ID:               uuid.New(),
		ResumeID:         analysis.ResumeID,
		SeniorityLevel:   analysis.SeniorityLevel,
		ExperienceYears:  analysis.ExperienceYears,
		DominantDomain:   analysis.DominantDomain,
		DomainConfidence: analysis.DomainConfidence,
		ATSScore:         analysis.ATSScore,
		Skills:           analysis.Skills,
		Recommendations:  analysis.Recommendations,
		OptimizedContent: analysis.OptimizedContent,
		MarketSalary:     analysis.MarketSalary,
		DegradedStages:   analysis.DegradedStages,
	}
	f.analyses[stored.ID] = stored
	return stored, nil
}

func (f *fakeStore) GetResume(_ context.Context, id uuid.UUID) (*db.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resumes[id], nil
}

func (f *fakeStore) GetAnalysis(_ context.Context, id uuid.UUID) (*db.Analysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.analyses[id], nil
}

func (f *fakeStore) GetAnalysisByResume(_ context.Context, resumeID uuid.UUID) (*db.Analysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, analysis := range f.analyses {
		if analysis.ResumeID == resumeID {
			return analysis, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListJobPostingsByAnalysis(_ context.Context, analysisID uuid.UUID) ([]db.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.postings[analysisID], nil
}

// newTestServer wires a Server around the fake store with no LLM client, so
// every analysis runs on the fallback path.
func newTestServer(store *fakeStore) *Server {
	return &Server{
		store:    store,
		analyzer: pipeline.New(nil, store),
	}
}

// multipartResume builds a multipart body with a resume file part carrying an
// explicit content type.
func multipartResume(t *testing.T, filename, contentType, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(newFakeStore())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHandleAnalyze(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store)

	body, contentType := multipartResume(t, "resume.txt", "text/plain",
		"Jane Doe\njane@x.com\nSenior Product Designer\nAcme Corp", nil)
	req := httptest.NewRequest("POST", "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success    bool      `json:"success"`
		ResumeID   uuid.UUID `json:"resumeId"`
		AnalysisID uuid.UUID `json:"analysisId"`
		Results    struct {
			ATSScore       int    `json:"atsScore"`
			SeniorityLevel string `json:"seniorityLevel"`
			Domains        []struct {
				Name       string  `json:"name"`
				Confidence float64 `json:"confidence"`
			} `json:"domains"`
			OptimizedResume string `json:"optimizedResume"`
			MarketSalary    struct {
				Estimated int `json:"estimated"`
			} `json:"marketSalary"`
		} `json:"results"`
		Degraded []string `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, resp.ResumeID)
	assert.NotEqual(t, uuid.Nil, resp.AnalysisID)
	assert.NotEmpty(t, resp.Results.Domains)
	assert.NotEmpty(t, resp.Results.OptimizedResume)
	assert.Equal(t, 120000, resp.Results.MarketSalary.Estimated)
	// No LLM client wired: every stage reports degraded.
	assert.Len(t, resp.Degraded, 3)

	// The upload and analysis were persisted.
	assert.Len(t, store.resumes, 1)
	assert.Len(t, store.analyses, 1)
}

func TestHandleAnalyze_MissingFile(t *testing.T) {
	srv := newTestServer(newFakeStore())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("targetDomain", "Fintech"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing resume file")
}

func TestHandleAnalyze_UnsupportedFileType(t *testing.T) {
	srv := newTestServer(newFakeStore())

	body, contentType := multipartResume(t, "resume.png", "image/png", "binary", nil)
	req := httptest.NewRequest("POST", "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandleAnalyze_EmptyFile(t *testing.T) {
	srv := newTestServer(newFakeStore())

	body, contentType := multipartResume(t, "resume.txt", "text/plain", "   \n  ", nil)
	req := httptest.NewRequest("POST", "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAnalysis(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store)

	analysis, err := store.CreateAnalysis(context.Background(), db.NewAnalysis{
		ResumeID:       uuid.New(),
		SeniorityLevel: "Senior",
		ATSScore:       82,
		DegradedStages: []string{},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis/"+analysis.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got db.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, analysis.ID, got.ID)
	assert.Equal(t, 82, got.ATSScore)
}

func TestHandleGetAnalysis_NotFound(t *testing.T) {
	srv := newTestServer(newFakeStore())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetAnalysis_InvalidID(t *testing.T) {
	srv := newTestServer(newFakeStore())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetResume(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store)

	resume, err := store.CreateResume(context.Background(), db.NewResume{
		Filename:     "resume.txt",
		OriginalText: "Jane Doe",
		FileType:     "text/plain",
		FileSize:     8,
	})
	require.NoError(t, err)

	analysis, err := store.CreateAnalysis(context.Background(), db.NewAnalysis{ResumeID: resume.ID})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/resumes/"+resume.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Resume           db.Resume `json:"resume"`
		LatestAnalysisID uuid.UUID `json:"latestAnalysisId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, resume.ID, resp.Resume.ID)
	assert.Equal(t, analysis.ID, resp.LatestAnalysisID)
}

func TestHandleGetResume_NotFound(t *testing.T) {
	srv := newTestServer(newFakeStore())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/resumes/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAnalysisJobs(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store)

	analysis, err := store.CreateAnalysis(context.Background(), db.NewAnalysis{ResumeID: uuid.New()})
	require.NoError(t, err)
	store.postings[analysis.ID] = []db.JobPosting{
		{ID: uuid.New(), AnalysisID: analysis.ID, Title: "Senior Product Designer", Company: "Acme", Requirements: []string{"Figma"}},
	}

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis/"+analysis.ID.String()+"/jobs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		AnalysisID uuid.UUID       `json:"analysisId"`
		Jobs       []db.JobPosting `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, analysis.ID, resp.AnalysisID)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Senior Product Designer", resp.Jobs[0].Title)
}

func TestHandleAnalysisJobs_EmptyList(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store)

	analysis, err := store.CreateAnalysis(context.Background(), db.NewAnalysis{ResumeID: uuid.New()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/analysis/"+analysis.ID.String()+"/jobs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jobs":[]`)
}

func TestHandleExport(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store)

	analysis, err := store.CreateAnalysis(context.Background(), db.NewAnalysis{
		ResumeID:         uuid.New(),
		OptimizedContent: "OPTIMIZED TEXT",
	})
	require.NoError(t, err)

	tests := []struct {
		format   string
		wantType string
	}{
		{"txt", "text/plain"},
		{"pdf", "application/pdf"},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.routes().ServeHTTP(rec, httptest.NewRequest("GET",
				"/api/export/"+analysis.ID.String()+"/"+tt.format, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Header().Get("Content-Disposition"), "optimized_resume."+tt.format)
			// Every format currently serves the stored text unchanged.
			assert.Equal(t, "OPTIMIZED TEXT", rec.Body.String())
		})
	}
}

func TestHandleExport_UnsupportedFormat(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store)

	analysis, err := store.CreateAnalysis(context.Background(), db.NewAnalysis{ResumeID: uuid.New()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET",
		"/api/export/"+analysis.ID.String()+"/rtf", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExport_AnalysisNotFound(t *testing.T) {
	srv := newTestServer(newFakeStore())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET",
		"/api/export/"+uuid.NewString()+"/txt", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
