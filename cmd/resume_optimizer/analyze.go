package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var (
	analyzeTargetDomain string
	analyzeConcurrency  int
	analyzeVerbose      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Analyze one or more resume files",
	Long: `Run the analysis pipeline over local resume files and print the results as JSON.
Results are not persisted; use the server for stored analyses.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTargetDomain, "target-domain", "", "Career domain to optimize for (defaults to the classified domain)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 3, "Number of files analyzed in parallel")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted stage summaries to stderr")
	rootCmd.AddCommand(analyzeCmd)
}

// fileReport is the per-file output of a batch analysis.
type fileReport struct {
	File     string           `json:"file"`
	Error    string           `json:"error,omitempty"`
	Analysis *pipeline.Result `json:"analysis,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// CLI runs never persist, so no store is wired in.
	var client llm.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		var err error
		client, err = llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	} else {
		log.Println("GEMINI_API_KEY not set; using fallback heuristics only")
	}

	analyzer := pipeline.New(client, nil)

	concurrency := analyzeConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	reports := make([]fileReport, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)
	for i, path := range args {
		g.Go(func() error {
			reports[i] = analyzeFile(ctx, analyzer, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, report := range reports {
			if report.Analysis == nil {
				continue
			}
			printer.PrintProfile(report.Analysis.Profile)
			printer.PrintClassification(report.Analysis.Classification)
			printer.PrintOptimization(report.Analysis.Optimization)
			printer.PrintDegraded(report.Analysis.Degraded)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	for _, report := range reports {
		if report.Error != "" {
			return fmt.Errorf("analysis failed for %s: %s", report.File, report.Error)
		}
	}
	return nil
}

func analyzeFile(ctx context.Context, analyzer *pipeline.Analyzer, path string) fileReport {
	report := fileReport{File: path}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	resumeText, err := ingestion.ExtractText(mimeFromPath(path), data)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	result, err := analyzer.Analyze(ctx, types.AnalyzeRequest{
		Filename:     filepath.Base(path),
		FileType:     mimeFromPath(path),
		FileSize:     len(data),
		ResumeText:   resumeText,
		TargetDomain: analyzeTargetDomain,
	})
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Analysis = result
	return report
}

// mimeFromPath maps a file extension to the ingestion MIME type. Unknown
// extensions are treated as plain text.
func mimeFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ingestion.MimePDF
	case ".docx":
		return ingestion.MimeDOCX
	case ".html", ".htm":
		return ingestion.MimeHTML
	default:
		return ingestion.MimePlainText
	}
}
