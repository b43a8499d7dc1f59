package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/review360-api/internal/dto"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
	"github.com/noah-isme/review360-api/pkg/export"
)

type resultsProvider interface {
	Results(ctx context.Context, reviewID string) (*dto.ResultsPayload, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered results export ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the overall aggregation into downloadable tabular
// formats. Exports are generated on demand from a fresh aggregation, never
// stored.
type ExportService struct {
	results resultsProvider
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(results resultsProvider, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{results: results, csv: csv, pdf: pdf, logger: logger}
}

// Export renders the review's overall results as csv or pdf.
func (s *ExportService) Export(ctx context.Context, reviewID, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	results, err := s.results.Results(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	dataset := buildResultsDataset(results)
	title := fmt.Sprintf("360 review results: %s", results.Review.RevieweeName)

	var payload []byte
	var contentType string
	switch format {
	case "pdf":
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("review-%s-results.%s", results.Review.ID, format),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

func buildResultsDataset(results *dto.ResultsPayload) export.Dataset {
	headers := []string{"Order", "Question", "Question Category", "Sum", "Count", "Average"}
	rows := make([]map[string]string, 0, len(results.Questions))
	for _, question := range results.Questions {
		row := map[string]string{
			"Order":             strconv.Itoa(question.Order),
			"Question":          question.Text,
			"Question Category": question.Category,
			"Sum":               "",
			"Count":             "",
			"Average":           "",
		}
		if stats, ok := results.Overall.QuestionAverages[question.ID]; ok {
			row["Sum"] = strconv.Itoa(stats.Sum)
			row["Count"] = strconv.Itoa(stats.Count)
			row["Average"] = strconv.FormatFloat(stats.Average, 'f', 2, 64)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
