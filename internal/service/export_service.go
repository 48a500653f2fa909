package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/export"
)

type exportStore interface {
	ListJustifications(ctx context.Context) ([]models.JustificationRequest, error)
	FinalExamsFor(ctx context.Context, userID string) ([]models.FinalExamSession, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders administrative datasets to CSV and PDF.
type ExportService struct {
	store  exportStore
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(store exportStore, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{store: store, csv: csv, pdf: pdf, logger: logger}
}

// JustificationsCSV renders every justification request as CSV.
func (s *ExportService) JustificationsCSV(ctx context.Context) ([]byte, error) {
	reqs, err := s.store.ListJustifications(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load justifications")
	}

	dataset := export.Dataset{
		Headers: []string{"Estudiante", "Materia", "Fecha", "Motivo", "Estado", "Solicitada"},
	}
	for _, r := range reqs {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Estudiante": r.StudentName,
			"Materia":    r.CourseName,
			"Fecha":      r.Date,
			"Motivo":     r.Reason,
			"Estado":     string(r.Status),
			"Solicitada": r.RequestDate.Format("2006-01-02 15:04"),
		})
	}

	data, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return data, nil
}

// FinalsPDF renders the final exam roster as a PDF table.
func (s *ExportService) FinalsPDF(ctx context.Context, userID string) ([]byte, error) {
	sessions, err := s.store.FinalExamsFor(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load final exams")
	}

	dataset := export.Dataset{
		Headers: []string{"Materia", "Fecha", "Hora", "Profesor", "Aula", "Inscriptos"},
	}
	for _, f := range sessions {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Materia":    f.SubjectName,
			"Fecha":      f.Date,
			"Hora":       f.Time,
			"Profesor":   f.Professor,
			"Aula":       f.Classroom,
			"Inscriptos": fmt.Sprintf("%d", f.RegisteredCount),
		})
	}

	data, err := s.pdf.Render(dataset, "Mesas de Examen Final")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return data, nil
}
