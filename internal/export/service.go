// Package export produces XLSX workbooks from stored questions.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/qbankhq/qbank/gen/ent"
	"github.com/qbankhq/qbank/internal/repository"
)

// Service is a tiny façade over the question repository that renders XLSX bytes.
type Service struct {
	questions repository.QuestionRepository
	logger    *slog.Logger
}

func NewService(questions repository.QuestionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{questions: questions, logger: logger}
}

// ExportQuestionsXLSX returns a workbook with one row per stored question
// matching the filter. Option columns mirror their stored slots; an absent
// slot stays blank.
func (s *Service) ExportQuestionsXLSX(ctx context.Context, filter repository.QuestionFilter) ([]byte, error) {
	start := time.Now()

	rows, err := s.questions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Questions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Subject",
		"Lesson",
		"Page",
		"Question",
		"Type",
		"Difficulty",
		"Option 1",
		"Option 2",
		"Option 3",
		"Option 4",
		"Option 5",
		"Option 6",
		"Correct Answer",
		"Answer Steps",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, q := range rows {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, q.SubjectName)
		write(2, q.LessonTitle)
		write(3, q.PageNumber)
		write(4, q.Question)
		write(5, deref(q.QuestionType))
		write(6, deref(q.QuestionDifficulty))
		for slot, opt := range optionSlots(q) {
			write(7+slot, deref(opt))
		}
		write(13, deref(q.CorrectAnswer))
		write(14, deref(q.AnswerSteps))
		write(15, q.FileName)
	}

	_ = f.SetColWidth(sheet, "A", "B", 22)
	_ = f.SetColWidth(sheet, "D", "D", 60)
	_ = f.SetColWidth(sheet, "G", "L", 24)
	_ = f.SetColWidth(sheet, "M", "N", 40)
	_ = f.SetColWidth(sheet, "O", "O", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func optionSlots(q *ent.Question) []*string {
	return []*string{q.Option1, q.Option2, q.Option3, q.Option4, q.Option5, q.Option6}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
