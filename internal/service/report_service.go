package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
)

// ReportService builds the parent-facing CSV exports: per-assignment
// progress and curriculum coverage.
type ReportService struct {
	AssignmentRepo *repository.AssignmentRepository
	PackageRepo    *repository.PackageRepository
	AnswerRepo     *repository.AnswerRepository
	CurriculumRepo *repository.CurriculumRepository
	ChildRepo      *repository.ChildRepository
}

func NewReportService(
	assignmentRepo *repository.AssignmentRepository,
	packageRepo *repository.PackageRepository,
	answerRepo *repository.AnswerRepository,
	curriculumRepo *repository.CurriculumRepository,
	childRepo *repository.ChildRepository,
) *ReportService {
	return &ReportService{
		AssignmentRepo: assignmentRepo,
		PackageRepo:    packageRepo,
		AnswerRepo:     answerRepo,
		CurriculumRepo: curriculumRepo,
		ChildRepo:      childRepo,
	}
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (s *ReportService) ProgressRows(childID uint) ([]model.ChildProgressRow, error) {
	assignments, err := s.AssignmentRepo.ListByChild(childID)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ChildProgressRow, 0, len(assignments))
	for _, a := range assignments {
		row := model.ChildProgressRow{
			AssignmentID: a.ID,
			Title:        a.Title,
			Subject:      string(a.Subject),
			Status:       string(a.Status),
		}
		if a.CompletedAt != nil {
			row.CompletedAt = a.CompletedAt.Format("2006-01-02")
		}
		if err := s.fillCounts(&a, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ReportService) fillCounts(a *model.Assignment, row *model.ChildProgressRow) error {
	if a.PackageID != nil {
		problems, err := s.PackageRepo.Problems(*a.PackageID)
		if err != nil {
			return err
		}
		records, err := s.AnswerRepo.ListByAssignment(a.ID)
		if err != nil {
			return err
		}
		row.TotalQuestions = len(problems)
		for _, rec := range records {
			if rec.IsCorrect {
				row.Correct++
			} else {
				row.Incorrect++
			}
		}
		return nil
	}

	if a.Subject == model.SubjectMath {
		problems, err := s.AssignmentRepo.MathProblems(a.ID)
		if err != nil {
			return err
		}
		row.TotalQuestions = len(problems)
		for _, p := range problems {
			if p.SubmittedAnswer == nil {
				continue
			}
			if p.IsCorrect != nil && *p.IsCorrect {
				row.Correct++
			} else {
				row.Incorrect++
			}
		}
		return nil
	}

	questions, err := s.AssignmentRepo.ReadingQuestions(a.ID)
	if err != nil {
		return err
	}
	row.TotalQuestions = len(questions)
	for _, q := range questions {
		if q.SubmittedAnswer == nil {
			continue
		}
		if q.IsCorrect != nil && *q.IsCorrect {
			row.Correct++
		} else {
			row.Incorrect++
		}
	}
	return nil
}

func (s *ReportService) CoverageRows(childID uint) ([]model.CoverageRow, error) {
	objectives, err := s.CurriculumRepo.ListEnabled()
	if err != nil {
		return nil, err
	}
	coverage, err := s.CurriculumRepo.Coverage(childID)
	if err != nil {
		return nil, err
	}

	rows := make([]model.CoverageRow, 0, len(objectives))
	for _, o := range objectives {
		row := coverage[o.ID]
		row.ObjectiveCode = o.Code
		row.ObjectiveTitle = o.Title
		row.Subject = string(o.Subject)
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportProgressCSV renders the progress report as a downloadable CSV.
func (s *ReportService) ExportProgressCSV(childID uint) (*ExportResult, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return nil, err
	}
	rows, err := s.ProgressRows(childID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"assignment_id", "title", "subject", "status", "total_questions", "correct", "incorrect", "completed_at"})
	for _, r := range rows {
		w.Write([]string{
			strconv.FormatUint(uint64(r.AssignmentID), 10),
			r.Title,
			r.Subject,
			r.Status,
			strconv.Itoa(r.TotalQuestions),
			strconv.Itoa(r.Correct),
			strconv.Itoa(r.Incorrect),
			r.CompletedAt,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("progress_%s.csv", child.Name),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// ExportCoverageCSV renders curriculum coverage as a downloadable CSV.
func (s *ReportService) ExportCoverageCSV(childID uint) (*ExportResult, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return nil, err
	}
	rows, err := s.CoverageRows(childID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"objective_code", "objective_title", "subject", "packages", "completed", "coverage"})
	for _, r := range rows {
		w.Write([]string{
			r.ObjectiveCode,
			r.ObjectiveTitle,
			r.Subject,
			strconv.Itoa(r.Packages),
			strconv.Itoa(r.Completed),
			strconv.FormatFloat(r.Coverage, 'f', 2, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("coverage_%s.csv", child.Name),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
