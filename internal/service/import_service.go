package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/scoring"
	"kidslearn_backend/internal/util"
	"kidslearn_backend/pkg/monitoring"
	"kidslearn_backend/pkg/queue"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImportService runs the worksheet import pipeline: a parent uploads a
// scan, the recognized problem list is attached to the job, and a queue
// worker validates it and materializes a private draft package.
//
// Recognition itself happens outside this service (the client or an OCR
// callback posts the result); jobs without an attached result fail in the
// worker rather than wait forever.
type ImportService struct {
	JobRepo     *repository.ImportJobRepository
	PackageRepo *repository.PackageRepository
	Storage     *StorageService
	Queue       *queue.Queue
	Log         *zap.Logger
}

func NewImportService(jobRepo *repository.ImportJobRepository, packageRepo *repository.PackageRepository, storage *StorageService, q *queue.Queue, log *zap.Logger) *ImportService {
	return &ImportService{
		JobRepo:     jobRepo,
		PackageRepo: packageRepo,
		Storage:     storage,
		Queue:       q,
		Log:         log,
	}
}

type jobMessage struct {
	JobID string `json:"jobId"`
}

type ImportJobRequest struct {
	Subject     model.Subject `form:"subject" binding:"required,oneof=math reading english"`
	GradeLevel  int           `form:"gradeLevel" binding:"required,min=1,max=12"`
	PackageName string        `form:"packageName" binding:"required"`
}

// CreateJob stores the scan, records the job, and enqueues it if a problem
// list was attached up front.
func (s *ImportService) CreateJob(ctx context.Context, ownerID uint, req ImportJobRequest, filename string, scan io.Reader, size int64, contentType string, problems []ProblemRequest) (*model.ImportJob, error) {
	key, err := s.Storage.UploadScan(ctx, ownerID, filename, scan, size, contentType)
	if err != nil {
		return nil, err
	}

	job := &model.ImportJob{
		OwnerID:     ownerID,
		Status:      model.ImportQueued,
		ObjectKey:   key,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		PackageName: req.PackageName,
	}
	if len(problems) > 0 {
		payload, err := json.Marshal(problems)
		if err != nil {
			return nil, err
		}
		job.Payload = payload
	}
	if err := s.JobRepo.Create(job); err != nil {
		return nil, err
	}
	monitoring.ImportJobCounter.WithLabelValues(string(model.ImportQueued)).Inc()

	if len(problems) > 0 {
		if err := s.enqueue(ctx, job.ID); err != nil {
			return nil, err
		}
	}
	return job, nil
}

// AttachResult stores a recognition result posted after upload and queues
// the job for materialization. Finished jobs cannot be re-run.
func (s *ImportService) AttachResult(ctx context.Context, ownerID uint, jobID string, problems []ProblemRequest) (*model.ImportJob, error) {
	job, err := s.job(jobID, ownerID)
	if err != nil {
		return nil, err
	}
	if job.Status == model.ImportCompleted {
		return nil, util.ErrImportJobFinished
	}
	if len(problems) == 0 {
		return nil, util.ErrEmptyImportResult
	}

	payload, err := json.Marshal(problems)
	if err != nil {
		return nil, err
	}
	job.Payload = payload
	job.Status = model.ImportQueued
	job.Error = ""
	job.FinishedAt = nil
	if err := s.JobRepo.Update(job); err != nil {
		return nil, err
	}
	if err := s.enqueue(ctx, job.ID); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *ImportService) Jobs(ownerID uint, limit int) ([]model.ImportJob, error) {
	return s.JobRepo.ListByOwner(ownerID, limit)
}

func (s *ImportService) Job(ownerID uint, jobID string) (*model.ImportJob, error) {
	return s.job(jobID, ownerID)
}

// ScanURL signs a download link for the job's stored scan.
func (s *ImportService) ScanURL(ctx context.Context, ownerID uint, jobID string) (string, error) {
	job, err := s.job(jobID, ownerID)
	if err != nil {
		return "", err
	}
	return s.Storage.ScanURL(ctx, job.ObjectKey)
}

func (s *ImportService) job(jobID string, ownerID uint) (*model.ImportJob, error) {
	job, err := s.JobRepo.FindByID(jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrImportJobNotFound
		}
		return nil, err
	}
	if job.OwnerID != ownerID {
		return nil, util.ErrPermissionDenied
	}
	return job, nil
}

func (s *ImportService) enqueue(ctx context.Context, jobID string) error {
	return s.Queue.Enqueue(ctx, jobMessage{JobID: jobID})
}

// HandleJob is the queue worker entrypoint. It validates every recognized
// problem and creates the draft package in one transaction; a single bad
// problem fails the whole job so nothing half-imported reaches a child.
func (s *ImportService) HandleJob(ctx context.Context, payload []byte) error {
	var msg jobMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("malformed job message: %w", err)
	}

	job, err := s.JobRepo.FindByID(msg.JobID)
	if err != nil {
		return fmt.Errorf("import job %s: %w", msg.JobID, err)
	}
	if job.Status == model.ImportCompleted {
		return nil
	}

	job.Status = model.ImportProcessing
	if err := s.JobRepo.Update(job); err != nil {
		return err
	}
	monitoring.ImportJobCounter.WithLabelValues(string(model.ImportProcessing)).Inc()

	pkg, err := s.materialize(job)
	now := time.Now()
	job.FinishedAt = &now
	if err != nil {
		job.Status = model.ImportFailed
		job.Error = err.Error()
		monitoring.ImportJobCounter.WithLabelValues(string(model.ImportFailed)).Inc()
		s.Log.Warn("import job failed",
			zap.String("job_id", job.ID),
			zap.Error(err))
		return s.JobRepo.Update(job)
	}

	job.Status = model.ImportCompleted
	job.PackageID = &pkg.ID
	monitoring.ImportJobCounter.WithLabelValues(string(model.ImportCompleted)).Inc()
	s.Log.Info("import job completed",
		zap.String("job_id", job.ID),
		zap.Uint("package_id", pkg.ID),
		zap.Int("problems", len(pkg.Problems)))
	return s.JobRepo.Update(job)
}

func (s *ImportService) materialize(job *model.ImportJob) (*model.Package, error) {
	if len(job.Payload) == 0 {
		return nil, util.ErrEmptyImportResult
	}
	var problems []ProblemRequest
	if err := json.Unmarshal(job.Payload, &problems); err != nil {
		return nil, fmt.Errorf("recognition payload: %w", err)
	}
	if len(problems) == 0 {
		return nil, util.ErrEmptyImportResult
	}

	pkg := &model.Package{
		OwnerID:    job.OwnerID,
		Name:       job.PackageName,
		Subject:    job.Subject,
		GradeLevel: job.GradeLevel,
	}
	for i, p := range problems {
		answerType := p.AnswerType
		if answerType == "" {
			answerType = scoring.AnswerTypeNumber
		}
		if err := scoring.ValidateProblem(answerType, p.Options, p.CorrectAnswer); err != nil {
			return nil, fmt.Errorf("problem %d: %w", i+1, err)
		}
		pkg.Problems = append(pkg.Problems, model.PackageProblem{
			Prompt:        p.Prompt,
			AnswerType:    answerType,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
			Difficulty:    p.Difficulty,
			Hint:          p.Hint,
			Position:      i,
		})
	}
	if err := s.PackageRepo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}
