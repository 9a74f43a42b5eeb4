package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/scoring"
	"kidslearn_backend/internal/util"
	"kidslearn_backend/pkg/logger"
	"kidslearn_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// revealAfterAttempts controls when a wrong answer's solution is shown.
const revealAfterAttempts = 3

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	PackageRepo    *repository.PackageRepository
	AnswerRepo     *repository.AnswerRepository
	WalletRepo     *repository.WalletRepository
	Redis          *redis.Client
	DB             *gorm.DB
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	packageRepo *repository.PackageRepository,
	answerRepo *repository.AnswerRepository,
	walletRepo *repository.WalletRepository,
	rdb *redis.Client,
	db *gorm.DB,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		PackageRepo:    packageRepo,
		AnswerRepo:     answerRepo,
		WalletRepo:     walletRepo,
		Redis:          rdb,
		DB:             db,
	}
}

type LegacyQuestionRequest struct {
	Prompt        string          `json:"prompt" binding:"required"`
	Passage       string          `json:"passage"`
	AnswerType    string          `json:"answerType"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer" binding:"required"`
	Difficulty    string          `json:"difficulty"`
	Hint          string          `json:"hint"`
}

type CreateAssignmentRequest struct {
	ChildID   uint                    `json:"childId" binding:"required"`
	Subject   model.Subject           `json:"subject" binding:"required,oneof=math reading"`
	Title     string                  `json:"title" binding:"required"`
	Questions []LegacyQuestionRequest `json:"questions" binding:"required,min=1"`
}

// CreateLegacy builds an assignment with embedded questions, the shape that
// predates packages. Still produced by the ad-hoc "quick assignment" flow.
// Only math and reading exist in this shape: the embedded tables are
// subject-specific, so anything else must go through a package.
func (s *AssignmentService) CreateLegacy(parent *model.User, req CreateAssignmentRequest) (*model.Assignment, error) {
	if req.Subject != model.SubjectMath && req.Subject != model.SubjectReading {
		return nil, fmt.Errorf("subject %q has no embedded question shape, use a package", req.Subject)
	}

	a := &model.Assignment{
		ParentID: parent.ID,
		ChildID:  req.ChildID,
		Subject:  req.Subject,
		Status:   model.StatusPending,
		Title:    req.Title,
	}

	var math []model.MathProblem
	var reading []model.ReadingQuestion
	for i, q := range req.Questions {
		answerType := q.AnswerType
		if answerType == "" {
			answerType = scoring.AnswerTypeNumber
		}
		if err := scoring.ValidateProblem(answerType, q.Options, q.CorrectAnswer); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		if req.Subject == model.SubjectMath {
			math = append(math, model.MathProblem{
				Prompt:        q.Prompt,
				AnswerType:    answerType,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Difficulty:    q.Difficulty,
				Hint:          q.Hint,
				Position:      i,
			})
		} else {
			reading = append(reading, model.ReadingQuestion{
				Passage:       q.Passage,
				Prompt:        q.Prompt,
				AnswerType:    answerType,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Hint:          q.Hint,
				Position:      i,
			})
		}
	}

	if err := s.AssignmentRepo.CreateWithLegacyQuestions(a, math, reading); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) ListForChild(childID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.ListByChild(childID)
}

func (s *AssignmentService) ListForParent(parentID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.ListByParent(parentID)
}

// Reorder applies the new ordering in one transaction so a failure part way
// through never leaves a half-applied order.
func (s *AssignmentService) Reorder(parentID uint, orderedIDs []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range orderedIDs {
			a, err := s.AssignmentRepo.FindByID(id)
			if err != nil {
				return util.ErrAssignmentNotFound
			}
			if a.ParentID != parentID {
				return util.ErrPermissionDenied
			}
			if err := s.AssignmentRepo.UpdatePosition(tx, id, pos); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *AssignmentService) Delete(parentID, id uint) error {
	a, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		return util.ErrAssignmentNotFound
	}
	if a.ParentID != parentID {
		return util.ErrPermissionDenied
	}
	return s.AssignmentRepo.Delete(id)
}

// ChildQuestion is the kid-facing question view: no correct answers.
type ChildQuestion struct {
	ID              uint            `json:"id"`
	Prompt          string          `json:"prompt"`
	Passage         string          `json:"passage,omitempty"`
	AnswerType      string          `json:"answerType"`
	Options         json.RawMessage `json:"options,omitempty"`
	Hint            string          `json:"hint,omitempty"`
	Answerable      bool            `json:"answerable"`
	SubmittedAnswer string          `json:"submittedAnswer,omitempty"`
	IsCorrect       *bool           `json:"isCorrect,omitempty"`
}

// Questions returns the assignment's question list for the child view,
// answers withheld, with unanswerable (corrupted) items flagged so the UI
// can skip them.
func (s *AssignmentService) Questions(childID, assignmentID uint) (*model.Assignment, []ChildQuestion, error) {
	a, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		return nil, nil, util.ErrAssignmentNotFound
	}
	if a.ChildID != childID {
		return nil, nil, util.ErrPermissionDenied
	}

	questions, answered, submitted, meta, err := s.loadQuestions(s.DB, a)
	if err != nil {
		return nil, nil, err
	}

	out := make([]ChildQuestion, 0, len(questions))
	for _, q := range questions {
		cq := ChildQuestion{
			ID:         q.ID,
			AnswerType: q.AnswerType,
			Options:    q.Options,
			Hint:       q.Hint,
			Answerable: scoring.IsAnswerable(q.AnswerType, q.Options),
		}
		cq.Prompt = meta[q.ID].prompt
		cq.Passage = meta[q.ID].passage
		if answered[q.ID] {
			sub := submitted[q.ID]
			cq.SubmittedAnswer = sub.answer
			cq.IsCorrect = &sub.correct
		}
		out = append(out, cq)
	}
	return a, out, nil
}

type SubmitResult struct {
	IsCorrect           bool   `json:"isCorrect"`
	CorrectAnswer       string `json:"correctAnswer,omitempty"`
	CoinsEarned         int    `json:"coinsEarned"`
	NewBalance          int    `json:"newBalance"`
	NewStreak           int    `json:"newStreak"`
	AssignmentCompleted bool   `json:"assignmentCompleted"`
}

// Submit runs one answer through the scoring engine and persists every side
// effect in a single transaction: answer write, wallet update (row-locked),
// status transition, completion bonus, audit entry. A failure anywhere
// rolls the whole submission back.
func (s *AssignmentService) Submit(childID, assignmentID, questionID uint, submitted string) (*SubmitResult, error) {
	a, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		return nil, util.ErrAssignmentNotFound
	}
	if a.ChildID != childID {
		return nil, util.ErrPermissionDenied
	}

	var result SubmitResult
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		questions, answered, _, _, err := s.loadQuestions(tx, a)
		if err != nil {
			return err
		}

		wallet, err := s.WalletRepo.LockForUpdate(tx, childID)
		if err != nil {
			return err
		}

		out, err := scoring.Apply(scoring.State{
			Questions: questions,
			Answered:  answered,
			Status:    a.Status,
			Streak:    wallet.Streak,
		}, questionID, submitted)
		if err != nil {
			return util.ErrQuestionNotFound
		}

		now := time.Now()
		attempts, err := s.persistAnswer(tx, a, questionID, submitted, out.Correct, now)
		if err != nil {
			return err
		}

		wallet.Streak = out.NewStreak
		wallet.Balance += out.TotalCoins
		wallet.TotalEarned += out.TotalCoins
		if err := tx.Save(wallet).Error; err != nil {
			return err
		}

		if out.NewStatus != a.Status {
			updates := map[string]interface{}{"status": out.NewStatus}
			if out.Completed {
				updates["completed_at"] = now
			}
			if err := tx.Model(&model.Assignment{}).Where("id = ?", a.ID).Updates(updates).Error; err != nil {
				return err
			}
			a.Status = out.NewStatus
		}

		audit := &model.AuditEntry{
			RequestID: model.GenerateUUID(),
			ChildID:   childID,
			UserID:    a.ParentID,
			Action:    "answer.submit",
			Detail: fmt.Sprintf("assignment=%d question=%d correct=%t coins=%d completed=%t",
				a.ID, questionID, out.Correct, out.TotalCoins, out.Completed),
		}
		if err := tx.Create(audit).Error; err != nil {
			return err
		}

		result = SubmitResult{
			IsCorrect:           out.Correct,
			CoinsEarned:         out.TotalCoins,
			NewBalance:          wallet.Balance,
			NewStreak:           wallet.Streak,
			AssignmentCompleted: out.Completed,
		}
		if out.Correct || attempts >= revealAfterAttempts {
			result.CorrectAnswer = out.CorrectText
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues(string(a.Subject), strconv.FormatBool(result.IsCorrect)).Inc()
	s.invalidateStatsCache(childID)

	return &result, nil
}

type submittedAnswer struct {
	answer  string
	correct bool
}

type questionMeta struct {
	prompt  string
	passage string
}

// loadQuestions materializes the unified question view for an assignment
// plus which questions already carry an answer. Three shapes: package
// problems with answer records, or one of the two legacy embedded tables.
func (s *AssignmentService) loadQuestions(tx *gorm.DB, a *model.Assignment) ([]scoring.Question, map[uint]bool, map[uint]submittedAnswer, map[uint]questionMeta, error) {
	answered := make(map[uint]bool)
	submitted := make(map[uint]submittedAnswer)
	meta := make(map[uint]questionMeta)

	if a.PackageID != nil {
		var problems []model.PackageProblem
		if err := tx.Where("package_id = ?", *a.PackageID).Order("position ASC").Find(&problems).Error; err != nil {
			return nil, nil, nil, nil, err
		}
		var records []model.AnswerRecord
		if err := tx.Where("assignment_id = ?", a.ID).Find(&records).Error; err != nil {
			return nil, nil, nil, nil, err
		}
		questions := make([]scoring.Question, len(problems))
		for i := range problems {
			questions[i] = scoring.FromPackageProblem(&problems[i])
			meta[problems[i].ID] = questionMeta{prompt: problems[i].Prompt}
		}
		for _, rec := range records {
			answered[rec.ProblemID] = true
			submitted[rec.ProblemID] = submittedAnswer{answer: rec.SubmittedAnswer, correct: rec.IsCorrect}
		}
		return questions, answered, submitted, meta, nil
	}

	if a.Subject == model.SubjectMath {
		var problems []model.MathProblem
		if err := tx.Where("assignment_id = ?", a.ID).Order("position ASC").Find(&problems).Error; err != nil {
			return nil, nil, nil, nil, err
		}
		questions := make([]scoring.Question, len(problems))
		for i := range problems {
			questions[i] = scoring.FromMathProblem(&problems[i])
			meta[problems[i].ID] = questionMeta{prompt: problems[i].Prompt}
			if problems[i].SubmittedAnswer != nil {
				answered[problems[i].ID] = true
				correct := problems[i].IsCorrect != nil && *problems[i].IsCorrect
				submitted[problems[i].ID] = submittedAnswer{answer: *problems[i].SubmittedAnswer, correct: correct}
			}
		}
		return questions, answered, submitted, meta, nil
	}

	var qs []model.ReadingQuestion
	if err := tx.Where("assignment_id = ?", a.ID).Order("position ASC").Find(&qs).Error; err != nil {
		return nil, nil, nil, nil, err
	}
	questions := make([]scoring.Question, len(qs))
	for i := range qs {
		questions[i] = scoring.FromReadingQuestion(&qs[i])
		meta[qs[i].ID] = questionMeta{prompt: qs[i].Prompt, passage: qs[i].Passage}
		if qs[i].SubmittedAnswer != nil {
			answered[qs[i].ID] = true
			correct := qs[i].IsCorrect != nil && *qs[i].IsCorrect
			submitted[qs[i].ID] = submittedAnswer{answer: *qs[i].SubmittedAnswer, correct: correct}
		}
	}
	return questions, answered, submitted, meta, nil
}

// persistAnswer writes the answer in the shape the assignment uses and
// returns the attempt count after this submission.
func (s *AssignmentService) persistAnswer(tx *gorm.DB, a *model.Assignment, questionID uint, submitted string, correct bool, now time.Time) (int, error) {
	if a.PackageID != nil {
		rec := &model.AnswerRecord{
			AssignmentID:    a.ID,
			ProblemID:       questionID,
			ChildID:         a.ChildID,
			SubmittedAnswer: submitted,
			IsCorrect:       correct,
			Attempts:        1,
			AnsweredAt:      now,
		}
		if err := s.AnswerRepo.Upsert(tx, rec); err != nil {
			return 0, err
		}
		var saved model.AnswerRecord
		if err := tx.Where("assignment_id = ? AND problem_id = ?", a.ID, questionID).First(&saved).Error; err != nil {
			return 0, err
		}
		return saved.Attempts, nil
	}

	updates := map[string]interface{}{
		"submitted_answer": submitted,
		"is_correct":       correct,
		"answered_at":      now,
		"attempts":         gorm.Expr("attempts + 1"),
	}
	if a.Subject == model.SubjectMath {
		res := tx.Model(&model.MathProblem{}).
			Where("id = ? AND assignment_id = ?", questionID, a.ID).Updates(updates)
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 0 {
			return 0, util.ErrQuestionNotFound
		}
		var row model.MathProblem
		if err := tx.First(&row, questionID).Error; err != nil {
			return 0, err
		}
		return row.Attempts, nil
	}

	res := tx.Model(&model.ReadingQuestion{}).
		Where("id = ? AND assignment_id = ?", questionID, a.ID).Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, util.ErrQuestionNotFound
	}
	var row model.ReadingQuestion
	if err := tx.First(&row, questionID).Error; err != nil {
		return 0, err
	}
	return row.Attempts, nil
}

func (s *AssignmentService) invalidateStatsCache(childID uint) {
	ctx := context.Background()
	pattern := fmt.Sprintf("stats:child:%d:*", childID)
	keys, err := s.Redis.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Log.Warn("stats cache scan failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
			logger.Log.Warn("stats cache invalidation failed", zap.Error(err))
		}
	}
}
