package service

import (
	"encoding/json"
	"fmt"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/scoring"
	"kidslearn_backend/internal/util"

	"gorm.io/gorm"
)

type PackageService struct {
	PackageRepo    *repository.PackageRepository
	AssignmentRepo *repository.AssignmentRepository
	CurriculumRepo *repository.CurriculumRepository
}

func NewPackageService(packageRepo *repository.PackageRepository, assignmentRepo *repository.AssignmentRepository, curriculumRepo *repository.CurriculumRepository) *PackageService {
	return &PackageService{
		PackageRepo:    packageRepo,
		AssignmentRepo: assignmentRepo,
		CurriculumRepo: curriculumRepo,
	}
}

type ProblemRequest struct {
	Prompt        string          `json:"prompt" binding:"required"`
	AnswerType    string          `json:"answerType"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer" binding:"required"`
	Difficulty    string          `json:"difficulty"`
	Hint          string          `json:"hint"`
}

type PackageRequest struct {
	Name        string           `json:"name" binding:"required"`
	Subject     model.Subject    `json:"subject" binding:"required,oneof=math reading english"`
	GradeLevel  int              `json:"gradeLevel" binding:"required,min=1,max=12"`
	ObjectiveID *uint            `json:"objectiveId"`
	StoryText   string           `json:"storyText"`
	IsGlobal    bool             `json:"isGlobal"`
	Problems    []ProblemRequest `json:"problems" binding:"required,min=1"`
}

// Create validates every problem before anything is written. Malformed
// multiple choice is rejected here, at ingestion, never silently coerced.
func (s *PackageService) Create(owner *model.User, req PackageRequest) (*model.Package, error) {
	if req.IsGlobal && owner.Role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	if req.ObjectiveID != nil {
		if _, err := s.CurriculumRepo.FindByID(*req.ObjectiveID); err != nil {
			return nil, util.ErrObjectiveNotFound
		}
	}

	pkg := &model.Package{
		OwnerID:     owner.ID,
		Name:        req.Name,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		ObjectiveID: req.ObjectiveID,
		StoryText:   req.StoryText,
		IsGlobal:    req.IsGlobal,
	}
	for i, p := range req.Problems {
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

func (s *PackageService) List(owner *model.User, gradeLevel int, subject string) ([]model.Package, error) {
	return s.PackageRepo.ListVisible(owner.ID, gradeLevel, subject)
}

func (s *PackageService) Get(caller *model.User, id uint) (*model.Package, error) {
	pkg, err := s.PackageRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPackageNotFound
		}
		return nil, err
	}
	if pkg.Deleted {
		return nil, util.ErrPackageDeleted
	}
	if !pkg.IsGlobal && pkg.OwnerID != caller.ID && caller.Role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	return pkg, nil
}

// Delete soft-deletes. The cascade hard-deletes dependent assignments and
// their answers but keeps the package row (and problems) for history.
func (s *PackageService) Delete(caller *model.User, id uint) error {
	pkg, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	if pkg.OwnerID != caller.ID && caller.Role != model.Admin {
		return util.ErrPermissionDenied
	}
	return s.PackageRepo.SoftDelete(id)
}

// Assign instantiates the package as a new assignment for a child. The
// problems stay package-scoped; answers will land in answer_records.
func (s *PackageService) Assign(caller *model.User, packageID, childID uint) (*model.Assignment, error) {
	pkg, err := s.Get(caller, packageID)
	if err != nil {
		return nil, err
	}
	a := &model.Assignment{
		ParentID:  caller.ID,
		ChildID:   childID,
		Subject:   pkg.Subject,
		Status:    model.StatusPending,
		PackageID: &pkg.ID,
		Title:     pkg.Name,
	}
	if err := s.AssignmentRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}
