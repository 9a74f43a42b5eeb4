package service

import (
	"context"
	"encoding/json"
	"time"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/util"
	"kidslearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	childrenCacheKeyPrefix = "children:family:"
	childrenCacheTTL       = 10 * time.Minute
)

// ChildService manages children under a parent. The family-code listing is
// a read-through Redis cache: reads fall back to MySQL on any cache error,
// and writes invalidate. A broken cache never blocks the primary write.
type ChildService struct {
	ChildRepo *repository.ChildRepository
	UserRepo  *repository.UserRepository
	Redis     *redis.Client
}

func NewChildService(childRepo *repository.ChildRepository, userRepo *repository.UserRepository, rdb *redis.Client) *ChildService {
	return &ChildService{ChildRepo: childRepo, UserRepo: userRepo, Redis: rdb}
}

type ChildRequest struct {
	Name       string `json:"name" binding:"required"`
	GradeLevel int    `json:"gradeLevel" binding:"required,min=1,max=12"`
	Avatar     string `json:"avatar"`
	PIN        string `json:"pin" binding:"omitempty,len=4"`
}

func (s *ChildService) Create(parent *model.User, req ChildRequest) (*model.Child, error) {
	child := &model.Child{
		ParentID:   parent.ID,
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
		Avatar:     req.Avatar,
	}
	if req.PIN != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		child.PIN = string(hash)
	}
	if err := s.ChildRepo.Create(child); err != nil {
		return nil, err
	}
	s.invalidate(parent.FamilyCode)
	return child, nil
}

// ListByFamilyCode is the cached public listing used by the kid login
// screen (names and avatars only, no PIN material leaves the model's json).
func (s *ChildService) ListByFamilyCode(code string) ([]model.Child, error) {
	ctx := context.Background()
	key := childrenCacheKeyPrefix + code

	if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var cached []model.Child
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	} else if err != redis.Nil {
		logger.Log.Warn("children cache read failed", zap.Error(err))
	}

	parent, err := s.UserRepo.FindByFamilyCode(code)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	children, err := s.ChildRepo.FindByParent(parent.ID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(children); err == nil {
		if err := s.Redis.Set(ctx, key, b, childrenCacheTTL).Err(); err != nil {
			logger.Log.Warn("children cache write failed", zap.Error(err))
		}
	}
	return children, nil
}

func (s *ChildService) ListByParent(parentID uint) ([]model.Child, error) {
	return s.ChildRepo.FindByParent(parentID)
}

func (s *ChildService) Get(parentID, childID uint) (*model.Child, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return nil, util.ErrChildNotFound
	}
	if child.ParentID != parentID {
		return nil, util.ErrPermissionDenied
	}
	return child, nil
}

func (s *ChildService) Update(parent *model.User, childID uint, req ChildRequest) (*model.Child, error) {
	child, err := s.Get(parent.ID, childID)
	if err != nil {
		return nil, err
	}
	child.Name = req.Name
	child.GradeLevel = req.GradeLevel
	child.Avatar = req.Avatar
	if req.PIN != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		child.PIN = string(hash)
	}
	if err := s.ChildRepo.Update(child); err != nil {
		return nil, err
	}
	s.invalidate(parent.FamilyCode)
	return child, nil
}

func (s *ChildService) Delete(parent *model.User, childID uint) error {
	if _, err := s.Get(parent.ID, childID); err != nil {
		return err
	}
	if err := s.ChildRepo.Delete(childID); err != nil {
		return err
	}
	s.invalidate(parent.FamilyCode)
	return nil
}

func (s *ChildService) invalidate(familyCode string) {
	if err := s.Redis.Del(context.Background(), childrenCacheKeyPrefix+familyCode).Err(); err != nil {
		logger.Log.Warn("children cache invalidation failed", zap.Error(err))
	}
}
