package service

import (
	"crypto/rand"
	"errors"
	"math/big"

	"kidslearn_backend/internal/config"
	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	ChildRepo *repository.ChildRepository
	Config    *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, childRepo *repository.ChildRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, ChildRepo: childRepo, Config: cfg}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChildLoginRequest struct {
	FamilyCode string `json:"familyCode" binding:"required"`
	ChildID    uint   `json:"childId" binding:"required"`
	PIN        string `json:"pin" binding:"required,len=4"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *model.User  `json:"user,omitempty"`
	Child *model.Child `json:"child,omitempty"`
}

// Register creates a parent account with a fresh family code.
func (s *AuthService) Register(req RegisterRequest) (*AuthResult, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	code, err := s.newFamilyCode()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       model.Parent,
		FamilyCode: code,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueParentToken(user)
}

func (s *AuthService) Login(req LoginRequest) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if user.Disabled {
		return nil, util.ErrPermissionDenied
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrUserNotFound
	}

	s.UserRepo.UpdateLastLogin(user.ID)
	return s.issueParentToken(user)
}

// ChildLogin authenticates a kid by family code, child selection and PIN.
// The issued token carries both the child and the owning parent so every
// downstream ownership check works the same way for either caller.
func (s *AuthService) ChildLogin(req ChildLoginRequest) (*AuthResult, error) {
	parent, err := s.UserRepo.FindByFamilyCode(req.FamilyCode)
	if err != nil {
		return nil, util.ErrInvalidPIN
	}
	child, err := s.ChildRepo.FindByID(req.ChildID)
	if err != nil || child.ParentID != parent.ID {
		return nil, util.ErrInvalidPIN
	}
	if child.PIN != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(child.PIN), []byte(req.PIN)); err != nil {
			return nil, util.ErrInvalidPIN
		}
	}

	claims := &util.Claims{
		UserID:     parent.ID,
		ChildID:    child.ID,
		Role:       model.Kid,
		FamilyCode: parent.FamilyCode,
	}
	token, err := util.GenerateJWT(claims, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Child: child}, nil
}

// Profile returns the account behind a parent/admin token.
func (s *AuthService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) issueParentToken(user *model.User) (*AuthResult, error) {
	claims := &util.Claims{
		UserID:     user.ID,
		Role:       user.Role,
		FamilyCode: user.FamilyCode,
	}
	token, err := util.GenerateJWT(claims, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

const familyCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newFamilyCode draws an 8-char code from an alphabet without lookalike
// characters and retries on the unlikely collision.
func (s *AuthService) newFamilyCode() (string, error) {
	for i := 0; i < 5; i++ {
		buf := make([]byte, 8)
		for j := range buf {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(familyCodeAlphabet))))
			if err != nil {
				return "", err
			}
			buf[j] = familyCodeAlphabet[n.Int64()]
		}
		code := string(buf)
		exists, err := s.UserRepo.FamilyCodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique family code")
}
