package authenticating

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/infrastructure/repository"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-insights-api/pkg/tagcache"
	"github.com/vfg2006/inventory-insights-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const usersCacheKey = "users:list"

type Authenticator interface {
	CreateUser(user *domain.UserRequest) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	ListUser() ([]*domain.User, error)
	GetUserProfile(userID string) (*domain.User, error)
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	GenerateStrongPassword(requestUserID, targetUserID string) (string, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	cache    *tagcache.Cache
	cacheTTL time.Duration
	useCache bool
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// WithCache enables the tagged response cache for the user listing.
// User writes invalidate the Users tag.
func (s *Service) WithCache(cache *tagcache.Cache) *Service {
	s.cache = cache
	s.cacheTTL = time.Duration(s.cfg.Cache.TTLSeconds) * time.Second
	s.useCache = cache != nil
	return s
}

// CreateUser registers a new user. Accounts start disabled and are
// enabled later by an administrator through UpdateUser.
func (s *Service) CreateUser(req *domain.UserRequest) (*domain.User, error) {
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "name, email and password are required")
	}

	email := handleEmail(req.Email)

	userDatabase, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error looking up user")
	}
	if userDatabase != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleID := req.RoleID
	if roleID == 0 {
		roleID = domain.RoleClient
	}

	userID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAuthError(ErrGenerateID, apiErrors.ErrInternalServer, "failed to generate user identifier")
	}

	user := &domain.User{
		ID:           userID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Active:       false,
		RoleID:       roleID,
	}

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error creating user")
	}

	if s.useCache {
		s.cache.Invalidate(domain.TagUsers)
	}

	return user, nil
}

func (s *Service) UpdateUser(req *domain.UpdateUserRequest) error {
	if req.ID == "" {
		return NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "user id is required")
	}

	userDatabase, err := s.userRepo.GetUserByID(req.ID)
	if err != nil {
		return err
	}
	if userDatabase == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, req.ID, "user not found")
	}

	if req.Name != nil {
		userDatabase.Name = *req.Name
	}

	if req.Email != nil {
		userDatabase.Email = handleEmail(*req.Email)
	}

	if req.Active != nil {
		userDatabase.Active = *req.Active
	}

	if req.RoleID != nil {
		userDatabase.RoleID = *req.RoleID
	}

	if err := s.userRepo.UpdateUser(userDatabase); err != nil {
		return err
	}

	if s.useCache {
		s.cache.Invalidate(domain.TagUsers)
	}

	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUser() ([]*domain.User, error) {
	if s.useCache {
		if cached, ok := s.cache.Get(usersCacheKey); ok {
			if users, ok := cached.([]*domain.User); ok {
				return users, nil
			}
		}
	}

	users, err := s.userRepo.ListUser()
	if err != nil {
		return nil, err
	}

	if s.useCache {
		s.cache.Set(usersCacheKey, users, s.cacheTTL, domain.TagUsers)
	}

	return users, nil
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "error looking up user")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "user not found")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "wrong password")
	}

	token, err := generateJWT(user, s.cfg.Auth.Secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "error generating authentication token")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "user not found")
	}

	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secret string) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ChangePassword lets a user replace their own password after proving
// they know the current one.
func (s *Service) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}

	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrWrongPassword, apiErrors.ErrInvalidCredentials, userID, "current password is incorrect")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.UpdateUser(user)
}

// GenerateStrongPassword resets the target user's password to a random
// strong one. Only administrators may do this.
func (s *Service) GenerateStrongPassword(requestUserID, targetUserID string) (string, error) {
	requestUser, err := s.userRepo.GetUserByID(requestUserID)
	if err != nil {
		return "", err
	}
	if requestUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, requestUserID, "requesting user not found")
	}
	if requestUser.RoleID != domain.RoleAdmin {
		return "", NewUserAuthError(ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege, requestUserID, "only administrators can reset passwords")
	}

	targetUser, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, targetUserID, "target user not found")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	targetUser.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(targetUser); err != nil {
		return "", err
	}

	return newPassword, nil
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// generateStrongPassword builds a random password containing at least
// one character of each class, then shuffles it.
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	allChars := lowerChars + upperChars + numberChars + specialChars

	password := make([]byte, length)

	classes := []string{lowerChars, upperChars, numberChars, specialChars}
	for i, charset := range classes {
		randomChar, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := len(classes); i < length; i++ {
		randomChar, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength requires at least 8 characters including
// upper case, lower case, a number and a special character.
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "password must contain at least 8 characters")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "password must contain at least one upper case letter")
	}
	if !hasLower {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "password must contain at least one lower case letter")
	}
	if !hasNumber {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "password must contain at least one number")
	}
	if !hasSpecial {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "password must contain at least one special character")
	}

	return nil
}
