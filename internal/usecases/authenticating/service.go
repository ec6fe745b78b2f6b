package authenticating

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian/infrastructure/repository"
	"github.com/vfg2006/campaign-guardian/internal/config"
	"github.com/vfg2006/campaign-guardian/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator autentica operadores do serviço e valida tokens de acesso
type Authenticator interface {
	LoginUser(email, password string) (string, error)
	CreateUser(user *domain.User, password string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginUser valida as credenciais e emite um JWT de acesso
func (s *Service) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(handleEmail(email))
	if err != nil {
		return "", ErrDatabase(err)
	}

	if user == nil {
		return "", ErrUserNotFound
	}

	if !user.Active {
		return "", ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logrus.WithField("user_email", user.Email).Warn("Tentativa de login com senha inválida")
		return "", ErrInvalidCredentials
	}

	return generateJWT(user, s.cfg.Auth.Secret)
}

// CreateUser cadastra um novo operador com a senha informada
func (s *Service) CreateUser(user *domain.User, password string) (*domain.User, error) {
	if user.Email == "" || password == "" {
		return nil, ErrMissingRequiredData
	}

	user.Email = handleEmail(user.Email)

	existing, err := s.userRepo.GetByEmail(user.Email)
	if err != nil {
		return nil, ErrDatabase(err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.Active = true

	if user.RoleID == 0 {
		user.RoleID = domain.RoleOperator
	}

	created, err := s.userRepo.Save(user)
	if err != nil {
		return nil, ErrDatabase(err)
	}

	return created, nil
}

func handleEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := &domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "campaign-guardian",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken valida o JWT e devolve as claims do operador
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "expired") {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
