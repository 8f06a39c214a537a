package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const defaultRole = "viewer"

type Authenticator interface {
	// LoginUser autentica pelo nome de usuário e devolve um token JWT
	LoginUser(ctx context.Context, username, password string) (string, *domain.User, error)

	// RegisterUser cadastra um usuário novo mediante código de convite válido
	RegisterUser(ctx context.Context, username, password, inviteCode string) (*domain.User, error)

	// ValidateToken verifica a assinatura e a validade de um token JWT
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg          *config.Config
	storeService store.StoreIntegrator
}

func NewService(cfg *config.Config, storeService store.StoreIntegrator) Authenticator {
	return &Service{
		cfg:          cfg,
		storeService: storeService,
	}
}

func (s *Service) LoginUser(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, ErrMissingRequiredData
	}

	user, err := s.findUser(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !passwordMatches(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, err
	}

	safe := &domain.User{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	return token, safe, nil
}

// passwordMatches compara a senha com o hash bcrypt armazenado. Registros
// semeados à mão no store podem guardar a senha em texto puro; nesse caso
// a comparação direta vale como retrocompatibilidade.
func passwordMatches(stored, password string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored != "" && stored == password
}

func (s *Service) RegisterUser(ctx context.Context, username, password, inviteCode string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || inviteCode == "" {
		return nil, ErrMissingRequiredData
	}

	valid, err := s.isInviteCodeValid(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrInvalidInviteCode
	}

	existing, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.storeService.CreateUser(ctx, &storedomain.User{
		Username:  username,
		Password:  string(hash),
		Role:      defaultRole,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:        created.ID,
		Username:  created.Username,
		Role:      created.Role,
		CreatedAt: created.CreatedAt,
	}, nil
}

// isInviteCodeValid confere o código de convite contra a variável de
// ambiente; quando ela está vazia, o documento /settings do store é a
// fonte do código
func (s *Service) isInviteCodeValid(ctx context.Context, inviteCode string) (bool, error) {
	expected := s.cfg.Auth.InviteCode

	if expected == "" {
		settings, err := s.storeService.GetSettings(ctx)
		if err != nil {
			logrus.WithError(err).Error("Falha ao buscar o código de convite no store")
			return false, err
		}
		expected = settings.InviteCode
	}

	return expected != "" && inviteCode == expected, nil
}

func (s *Service) findUser(ctx context.Context, username string) (*storedomain.User, error) {
	users, err := s.storeService.FindUsersByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user != nil && user.Username == username {
			return user, nil
		}
	}

	return nil, nil
}

func (s *Service) generateJWT(user *storedomain.User) (string, error) {
	claims := domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
