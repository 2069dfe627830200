package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/lojinha/catalog-api/internal/domain/entity"
	"github.com/lojinha/catalog-api/internal/domain/repository"
	"github.com/lojinha/catalog-api/pkg/helpers"
)

var (
	// ErrEmailTaken is returned on registration when the email already has
	// an account, whether detected by lookup or by losing the race at the
	// unique constraint.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the API cannot be used to probe which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     *string
}

// UserService implements registration, login and user lookup on top of the
// user repository and the JWT manager.
type UserService struct {
	users  repository.UserRepository
	jwt    *helpers.JWTManager
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{users: users, jwt: jwt, logger: logger}
}

// Register creates an account and issues a token for it. The email lookup
// runs before hashing so duplicate attempts don't pay the bcrypt cost.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	_, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{Email: in.Email, Password: hash, Name: in.Name}
	if err := s.users.Create(ctx, u); err != nil {
		// Concurrent registration with the same email: the constraint is
		// the final arbiter, the loser gets the same answer.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, _, err := s.jwt.Generate(u.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	return u, token, nil
}

// Login checks the credentials and issues a token on success.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := s.jwt.Generate(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}
