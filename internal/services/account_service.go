package services

import (
	"context"

	"wanderlog/internal/models/db_models"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/models/response_models"
	"wanderlog/internal/repositories"
	"wanderlog/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisterResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	userRepo       repositories.UserRepository
	sessionService SessionServiceInterface
}

func NewAccountService(userRepo repositories.UserRepository, sessionService SessionServiceInterface) AccountServiceInterface {
	return &AccountService{
		userRepo:       userRepo,
		sessionService: sessionService,
	}
}

// Register validates format first, then checks uniqueness, then hashes.
// The plaintext password is hashed here and nowhere else; it is never
// stored or logged.
func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisterResponse, error) {

	if !utils.ValidUsername(request.Username) ||
		!utils.ValidEmail(request.Email) ||
		!utils.ValidPassword(request.Password) {
		return nil, utils.ErrInvalidInput
	}

	existing, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	existing, err = a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
	}

	if err := a.userRepo.InsertTx(newUser, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RegisterResponse{
		UserID:   newUser.ID.String(),
		Username: newUser.Username,
	}, nil
}

// Login verifies the credentials and opens a session. An unknown username
// and a wrong password are indistinguishable to the caller.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.sessionService.Issue(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}
