package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"workflowpro-api/internal/application/command"
	"workflowpro-api/internal/application/mapper"
	"workflowpro-api/internal/application/query"
	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
	"workflowpro-api/internal/infrastructure"
)

const (
	userSearchMinQuery = 3
	userSearchLimit    = 10
	profileCacheTTL    = 24 * time.Hour
)

type UserService struct {
	userRepo        repositories.UserRepository
	idempotencyRepo repositories.IdempotencyRepository
	redisService    *infrastructure.RedisService
	tokenService    *infrastructure.TokenService
	rateLimiter     *infrastructure.RateLimiter
	logger          *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	redisService *infrastructure.RedisService,
	tokenService *infrastructure.TokenService,
	rateLimiter *infrastructure.RateLimiter,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		idempotencyRepo: idempotencyRepo,
		redisService:    redisService,
		tokenService:    tokenService,
		rateLimiter:     rateLimiter,
		logger:          logger,
	}
}

func (s *UserService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Replay a previous response when the client retries with the same key.
	if cmd.IdempotencyKey != "" {
		existingRecord, err := s.idempotencyRepo.FindByKey(ctx, cmd.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existingRecord != nil {
			var result command.RegisterUserCommandResult
			if err := json.Unmarshal([]byte(existingRecord.Response), &result); err != nil {
				return nil, err
			}
			return &result, nil
		}
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, NewError(http.StatusBadRequest, "Email already registered")
	}

	existingUser, err = s.userRepo.FindByUsername(ctx, strings.TrimSpace(cmd.Username))
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, NewError(http.StatusBadRequest, "Username already taken")
	}

	newUser := entities.NewUser(cmd.Email, cmd.Username, cmd.FullName, cmd.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, NewError(http.StatusBadRequest, err.Error())
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	result := command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}

	if cmd.IdempotencyKey != "" {
		s.storeIdempotencyRecord(ctx, cmd.IdempotencyKey, cmd, result, http.StatusCreated)
	}

	return &result, nil
}

func (s *UserService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if !s.rateLimiter.Allow("login:" + email) {
		return nil, NewError(http.StatusTooManyRequests, "Too many login attempts, please try again later")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CheckPassword(cmd.Password) != nil {
		return nil, NewError(http.StatusUnauthorized, "Incorrect email or password")
	}

	if !user.IsActive {
		return nil, NewError(http.StatusBadRequest, "Inactive user")
	}

	token, err := s.tokenService.Generate(user.Email)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// GetProfile resolves a token subject to the user it belongs to, with a
// cache-aside read through Redis.
func (s *UserService) GetProfile(ctx context.Context, email string) (*query.UserQueryResult, error) {
	cachedUser, err := s.redisService.GetProfile(ctx, email)
	if err != nil {
		s.logger.Warn("profile cache read failed", zap.Error(err))
	}
	if cachedUser != nil {
		return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(cachedUser)}, nil
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewError(http.StatusUnauthorized, "User not found")
	}

	// Never cache the password hash.
	cacheCopy := *user
	cacheCopy.Password = ""
	if err := s.redisService.SetProfile(ctx, email, &cacheCopy, profileCacheTTL); err != nil {
		s.logger.Warn("profile cache write failed", zap.Error(err))
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

// Search finds users by email fragment for team invitations.
func (s *UserService) Search(ctx context.Context, emailQuery string) ([]query.UserSearchEntry, error) {
	if len(strings.TrimSpace(emailQuery)) < userSearchMinQuery {
		return nil, NewError(http.StatusBadRequest, "Search query must be at least 3 characters")
	}

	users, err := s.userRepo.SearchByEmail(ctx, strings.TrimSpace(emailQuery), userSearchLimit)
	if err != nil {
		return nil, err
	}

	out := make([]query.UserSearchEntry, 0, len(users))
	for _, u := range users {
		out = append(out, query.UserSearchEntry{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
		})
	}
	return out, nil
}

func (s *UserService) storeIdempotencyRecord(ctx context.Context, key string, request, response interface{}, statusCode int) {
	requestJSON, _ := json.Marshal(request)
	record := entities.NewIdempotencyRecord(key, string(requestJSON))
	responseJSON, _ := json.Marshal(response)
	record.SetResponse(string(responseJSON), statusCode)
	if _, err := s.idempotencyRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to store idempotency record", zap.Error(err))
	}
}
