package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/mailcheck"
	"resort/infras/otel"
	"resort/internal/domains/auth/model/dto"
	userModel "resort/internal/domains/user/model"
	userDto "resort/internal/domains/user/model/dto"
	userRepo "resort/internal/domains/user/repository"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/password"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed disposable_domains.json
var disposableDomainsData []byte

type Auth interface {
	Register(ctx context.Context, req dto.CreateUserRequest) (userDto.UserResponse, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (userDto.UserResponse, string, error)
	VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) error
}

type serviceImpl struct {
	userRepo          userRepo.User
	cfg               *config.Config
	otel              otel.Otel
	jwtService        jwt.JWT
	mailCheck         mailcheck.MailCheck
	disposableDomains []string
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, mailCheck mailcheck.MailCheck) Auth {
	var disposableDomains []string
	if err := json.Unmarshal(disposableDomainsData, &disposableDomains); err != nil {
		log.Err(err).Msg("Failed to decode embedded disposable domain list")
	}

	return &serviceImpl{
		userRepo:          userRepo,
		cfg:               cfg,
		otel:              otel,
		jwtService:        jwt,
		mailCheck:         mailCheck,
		disposableDomains: disposableDomains,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.CreateUserRequest) (res userDto.UserResponse, token string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.VerifyEmail(ctx, dto.VerifyEmailRequest{Email: req.Email}); err != nil {
		return res, token, err
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, token, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, token, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, token, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, token, fmt.Errorf("failed to create user: %w", err)
	}

	token, err = s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, token, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromModel(user)

	return res, token, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res userDto.UserResponse, token string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, token, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, token, failure.NotFound("user") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, token, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	token, err = s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, token, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromModel(user)

	return res, token, nil
}

// VerifyEmail checks the address against the embedded disposable list, the
// configured organization domain, and the external reputation service.
func (s *serviceImpl) VerifyEmail(ctx context.Context, req dto.VerifyEmailRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	at := strings.LastIndex(req.Email, "@")
	if at < 0 {
		return failure.BadRequestFromString("invalid email address") // nolint:wrapcheck
	}

	domain := strings.ToLower(req.Email[at+1:])

	if slices.Contains(s.disposableDomains, domain) {
		return failure.BadRequestFromString("disposable email addresses are not allowed") // nolint:wrapcheck
	}

	if allowed := s.cfg.Auth.AllowedEmailDomain; allowed != constant.Empty && domain != strings.ToLower(allowed) {
		return failure.BadRequestFromString(fmt.Sprintf("email must belong to the %s domain", allowed)) // nolint:wrapcheck
	}

	disposable, err := s.mailCheck.IsDisposable(ctx, req.Email)
	if err != nil {
		// Reputation lookup is best effort, a dead endpoint must not block signup.
		log.Warn().Err(err).Msg("email reputation lookup failed")

		return nil
	}

	if disposable {
		return failure.BadRequestFromString("disposable email addresses are not allowed") // nolint:wrapcheck
	}

	return nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}
