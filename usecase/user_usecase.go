package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"finflix/domain/dto"
	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
	"finflix/infrastructure/security"
	"finflix/infrastructure/utils"
)

type IUserUsecase interface {
	SignUp(ctx context.Context, req dto.ReqSignUp) (dto.ResAuth, error)
	SignUpAdmin(ctx context.Context, req dto.ReqAdminSignUp) (dto.ResAuth, error)
	Login(ctx context.Context, req dto.ReqLogin) (dto.ResAuth, error)
}

// AuthOptions carries the secrets the user use case needs.
type AuthOptions struct {
	SecretKey string
	AdminKey  string
	TokenTTL  time.Duration
}

type userUsecase struct {
	userRepo repository.IUser
	opts     AuthOptions
}

func NewUserUsecase(userRepo repository.IUser, opts AuthOptions) IUserUsecase {
	return &userUsecase{userRepo: userRepo, opts: opts}
}

func (u *userUsecase) SignUp(ctx context.Context, req dto.ReqSignUp) (dto.ResAuth, error) {
	user, err := u.register(ctx, req, false)
	if err != nil {
		return dto.ResAuth{}, err
	}
	token, err := utils.GenerateToken(user, u.opts.SecretKey, u.opts.TokenTTL)
	if err != nil {
		return dto.ResAuth{}, Internal(err)
	}
	return dto.ResAuth{Message: "User registered successfully", Token: token, User: &user}, nil
}

func (u *userUsecase) SignUpAdmin(ctx context.Context, req dto.ReqAdminSignUp) (dto.ResAuth, error) {
	if u.opts.AdminKey == "" || subtle.ConstantTimeCompare([]byte(req.AdminKey), []byte(u.opts.AdminKey)) != 1 {
		return dto.ResAuth{}, Validation("Invalid user data")
	}
	if _, err := u.register(ctx, req.ReqSignUp, true); err != nil {
		return dto.ResAuth{}, err
	}
	return dto.ResAuth{Message: "User registered successfully"}, nil
}

func (u *userUsecase) Login(ctx context.Context, req dto.ReqLogin) (dto.ResAuth, error) {
	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.ResAuth{}, Unauthorized("Invalid credentials")
		}
		return dto.ResAuth{}, lookupErr(err, "")
	}
	if !security.ComparePassword(user.Password, req.Password) {
		return dto.ResAuth{}, Unauthorized("Invalid credentials")
	}
	token, err := utils.GenerateToken(user, u.opts.SecretKey, u.opts.TokenTTL)
	if err != nil {
		return dto.ResAuth{}, Internal(err)
	}
	return dto.ResAuth{Message: "Login successful", Token: token, User: &user}, nil
}

func (u *userUsecase) register(ctx context.Context, req dto.ReqSignUp, isAdmin bool) (model.User, error) {
	if _, err := u.userRepo.GetByUserName(ctx, req.UserName); err == nil {
		return model.User{}, Conflict("User already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.User{}, lookupErr(err, "")
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while hashing password")
		return model.User{}, Internal(err)
	}
	user := model.User{
		ID:          model.NewID(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		UserName:    req.UserName,
		Password:    hash,
		IsAdmin:     isAdmin,
		LikedVideos: []string{},
		WatchLater:  []string{},
		History:     []string{},
		Playlists:   []string{},
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.User{}, Conflict("User already exists")
		}
		logger.GetLogger().WithField("error", err).WithField("user_name", req.UserName).Error("Error while creating user")
		return model.User{}, Internal(err)
	}
	return user, nil
}
