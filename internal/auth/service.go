package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/changhyeonkim/cardmask/internal/model"
	"github.com/changhyeonkim/cardmask/internal/operator"
	"github.com/changhyeonkim/cardmask/internal/shared/database"
	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/changhyeonkim/cardmask/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db                 *gorm.DB
	operatorRepository *operator.OperatorRepository
	tokenManager       token.Manager
}

func NewAuthService(db *gorm.DB, operatorRepository *operator.OperatorRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:                 db,
		operatorRepository: operatorRepository,
		tokenManager:       tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find operator by email
	found, err := a.operatorRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - operator email not found", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", ErrIncorrectEmailPassword) // 이메일 존재 여부 노출 금지
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrIncorrectEmailPassword)
	}

	// 3. Generate JWT tokens
	response, err := a.issueTokens(ctx, found)
	if err != nil {
		return nil, err
	}

	log.Info("로그인 성공", "email", logger.MaskEmail(request.Email))
	return response, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The
// operator must still exist.
func (a *AuthService) Refresh(ctx context.Context, request *RefreshRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenManager.ValidateToken(request.RefreshToken)
	if err != nil {
		log.Warn("토큰 갱신 실패 - invalid refresh token", "error", err)
		return nil, fmt.Errorf("validate refresh token: %w: %w", ErrInvalidRefreshToken, err)
	}
	if claims.TokenType != token.REFRESH {
		log.Warn("토큰 갱신 실패 - not a refresh token", "token_type", claims.TokenType)
		return nil, fmt.Errorf("token_type=%s %w", claims.TokenType, ErrInvalidRefreshToken)
	}

	operatorID, err := strconv.ParseUint(claims.OperatorID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("operator_id=%q %w", claims.OperatorID, ErrInvalidRefreshToken)
	}

	var found *model.Operator
	err = database.ReadOnly(ctx, a.db, func(tx *gorm.DB) error {
		found, err = a.operatorRepository.FindByID(ctx, tx, uint32(operatorID))
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("토큰 갱신 실패 - operator not found", "operator_id", operatorID)
			return nil, fmt.Errorf("operator_id=%d %w", operatorID, ErrInvalidRefreshToken)
		}
		return nil, fmt.Errorf("토큰 갱신 실패: %w", err)
	}

	response, err := a.issueTokens(ctx, found)
	if err != nil {
		return nil, err
	}

	log.Info("토큰 갱신 성공", "operator_id", operatorID)
	return response, nil
}

func (a *AuthService) issueTokens(ctx context.Context, found *model.Operator) (*LoginResponse, error) {
	log := logger.FromContext(ctx)
	operatorID := strconv.FormatUint(uint64(found.ID), 10)

	accessToken, err := a.tokenManager.GenerateAccessToken(operatorID, found.Email)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(operatorID, found.Email)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) error {
	log := logger.FromContext(ctx)
	return database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.operatorRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			log.Error("Failed to check operator existence", "error", err)
			return fmt.Errorf("check operator existence: %w", err)
		}
		if exists {
			log.Warn("Operator already exists", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("error %w", operator.ErrOperatorAlreadyExists)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		created := model.NewOperator(request.Name, request.Email, string(hashedPassword))
		if err := a.operatorRepository.Create(ctx, tx, created); err != nil {
			log.Error("Failed to create operator", "error", err)
			return fmt.Errorf("create operator: %w", err)
		}

		log.Info("Operator created successfully", "email", logger.MaskEmail(request.Email))
		return nil
	})
}
