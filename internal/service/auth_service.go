package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kamronbek003/sellerProject/config"
	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/internal/dto"
	"github.com/kamronbek003/sellerProject/internal/repository"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/kamronbek003/sellerProject/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleSeller = "seller"

	registerSuccessMessage = "Tabriklaymiz, sotuvchi muvaffaqiyatli ro'yxatdan o'tkazildi!"
)

// BotVerifier checks a Telegram bot token against the Bot API. The boolean
// answers whether the token is accepted; an error means the answer is
// unavailable (outage, open breaker), which must not block registration.
type BotVerifier interface {
	VerifyToken(ctx context.Context, token string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (message string, err error)
	Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error)
	GetProfile(ctx context.Context, sellerID string) (respPayload dto.SellerResponse, err error)
}

type AuthServiceImpl struct {
	repo        repository.SellerRepository
	config      config.Config
	botVerifier BotVerifier
}

func CreateAuthService(repo repository.SellerRepository, config config.Config, botVerifier BotVerifier) AuthService {
	return &AuthServiceImpl{repo: repo, config: config, botVerifier: botVerifier}
}

func (s *AuthServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (message string, err error) {
	seller, err := s.repo.GetSellerByPhone(ctx, payload.Phone)
	if err != nil {
		return "", errs.ErrInternalServer
	}

	if seller.ID != "" {
		return "", errs.ErrPhoneAlreadyUsed
	}

	if s.botVerifier != nil {
		ok, verifyErr := s.botVerifier.VerifyToken(ctx, payload.BotToken)
		if verifyErr != nil {
			log.Warn().Err(verifyErr).Str("component", "Register").Msg("bot token verification unavailable, skipping")
		} else if !ok {
			return "", errs.ErrInvalidBotToken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return "", errs.ErrInternalServer
	}

	sellerEnt := domain.Seller{
		ID:             uuid.NewString(),
		ExternalID:     ulid.Make().String(),
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Phone:          payload.Phone,
		NameOfStore:    payload.NameOfStore,
		DateBirth:      payload.DateBirth,
		Image:          payload.Image,
		Logo:           payload.Logo,
		PaymentTime:    payload.PaymentTime,
		BotToken:       payload.BotToken,
		HashedPassword: string(hash),
		IsActive:       domain.SellerStatusActive,
	}

	if err := s.repo.AddSeller(ctx, sellerEnt); err != nil {
		return "", err
	}

	return registerSuccessMessage, nil
}

// Login answers unknown phones and wrong passwords with the same error, so a
// caller cannot probe which phone numbers are registered.
func (s *AuthServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error) {
	seller, err := s.repo.GetSellerByPhone(ctx, payload.Phone)
	if err != nil {
		return respPayload, errs.ErrInternalServer
	}

	if seller.ID == "" {
		return respPayload, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(seller.HashedPassword), []byte(payload.Password))
	if err != nil {
		return respPayload, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateAccessToken(seller.ID, RoleSeller, s.config.JWTSecret)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInternalServer
	}

	respPayload.AccessToken = token

	return
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context, sellerID string) (respPayload dto.SellerResponse, err error) {
	seller, err := s.repo.GetSellerByID(ctx, sellerID)
	if err != nil {
		return respPayload, errs.ErrInternalServer
	}

	if seller.ID == "" {
		return respPayload, errs.ErrSellerNotFound
	}

	respPayload = dto.SellerResponse{
		ID:          seller.ID,
		ExternalID:  seller.ExternalID,
		FirstName:   seller.FirstName,
		LastName:    seller.LastName,
		Phone:       seller.Phone,
		NameOfStore: seller.NameOfStore,
		DateBirth:   seller.DateBirth,
		Image:       seller.Image,
		Logo:        seller.Logo,
	}

	return
}
