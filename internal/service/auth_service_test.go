package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kamronbek003/sellerProject/config"
	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/internal/dto"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/kamronbek003/sellerProject/pkg/utils"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type fakeSellerRepository struct {
	sellers map[string]domain.Seller
}

func newFakeSellerRepository() *fakeSellerRepository {
	return &fakeSellerRepository{sellers: make(map[string]domain.Seller)}
}

func (r *fakeSellerRepository) GetSellerByPhone(ctx context.Context, phone string) (domain.Seller, error) {
	for _, seller := range r.sellers {
		if seller.Phone == phone {
			return seller, nil
		}
	}
	return domain.Seller{}, nil
}

func (r *fakeSellerRepository) GetSellerByID(ctx context.Context, id string) (domain.Seller, error) {
	return r.sellers[id], nil
}

func (r *fakeSellerRepository) AddSeller(ctx context.Context, data domain.Seller) error {
	for _, seller := range r.sellers {
		if seller.Phone == data.Phone {
			return errs.ErrPhoneAlreadyUsed
		}
	}
	r.sellers[data.ID] = data
	return nil
}

type fakeBotVerifier struct {
	accepted    bool
	err         error
	calledToken string
}

func (v *fakeBotVerifier) VerifyToken(ctx context.Context, token string) (bool, error) {
	v.calledToken = token
	return v.accepted, v.err
}

type AuthServiceTestSuite struct {
	suite.Suite
	repo     *fakeSellerRepository
	verifier *fakeBotVerifier
	service  AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.repo = newFakeSellerRepository()
	s.verifier = &fakeBotVerifier{accepted: true}
	s.service = CreateAuthService(s.repo, config.Config{JWTSecret: "test-secret"}, s.verifier)
}

func registerRequest(phone string) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:   "Ali",
		LastName:    "Valiyev",
		Phone:       phone,
		NameOfStore: "Vali Market",
		DateBirth:   "1995-08-15",
		Image:       "https://example.com/images/store.jpg",
		Logo:        "https://example.com/images/logo.png",
		PaymentTime: "2025-04-07T13:57:25.123Z",
		BotToken:    "1234567890:ABCDEF",
		Password:    "P@sswOrd123",
	}
}

func (s *AuthServiceTestSuite) Test_Register() {
	message, err := s.service.Register(context.Background(), registerRequest("+998901234567"))

	s.Require().NoError(err)
	s.NotEmpty(message)
	s.Equal("1234567890:ABCDEF", s.verifier.calledToken)

	s.Require().Len(s.repo.sellers, 1)
	for _, seller := range s.repo.sellers {
		s.Equal(domain.SellerStatusActive, seller.IsActive)
		s.NotEmpty(seller.ID)
		s.NotEmpty(seller.ExternalID)
		s.NotEqual("P@sswOrd123", seller.HashedPassword)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(seller.HashedPassword), []byte("P@sswOrd123")))
	}
}

func (s *AuthServiceTestSuite) Test_Register_DuplicatePhone() {
	_, err := s.service.Register(context.Background(), registerRequest("+998901234567"))
	s.Require().NoError(err)

	// Other fields differ; only the phone collides.
	second := registerRequest("+998901234567")
	second.FirstName = "Vali"
	second.NameOfStore = "Ali Market"

	_, err = s.service.Register(context.Background(), second)
	s.Equal(errs.ErrPhoneAlreadyUsed, err)
	s.Len(s.repo.sellers, 1)
}

func (s *AuthServiceTestSuite) Test_Register_InvalidBotToken() {
	s.verifier.accepted = false

	_, err := s.service.Register(context.Background(), registerRequest("+998901234567"))
	s.Equal(errs.ErrInvalidBotToken, err)
	s.Empty(s.repo.sellers)
}

func (s *AuthServiceTestSuite) Test_Register_VerifierOutageDoesNotBlock() {
	s.verifier.accepted = false
	s.verifier.err = errors.New("circuit breaker is open")

	_, err := s.service.Register(context.Background(), registerRequest("+998901234567"))
	s.NoError(err)
	s.Len(s.repo.sellers, 1)
}

func (s *AuthServiceTestSuite) Test_Login() {
	_, err := s.service.Register(context.Background(), registerRequest("+998901234567"))
	s.Require().NoError(err)

	resp, err := s.service.Login(context.Background(), dto.LoginRequest{Phone: "+998901234567", Password: "P@sswOrd123"})
	s.Require().NoError(err)
	s.Require().NotEmpty(resp.AccessToken)

	sellerID, role, err := utils.ParseAccessToken(resp.AccessToken, "test-secret")
	s.Require().NoError(err)
	s.Equal(RoleSeller, role)

	seller, err := s.repo.GetSellerByID(context.Background(), sellerID)
	s.Require().NoError(err)
	s.Equal("+998901234567", seller.Phone)
}

func (s *AuthServiceTestSuite) Test_Login_IndistinguishableFailures() {
	_, err := s.service.Register(context.Background(), registerRequest("+998901234567"))
	s.Require().NoError(err)

	_, wrongPassword := s.service.Login(context.Background(), dto.LoginRequest{Phone: "+998901234567", Password: "wrong"})
	_, unknownPhone := s.service.Login(context.Background(), dto.LoginRequest{Phone: "+998900000000", Password: "P@sswOrd123"})

	s.Equal(errs.ErrInvalidCredentials, wrongPassword)
	s.Equal(errs.ErrInvalidCredentials, unknownPhone)
	s.Equal(wrongPassword.Error(), unknownPhone.Error())
}

func (s *AuthServiceTestSuite) Test_GetProfile() {
	_, err := s.service.Register(context.Background(), registerRequest("+998901234567"))
	s.Require().NoError(err)

	var sellerID string
	for id := range s.repo.sellers {
		sellerID = id
	}

	profile, err := s.service.GetProfile(context.Background(), sellerID)
	s.Require().NoError(err)
	s.Equal("Ali", profile.FirstName)
	s.Equal("+998901234567", profile.Phone)

	_, err = s.service.GetProfile(context.Background(), "missing")
	s.Equal(errs.ErrSellerNotFound, err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
