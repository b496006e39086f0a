package impl

import (
	"context"
	"testing"
	"time"

	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	mockRepo "givebox/internal/mocks/repository"
	mockSvc "givebox/internal/mocks/service"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, userRepo *mockRepo.MockUserRepository, otpRepo *mockRepo.MockOTPRepository, hasher *mockSvc.MockPasswordHasher, tokenSvc *mockSvc.MockTokenService) usecase.UserUsecase {
	t.Helper()

	return NewUserService(UserServiceParams{
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{Users: userRepo, OTPs: otpRepo},
		},
		UserRepo:     userRepo,
		OTPRepo:      otpRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
}

func staffUser(email string) *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Email:         email,
		FullName:      "Console Admin",
		Role:          entity.RoleAdmin,
		AccountStatus: entity.AccountActive,
		PasswordHash:  "$hashed",
		IsStaff:       true,
		IsActive:      true,
	}
}

func TestUserService_AdminLogin_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := staffUser("admin@example.com")

	userRepo.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)
	hasher.On("Check", "secret", "$hashed").Return(true)
	tokenSvc.On("GenerateAccessToken", user.ID, []string{"ADMIN"}).Return("token-123", nil)

	output, err := service.AdminLogin(ctx, usecase.AdminLoginInput{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-123", output.AccessToken)
	assert.Equal(t, user, output.User)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), output.ExpiresAt, 5*time.Second)
}

func TestUserService_AdminLogin_UnknownEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := service.AdminLogin(ctx, usecase.AdminLoginInput{Email: "ghost@example.com", Password: "secret"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_AdminLogin_BadPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := staffUser("admin@example.com")

	userRepo.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)
	hasher.On("Check", "wrong", "$hashed").Return(false)

	_, err := service.AdminLogin(ctx, usecase.AdminLoginInput{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_AdminLogin_DisabledAccount(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := staffUser("admin@example.com")
	user.AccountStatus = entity.AccountDisabled

	userRepo.On("FindByEmail", ctx, "admin@example.com").Return(user, nil)
	hasher.On("Check", "secret", "$hashed").Return(true)

	_, err := service.AdminLogin(ctx, usecase.AdminLoginInput{Email: "admin@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestUserService_AdminLogin_NonStaffRejected(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := staffUser("customer@example.com")
	user.IsStaff = false
	user.Role = entity.RoleCustomer

	userRepo.On("FindByEmail", ctx, "customer@example.com").Return(user, nil)
	hasher.On("Check", "secret", "$hashed").Return(true)

	_, err := service.AdminLogin(ctx, usecase.AdminLoginInput{Email: "customer@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_CreateUser_AppliesDefaults(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	hasher.On("Hash", "secret").Return("$hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := service.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "newbie@example.com",
		FullName: "New User",
		Password: "secret",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Equal(t, entity.AccountActive, user.AccountStatus)
	assert.Equal(t, "$hashed", user.PasswordHash)
}

func TestUserService_UpdateUser_KeepsHashWithoutPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	existing := staffUser("admin@example.com")

	userRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := service.UpdateUser(ctx, usecase.UpdateUserInput{
		ID:            existing.ID,
		Email:         existing.Email,
		FullName:      "Renamed Admin",
		Role:          entity.RoleAdmin,
		AccountStatus: entity.AccountActive,
		IsStaff:       true,
		IsActive:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", user.FullName)
	assert.Equal(t, "$hashed", user.PasswordHash)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_SetDefaultAddress_ClearsPreviousDefault(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	userID := uuid.New()
	address := &entity.ShippingAddress{ID: uuid.New(), UserID: userID}

	userRepo.On("FindAddressByID", ctx, address.ID).Return(address, nil)
	userRepo.On("ClearDefaultAddresses", ctx, userID).Return(nil)
	userRepo.On("UpdateAddress", ctx, mock.MatchedBy(func(a *entity.ShippingAddress) bool {
		return a.ID == address.ID && a.IsDefault
	})).Return(nil)

	err := service.SetDefaultAddress(ctx, userID, address.ID)
	require.NoError(t, err)
}

func TestUserService_SetDefaultAddress_RejectsForeignAddress(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	address := &entity.ShippingAddress{ID: uuid.New(), UserID: uuid.New()}

	userRepo.On("FindAddressByID", ctx, address.ID).Return(address, nil)

	err := service.SetDefaultAddress(ctx, uuid.New(), address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	userRepo.AssertNotCalled(t, "ClearDefaultAddresses", mock.Anything, mock.Anything)
}

func TestUserService_IssueOTP_SixDigitCode(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	otpRepo.On("Create", ctx, mock.AnythingOfType("*entity.OTPVerification")).Return(nil)

	otp, err := service.IssueOTP(ctx, "someone@example.com")
	require.NoError(t, err)
	assert.Len(t, otp.OTPCode, 6)
	assert.Regexp(t, `^\d{6}$`, otp.OTPCode)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), otp.ExpiresAt, 5*time.Second)
}

func TestUserService_VerifyOTP_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	otp := &entity.OTPVerification{
		ID:        uuid.New(),
		Email:     "someone@example.com",
		OTPCode:   "123456",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	otpRepo.On("FindLatestByEmail", ctx, "someone@example.com").Return(otp, nil)
	otpRepo.On("MarkUsed", ctx, otp.ID).Return(nil)

	err := service.VerifyOTP(ctx, "someone@example.com", "123456")
	require.NoError(t, err)
}

func TestUserService_VerifyOTP_Expired(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	otp := &entity.OTPVerification{
		ID:        uuid.New(),
		Email:     "someone@example.com",
		OTPCode:   "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	otpRepo.On("FindLatestByEmail", ctx, "someone@example.com").Return(otp, nil)

	err := service.VerifyOTP(ctx, "someone@example.com", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
	otpRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
}

func TestUserService_VerifyOTP_AlreadyUsed(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	otp := &entity.OTPVerification{
		ID:        uuid.New(),
		Email:     "someone@example.com",
		OTPCode:   "123456",
		ExpiresAt: time.Now().Add(time.Minute),
		IsUsed:    true,
	}

	otpRepo.On("FindLatestByEmail", ctx, "someone@example.com").Return(otp, nil)

	err := service.VerifyOTP(ctx, "someone@example.com", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestUserService_VerifyOTP_Mismatch(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	otp := &entity.OTPVerification{
		ID:        uuid.New(),
		Email:     "someone@example.com",
		OTPCode:   "123456",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	otpRepo.On("FindLatestByEmail", ctx, "someone@example.com").Return(otp, nil)

	err := service.VerifyOTP(ctx, "someone@example.com", "654321")
	assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	id := uuid.New()
	userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUser(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_PropagatesError(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOTPRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := newUserService(t, userRepo, otpRepo, hasher, tokenSvc)

	ctx := context.Background()
	query := repository.ListUsersQuery{Search: "alice"}
	userRepo.On("List", ctx, query).Return(nil, int64(0), errors.New("db down"))

	output, err := service.ListUsers(ctx, query)
	assert.Nil(t, output)
	assert.Error(t, err)
}
