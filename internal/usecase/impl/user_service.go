// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"givebox/config"
	deliverycontext "givebox/internal/delivery/context"
	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	"givebox/internal/domain/service"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAccessTokenTTL = 15 * time.Minute
	defaultOTPTTL         = 5 * time.Minute
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	otpRepo      repository.OTPRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	accessTTL    time.Duration
	otpTTL       time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OTPRepo      repository.OTPRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	accessTTL := defaultAccessTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.AccessTokenTTL > 0 {
		accessTTL = params.Config.Auth.AccessTokenTTL
	}

	otpTTL := defaultOTPTTL
	if params.Config != nil && params.Config.OTP != nil && params.Config.OTP.TTL > 0 {
		otpTTL = params.Config.OTP.TTL
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		otpRepo:      params.OTPRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		accessTTL:    accessTTL,
		otpTTL:       otpTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AdminLogin authenticates a staff account and issues an access token.
// Only active staff accounts may enter the admin console.
func (srv *userService) AdminLogin(ctx context.Context, input usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected: bad password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive || user.AccountStatus != entity.AccountActive {
		return nil, domainerrors.ErrAccountDisabled
	}
	if !user.IsStaff {
		srv.log(ctx).Warn("Admin login rejected: not staff", slog.String("email", input.Email))

		return nil, domainerrors.ErrForbidden.WrapMessage("account has no admin console access")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Admin logged in", slog.Any("userID", user.ID))

	return &usecase.AdminLoginOutput{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(srv.accessTTL),
		User:        user,
	}, nil
}

// CreateUser hashes the password and persists a new user.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Email:         input.Email,
		FullName:      input.FullName,
		PhoneNumber:   input.PhoneNumber,
		Role:          input.Role,
		AccountStatus: input.AccountStatus,
		PasswordHash:  hash,
		IsStaff:       input.IsStaff,
		IsActive:      input.IsActive,
	}
	if user.Role == "" {
		user.Role = entity.RoleCustomer
	}
	if user.AccountStatus == "" {
		user.AccountStatus = entity.AccountActive
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID), slog.String("email", user.Email))

	return user, nil
}

// GetUser retrieves a user with addresses preloaded.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// ListUsers returns one page of users for the admin list view.
func (srv *userService) ListUsers(ctx context.Context, query repository.ListUsersQuery) (*usecase.UserListOutput, error) {
	users, total, err := srv.userRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{Users: users, Total: total}, nil
}

// UpdateUser modifies an existing user, rehashing the password only when
// a new one is supplied.
func (srv *userService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	user.Email = input.Email
	user.FullName = input.FullName
	user.PhoneNumber = input.PhoneNumber
	user.Role = input.Role
	user.AccountStatus = input.AccountStatus
	user.IsStaff = input.IsStaff
	user.IsActive = input.IsActive

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user; the schema's delete rules handle dependents.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

// CreateAddress persists a new shipping address. When the new address is
// flagged default, the previous default is cleared in the same transaction.
func (srv *userService) CreateAddress(ctx context.Context, input usecase.AddressInput) (*entity.ShippingAddress, error) {
	address := &entity.ShippingAddress{
		UserID:        input.UserID,
		RecipientName: input.RecipientName,
		PhoneNumber:   input.PhoneNumber,
		Province:      input.Province,
		District:      input.District,
		Ward:          input.Ward,
		StreetAddress: input.StreetAddress,
		IsDefault:     input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if address.IsDefault {
			if err := userRepo.ClearDefaultAddresses(ctx, address.UserID); err != nil {
				return err
			}
		}

		return userRepo.CreateAddress(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// UpdateAddress modifies an existing shipping address, keeping the
// one-default-per-user convention intact.
func (srv *userService) UpdateAddress(ctx context.Context, id uuid.UUID, input usecase.AddressInput) (*entity.ShippingAddress, error) {
	address := &entity.ShippingAddress{
		ID:            id,
		UserID:        input.UserID,
		RecipientName: input.RecipientName,
		PhoneNumber:   input.PhoneNumber,
		Province:      input.Province,
		District:      input.District,
		Ward:          input.Ward,
		StreetAddress: input.StreetAddress,
		IsDefault:     input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if address.IsDefault {
			if err := userRepo.ClearDefaultAddresses(ctx, address.UserID); err != nil {
				return err
			}
		}

		return userRepo.UpdateAddress(ctx, address)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("shipping address not found")
		}

		return nil, err
	}

	return address, nil
}

// DeleteAddress removes a shipping address.
func (srv *userService) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.DeleteAddress(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("shipping address not found")
		}

		return err
	}

	return nil
}

// ListAddresses returns all addresses of a user, default first.
func (srv *userService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	addresses, err := srv.userRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// SetDefaultAddress promotes one address to the user's default. The
// previous default is cleared inside the same transaction so at most one
// default survives.
func (srv *userService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		address, err := userRepo.FindAddressByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("shipping address not found")
			}

			return err
		}
		if address.UserID != userID {
			return domainerrors.ErrForbidden.WrapMessage("address belongs to another user")
		}

		if err := userRepo.ClearDefaultAddresses(ctx, userID); err != nil {
			return err
		}

		address.IsDefault = true

		return userRepo.UpdateAddress(ctx, address)
	})
}

// IssueOTP creates a fresh six-digit code for the email with the
// configured time to live.
func (srv *userService) IssueOTP(ctx context.Context, email string) (*entity.OTPVerification, error) {
	code, err := randomOTPCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp code")
	}

	otp := &entity.OTPVerification{
		Email:     email,
		OTPCode:   code,
		ExpiresAt: time.Now().Add(srv.otpTTL),
	}

	if err := srv.otpRepo.Create(ctx, otp); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("OTP issued", slog.String("email", email))

	return otp, nil
}

// VerifyOTP checks the latest code for the email and consumes it. Used,
// expired, and mismatched codes are all rejected.
func (srv *userService) VerifyOTP(ctx context.Context, email, code string) error {
	otp, err := srv.otpRepo.FindLatestByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return domainerrors.ErrOTPNotFound
		}

		return errors.Wrap(err, "failed to look up otp")
	}

	if !otp.Usable(time.Now()) {
		return domainerrors.ErrOTPExpired
	}
	if otp.OTPCode != code {
		return domainerrors.ErrOTPInvalid
	}

	if err := srv.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		return errors.Wrap(err, "failed to consume otp")
	}

	return nil
}

// ListOTPs returns one page of verification codes for the admin console.
func (srv *userService) ListOTPs(ctx context.Context, search string, isUsed *bool, page repository.Page) (*usecase.OTPListOutput, error) {
	codes, total, err := srv.otpRepo.List(ctx, search, isUsed, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list otps")
	}

	return &usecase.OTPListOutput{Codes: codes, Total: total}, nil
}

// randomOTPCode draws six decimal digits from crypto/rand.
func randomOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
