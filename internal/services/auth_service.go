package services

import (
	"context"
	"fmt"
	"time"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"
	"ambition/pkg/logger"
	"ambition/pkg/sms"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthService covers phone OTP login and password login for both users and
// drivers, issuing JWTs on success.
type AuthService struct {
	userRepo   interfaces.UserRepository
	driverRepo interfaces.DriverRepository
	otpRepo    interfaces.OTPRepository
	smsSender  sms.Sender
	jwtSecret  string
	jwtTTL     time.Duration
	otpLength  int
	otpExpiry  time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

func NewAuthService(
	userRepo interfaces.UserRepository,
	driverRepo interfaces.DriverRepository,
	otpRepo interfaces.OTPRepository,
	smsSender sms.Sender,
	jwtSecret string,
	jwtTTL time.Duration,
	otpLength int,
	otpExpiry time.Duration,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		driverRepo: driverRepo,
		otpRepo:    otpRepo,
		smsSender:  smsSender,
		jwtSecret:  jwtSecret,
		jwtTTL:     jwtTTL,
		otpLength:  otpLength,
		otpExpiry:  otpExpiry,
		now:        time.Now,
		logger:     log,
	}
}

// RequestOTP issues a fresh code for the phone, replacing any previous one,
// and delivers it by SMS.
func (s *AuthService) RequestOTP(ctx context.Context, phone string, ownerType models.OwnerType) error {
	if phone == "" {
		return utils.InvalidArgumentf("phone is required")
	}

	code := utils.GenerateRandomNumericString(s.otpLength)
	otp := &models.TempOTP{
		Phone:     phone,
		Code:      code,
		OwnerType: ownerType,
		ExpiresAt: s.now().Add(s.otpExpiry),
		CreatedAt: s.now(),
	}

	if err := s.otpRepo.Upsert(ctx, otp); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	message := fmt.Sprintf("Your verification code is %s", code)
	if _, err := s.smsSender.SendSMS(ctx, phone, message); err != nil {
		return fmt.Errorf("failed to send otp: %w", err)
	}

	return nil
}

// VerifyOTP checks the code against the stored record and, on success,
// consumes it and returns a JWT for the matching account.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, code string, ownerType models.OwnerType) (string, error) {
	otp, err := s.otpRepo.GetByPhone(ctx, phone, ownerType)
	if err != nil {
		return "", err
	}
	if otp.Expired(s.now()) {
		return "", utils.InvalidArgumentf("verification code expired")
	}
	if otp.Code != code {
		return "", utils.InvalidArgumentf("verification code does not match")
	}

	ownerID, err := s.resolveOwner(ctx, phone, ownerType)
	if err != nil {
		return "", err
	}

	if err := s.otpRepo.Delete(ctx, phone, ownerType); err != nil {
		s.logger.WithError(err).WithField("phone", phone).Warn("failed to consume otp")
	}

	return utils.GenerateToken(ownerID, string(ownerType), phone, s.jwtSecret, s.jwtTTL)
}

// RegisterUser creates a user account with a bcrypt password hash.
func (s *AuthService) RegisterUser(ctx context.Context, user *models.User, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// RegisterDriver creates a driver account with a bcrypt password hash.
func (s *AuthService) RegisterDriver(ctx context.Context, driver *models.Driver, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	driver.Password = hash
	if driver.Status == "" {
		driver.Status = models.DriverStatusOffline
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return fmt.Errorf("failed to register driver: %w", err)
	}
	return nil
}

// LoginUser verifies the password and returns a JWT.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user.Disabled {
		return "", nil, utils.InvalidArgumentf("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, utils.InvalidArgumentf("email and password do not match")
	}

	token, err := utils.GenerateToken(user.ID, string(models.OwnerTypeUser), user.Phone, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// LoginDriver verifies the password and returns a JWT.
func (s *AuthService) LoginDriver(ctx context.Context, email, password string) (string, *models.Driver, error) {
	driver, err := s.driverRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if driver.Disabled {
		return "", nil, utils.InvalidArgumentf("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(driver.Password), []byte(password)); err != nil {
		return "", nil, utils.InvalidArgumentf("email and password do not match")
	}

	token, err := utils.GenerateToken(driver.ID, string(models.OwnerTypeDriver), driver.Phone, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, driver, nil
}

func (s *AuthService) resolveOwner(ctx context.Context, phone string, ownerType models.OwnerType) (primitive.ObjectID, error) {
	if ownerType == models.OwnerTypeDriver {
		driver, err := s.driverRepo.GetByPhone(ctx, phone)
		if err != nil {
			return primitive.NilObjectID, err
		}
		return driver.ID, nil
	}

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", utils.InvalidArgumentf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
