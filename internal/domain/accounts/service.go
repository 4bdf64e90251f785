package accounts

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brgycare/brgycare/internal/platform/auth"
)

var validRoles = map[string]bool{
	auth.RoleAdmin: true, auth.RoleBHW: true, auth.RoleHousehold: true,
}

var contactNumberPattern = regexp.MustCompile(`^\d{11}$`)

type Service struct {
	accounts  AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(accounts AccountRepository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		accounts:  accounts,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Account, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if req.FirstName == "" {
		return nil, fmt.Errorf("first_name is required")
	}
	if req.LastName == "" {
		return nil, fmt.Errorf("last_name is required")
	}
	if req.Role == "" {
		req.Role = auth.RoleHousehold
	}
	if !validRoles[req.Role] {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}
	if req.ContactNumber != nil && *req.ContactNumber != "" && !contactNumberPattern.MatchString(*req.ContactNumber) {
		return nil, fmt.Errorf("contact_number must be 11 digits")
	}
	if req.Role == auth.RoleHousehold && (req.HouseholdNumber == nil || *req.HouseholdNumber == "") {
		return nil, fmt.Errorf("household_number is required for household accounts")
	}

	// Uniqueness is checked before insert; the store enforces it too but the
	// pre-check gives a clean field-level error.
	if existing, err := s.accounts.GetByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("username already taken: %s", req.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	a := &Account{
		Username:        req.Username,
		PasswordHash:    string(hash),
		Role:            req.Role,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		LastName:        req.LastName,
		Suffix:          req.Suffix,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Address:         req.Address,
		HouseholdNumber: req.HouseholdNumber,
		IsActive:        true,
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	a, err := s.accounts.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !a.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(s.jwtSecret, a.ID, a.Role, a.FullName(), s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	// Last-login tracking is best effort and must not block the login.
	if err := s.accounts.UpdateLastLogin(ctx, a.ID); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("account_id", a.ID.String()).Msg("failed to record last login")
	}

	return &LoginResponse{Token: token, Account: a}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, a *Account) error {
	if a.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if a.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if a.ContactNumber != nil && *a.ContactNumber != "" && !contactNumberPattern.MatchString(*a.ContactNumber) {
		return fmt.Errorf("contact_number must be 11 digits")
	}
	return s.accounts.Update(ctx, a)
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("account not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.accounts.UpdatePassword(ctx, id, string(hash))
}

// Delete deactivates the account rather than removing the row, so message
// history and report attributions keep resolving.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("account not found")
	}
	a.IsActive = false
	return s.accounts.Update(ctx, a)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Account, int, error) {
	return s.accounts.Search(ctx, params, limit, offset)
}

// ListBHWs returns the health worker roster.
func (s *Service) ListBHWs(ctx context.Context, limit, offset int) ([]*Account, int, error) {
	return s.accounts.Search(ctx, map[string]string{"role": auth.RoleBHW}, limit, offset)
}
