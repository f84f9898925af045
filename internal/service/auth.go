package service

import (
	"context"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// authServiceImpl implements AuthService
type authServiceImpl struct {
	repo *database.Repository
}

// NewAuthService creates a new AuthService
func NewAuthService(repo *database.Repository) AuthService {
	return &authServiceImpl{repo: repo}
}

// Login matches username and role exactly, then compares the OTP stored for
// that admin. Missing fields are the caller's to reject.
func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.Account, error) {
	admins, err := s.repo.Find(ctx, models.AdminTable,
		database.Cond{Column: models.FieldUsername, Value: req.Username},
		database.Cond{Column: models.FieldRoles, Value: req.Role},
	)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, ErrInvalidCredentials
	}
	admin := admins[0]

	codes, err := s.repo.Find(ctx, models.TwoFATable,
		database.Cond{Column: models.FieldAdminID, Value: admin[models.FieldAdminID]})
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, ErrOTPNotConfigured
	}

	stored, _ := codes[0].String(models.FieldOTP)
	if req.NumericOTP || stored != req.OTP {
		return nil, ErrInvalidOTP
	}

	username, _ := admin.String(models.FieldUsername)
	role, _ := admin.String(models.FieldRoles)
	return &models.Account{
		AdminID:  admin[models.FieldAdminID],
		Username: username,
		Role:     role,
	}, nil
}
