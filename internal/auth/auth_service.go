package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "github.com/alex-morcg/horarios-vacaciones/internal/auth/errors"
	"github.com/alex-morcg/horarios-vacaciones/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// The product authenticates by employee code alone: the app runs inside the
// company and the code doubles as the login. There are no passwords.

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, code string) (accessToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, code string) (AuthResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	tokenTTL     time.Duration
}

func NewService(employeeRepo employee.Repository) Service {
	return &service{employeeRepo: employeeRepo, tokenTTL: 12 * time.Hour}
}

func (s *service) Login(ctx context.Context, code string) (string, AuthResponse, error) {
	emp, err := s.employeeRepo.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", AuthResponse{}, err
	}

	token, err := s.generateToken(emp.Code, emp.FullName, emp.IsAdmin, s.tokenTTL)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, mapToAuthResponse(emp), nil
}

func (s *service) GetMe(ctx context.Context, code string) (AuthResponse, error) {
	emp, err := s.employeeRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}
	return mapToAuthResponse(emp), nil
}

func (s *service) generateToken(code, name string, isAdmin bool, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_code": code,
		"employee_name": name,
		"is_admin":      isAdmin,
		"exp":           time.Now().Add(ttl).Unix(),
		"iat":           time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(emp *employee.Employee) AuthResponse {
	depts := make([]string, len(emp.Departments))
	for i, d := range emp.Departments {
		depts[i] = d.Name
	}

	return AuthResponse{
		Code:          emp.Code,
		FullName:      emp.FullName,
		Departments:   depts,
		TotalDays:     emp.TotalDays,
		CarryOverDays: emp.CarryOverDays,
		IsAdmin:       emp.IsAdmin,
	}
}
