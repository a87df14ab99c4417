package services

import (
	"log/slog"

	"soundbridge/auth"
	"soundbridge/domain"
	"soundbridge/errors"
	"soundbridge/repositories"
)

type IAuthService interface {
	Callback(externalID, fullName, imageURL, email string) (domain.User, Token, error)
	AdminLogin(email, password string) (Token, error)
	Resolve(token string) (*auth.Claims, error)
}

type Token string

// AuthService is the identity resolver boundary: authentication itself
// happens at the external provider, this service only maps the
// provider's identity onto an internal user record and issues the
// session token the transport trusts afterwards.
type AuthService struct {
	users     repositories.IUserRepository
	issuer    *auth.Issuer
	adminMail string
	adminHash string
	log       *slog.Logger
}

func NewAuthService(users repositories.IUserRepository, issuer *auth.Issuer,
	adminMail, adminHash string, log *slog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer,
		adminMail: adminMail, adminHash: adminHash, log: log}
}

// Callback upserts the user record from the provider's profile and
// returns a session token. The configured admin email grants console
// access.
func (s *AuthService) Callback(externalID, fullName, imageURL, email string) (domain.User, Token, error) {
	user, err := s.users.Upsert(domain.User{
		ExternalID: externalID,
		FullName:   fullName,
		ImageURL:   imageURL,
		Email:      email,
	})
	if err != nil {
		return domain.User{}, "", err
	}

	admin := s.adminMail != "" && email == s.adminMail
	token, err := s.issuer.Issue(user.ID, admin)
	if err != nil {
		return domain.User{}, "", errors.ErrTokenGeneration
	}
	s.log.Info("identity resolved", "user", user.ID, "admin", admin)
	return user, Token(token), nil
}

// AdminLogin grants console access without the external provider,
// against the configured admin email and Argon2id password hash. The
// error is the same whichever check fails, to avoid enumeration.
func (s *AuthService) AdminLogin(email, password string) (Token, error) {
	if s.adminMail == "" || email != s.adminMail {
		return "", errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(password, s.adminHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue("admin", true)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

// Resolve validates a session token back into its claims.
func (s *AuthService) Resolve(token string) (*auth.Claims, error) {
	claims, err := s.issuer.Validate(token)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	return claims, nil
}
