package auth

import (
	"context"
	"errors"
	"time"

	"github.com/CyberFocus2410/toursphere-backend/internal/apperr"
	"github.com/CyberFocus2410/toursphere-backend/internal/db"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

type Service struct {
	secret []byte
	ttl    time.Duration
	db     db.Querier
}

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

func NewService(secret string, ttl time.Duration, db db.Querier) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		db:     db,
	}
}

// Register creates a user with the non-privileged role. Role elevation is
// an out-of-band administrative action, not exposed here.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if req.Username == "" || req.Password == "" {
		return User{}, apperr.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         RoleUser,
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, user.ID, user.Username, user.PasswordHash, string(user.Role))
	if err := row.Scan(&user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return User{}, apperr.ErrDuplicateUsername
		}
		return User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues a session token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	user, err := s.findByUsername(ctx, req.Username, "")
	if err != nil {
		return TokenResponse{}, err
	}
	return s.checkPasswordAndIssue(user, req.Password)
}

// AdminLogin behaves like Login but only matches users holding the admin
// role, so a valid user credential still fails here.
func (s *Service) AdminLogin(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	user, err := s.findByUsername(ctx, req.Username, RoleAdmin)
	if err != nil {
		return TokenResponse{}, err
	}
	return s.checkPasswordAndIssue(user, req.Password)
}

func (s *Service) findByUsername(ctx context.Context, username string, role Role) (User, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM users WHERE username = $1
	`
	args := []any{username}
	if role != "" {
		query += ` AND role = $2`
		args = append(args, string(role))
	}

	row := s.db.QueryRow(ctx, query, args...)
	var user User
	var roleStr string
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &roleStr, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.ErrInvalidCredentials
		}
		return User{}, err
	}
	user.Role = Role(roleStr)
	if !user.Role.Valid() {
		return User{}, apperr.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) checkPasswordAndIssue(user User, password string) (TokenResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenResponse{}, apperr.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID, user.Role)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}

func (s *Service) IssueToken(userID string, role Role) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates signature and expiry only. The store is not
// consulted, so claims can be stale for up to one TTL after a role change.
func (s *Service) ParseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || !claims.Role.Valid() {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}
