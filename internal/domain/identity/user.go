package identity

import (
	"regexp"
	"strings"
	"sync"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only role the application issues
const RoleAdmin = "admin"

// DefaultAdminUsername is the principal provisioned by the admin command
const DefaultAdminUsername = "admin"

// Password cost for bcrypt
const bcryptCost = 12

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasNumber       = regexp.MustCompile(`[0-9]`)
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// User is an administrative principal allowed to modify parish data
type User struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
	Role         string
}

// NewUser creates a user with a bcrypt hash of password
func NewUser(username, password, role string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	if role == "" {
		role = RoleAdmin
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     NormalizeUsername(username),
		PasswordHash: hash,
		Role:         role,
	}, nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewInternalError(err)
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// VerifyPassword compares password against the stored hash in constant time
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// BurnPasswordCheck runs a bcrypt comparison against a throwaway hash. Login
// calls it when no user matched so the response time does not reveal that.
func BurnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password-0"), bcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// NormalizeUsername lowercases and trims a username
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewInvalidParameter("Username cannot be empty", username)
	}
	if len(username) < 3 {
		return shared.NewInvalidParameter("Username must be at least 3 characters", username)
	}
	if len(username) > 100 {
		return shared.NewInvalidParameter("Username cannot exceed 100 characters", nil)
	}
	if !usernamePattern.MatchString(username) {
		return shared.NewInvalidParameter("Username can only contain letters, numbers, underscores, hyphens, and dots", username)
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewInvalidParameter("Password cannot be empty", nil)
	}
	if len(password) < 8 {
		return shared.NewInvalidParameter("Password must be at least 8 characters", nil)
	}
	if len(password) > 72 {
		// bcrypt ignores everything past 72 bytes
		return shared.NewInvalidParameter("Password cannot exceed 72 characters", nil)
	}
	if !hasLetter.MatchString(password) || !hasNumber.MatchString(password) {
		return shared.NewInvalidParameter("Password must contain at least one letter and one number", nil)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
