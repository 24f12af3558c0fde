// Package auth gates the dashboard behind user accounts stored in the
// application database with bcrypt password hashes.
package auth

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("a user with this email already exists")
	ErrBadEmail           = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is one dashboard account.
type User struct {
	ID           string `gorm:"primaryKey;column:uid"`
	Email        string `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func (User) TableName() string { return "users" }

// Store manages user accounts in the shared database.
type Store struct {
	db *gorm.DB
}

// NewStore prepares the users table on the given database handle.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// SeedDemo creates the demo account if it does not exist yet.
func (s *Store) SeedDemo() error {
	_, err := s.SignUp("demo@example.com", "password123", "Demo User")
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}

// SignUp creates a new account after validating the email shape and
// password length.
func (s *Store) SignUp(email, password, name string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return User{}, ErrBadEmail
	}
	if len(password) < 8 {
		return User{}, ErrWeakPassword
	}

	var count int64
	if err := s.db.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return User{}, err
	}
	if count > 0 {
		return User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         "user",
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(&u).Error; err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifies credentials and returns the matching user.
func (s *Store) Login(email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u User
	err := s.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
