// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"abacus/config"
	"abacus/internal/domain/service"
)

const (
	defaultBcryptCost      = 12
	defaultMinLength       = 8
	defaultMaxLength       = 72 // bcrypt truncates beyond 72 bytes
	specialCharacters      = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"
	forbiddenWordsInPolicy = "password,qwerty,admin"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher. Cost and strength
// policy come from configuration, with safe defaults when unset.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: defaultMinLength, MaxLength: defaultMaxLength}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.MinLength <= 0 {
			policy.MinLength = defaultMinLength
		}
		if policy.MaxLength <= 0 {
			policy.MaxLength = defaultMaxLength
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and the
// default strength policy. Mainly useful in tests where a low cost keeps
// hashing fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:   cost,
		policy: config.PasswordStrengthConfig{MinLength: defaultMinLength, MaxLength: defaultMaxLength},
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation internally.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// A malformed hash simply fails the comparison.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength verifies the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return errors.Errorf("password must be at least %d characters long", h.policy.MinLength)
	}
	if len(password) > h.policy.MaxLength {
		return errors.Errorf("password must be at most %d characters long", h.policy.MaxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case strings.ContainsRune(specialCharacters, r):
			hasSpecial = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		return errors.New("password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !hasNumber {
		return errors.New("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		return errors.New("password must contain at least one special character")
	}

	lowered := strings.ToLower(password)
	for _, word := range strings.Split(forbiddenWordsInPolicy, ",") {
		if strings.Contains(lowered, word) {
			return errors.New("password contains forbidden words")
		}
	}

	return nil
}
