package auth

import (
	"testing"

	"abacus/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "correct horse battery staple"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong guess", hash))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("anything", ""))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("some password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
	hasher := NewBcryptHasher(cfg)

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid password", password: "Str0ng&Safe", wantErr: ""},
		{name: "too short", password: "S0r!a", wantErr: "at least 8 characters"},
		{name: "missing uppercase", password: "weak0ne!pass", wantErr: "uppercase letter"},
		{name: "missing lowercase", password: "WEAK0NE!PASS", wantErr: "lowercase letter"},
		{name: "missing number", password: "NoDigits!Here", wantErr: "at least one number"},
		{name: "missing special", password: "NoSpecial0Here", wantErr: "special character"},
		{name: "forbidden word", password: "MyPassword1!", wantErr: "forbidden words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBcryptHasher_RelaxedPolicy(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// The default policy only enforces length bounds.
	assert.NoError(t, hasher.ValidatePasswordStrength("justletters"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}
