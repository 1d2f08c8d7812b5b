package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Compare(hash, plain string) error
}

// BcryptPasswordVerifier is a PasswordVerifier backed by bcrypt.
type BcryptPasswordVerifier struct{}

// NewBcryptPasswordVerifier creates a new BcryptPasswordVerifier.
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// Compare compares a bcrypt hashed password with its possible plaintext
// equivalent. Returns nil on match.
func (v *BcryptPasswordVerifier) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// HashPassword hashes a plaintext password with the given bcrypt cost.
// Used by the hash helper tool and tests.
func HashPassword(plain string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
