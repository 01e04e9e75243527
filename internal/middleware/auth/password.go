package auth

import "golang.org/x/crypto/bcrypt"

// Hashpassword hashes a plaintext password with bcrypt at the default cost.
// Bcrypt salts internally, so two equal passwords never share a hash.
func Hashpassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword compares a stored bcrypt hash against a plaintext candidate.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}
