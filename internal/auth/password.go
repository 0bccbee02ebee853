package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a one-way salted hash from a plaintext password.
// The plaintext is never persisted or logged.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash. bcrypt
// performs the comparison in constant time.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
