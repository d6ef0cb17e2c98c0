package tenancy

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything after 72 bytes
	maxPasswordLength = 72

	apiKeyPrefix = "shk_"
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// dummyHash is compared against when no user matches, so a login for an
// unknown address costs as much as one with a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("studiohub-dummy-password"), bcrypt.DefaultCost) //nolint: gochecknoglobals

func checkPassword(hash, password string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))

		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func randomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return hex.EncodeToString(b)
}

// hashToken digests a high-entropy token for storage. Unlike passwords these
// tokens are looked up by hash, so the digest must be deterministic.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
