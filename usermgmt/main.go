package usermgmt

import (
	"errors"
	"sync"

	"github.com/cindyhont/jobly-backend/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	mu         sync.RWMutex
	secretKey  = []byte("secret-dev")
	workFactor = bcrypt.DefaultCost
)

// Setup sets the token signing key and the bcrypt cost used by this package.
func Setup(cfg *config.Config) {
	mu.Lock()
	defer mu.Unlock()
	secretKey = []byte(cfg.SecretKey)
	workFactor = cfg.BcryptWorkFactor
}

func GeneratePassword(password string) (string, error) {
	mu.RLock()
	cost := workFactor
	mu.RUnlock()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches hash. A mismatch is not an error.
func ComparePassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
