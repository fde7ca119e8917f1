package password

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor the portal has always used.
const DefaultCost = bcrypt.DefaultCost

// Hasher produces and checks bcrypt password hashes.
type Hasher struct {
	cost int

	// dummy is compared against when no stored hash exists, so a lookup miss costs
	// the same as a wrong password.
	dummyOnce sync.Once
	dummy     []byte
}

// NewHasher returns a Hasher with the given bcrypt cost. Out-of-range costs fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash fails with domain.ErrInvalidPassword for input beyond bcrypt's 72-byte limit.
func (h *Hasher) Hash(plain string) (string, error) {
	sum, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ErrInvalidPassword
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(sum), nil
}

// Verify reports whether plain matches hash. Malformed hashes report false.
func (h *Hasher) Verify(plain, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// VerifyMissing burns one comparison for an account that does not exist.
func (h *Hasher) VerifyMissing(plain string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
}
