package memory

import (
	"context"
	"crypto/subtle"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()
	return s.userByEmailLocked(email)
}

func (s *Store) userByEmailLocked(email string) (*domain.User, error) {
	id, ok := s.emails[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u, _ := s.users.get(id)
	return &u, nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	s.users.mu.RLock()
	defer s.users.mu.RUnlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	// bcrypt is slow; hash before taking the lock.
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	if _, taken := s.emails[in.Email]; taken {
		return nil, domain.ErrDuplicateEmail
	}

	u := domain.User{
		ID:        s.newID(),
		Email:     in.Email,
		FullName:  in.FullName,
		Phone:     in.Phone,
		Password:  hash,
		CreatedAt: s.now(),
	}
	s.users.put(u.ID, u)
	s.emails[u.Email] = u.ID
	return &u, nil
}

func (s *Store) UpdateUser(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	if patch.Email != nil && *patch.Email != u.Email {
		if _, taken := s.emails[*patch.Email]; taken {
			return nil, domain.ErrDuplicateEmail
		}
		delete(s.emails, u.Email)
		u.Email = *patch.Email
		s.emails[u.Email] = u.ID
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		phone := *patch.Phone
		u.Phone = &phone
	}

	s.users.put(u.ID, u)
	return &u, nil
}

func (s *Store) ValidateUser(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		s.hasher.VerifyMissing(password)
		return nil, domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, u.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *Store) UpdateUserPassword(_ context.Context, email, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	u, err := s.userByEmailLocked(email)
	if err != nil {
		return err
	}
	u.Password = hash
	s.users.put(u.ID, *u)
	return nil
}

func (s *Store) StorePasswordResetOTP(_ context.Context, email, code string) error {
	s.otpMu.Lock()
	defer s.otpMu.Unlock()

	s.otps[email] = domain.PasswordResetOTP{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(s.otpTTL),
	}
	return nil
}

func (s *Store) VerifyPasswordResetOTP(_ context.Context, email, code string) (bool, error) {
	s.otpMu.Lock()
	defer s.otpMu.Unlock()

	stored, ok := s.otps[email]
	if !ok {
		return false, nil
	}
	// Expiry is checked before the code so a stale entry never verifies.
	if stored.Expired(s.now()) {
		delete(s.otps, email)
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) == 1, nil
}

func (s *Store) ClearPasswordResetOTP(_ context.Context, email string) error {
	s.otpMu.Lock()
	defer s.otpMu.Unlock()

	delete(s.otps, email)
	return nil
}

// PurgeExpiredPasswordResetOTPs drops abandoned codes so the map does not grow without bound.
func (s *Store) PurgeExpiredPasswordResetOTPs(_ context.Context) (int, error) {
	s.otpMu.Lock()
	defer s.otpMu.Unlock()

	now := s.now()
	purged := 0
	for email, otp := range s.otps {
		if otp.Expired(now) {
			delete(s.otps, email)
			purged++
		}
	}
	return purged, nil
}
