// Package memory is the map-backed storage used when no database is configured.
// Every collection has its own RWMutex; when more than one is held they are taken in the
// order companies, jobs, applications.
package memory

import (
	"sync"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/password"
	"github.com/ErlanBelekov/job-portal/internal/repository"
	"github.com/ErlanBelekov/job-portal/internal/seed"
	"github.com/google/uuid"
)

const DefaultOTPTTL = 5 * time.Minute

var (
	_ repository.Storage   = (*Store)(nil)
	_ repository.OTPPurger = (*Store)(nil)
)

type Store struct {
	hasher *password.Hasher
	otpTTL time.Duration
	now    func() time.Time
	newID  func() string

	users        *table[domain.User]
	emails       map[string]string // email -> user id, guarded by users.mu
	companies    *table[domain.Company]
	jobs         *table[domain.Job]
	courses      *table[domain.Course]
	applications *table[domain.Application]
	contacts     *table[domain.Contact]

	otpMu sync.Mutex
	otps  map[string]domain.PasswordResetOTP
}

type Option func(*Store)

// WithOTPTTL sets how long a password-reset code stays valid.
func WithOTPTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.otpTTL = ttl
		}
	}
}

// WithClock replaces time.Now. Tests use it to step past OTP expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed loads a sample catalog once, at construction.
func WithSeed(data seed.Data) Option {
	return func(s *Store) { s.load(data) }
}

func New(hasher *password.Hasher, opts ...Option) *Store {
	s := &Store{
		hasher:       hasher,
		otpTTL:       DefaultOTPTTL,
		now:          time.Now,
		newID:        uuid.NewString,
		users:        newTable(domain.User.Clone),
		emails:       make(map[string]string),
		companies:    newTable(domain.Company.Clone),
		jobs:         newTable(domain.Job.Clone),
		courses:      newTable(domain.Course.Clone),
		applications: newTable[domain.Application](nil),
		contacts:     newTable[domain.Contact](nil),
		otps:         make(map[string]domain.PasswordResetOTP),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) load(data seed.Data) {
	for _, c := range data.Companies {
		s.companies.put(c.ID, c)
	}
	for _, j := range data.Jobs {
		s.jobs.put(j.ID, j)
	}
	for _, c := range data.Courses {
		s.courses.put(c.ID, c)
	}
}

// table is an insertion-ordered map. Callers hold mu.
// Rows are copied with clone on the way in and on the way out, so no caller ever holds a
// pointer into a stored row. A nil clone is for types without pointer fields.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[string]T), clone: clone}
}

func (t *table[T]) put(id string, v T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.clone(v)
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		return v, false
	}
	return t.clone(v), true
}

func (t *table[T]) remove(id string) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// each visits rows in insertion order until fn returns false.
func (t *table[T]) each(fn func(T) bool) {
	for _, id := range t.order {
		if !fn(t.clone(t.rows[id])) {
			return
		}
	}
}

