package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/password"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestStorage connects to TEST_DATABASE_URL and applies the schema.
// Tests that use it are skipped when the variable is unset.
func newTestStorage(t *testing.T, otpTTL time.Duration) *Storage {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, Migrate(ctx, pool))

	return NewStorage(pool, password.NewHasher(bcrypt.MinCost), otpTTL)
}

func uniqueEmail() string {
	return uuid.NewString() + "@example.com"
}

func TestOTPRepository_StoreOverwritesPreviousCode(t *testing.T) {
	s := newTestStorage(t, 5*time.Minute)
	ctx := context.Background()
	email := uniqueEmail()

	require.NoError(t, s.StorePasswordResetOTP(ctx, email, "111111"))
	require.NoError(t, s.StorePasswordResetOTP(ctx, email, "222222"))

	ok, err := s.VerifyPasswordResetOTP(ctx, email, "111111")
	require.NoError(t, err)
	assert.False(t, ok, "replaced code must not verify")

	ok, err = s.VerifyPasswordResetOTP(ctx, email, "222222")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.ClearPasswordResetOTP(ctx, email))
	ok, err = s.VerifyPasswordResetOTP(ctx, email, "222222")
	require.NoError(t, err)
	assert.False(t, ok, "cleared code must not verify")
}

func TestOTPRepository_ExpiredCodeIsRejectedAndDropped(t *testing.T) {
	// A negative ttl stores a code that is already past its expiry by the database clock.
	s := newTestStorage(t, -time.Minute)
	ctx := context.Background()
	email := uniqueEmail()

	require.NoError(t, s.StorePasswordResetOTP(ctx, email, "333333"))

	ok, err := s.VerifyPasswordResetOTP(ctx, email, "333333")
	require.NoError(t, err)
	assert.False(t, ok)

	var rows int
	require.NoError(t, s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM password_reset_otps WHERE email = $1`, email).Scan(&rows))
	assert.Zero(t, rows, "expired code should be deleted on verify")
}

func TestOTPRepository_PurgeRemovesOnlyExpired(t *testing.T) {
	expired := newTestStorage(t, -time.Minute)
	live := NewOTPRepository(expired.pool, 5*time.Minute)
	ctx := context.Background()
	oldEmail, newEmail := uniqueEmail(), uniqueEmail()

	require.NoError(t, expired.StorePasswordResetOTP(ctx, oldEmail, "444444"))
	require.NoError(t, live.StorePasswordResetOTP(ctx, newEmail, "555555"))

	n, err := expired.PurgeExpiredPasswordResetOTPs(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)

	ok, err := live.VerifyPasswordResetOTP(ctx, newEmail, "555555")
	require.NoError(t, err)
	assert.True(t, ok, "live code must survive a purge")
	require.NoError(t, live.ClearPasswordResetOTP(ctx, newEmail))
}

func createTestJob(t *testing.T, s *Storage) *domain.Job {
	t.Helper()
	ctx := context.Background()
	company, err := s.CreateCompany(ctx, domain.NewCompany{Name: "Acme " + uuid.NewString()})
	require.NoError(t, err)

	job, err := s.CreateJob(ctx, domain.NewJob{
		CompanyID:       company.ID,
		Title:           "Backend Engineer",
		Description:     "Build APIs",
		Requirements:    "Go",
		Qualifications:  "B.Tech",
		Skills:          "Go, SQL",
		ExperienceLevel: domain.ExperienceFresher,
		Location:        "Remote",
		JobType:         "Full-time",
		ClosingDate:     time.Now().Add(30 * 24 * time.Hour).UTC(),
	})
	require.NoError(t, err)
	return job
}

func TestCreateApplication_MapsForeignKeyViolations(t *testing.T) {
	s := newTestStorage(t, 5*time.Minute)
	ctx := context.Background()
	job := createTestJob(t, s)

	user, err := s.CreateUser(ctx, domain.NewUser{Email: uniqueEmail(), FullName: "Applicant", Password: "secret123"})
	require.NoError(t, err)

	_, err = s.CreateApplication(ctx, domain.NewApplication{UserID: uuid.NewString(), JobID: job.ID})
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = s.CreateApplication(ctx, domain.NewApplication{UserID: user.ID, JobID: uuid.NewString()})
	require.ErrorIs(t, err, domain.ErrJobNotFound)

	app, err := s.CreateApplication(ctx, domain.NewApplication{UserID: user.ID, JobID: job.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationSubmitted, app.Status)
}

func TestUpdateJob_ConcurrentPatchesBothApply(t *testing.T) {
	s := newTestStorage(t, 5*time.Minute)
	ctx := context.Background()
	job := createTestJob(t, s)

	title := "Senior Backend Engineer"
	inactive := false

	var wg sync.WaitGroup
	for _, patch := range []domain.JobPatch{{Title: &title}, {IsActive: &inactive}} {
		wg.Add(1)
		go func(p domain.JobPatch) {
			defer wg.Done()
			_, err := s.UpdateJob(ctx, job.ID, p)
			assert.NoError(t, err)
		}(patch)
	}
	wg.Wait()

	got, err := s.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
	assert.False(t, got.IsActive)
	assert.Equal(t, job.Skills, got.Skills, "unpatched fields are kept")
}

func TestUpdateJob_UnknownID(t *testing.T) {
	s := newTestStorage(t, 5*time.Minute)
	title := "x"
	_, err := s.UpdateJob(context.Background(), uuid.NewString(), domain.JobPatch{Title: &title})
	require.ErrorIs(t, err, domain.ErrJobNotFound)
}
