package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/email"
	"github.com/ErlanBelekov/job-portal/internal/infrastructure/memory"
	"github.com/ErlanBelekov/job-portal/internal/password"
	"github.com/ErlanBelekov/job-portal/internal/usecase"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ---- fakes ----

type fakeUserRepo struct {
	getUserByEmail     func(ctx context.Context, email string) (*domain.User, error)
	getUserByID        func(ctx context.Context, id string) (*domain.User, error)
	createUser         func(ctx context.Context, in domain.NewUser) (*domain.User, error)
	updateUser         func(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	validateUser       func(ctx context.Context, email, password string) (*domain.User, error)
	updateUserPassword func(ctx context.Context, email, newPassword string) error
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserByEmail(ctx, email)
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getUserByID(ctx, id)
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	return r.createUser(ctx, in)
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return r.updateUser(ctx, id, patch)
}

func (r *fakeUserRepo) ValidateUser(ctx context.Context, email, password string) (*domain.User, error) {
	return r.validateUser(ctx, email, password)
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, email, newPassword string) error {
	return r.updateUserPassword(ctx, email, newPassword)
}

type fakeOTPStore struct {
	store  func(ctx context.Context, email, code string) error
	verify func(ctx context.Context, email, code string) (bool, error)
	clear  func(ctx context.Context, email string) error
}

func (s *fakeOTPStore) StorePasswordResetOTP(ctx context.Context, email, code string) error {
	return s.store(ctx, email, code)
}

func (s *fakeOTPStore) VerifyPasswordResetOTP(ctx context.Context, email, code string) (bool, error) {
	return s.verify(ctx, email, code)
}

func (s *fakeOTPStore) ClearPasswordResetOTP(ctx context.Context, email string) error {
	return s.clear(ctx, email)
}

type fakeEmailSender struct {
	send func(ctx context.Context, msg email.Message) error
}

func (s *fakeEmailSender) Send(ctx context.Context, msg email.Message) error {
	return s.send(ctx, msg)
}

// ---- helpers ----

const testJWTKey = "test-jwt-secret-at-least-32-chars!!"

func newUsecase(repo *fakeUserRepo, otps *fakeOTPStore, sender *fakeEmailSender) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(repo, otps, sender, []byte(testJWTKey), 5*time.Minute)
}

var testUser = &domain.User{ID: "user-1", Email: "test@example.com", FullName: "Test User"}

var codePattern = regexp.MustCompile(`<strong>(\d{6})</strong>`)

func parseClaims(t *testing.T, signed string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method")
		}
		return []byte(testJWTKey), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("returned JWT is invalid: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("could not cast claims")
	}
	return claims
}

// ---- Register / Login ----

func TestRegister_ReturnsSignedJWT(t *testing.T) {
	var captured domain.NewUser
	repo := &fakeUserRepo{
		createUser: func(_ context.Context, in domain.NewUser) (*domain.User, error) {
			captured = in
			return testUser, nil
		},
	}

	session, err := newUsecase(repo, &fakeOTPStore{}, &fakeEmailSender{}).Register(context.Background(), usecase.RegisterInput{
		Email: testUser.Email, FullName: testUser.FullName, Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Email != testUser.Email || captured.Password != "secret123" {
		t.Errorf("repo got %+v", captured)
	}

	claims := parseClaims(t, session.Token)
	if claims["sub"] != testUser.ID {
		t.Errorf("sub = %v, want %q", claims["sub"], testUser.ID)
	}
	if claims["email"] != testUser.Email {
		t.Errorf("email = %v, want %q", claims["email"], testUser.Email)
	}
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if got := time.Duration(exp-iat) * time.Second; got != 24*time.Hour {
		t.Errorf("token lifetime = %v, want 24h", got)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{
		createUser: func(_ context.Context, _ domain.NewUser) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}

	_, err := newUsecase(repo, &fakeOTPStore{}, &fakeEmailSender{}).Register(context.Background(), usecase.RegisterInput{
		Email: testUser.Email, FullName: "x", Password: "secret123",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestRegister_RejectsBadPasswordLength(t *testing.T) {
	repo := &fakeUserRepo{
		createUser: func(_ context.Context, _ domain.NewUser) (*domain.User, error) {
			t.Fatal("CreateUser must not be called")
			return nil, nil
		},
	}
	uc := newUsecase(repo, &fakeOTPStore{}, &fakeEmailSender{})

	for _, pw := range []string{"", "12345", string(make([]byte, 73))} {
		_, err := uc.Register(context.Background(), usecase.RegisterInput{Email: "a@x.com", FullName: "A", Password: pw})
		if !errors.Is(err, domain.ErrInvalidPassword) {
			t.Errorf("password len %d: want ErrInvalidPassword, got %v", len(pw), err)
		}
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := &fakeUserRepo{
		validateUser: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	_, err := newUsecase(repo, &fakeOTPStore{}, &fakeEmailSender{}).Login(context.Background(), "a@x.com", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUserRepo{
		validateUser: func(_ context.Context, email, pw string) (*domain.User, error) {
			if email != testUser.Email || pw != "secret123" {
				return nil, domain.ErrInvalidCredentials
			}
			return testUser, nil
		},
	}

	session, err := newUsecase(repo, &fakeOTPStore{}, &fakeEmailSender{}).Login(context.Background(), testUser.Email, "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.ID != testUser.ID {
		t.Errorf("user = %q, want %q", session.User.ID, testUser.ID)
	}
	if parseClaims(t, session.Token)["sub"] != testUser.ID {
		t.Error("token subject does not match user")
	}
}

// ---- ForgotPassword ----

func TestForgotPassword_StoresAndEmailsSameCode(t *testing.T) {
	var storedCode, body string
	repo := &fakeUserRepo{
		getUserByEmail: func(_ context.Context, _ string) (*domain.User, error) { return testUser, nil },
	}
	otps := &fakeOTPStore{
		store: func(_ context.Context, _, code string) error {
			storedCode = code
			return nil
		},
	}
	sender := &fakeEmailSender{
		send: func(_ context.Context, msg email.Message) error {
			if msg.To != testUser.Email {
				t.Errorf("sent to %q", msg.To)
			}
			if !strings.Contains(msg.Text, "5 minutes") {
				t.Errorf("plain text %q does not state the expiry", msg.Text)
			}
			body = msg.HTML
			return nil
		},
	}

	if err := newUsecase(repo, otps, sender).ForgotPassword(context.Background(), testUser.Email); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := codePattern.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("email body %q has no six-digit code", body)
	}
	if m[1] != storedCode {
		t.Errorf("emailed code %q != stored code %q", m[1], storedCode)
	}
}

func TestForgotPassword_UnknownEmailSendsNothing(t *testing.T) {
	repo := &fakeUserRepo{
		getUserByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	otps := &fakeOTPStore{
		store: func(_ context.Context, _, _ string) error {
			t.Error("no code should be stored")
			return nil
		},
	}
	sender := &fakeEmailSender{
		send: func(_ context.Context, _ email.Message) error {
			t.Error("no email should be sent")
			return nil
		},
	}

	if err := newUsecase(repo, otps, sender).ForgotPassword(context.Background(), "ghost@x.com"); err != nil {
		t.Errorf("want nil, got %v", err)
	}
}

func TestForgotPassword_EmailError_Propagates(t *testing.T) {
	sendErr := errors.New("smtp unavailable")
	repo := &fakeUserRepo{
		getUserByEmail: func(_ context.Context, _ string) (*domain.User, error) { return testUser, nil },
	}
	otps := &fakeOTPStore{store: func(_ context.Context, _, _ string) error { return nil }}
	sender := &fakeEmailSender{
		send: func(_ context.Context, _ email.Message) error { return sendErr },
	}

	err := newUsecase(repo, otps, sender).ForgotPassword(context.Background(), testUser.Email)
	if !errors.Is(err, sendErr) {
		t.Errorf("want wrapped sendErr, got %v", err)
	}
}

func TestForgotPassword_RepoError_Propagates(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &fakeUserRepo{
		getUserByEmail: func(_ context.Context, _ string) (*domain.User, error) { return nil, repoErr },
	}

	err := newUsecase(repo, &fakeOTPStore{}, &fakeEmailSender{}).ForgotPassword(context.Background(), testUser.Email)
	if !errors.Is(err, repoErr) {
		t.Errorf("want wrapped repoErr, got %v", err)
	}
}

// ---- ResetPassword ----

func TestResetPassword_WrongCodeLeavesPassword(t *testing.T) {
	repo := &fakeUserRepo{
		updateUserPassword: func(_ context.Context, _, _ string) error {
			t.Error("password must not change")
			return nil
		},
	}
	otps := &fakeOTPStore{
		verify: func(_ context.Context, _, _ string) (bool, error) { return false, nil },
	}

	err := newUsecase(repo, otps, &fakeEmailSender{}).ResetPassword(context.Background(), testUser.Email, "000000", "newpass1")
	if !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("want ErrOTPInvalid, got %v", err)
	}
}

func TestResetPassword_UpdatesThenClears(t *testing.T) {
	var steps []string
	repo := &fakeUserRepo{
		updateUserPassword: func(_ context.Context, email, pw string) error {
			steps = append(steps, "update:"+email+":"+pw)
			return nil
		},
	}
	otps := &fakeOTPStore{
		verify: func(_ context.Context, _, code string) (bool, error) { return code == "123456", nil },
		clear: func(_ context.Context, email string) error {
			steps = append(steps, "clear:"+email)
			return nil
		},
	}

	if err := newUsecase(repo, otps, &fakeEmailSender{}).ResetPassword(context.Background(), "a@x.com", "123456", "newpass1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"update:a@x.com:newpass1", "clear:a@x.com"}
	if fmt.Sprint(steps) != fmt.Sprint(want) {
		t.Errorf("steps = %v, want %v", steps, want)
	}
}

// ---- end to end against the in-memory store ----

func TestPasswordResetFlow_MemoryStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New(password.NewHasher(bcrypt.MinCost))

	var body string
	sender := &fakeEmailSender{
		send: func(_ context.Context, msg email.Message) error {
			body = msg.HTML
			return nil
		},
	}
	uc := usecase.NewAuthUsecase(store, store, sender, []byte(testJWTKey), 5*time.Minute)

	if _, err := uc.Register(ctx, usecase.RegisterInput{Email: "a@x.com", FullName: "A", Password: "oldpass1"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := uc.ForgotPassword(ctx, "a@x.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}
	m := codePattern.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("no code in %q", body)
	}

	if err := uc.ResetPassword(ctx, "a@x.com", m[1], "newpass1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := uc.Login(ctx, "a@x.com", "oldpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("old password still works: %v", err)
	}
	if _, err := uc.Login(ctx, "a@x.com", "newpass1"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// The code is single-use.
	if err := uc.ResetPassword(ctx, "a@x.com", m[1], "another1"); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("reused code: want ErrOTPInvalid, got %v", err)
	}
}
