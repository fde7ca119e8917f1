package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

func intp(v int) *int { return &v }

func TestNewJobBuild_DefaultsActive(t *testing.T) {
	j := domain.NewJob{ExperienceLevel: domain.ExperienceFresher}.Build()
	if !j.IsActive {
		t.Error("job should default to active")
	}

	inactive := false
	j = domain.NewJob{ExperienceLevel: domain.ExperienceFresher, IsActive: &inactive}.Build()
	if j.IsActive {
		t.Error("explicit IsActive=false was ignored")
	}
}

func TestNewJobBuild_DoesNotAliasInput(t *testing.T) {
	lo := intp(1)
	j := domain.NewJob{ExperienceLevel: domain.ExperienceFresher, ExperienceMin: lo}.Build()
	*lo = 9
	if *j.ExperienceMin != 1 {
		t.Errorf("ExperienceMin = %d, want 1", *j.ExperienceMin)
	}
}

func TestJobPatchApply_OnlyTouchesSetFields(t *testing.T) {
	closing := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	j := domain.Job{
		ID: "j1", CompanyID: "c1", Title: "Dev", Location: "Pune",
		ExperienceLevel: domain.ExperienceFresher, ClosingDate: closing, IsActive: true,
	}

	title := "Senior Dev"
	level := domain.ExperienceExperienced
	got := domain.JobPatch{Title: &title, ExperienceLevel: &level}.Apply(j)

	if got.Title != "Senior Dev" || got.ExperienceLevel != domain.ExperienceExperienced {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.ID != "j1" || got.CompanyID != "c1" || got.Location != "Pune" || !got.IsActive || !got.ClosingDate.Equal(closing) {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if j.Title != "Dev" {
		t.Error("Apply mutated its input")
	}
}

func TestJobValidate(t *testing.T) {
	tests := []struct {
		name    string
		job     domain.Job
		wantErr bool
	}{
		{"fresher", domain.Job{ExperienceLevel: domain.ExperienceFresher}, false},
		{"experienced with range", domain.Job{ExperienceLevel: domain.ExperienceExperienced, ExperienceMin: intp(2), ExperienceMax: intp(5)}, false},
		{"equal bounds", domain.Job{ExperienceLevel: domain.ExperienceExperienced, ExperienceMin: intp(3), ExperienceMax: intp(3)}, false},
		{"only min", domain.Job{ExperienceLevel: domain.ExperienceExperienced, ExperienceMin: intp(7)}, false},
		{"unknown level", domain.Job{ExperienceLevel: "senior"}, true},
		{"empty level", domain.Job{}, true},
		{"min above max", domain.Job{ExperienceLevel: domain.ExperienceExperienced, ExperienceMin: intp(5), ExperienceMax: intp(2)}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.job.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidJob) {
				t.Errorf("error %v does not wrap ErrInvalidJob", err)
			}
		})
	}
}

func TestPasswordResetOTPExpired(t *testing.T) {
	exp := time.Date(2025, 1, 1, 12, 5, 0, 0, time.UTC)
	otp := domain.PasswordResetOTP{ExpiresAt: exp}
	if otp.Expired(exp) {
		t.Error("code should still be valid at its expiry instant")
	}
	if !otp.Expired(exp.Add(time.Nanosecond)) {
		t.Error("code should be expired after its expiry instant")
	}
}
