package handler

const (
	errInternalServer      = "Internal server error"
	errUnauthorized        = "Unauthorized"
	errInvalidCredentials  = "Invalid email or password"
	errDuplicateEmail      = "User already exists with this email"
	errInvalidPassword     = "Password must be between 6 and 72 characters"
	errOTPInvalid          = "Invalid or expired reset code"
	errUserNotFound        = "User not found"
	errCompanyNotFound     = "Company not found"
	errUnknownCompany      = "Company does not exist"
	errJobNotFound         = "Job not found"
	errInvalidJob          = "Invalid job"
	errCourseNotFound      = "Course not found"
	errApplicationNotFound = "Application not found"
)
