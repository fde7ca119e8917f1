package repository

// Storage is the full capability set a backend must provide. Use cases depend on the
// narrower interfaces so a backend can be swapped (or an OTP store overridden) without
// touching callers.
type Storage interface {
	UserRepository
	PasswordResetStore
	CompanyRepository
	JobRepository
	ApplicationRepository
	CourseRepository
	ContactRepository
}
