package usecases

import (
	"regexp"
	"time"
)

// Role labels offered by the registration form. "Other" allows free-form
// text, so the service only presence-checks the role field.
var DeveloperRoles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Mobile Developer",
	"DevOps Engineer",
	"Data Scientist",
	"UI/UX Designer",
	"AI/ML Engineer",
	"Cloud Architect",
	"Other",
}

// Experience buckets offered by the registration form
var ExperienceLevels = []string{
	"0-1 years",
	"1-3 years",
	"3-5 years",
	"5-10 years",
	"10+ years",
}

// emailPattern accepts the local@domain.tld shape without attempting full
// RFC 5322 validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RecentWindow is the lookback used for the dashboard's "this week" stat
const RecentWindow = 7 * 24 * time.Hour
