package domain

import "time"

// CandidateProfile is the one-to-one extension of a candidate user.
// At most one profile exists per user; it is created lazily on first fetch.
type CandidateProfile struct {
	ID         int64
	UserID     int64
	Gender     string
	City       string
	State      string
	Category   string
	Skills     []Skill
	Education  *Education
	Preference *Preference
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Skill is a named skill attached to a candidate profile.
type Skill struct {
	ID        int64
	ProfileID int64
	Name      string
}

// Education records the candidate's highest qualification.
type Education struct {
	ID             int64
	ProfileID      int64
	Level          string
	Institution    string
	GraduationYear string
}

// Preference holds the candidate's internship preferences.
type Preference struct {
	ID                 int64
	ProfileID          int64
	PreferredDomain    string
	PreferredLocation  string
	InternshipDuration string
	ExpectedStipend    string
}
