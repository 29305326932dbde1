package dto

import "github.com/spec-kit/internlink/internal/domain"

// ProfileRequest payload for saving a candidate profile. Any client-supplied
// id is ignored; the profile is keyed by the authenticated user.
type ProfileRequest struct {
	Gender     string         `json:"gender"`
	City       string         `json:"city"`
	State      string         `json:"state"`
	Category   string         `json:"category"`
	Skills     []string       `json:"skills"`
	Education  *EducationDTO  `json:"education"`
	Preference *PreferenceDTO `json:"preferences"`
}

// ProfileResponse is the wire shape of a candidate profile.
type ProfileResponse struct {
	ID         int64          `json:"id"`
	Gender     string         `json:"gender"`
	City       string         `json:"city"`
	State      string         `json:"state"`
	Category   string         `json:"category"`
	Skills     []string       `json:"skills"`
	Education  *EducationDTO  `json:"education,omitempty"`
	Preference *PreferenceDTO `json:"preferences,omitempty"`
}

// EducationDTO mirrors the education sub-record.
type EducationDTO struct {
	Level          string `json:"level"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduationYear"`
}

// PreferenceDTO mirrors the preference sub-record.
type PreferenceDTO struct {
	PreferredDomain    string `json:"preferredDomain"`
	PreferredLocation  string `json:"preferredLocation"`
	InternshipDuration string `json:"internshipDuration"`
	ExpectedStipend    string `json:"expectedStipend"`
}

// ToDomain converts the request into a domain profile.
func (r ProfileRequest) ToDomain() *domain.CandidateProfile {
	profile := &domain.CandidateProfile{
		Gender:   r.Gender,
		City:     r.City,
		State:    r.State,
		Category: r.Category,
	}
	for _, name := range r.Skills {
		profile.Skills = append(profile.Skills, domain.Skill{Name: name})
	}
	if r.Education != nil {
		profile.Education = &domain.Education{
			Level:          r.Education.Level,
			Institution:    r.Education.Institution,
			GraduationYear: r.Education.GraduationYear,
		}
	}
	if r.Preference != nil {
		profile.Preference = &domain.Preference{
			PreferredDomain:    r.Preference.PreferredDomain,
			PreferredLocation:  r.Preference.PreferredLocation,
			InternshipDuration: r.Preference.InternshipDuration,
			ExpectedStipend:    r.Preference.ExpectedStipend,
		}
	}
	return profile
}

// NewProfileResponse converts a domain profile into its wire shape.
func NewProfileResponse(profile *domain.CandidateProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:       profile.ID,
		Gender:   profile.Gender,
		City:     profile.City,
		State:    profile.State,
		Category: profile.Category,
		Skills:   make([]string, 0, len(profile.Skills)),
	}
	for _, skill := range profile.Skills {
		resp.Skills = append(resp.Skills, skill.Name)
	}
	if profile.Education != nil {
		resp.Education = &EducationDTO{
			Level:          profile.Education.Level,
			Institution:    profile.Education.Institution,
			GraduationYear: profile.Education.GraduationYear,
		}
	}
	if profile.Preference != nil {
		resp.Preference = &PreferenceDTO{
			PreferredDomain:    profile.Preference.PreferredDomain,
			PreferredLocation:  profile.Preference.PreferredLocation,
			InternshipDuration: profile.Preference.InternshipDuration,
			ExpectedStipend:    profile.Preference.ExpectedStipend,
		}
	}
	return resp
}
