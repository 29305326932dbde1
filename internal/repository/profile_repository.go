package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/internlink/internal/domain"
)

// ProfileRepository defines persistence access for candidate profiles and
// their sub-records (skills, education, preference).
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error)
	Save(ctx context.Context, profile *domain.CandidateProfile) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	const query = `
        SELECT candidate_id, user_id, gender, city, state, category, created_at, updated_at
        FROM candidate_profiles WHERE user_id=$1`

	var profile domain.CandidateProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Gender,
		&profile.City,
		&profile.State,
		&profile.Category,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := r.loadSkills(ctx, &profile); err != nil {
		return nil, err
	}
	if err := r.loadEducation(ctx, &profile); err != nil {
		return nil, err
	}
	if err := r.loadPreference(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save upserts the profile row and replaces its sub-records in one
// transaction. Inserts when ID is zero, updates otherwise.
func (r *profileRepository) Save(ctx context.Context, profile *domain.CandidateProfile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if profile.ID == 0 {
		const insert = `
            INSERT INTO candidate_profiles (user_id, gender, city, state, category)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING candidate_id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insert,
			profile.UserID,
			profile.Gender,
			profile.City,
			profile.State,
			profile.Category,
		).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
			return err
		}
	} else {
		const update = `
            UPDATE candidate_profiles
            SET gender=$1, city=$2, state=$3, category=$4, updated_at=NOW()
            WHERE candidate_id=$5 AND user_id=$6`
		cmd, err := tx.Exec(ctx, update,
			profile.Gender,
			profile.City,
			profile.State,
			profile.Category,
			profile.ID,
			profile.UserID,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id=$1`, profile.ID); err != nil {
		return err
	}
	for i := range profile.Skills {
		skill := &profile.Skills[i]
		skill.ProfileID = profile.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO candidate_skills (candidate_id, skill_name) VALUES ($1, $2) RETURNING skill_id`,
			profile.ID, skill.Name,
		).Scan(&skill.ID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_education WHERE candidate_id=$1`, profile.ID); err != nil {
		return err
	}
	if profile.Education != nil {
		profile.Education.ProfileID = profile.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO candidate_education (candidate_id, level, institution, graduation_year)
             VALUES ($1, $2, $3, $4) RETURNING education_id`,
			profile.ID,
			profile.Education.Level,
			profile.Education.Institution,
			profile.Education.GraduationYear,
		).Scan(&profile.Education.ID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_preferences WHERE candidate_id=$1`, profile.ID); err != nil {
		return err
	}
	if profile.Preference != nil {
		profile.Preference.ProfileID = profile.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO candidate_preferences (candidate_id, preferred_domain, preferred_location, internship_duration, expected_stipend)
             VALUES ($1, $2, $3, $4, $5) RETURNING preference_id`,
			profile.ID,
			profile.Preference.PreferredDomain,
			profile.Preference.PreferredLocation,
			profile.Preference.InternshipDuration,
			profile.Preference.ExpectedStipend,
		).Scan(&profile.Preference.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *profileRepository) loadSkills(ctx context.Context, profile *domain.CandidateProfile) error {
	const query = `
        SELECT skill_id, candidate_id, skill_name
        FROM candidate_skills WHERE candidate_id=$1 ORDER BY skill_id`

	rows, err := r.pool.Query(ctx, query, profile.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.ProfileID, &skill.Name); err != nil {
			return err
		}
		profile.Skills = append(profile.Skills, skill)
	}
	return rows.Err()
}

func (r *profileRepository) loadEducation(ctx context.Context, profile *domain.CandidateProfile) error {
	const query = `
        SELECT education_id, candidate_id, level, institution, graduation_year
        FROM candidate_education WHERE candidate_id=$1`

	var edu domain.Education
	err := r.pool.QueryRow(ctx, query, profile.ID).Scan(
		&edu.ID,
		&edu.ProfileID,
		&edu.Level,
		&edu.Institution,
		&edu.GraduationYear,
	)
	if err == pgx.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	profile.Education = &edu
	return nil
}

func (r *profileRepository) loadPreference(ctx context.Context, profile *domain.CandidateProfile) error {
	const query = `
        SELECT preference_id, candidate_id, preferred_domain, preferred_location, internship_duration, expected_stipend
        FROM candidate_preferences WHERE candidate_id=$1`

	var pref domain.Preference
	err := r.pool.QueryRow(ctx, query, profile.ID).Scan(
		&pref.ID,
		&pref.ProfileID,
		&pref.PreferredDomain,
		&pref.PreferredLocation,
		&pref.InternshipDuration,
		&pref.ExpectedStipend,
	)
	if err == pgx.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	profile.Preference = &pref
	return nil
}
