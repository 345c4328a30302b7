package db

import (
	"context"
	"fmt"
)

// schemaStatements create the interview tables. Statements are
// idempotent so EnsureSchema can run at every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS interviews (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email_hash TEXT NOT NULL,
		overall_rating TEXT NOT NULL,
		tech_stack TEXT NOT NULL,
		experience_years TEXT NOT NULL,
		position TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'completed',
		interview_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS candidate_info (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		interview_id UUID NOT NULL REFERENCES interviews(id) ON DELETE CASCADE,
		encrypted_name TEXT NOT NULL,
		encrypted_email TEXT NOT NULL,
		encrypted_phone TEXT NOT NULL,
		encrypted_location TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS questions_answers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		interview_id UUID NOT NULL REFERENCES interviews(id) ON DELETE CASCADE,
		question_number INT NOT NULL,
		question_text TEXT NOT NULL,
		encrypted_answer TEXT NOT NULL,
		technology TEXT NOT NULL DEFAULT 'general',
		asked_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_ratings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		interview_id UUID NOT NULL REFERENCES interviews(id) ON DELETE CASCADE,
		skill_name TEXT NOT NULL,
		score INT NOT NULL,
		max_score INT NOT NULL DEFAULT 5,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_email_hash ON interviews(email_hash)`,
	`CREATE INDEX IF NOT EXISTS idx_qa_interview ON questions_answers(interview_id)`,
}

// EnsureSchema creates the interview tables when they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
