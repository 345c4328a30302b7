// Package db provides PostgreSQL persistence for completed screening
// interviews. Sensitive candidate columns are encrypted before they
// leave the process; the rest of the system functions when the database
// is not configured.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-scout/internal/conversation"
	"github.com/jonathan/talent-scout/internal/interview"
	"github.com/jonathan/talent-scout/internal/secure"
)

// Store wraps a PostgreSQL connection pool and the field cipher.
type Store struct {
	pool   *pgxpool.Pool
	cipher secure.Cipher
	log    *zap.Logger
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string, cipher secure.Cipher, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &Store{pool: pool, cipher: cipher, log: log}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Available reports whether the store can accept writes.
func (s *Store) Available() bool {
	return s != nil && s.pool != nil
}

// SaveCompleteInterview persists one finished interview: the summary
// row, encrypted candidate info, the transcript, and per-skill scores.
// Child rows are written concurrently; the summary row is created first
// so they all reference a committed id.
func (s *Store) SaveCompleteInterview(ctx context.Context, record conversation.InterviewRecord) (string, error) {
	if !s.Available() {
		return "", fmt.Errorf("database not available")
	}

	interviewID, err := s.createInterviewRecord(ctx, record)
	if err != nil {
		return "", err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.saveCandidateInfo(gctx, interviewID, record.Profile) })
	g.Go(func() error { return s.saveQuestionsAnswers(gctx, interviewID, record.QAPairs) })
	g.Go(func() error { return s.saveRatings(gctx, interviewID, record.Scores) })
	if err := g.Wait(); err != nil {
		return "", err
	}

	s.log.Info("interview persisted", zap.String("interview_id", interviewID.String()))
	return interviewID.String(), nil
}

// createInterviewRecord inserts the summary row, keyed by a hash of the
// candidate's email so the address itself is never stored in clear.
func (s *Store) createInterviewRecord(ctx context.Context, record conversation.InterviewRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO interviews (email_hash, overall_rating, tech_stack, experience_years, position, status)
		 VALUES ($1, $2, $3, $4, $5, 'completed')
		 RETURNING id`,
		secure.HashEmail(record.Profile["email"]),
		record.Overall,
		record.Profile["tech_stack"],
		record.Profile["experience"],
		record.Profile["position"],
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create interview record: %w", err)
	}
	return id, nil
}

// saveCandidateInfo stores the sensitive profile fields encrypted.
func (s *Store) saveCandidateInfo(ctx context.Context, interviewID uuid.UUID, profile map[string]string) error {
	encrypted := make(map[string]string, 4)
	for _, key := range []string{"name", "email", "phone", "location"} {
		value, err := s.cipher.Encrypt(profile[key])
		if err != nil {
			return fmt.Errorf("failed to encrypt %s: %w", key, err)
		}
		encrypted[key] = value
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO candidate_info (interview_id, encrypted_name, encrypted_email, encrypted_phone, encrypted_location)
		 VALUES ($1, $2, $3, $4, $5)`,
		interviewID, encrypted["name"], encrypted["email"], encrypted["phone"], encrypted["location"],
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate info: %w", err)
	}
	return nil
}

// saveQuestionsAnswers stores the transcript. Questions are not
// sensitive; answers are encrypted.
func (s *Store) saveQuestionsAnswers(ctx context.Context, interviewID uuid.UUID, pairs []interview.QAPair) error {
	for i, pair := range pairs {
		encryptedAnswer, err := s.cipher.Encrypt(pair.Answer)
		if err != nil {
			return fmt.Errorf("failed to encrypt answer %d: %w", i+1, err)
		}
		technology := pair.Technology
		if technology == "" {
			technology = "general"
		}

		_, err = s.pool.Exec(ctx,
			`INSERT INTO questions_answers (interview_id, question_number, question_text, encrypted_answer, technology)
			 VALUES ($1, $2, $3, $4, $5)`,
			interviewID, i+1, pair.Question, encryptedAnswer, technology,
		)
		if err != nil {
			return fmt.Errorf("failed to save question %d: %w", i+1, err)
		}
	}
	return nil
}

// saveRatings stores the per-skill scores.
func (s *Store) saveRatings(ctx context.Context, interviewID uuid.UUID, scores map[string]int) error {
	for skill, score := range scores {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO skill_ratings (interview_id, skill_name, score, max_score)
			 VALUES ($1, $2, $3, 5)`,
			interviewID, skill, score,
		)
		if err != nil {
			return fmt.Errorf("failed to save rating for %s: %w", skill, err)
		}
	}
	return nil
}

// StoredInterview is a persisted interview read back with sensitive
// fields decrypted.
type StoredInterview struct {
	ID            uuid.UUID          `json:"id"`
	OverallRating string             `json:"overall_rating"`
	TechStack     string             `json:"tech_stack"`
	Experience    string             `json:"experience_years"`
	Position      string             `json:"position"`
	Candidate     map[string]string  `json:"candidate"`
	QAPairs       []interview.QAPair `json:"qa_pairs"`
	Ratings       map[string]int     `json:"ratings"`
}

// GetInterview retrieves and decrypts one interview by id. Returns nil
// without error when the id is unknown.
func (s *Store) GetInterview(ctx context.Context, id uuid.UUID) (*StoredInterview, error) {
	stored := &StoredInterview{ID: id}
	err := s.pool.QueryRow(ctx,
		`SELECT overall_rating, tech_stack, experience_years, position FROM interviews WHERE id = $1`,
		id,
	).Scan(&stored.OverallRating, &stored.TechStack, &stored.Experience, &stored.Position)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	if err := s.loadCandidateInfo(ctx, stored); err != nil {
		return nil, err
	}
	if err := s.loadQuestionsAnswers(ctx, stored); err != nil {
		return nil, err
	}
	if err := s.loadRatings(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *Store) loadCandidateInfo(ctx context.Context, stored *StoredInterview) error {
	var encName, encEmail, encPhone, encLocation string
	err := s.pool.QueryRow(ctx,
		`SELECT encrypted_name, encrypted_email, encrypted_phone, encrypted_location
		 FROM candidate_info WHERE interview_id = $1`,
		stored.ID,
	).Scan(&encName, &encEmail, &encPhone, &encLocation)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		return fmt.Errorf("failed to get candidate info: %w", err)
	}

	stored.Candidate = make(map[string]string, 4)
	for key, enc := range map[string]string{
		"name": encName, "email": encEmail, "phone": encPhone, "location": encLocation,
	} {
		plain, err := s.cipher.Decrypt(enc)
		if err != nil {
			return fmt.Errorf("failed to decrypt %s: %w", key, err)
		}
		stored.Candidate[key] = plain
	}
	return nil
}

func (s *Store) loadQuestionsAnswers(ctx context.Context, stored *StoredInterview) error {
	rows, err := s.pool.Query(ctx,
		`SELECT question_text, encrypted_answer, technology
		 FROM questions_answers WHERE interview_id = $1 ORDER BY question_number`,
		stored.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pair interview.QAPair
		var encryptedAnswer string
		if err := rows.Scan(&pair.Question, &encryptedAnswer, &pair.Technology); err != nil {
			return fmt.Errorf("failed to scan question row: %w", err)
		}
		pair.Answer, err = s.cipher.Decrypt(encryptedAnswer)
		if err != nil {
			return fmt.Errorf("failed to decrypt answer: %w", err)
		}
		stored.QAPairs = append(stored.QAPairs, pair)
	}
	return rows.Err()
}

func (s *Store) loadRatings(ctx context.Context, stored *StoredInterview) error {
	rows, err := s.pool.Query(ctx,
		`SELECT skill_name, score FROM skill_ratings WHERE interview_id = $1`,
		stored.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get ratings: %w", err)
	}
	defer rows.Close()

	stored.Ratings = make(map[string]int)
	for rows.Next() {
		var skill string
		var score int
		if err := rows.Scan(&skill, &score); err != nil {
			return fmt.Errorf("failed to scan rating row: %w", err)
		}
		stored.Ratings[skill] = score
	}
	return rows.Err()
}
