// Package config provides environment-driven configuration for the
// screening agent.
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"
)

// InterviewConfig controls the shape of the technical interview.
type InterviewConfig struct {
	// QuestionsPerTechnology is the quota of questions asked before the
	// interview advances to the next technology in the stack.
	QuestionsPerTechnology int
}

// NewInterviewConfig reads QUESTIONS_PER_TECHNOLOGY (default: 1).
func NewInterviewConfig() (*InterviewConfig, error) {
	quotaStr := os.Getenv("QUESTIONS_PER_TECHNOLOGY")
	if quotaStr == "" {
		quotaStr = "1" // default
	}

	quota, err := strconv.Atoi(quotaStr)
	if err != nil {
		return nil, fmt.Errorf("invalid QUESTIONS_PER_TECHNOLOGY: %v", err)
	}

	config := &InterviewConfig{QuestionsPerTechnology: quota}
	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize validates the configuration.
func (c *InterviewConfig) normalize() error {
	if c.QuestionsPerTechnology < 1 {
		return fmt.Errorf("QUESTIONS_PER_TECHNOLOGY must be at least 1, got: %d", c.QuestionsPerTechnology)
	}
	return nil
}

// SecurityConfig controls session expiry and field encryption.
type SecurityConfig struct {
	SessionTimeout time.Duration
	// EncryptionKey is the 32-byte field-encryption key. Nil selects the
	// base64 fallback encoding strategy.
	EncryptionKey []byte
}

// NewSecurityConfig reads SESSION_TIMEOUT_MINUTES (default: 30) and
// optionally FIELD_ENCRYPTION_KEY (base64, 32 bytes decoded).
func NewSecurityConfig() (*SecurityConfig, error) {
	timeoutStr := os.Getenv("SESSION_TIMEOUT_MINUTES")
	if timeoutStr == "" {
		timeoutStr = "30" // default
	}

	minutes, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TIMEOUT_MINUTES: %v", err)
	}

	config := &SecurityConfig{SessionTimeout: time.Duration(minutes) * time.Minute}

	if keyStr := os.Getenv("FIELD_ENCRYPTION_KEY"); keyStr != "" {
		key, err := base64.StdEncoding.DecodeString(keyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid FIELD_ENCRYPTION_KEY: %v", err)
		}
		config.EncryptionKey = key
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize validates the configuration.
func (c *SecurityConfig) normalize() error {
	if c.SessionTimeout < time.Minute {
		return fmt.Errorf("SESSION_TIMEOUT_MINUTES must be at least 1 minute, got: %s", c.SessionTimeout)
	}
	if c.EncryptionKey != nil && len(c.EncryptionKey) != 32 {
		return fmt.Errorf("FIELD_ENCRYPTION_KEY must decode to 32 bytes, got: %d", len(c.EncryptionKey))
	}
	return nil
}
