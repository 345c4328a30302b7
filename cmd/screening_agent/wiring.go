package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/conversation"
	"github.com/jonathan/talent-scout/internal/db"
	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/secure"
)

// newLogger builds the process logger from the persistent flags.
func newLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"
	if logJSON {
		encoding = "json"
	}
	if logDebug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			TimeKey:     "time",
			EncodeTime:  zapcore.RFC3339TimeEncoder,
		},
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// newCipher selects the field-encryption strategy from configuration:
// the AEAD cipher when a key is configured, base64 encoding otherwise.
func newCipher(securityCfg *config.SecurityConfig, log *zap.Logger) (secure.Cipher, error) {
	if securityCfg.EncryptionKey == nil {
		log.Warn("FIELD_ENCRYPTION_KEY not set, using base64 encoding for sensitive fields")
		return secure.EncodingCipher{}, nil
	}
	return secure.NewAEADCipher(securityCfg.EncryptionKey)
}

// deps bundles everything a conversation needs.
type deps struct {
	controllerFactory func() *conversation.Controller
	securityCfg       *config.SecurityConfig
	store             *db.Store // nil when DATABASE_URL is not set
	client            llm.Client
	log               *zap.Logger
}

// buildDeps wires the collaborators from the environment. The database
// is optional; the Gemini API key is not.
func buildDeps(ctx context.Context, log *zap.Logger) (*deps, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	securityCfg, err := config.NewSecurityConfig()
	if err != nil {
		return nil, err
	}
	interviewCfg, err := config.NewInterviewConfig()
	if err != nil {
		return nil, err
	}

	cipher, err := newCipher(securityCfg, log)
	if err != nil {
		return nil, err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, err
	}

	var store *db.Store
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		store, err = db.Connect(ctx, databaseURL, cipher, log)
		if err != nil {
			// The interview must run even when persistence is down.
			log.Warn("database unavailable, interviews will not be saved", zap.Error(err))
			store = nil
		} else if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
	} else {
		log.Info("DATABASE_URL not set, interviews will not be saved")
	}

	generator := llm.NewGenerator(client)
	evaluator := llm.NewEvaluator(client)

	factory := func() *conversation.Controller {
		cfg := conversation.Config{
			Cipher:       cipher,
			Generator:    generator,
			Evaluator:    evaluator,
			QuotaPerTech: interviewCfg.QuestionsPerTechnology,
			Logger:       log,
		}
		if store != nil {
			cfg.Store = store
		}
		return conversation.New(cfg)
	}

	return &deps{
		controllerFactory: factory,
		securityCfg:       securityCfg,
		store:             store,
		client:            client,
		log:               log,
	}, nil
}

// Close releases held resources.
func (d *deps) Close() {
	if d.client != nil {
		_ = d.client.Close()
	}
	if d.store != nil {
		d.store.Close()
	}
}
