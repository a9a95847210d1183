package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bookapi/internal/auth"
	"bookapi/internal/logger"
	"bookapi/internal/validation"
)

var testValidator = validation.New()

var testLogger = logger.Discard()

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	m, err := auth.NewTokenManager("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	return m
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
