package service

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"faqbot/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := zerolog.Nop()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	return db
}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
