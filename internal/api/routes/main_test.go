//go:build integration
// +build integration

package routes

import (
	"os"
	"testing"

	"todo-list-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
