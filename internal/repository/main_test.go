//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"todo-list-backend/internal/testutils"
)

// TestMain runs the repository integration tests against the shared
// Postgres container and purges it afterwards.
func TestMain(m *testing.M) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("repository tests interrupted, purging test containers")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("starting repository integration tests")
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
