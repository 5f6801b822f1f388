package commands

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	// Silence component loggers for all tests
	zerolog.SetGlobalLevel(zerolog.Disabled)
	m.Run()
}
