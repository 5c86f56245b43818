package cli

import (
	"os"
	"testing"
)

// TestMain points the user directories at a temporary home so tests never
// touch the real configuration.
func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "denv-cli-test-*")
	if err != nil {
		panic(err)
	}

	for _, key := range []string{"HOME", "XDG_CONFIG_HOME", "XDG_CACHE_HOME", "AppData", "LocalAppData"} {
		_ = os.Setenv(key, home)
	}

	code := m.Run()

	_ = os.RemoveAll(home)

	os.Exit(code)
}
