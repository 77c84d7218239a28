package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvService_OverlaysAppEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("APP_ENV", "test")
	unsetForTest(t, KeyBaseURL)
	unsetForTest(t, KeyLogLevel)

	writeFile(t, filepath.Join(dir, ".env"), "SERANKING_BASE_URL=http://from-dotenv\nLOG_LEVEL=info\n")
	writeFile(t, filepath.Join(dir, ".env.test"), "LOG_LEVEL=debug\n")

	e := NewEnvService()

	assert.Equal(t, "http://from-dotenv", e.Get(KeyBaseURL))
	assert.Equal(t, "debug", e.Get(KeyLogLevel))
}

func TestEnvService_Accessors(t *testing.T) {
	e := &EnvService{}
	t.Setenv("SR_TEST_BOOL", "true")
	t.Setenv("SR_TEST_BAD_BOOL", "maybe")
	t.Setenv("SR_TEST_INT", "42")
	t.Setenv("SR_TEST_EMPTY", "")

	assert.True(t, e.GetBool("SR_TEST_BOOL", false))
	assert.False(t, e.GetBool("SR_TEST_BAD_BOOL", false))
	assert.Equal(t, 42, e.GetInt("SR_TEST_INT", 0))
	assert.Equal(t, 7, e.GetInt("SR_TEST_EMPTY", 7))
	assert.Equal(t, "fallback", e.GetWithDefault("SR_TEST_EMPTY", "fallback"))
}

// unsetForTest removes key for the test and restores it afterwards. godotenv
// never overrides a variable that is set, even to "".
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
