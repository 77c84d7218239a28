package env

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

// EnvService reads configuration from the process environment after the
// dotenv files have been applied.
type EnvService struct{}

// NewEnvService loads .env and then overlays .env.$APP_ENV. Missing files
// are not an error; the process environment still applies.
func NewEnvService() *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load %s: %v", envFile, err)
	}

	return &EnvService{}
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	parsed, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}
