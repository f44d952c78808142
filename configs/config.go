package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	JWTSecret string
	JWTTTL    time.Duration

	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
	OAuthAuthURL      string
	OAuthTokenURL     string
	OAuthUserInfoURL  string

	PublicBaseURL string
	UploadDir     string

	LogLevel      string
	MetricsPrefix string
}

func LoadConfig() *Config {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil {
		ttlHours = 24
	}

	return &Config{
		Port: getEnv("PORT", "8000"),

		MongoURI: os.Getenv("MONGODB_URI"),
		MongoDB:  os.Getenv("MONGODB_DB"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,

		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		OAuthRedirectURL:  getEnv("OAUTH_REDIRECT_URL", "http://localhost:8000/api/auth/callback"),
		OAuthAuthURL:      getEnv("OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/auth"),
		OAuthTokenURL:     getEnv("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token"),
		OAuthUserInfoURL:  getEnv("OAUTH_USERINFO_URL", "https://www.googleapis.com/oauth2/v2/userinfo"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MetricsPrefix: getEnv("METRICS_PREFIX", "qrmenu"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
