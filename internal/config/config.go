package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string
	GinMode     string

	// 托管认证服务签发的 JWT（HS256），用户 ID 在 sub 中
	JWTSecret string
	JWTIssuer string

	AdminToken string
	CORSOrigin string

	RateLimits RateLimits
	YouTube    YouTube
}

type RateLimits struct {
	// 每个 IP 每秒允许的请求数和突发量
	FormRPS   float64
	FormBurst int
}

type YouTube struct {
	APIKey            string
	PodcastPlaylistID string
	CacheTTL          time.Duration
}

func Load() Config {
	return Config{
		Port:        envString("PORT", "8080"),
		DatabaseURL: envString("DATABASE_URL", "sqlite://mcaverse.db"),
		GinMode:     envString("GIN_MODE", ""),
		JWTSecret:   envString("AUTH_JWT_SECRET", ""),
		JWTIssuer:   envString("AUTH_JWT_ISSUER", ""),
		AdminToken:  envString("ADMIN_TOKEN", ""),
		CORSOrigin:  envString("CORS_ORIGIN", "*"),
		RateLimits: RateLimits{
			FormRPS:   envFloat("RL_FORM_RPS", 1.0/3.0),
			FormBurst: envInt("RL_FORM_BURST", 3),
		},
		YouTube: YouTube{
			APIKey:            envString("YOUTUBE_API_KEY", ""),
			PodcastPlaylistID: envString("YOUTUBE_PLAYLIST_ID", ""),
			CacheTTL:          envDuration("YOUTUBE_CACHE_TTL", time.Hour),
		},
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
