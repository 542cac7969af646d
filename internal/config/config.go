package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig
	WebSocket WebSocketConfig
	Room      RoomConfig
	Stroke    StrokeConfig
	Gateway   GatewayConfig
	CORS      CORSConfig
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// WebSocketConfig WebSocket buffer settings.
type WebSocketConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
}

// RoomConfig room policy settings.
type RoomConfig struct {
	// Capacity is the maximum number of concurrent members per room.
	// The board is a pairwise collaboration space, so the default is 2,
	// but the limit is policy, not a hard assumption.
	Capacity   int
	CodeLength int
}

// StrokeConfig accepted stroke bounds.
type StrokeConfig struct {
	MinWidth int
	MaxWidth int
}

// GatewayConfig event loop buffer sizes.
type GatewayConfig struct {
	EventBuffer       int
	SessionSendBuffer int
}

// CORSConfig CORS settings.
type CORSConfig struct {
	AllowOrigins string
	AllowHeaders string
}

// Load reads configuration from environment variables, with an optional
// .env file for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ No .env file found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("IDLE_TIMEOUT", 120*time.Second),
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  getInt("WS_READ_BUFFER_SIZE", 4096),
			WriteBufferSize: getInt("WS_WRITE_BUFFER_SIZE", 4096),
		},
		Room: RoomConfig{
			Capacity:   getInt("ROOM_CAPACITY", 2),
			CodeLength: getInt("ROOM_CODE_LENGTH", 6),
		},
		Stroke: StrokeConfig{
			MinWidth: getInt("STROKE_MIN_WIDTH", 2),
			MaxWidth: getInt("STROKE_MAX_WIDTH", 20),
		},
		Gateway: GatewayConfig{
			EventBuffer:       getInt("GATEWAY_EVENT_BUFFER", 256),
			SessionSendBuffer: getInt("SESSION_SEND_BUFFER", 64),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			AllowHeaders: getEnv("CORS_ALLOW_HEADERS", "Origin, Content-Type, Accept"),
		},
	}
}

// getEnv reads a string variable with a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt reads an integer variable with a default.
func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getDuration reads a duration variable with a default. Bare numbers are
// interpreted as seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if !strings.ContainsAny(value, "smh") {
			if secs, err := strconv.Atoi(value); err == nil {
				return time.Duration(secs) * time.Second
			}
		}
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
