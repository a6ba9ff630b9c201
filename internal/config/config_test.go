package config

import (
	"os"
	"testing"
)

var envVars = []string{"DB_USER", "DB_USER_PASSWORD", "DB_NAME", "DB_HOST", "DB_PORT", "DB_SSLMODE", "BASE_URL", "DOMAIN", "PORT", "RATE_LIMIT"}

func stashEnv(t *testing.T) {
	t.Helper()

	original := make(map[string]string)
	for _, key := range envVars {
		original[key] = os.Getenv(key)
	}

	t.Cleanup(func() {
		for key, value := range original {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	})
}

func TestConfig_Load(t *testing.T) {
	stashEnv(t)

	testEnv := map[string]string{
		"DB_USER":          "testuser",
		"DB_USER_PASSWORD": "testpass",
		"DB_NAME":          "testdb",
		"DB_HOST":          "localhost",
		"DB_PORT":          "5432",
		"DB_SSLMODE":       "disable",
		"BASE_URL":         "https://sho.rt",
		"DOMAIN":           "0.0.0.0",
		"PORT":             "8080",
		"RATE_LIMIT":       "25",
	}

	for key, value := range testEnv {
		os.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DBUser != "testuser" {
		t.Errorf("Expected DBUser 'testuser', got '%s'", cfg.DBUser)
	}

	if cfg.DBPass != "testpass" {
		t.Errorf("Expected DBPass 'testpass', got '%s'", cfg.DBPass)
	}

	if cfg.DBName != "testdb" {
		t.Errorf("Expected DBName 'testdb', got '%s'", cfg.DBName)
	}

	if cfg.BaseURL != "https://sho.rt/" {
		t.Errorf("Expected BaseURL 'https://sho.rt/', got '%s'", cfg.BaseURL)
	}

	if cfg.Domain != "0.0.0.0" {
		t.Errorf("Expected Domain '0.0.0.0', got '%s'", cfg.Domain)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected Port '8080', got '%s'", cfg.Port)
	}

	if cfg.RateLimit != 25 {
		t.Errorf("Expected RateLimit 25, got %d", cfg.RateLimit)
	}
}

func TestConfig_Load_RateLimitDefault(t *testing.T) {
	stashEnv(t)

	for _, key := range envVars {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.RateLimit != defaultRateLimit {
		t.Errorf("Expected default RateLimit %d, got %d", defaultRateLimit, cfg.RateLimit)
	}
}

func TestConfig_Load_RateLimitInvalid(t *testing.T) {
	stashEnv(t)

	for _, tc := range []string{"abc", "0", "-3"} {
		os.Setenv("RATE_LIMIT", tc)

		if _, err := Load(); err == nil {
			t.Errorf("Expected error for RATE_LIMIT %q", tc)
		}
	}
}

func TestConfig_BaseURL_TrailingSlash(t *testing.T) {
	stashEnv(t)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No trailing slash",
			input:    "https://sho.rt",
			expected: "https://sho.rt/",
		},
		{
			name:     "With trailing slash",
			input:    "https://sho.rt/",
			expected: "https://sho.rt/",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "/",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv("BASE_URL", tc.input)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}

			if cfg.BaseURL != tc.expected {
				t.Errorf("Expected BaseURL '%s', got '%s'", tc.expected, cfg.BaseURL)
			}
		})
	}
}

func TestConfig_BindAddr(t *testing.T) {
	testCases := []struct {
		name     string
		domain   string
		port     string
		expected string
	}{
		{
			name:     "Standard configuration",
			domain:   "localhost",
			port:     "8080",
			expected: "localhost:8080",
		},
		{
			name:     "All interfaces",
			domain:   "0.0.0.0",
			port:     "3000",
			expected: "0.0.0.0:3000",
		},
		{
			name:     "Empty domain",
			domain:   "",
			port:     "8080",
			expected: ":8080",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				Domain: tc.domain,
				Port:   tc.port,
			}

			bindAddr := cfg.BindAddr()
			if bindAddr != tc.expected {
				t.Errorf("Expected BindAddr '%s', got '%s'", tc.expected, bindAddr)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBUser:  "testuser",
		DBPass:  "testpass",
		DBName:  "testdb",
		DBHost:  "localhost",
		DBPort:  "5432",
		SSLMode: "disable",
	}

	expectedDSN := "user=testuser password=testpass dbname=testdb host=localhost port=5432 sslmode=disable"
	dsn := cfg.DSN()

	if dsn != expectedDSN {
		t.Errorf("Expected DSN '%s', got '%s'", expectedDSN, dsn)
	}
}

func TestConfig_BaseHost(t *testing.T) {
	testCases := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "Plain host",
			baseURL:  "https://sho.rt/",
			expected: "sho.rt",
		},
		{
			name:     "Host with port",
			baseURL:  "http://localhost:8080/",
			expected: "localhost:8080",
		},
		{
			name:     "Empty base URL",
			baseURL:  "/",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{BaseURL: tc.baseURL}
			if host := cfg.BaseHost(); host != tc.expected {
				t.Errorf("Expected BaseHost '%s', got '%s'", tc.expected, host)
			}
		})
	}
}

func BenchmarkConfig_Load(b *testing.B) {
	os.Setenv("BASE_URL", "https://sho.rt")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Load()
	}
}
