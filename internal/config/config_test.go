package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:         "8082",
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				CacheTTL:     5 * time.Minute,
				CacheEntries: 100,
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				Port:         "9000",
				DataBackend:  "memory",
				CacheTTL:     time.Minute,
				CacheEntries: 10,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:         "abc",
				DataBackend:  "memory",
				CacheTTL:     time.Minute,
				CacheEntries: 10,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:         "70000",
				DataBackend:  "memory",
				CacheTTL:     time.Minute,
				CacheEntries: 10,
			},
			wantErr:     true,
			errorString: "must be between 1 and 65535",
		},
		{
			name: "invalid backend",
			config: Config{
				Port:         "8082",
				DataBackend:  "redis",
				CacheTTL:     time.Minute,
				CacheEntries: 10,
			},
			wantErr:     true,
			errorString: "invalid data backend 'redis'",
		},
		{
			name: "sqlite backend without db path",
			config: Config{
				Port:         "8082",
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
				CacheTTL:     time.Minute,
				CacheEntries: 10,
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "file backend without path",
			config: Config{
				Port:         "8082",
				DataBackend:  "file",
				CacheTTL:     time.Minute,
				CacheEntries: 10,
			},
			wantErr:     true,
			errorString: "store file path cannot be empty",
		},
		{
			name: "cache TTL too small",
			config: Config{
				Port:         "8082",
				DataBackend:  "memory",
				CacheTTL:     100 * time.Millisecond,
				CacheEntries: 10,
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "cache entries too small",
			config: Config{
				Port:         "8082",
				DataBackend:  "memory",
				CacheTTL:     time.Minute,
				CacheEntries: 0,
			},
			wantErr:     true,
			errorString: "must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "CACHE_TTL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8082" {
		t.Fatalf("default port = %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend = %s", cfg.DataBackend)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("default cache TTL = %v", cfg.CacheTTL)
	}
}
