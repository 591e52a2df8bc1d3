package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("Expected APP_PORT default '8080', got '%s'", cfg.App.Port)
	}
	if cfg.DB.Host != "localhost" {
		t.Errorf("Expected DB_HOST default 'localhost', got '%s'", cfg.DB.Host)
	}
	if cfg.DB.Port != "5432" {
		t.Errorf("Expected DB_PORT default '5432', got '%s'", cfg.DB.Port)
	}
	if cfg.DB.Name != "lifelink" {
		t.Errorf("Expected DB_NAME default 'lifelink', got '%s'", cfg.DB.Name)
	}
	if cfg.Redis.Host != "localhost" {
		t.Errorf("Expected REDIS_HOST default 'localhost', got '%s'", cfg.Redis.Host)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("Expected access expiry default 15m, got %v", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("Expected refresh expiry default 168h, got %v", cfg.JWT.RefreshExpiry)
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_PORT", "9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PASSWORD", "hunter2")
	os.Setenv("JWT_SECRET", "supersecret")
	os.Setenv("JWT_ACCESS_EXPIRY", "30m")
	defer os.Clearenv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Errorf("Expected APP_PORT '9090', got '%s'", cfg.App.Port)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("Expected DB_HOST 'db.internal', got '%s'", cfg.DB.Host)
	}
	if cfg.DB.Password != "hunter2" {
		t.Errorf("Expected DB_PASSWORD 'hunter2', got '%s'", cfg.DB.Password)
	}
	if cfg.JWT.Secret != "supersecret" {
		t.Errorf("Expected JWT_SECRET 'supersecret', got '%s'", cfg.JWT.Secret)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("Expected access expiry 30m, got %v", cfg.JWT.AccessExpiry)
	}
}
