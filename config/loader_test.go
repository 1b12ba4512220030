package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_ReusesYamlSpelling(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"houseBlend": map[string]any{
			"backend": "openai",
			"secrets": map[string]any{
				"openai": "",
			},
		},
		"vault": map[string]any{
			"masterKey": "",
		},
		"quota": map[string]any{
			"anonymousDailyLimit": 3,
			"addressHashKey":      "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "HOUSEBLEND_BACKEND", want: "houseBlend.backend"},
		{envKey: "HOUSEBLEND_SECRETS_OPENAI", want: "houseBlend.secrets.openai"},
		{envKey: "HOUSEBLEND_SECRETS_GEMINI", want: "houseBlend.secrets.gemini"},
		{envKey: "VAULT_MASTERKEY", want: "vault.masterKey"},
		{envKey: "QUOTA_ANONYMOUSDAILYLIMIT", want: "quota.anonymousDailyLimit"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "http:\n  port: 8080\nquota:\n  anonymousDailyLimit: 3\n  timezone: UTC\nanalysis:\n  timeout: 30s\n"
	if err := os.WriteFile(filepath.Join(dir, "gateway.yaml"), []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QUOTA_ANONYMOUSDAILYLIMIT", "5")

	cfg, err := Load[Config]("gateway", "missing", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Quota.AnonymousDailyLimit != 5 {
		t.Errorf("anonymousDailyLimit = %d, want the env override 5", cfg.Quota.AnonymousDailyLimit)
	}
	if cfg.Analysis.Timeout != 30*time.Second {
		t.Errorf("timeout = %s, want 30s", cfg.Analysis.Timeout)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load[Config]("nope", t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_2_HOST":     "replica-c",
		"POSTGRES_REPLICAS_2_PORT":     "5432",
	}

	replicas := replicasFromEnv(func(key string) string { return env[key] })
	if len(replicas) != 1 {
		t.Fatalf("got %d replicas, want 1 (scan stops at the first incomplete index)", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" {
		t.Errorf("unexpected replica %+v", replicas[0])
	}
}
