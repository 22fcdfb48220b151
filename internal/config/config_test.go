package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ACADCALC_PORT", "ACADCALC_LOG_LEVEL", "ACADCALC_LOG_JSON", "ACADCALC_GROUPS_FILE", "ACADCALC_CONTACT_PER_MINUTE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 0 || cfg.LogLevel != "info" || cfg.LogJSON || cfg.GroupsFile != "" || cfg.ContactPerMinute != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ACADCALC_PORT", "8484")
	t.Setenv("ACADCALC_LOG_LEVEL", "debug")
	t.Setenv("ACADCALC_LOG_JSON", "true")
	t.Setenv("ACADCALC_GROUPS_FILE", "groups.yaml")
	t.Setenv("ACADCALC_CONTACT_PER_MINUTE", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8484 || cfg.LogLevel != "debug" || !cfg.LogJSON || cfg.GroupsFile != "groups.yaml" || cfg.ContactPerMinute != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("ACADCALC_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Error("expected error for out-of-range port")
	}

	t.Setenv("ACADCALC_PORT", "")
	t.Setenv("ACADCALC_CONTACT_PER_MINUTE", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for zero contact rate")
	}
}
