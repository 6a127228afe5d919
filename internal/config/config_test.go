package config

import "testing"

func TestConfig_ValidateRejectsBadStretch(t *testing.T) {
	cfg := Config{Stretch: 1.0, OutputDir: "."}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for Stretch == 1")
	}
}

func TestConfig_ValidateRejectsEmptyOutputDir(t *testing.T) {
	cfg := Config{Stretch: 2.0, OutputDir: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an empty OutputDir")
	}
}

func TestConfig_ValidateAcceptsReasonableConfig(t *testing.T) {
	cfg := Config{Stretch: 2.0, OutputDir: "."}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
