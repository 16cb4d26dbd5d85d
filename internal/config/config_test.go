package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithNoConfigFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.TemplateDir != "./testassets/templates" {
		t.Errorf("cfg.TemplateDir = %q, want %q", cfg.TemplateDir, "./testassets/templates")
	}
	if cfg.PBConfidenceFloor != 0.0 {
		t.Errorf("cfg.PBConfidenceFloor = %v, want 0.0", cfg.PBConfidenceFloor)
	}
	if cfg.RowClusterTolerance != 0 {
		t.Errorf("cfg.RowClusterTolerance = %d, want 0", cfg.RowClusterTolerance)
	}
	if cfg.PairingTolerance != 0 {
		t.Errorf("cfg.PairingTolerance = %d, want 0", cfg.PairingTolerance)
	}
	if cfg.NMSRadius != 0 {
		t.Errorf("cfg.NMSRadius = %d, want 0", cfg.NMSRadius)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("cfg.MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ticketvision.yaml")
	contents := "template_dir: /opt/ticketvision/templates\n" +
		"pb_confidence_floor: 0.8\n" +
		"digit_confidence_floor: 0.5\n" +
		"row_cluster_tolerance: 50\n" +
		"pairing_tolerance: 120\n" +
		"nms_radius: 25\n" +
		"metrics_addr: :9090\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v, want nil", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.TemplateDir != "/opt/ticketvision/templates" {
		t.Errorf("cfg.TemplateDir = %q, want %q", cfg.TemplateDir, "/opt/ticketvision/templates")
	}
	if cfg.PBConfidenceFloor != 0.8 {
		t.Errorf("cfg.PBConfidenceFloor = %v, want 0.8", cfg.PBConfidenceFloor)
	}
	if cfg.DigitConfidenceFloor != 0.5 {
		t.Errorf("cfg.DigitConfidenceFloor = %v, want 0.5", cfg.DigitConfidenceFloor)
	}
	if cfg.RowClusterTolerance != 50 {
		t.Errorf("cfg.RowClusterTolerance = %d, want 50", cfg.RowClusterTolerance)
	}
	if cfg.PairingTolerance != 120 {
		t.Errorf("cfg.PairingTolerance = %d, want 120", cfg.PairingTolerance)
	}
	if cfg.NMSRadius != 25 {
		t.Errorf("cfg.NMSRadius = %d, want 25", cfg.NMSRadius)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("cfg.MetricsAddr = %q, want %q", cfg.MetricsAddr, ":9090")
	}
}

func TestLoad_MissingConfigFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/ticketvision.yaml"); err == nil {
		t.Errorf("Load() error = nil, want non-nil")
	}
}
