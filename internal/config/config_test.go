package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Classifier != "naivebayes" {
		t.Errorf("Classifier = %q, want \"naivebayes\"", cfg.Classifier)
	}
	if cfg.Pass1Threshold != 0.3 {
		t.Errorf("Pass1Threshold = %v, want 0.3", cfg.Pass1Threshold)
	}
	if cfg.Pass2Threshold != 0.05 {
		t.Errorf("Pass2Threshold = %v, want 0.05", cfg.Pass2Threshold)
	}
	if !cfg.TwoPass || !cfg.OpportunisticFill {
		t.Errorf("expected TwoPass and OpportunisticFill both enabled by default")
	}
}

func TestNewManager_LoadsFromConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
classifier: logisticregression
pass1_threshold: 0.4
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	cfg := mgr.Get()
	if cfg.Classifier != "logisticregression" {
		t.Errorf("Classifier = %q, want \"logisticregression\"", cfg.Classifier)
	}
	if cfg.Pass1Threshold != 0.4 {
		t.Errorf("Pass1Threshold = %v, want 0.4", cfg.Pass1Threshold)
	}
	// Unset fields still pick up defaults.
	if cfg.Pass2Threshold != 0.05 {
		t.Errorf("Pass2Threshold = %v, want default 0.05", cfg.Pass2Threshold)
	}
}

func TestManager_OnChange_Multiple(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("classifier: naivebayes\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})

	mgr.mu.RLock()
	if len(mgr.callbacks) != 3 {
		t.Errorf("expected 3 callbacks, got %d", len(mgr.callbacks))
	}
	mgr.mu.RUnlock()
}

func TestManager_Get_ThreadSafe(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("classifier: naivebayes\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				cfg := mgr.Get()
				_ = cfg.Classifier
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestManager_WatchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("classifier: naivebayes\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	cfg := mgr.Get()
	if cfg.Classifier != "naivebayes" {
		t.Errorf("initial value mismatch: expected naivebayes, got %s", cfg.Classifier)
	}

	var callbackCount atomic.Int32
	var lastValue atomic.Value

	mgr.OnChange(func(cfg *Config) {
		callbackCount.Add(1)
		lastValue.Store(cfg.Classifier)
	})

	mgr.WatchConfig()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(configFile, []byte("classifier: logisticregression\n"), 0644); err != nil {
		t.Fatalf("failed to write updated config file: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if callbackCount.Load() > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if callbackCount.Load() == 0 {
		t.Error("callback was not invoked after config file change")
	}

	newCfg := mgr.Get()
	if newCfg.Classifier != "logisticregression" {
		t.Errorf("config not updated: expected logisticregression, got %s", newCfg.Classifier)
	}
	if v := lastValue.Load(); v != "logisticregression" {
		t.Errorf("callback received wrong value: expected logisticregression, got %v", v)
	}
}
