package search

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got %v", err)
	}
}

func TestConfigValidateRejectsNegativeWorkers(t *testing.T) {
	c := DefaultConfig()
	c.Workers = -1
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative Workers")
	}
}

func TestConfigValidateRejectsOutOfRangeAltCount(t *testing.T) {
	c := DefaultConfig()
	c.AltCount = 255
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for AltCount out of [0,254]")
	}
}

func TestConfigTopKIsOnePlusAltCount(t *testing.T) {
	c := Config{AltCount: 4}
	if got := c.topK(); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}
