package config

import "testing"

func TestNewRejectsNonPositiveFields(t *testing.T) {
	cases := []struct {
		name                                          string
		width, height, samples, recursions, threads   int
	}{
		{"width", 0, 10, 10, 10, 1},
		{"height", 10, 0, 10, 10, 1},
		{"samples", 10, 10, 0, 10, 1},
		{"recursions", 10, 10, 10, 0, 1},
		{"threads", 10, 10, 10, 10, 0},
	}

	for _, c := range cases {
		_, err := New("out.ppm", "aek", c.width, c.height, c.samples, c.recursions, c.threads, 0, false)
		if err == nil {
			t.Errorf("%s: expected an error for a non-positive value", c.name)
		}
	}
}

func TestNewRejectsEmptyOutputOrSceneName(t *testing.T) {
	if _, err := New("", "aek", 10, 10, 10, 10, 1, 0, false); err == nil {
		t.Errorf("expected an error for an empty output path")
	}
	if _, err := New("out.ppm", "", 10, 10, 10, 10, 1, 0, false); err == nil {
		t.Errorf("expected an error for an empty scene name")
	}
}

func TestNewAcceptsValidConfiguration(t *testing.T) {
	cfg, err := New("out.ppm", "aek", 512, 512, 64, 8, 4, 42, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "out.ppm" || cfg.SceneName != "aek" || cfg.Width != 512 || cfg.Height != 512 ||
		cfg.Samples != 64 || cfg.Recursions != 8 || cfg.Threads != 4 || cfg.Seed != 42 || !cfg.Verify {
		t.Errorf("unexpected fields: %+v", cfg)
	}
}

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Output != "card.ppm" || cfg.SceneName != "aek" || cfg.Width != 512 || cfg.Height != 512 ||
		cfg.Samples != 64 || cfg.Recursions != 8 || cfg.Threads != 1 || cfg.Seed != 0 || cfg.Verify {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
