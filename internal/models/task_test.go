package models

import "testing"

func TestConfigForDuration(t *testing.T) {
	tests := []struct {
		durationMonths int
		wantCount      int
		wantType       TaskType
	}{
		{1, 4, TaskTypeWeekly},
		{2, 8, TaskTypeWeekly},
		{3, 9, TaskTypeMonthly},
		{6, 36, TaskTypeMonthly},
	}

	for _, tt := range tests {
		cfg, ok := ConfigForDuration(tt.durationMonths)
		if !ok {
			t.Fatalf("duration %d: expected config", tt.durationMonths)
		}
		if cfg.Count != tt.wantCount || cfg.Type != tt.wantType {
			t.Errorf("duration %d: expected (%d, %s), got (%d, %s)",
				tt.durationMonths, tt.wantCount, tt.wantType, cfg.Count, cfg.Type)
		}
	}

	for _, duration := range []int{0, 4, 5, 12} {
		if _, ok := ConfigForDuration(duration); ok {
			t.Errorf("duration %d: expected no config", duration)
		}
	}
}

func TestConfigForDurationLoose_Fallback(t *testing.T) {
	// Табличные значения сохраняются
	cfg := ConfigForDurationLoose(3)
	if cfg.Count != 9 || cfg.Type != TaskTypeMonthly {
		t.Errorf("duration 3: expected (9, monthly), got (%d, %s)", cfg.Count, cfg.Type)
	}

	// Вне таблицы — durationMonths*4 еженедельных
	cfg = ConfigForDurationLoose(5)
	if cfg.Count != 20 || cfg.Type != TaskTypeWeekly {
		t.Errorf("duration 5: expected (20, weekly), got (%d, %s)", cfg.Count, cfg.Type)
	}
}
