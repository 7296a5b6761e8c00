package health_test

import (
	"testing"

	"github.com/diogochaves123/app-ecogrow/internal/health"
	"github.com/diogochaves123/app-ecogrow/internal/model"
)

func TestEvaluateThresholds(t *testing.T) {
	t.Parallel()
	th := health.DefaultThresholds()
	cases := []struct {
		overdueDays int
		recent      bool
		want        model.HealthStatus
	}{
		{0, true, model.HealthExcellent},
		{0, false, model.HealthGood},
		{1, true, model.HealthGood},
		{2, false, model.HealthGood},
		{3, false, model.HealthFair},
		{6, false, model.HealthFair},
		{7, false, model.HealthPoor},
		{10, false, model.HealthPoor},
		{13, false, model.HealthPoor},
		{14, false, model.HealthCritical},
		{40, true, model.HealthCritical},
	}
	for _, tc := range cases {
		if got := health.Evaluate(tc.overdueDays, tc.recent, th); got != tc.want {
			t.Errorf("Evaluate(%d, %v) = %s, want %s", tc.overdueDays, tc.recent, got, tc.want)
		}
	}
}

func TestEvaluateMonotonicity(t *testing.T) {
	t.Parallel()
	th := health.DefaultThresholds()
	prev := health.Evaluate(0, false, th)
	for days := 1; days <= 60; days++ {
		cur := health.Evaluate(days, false, th)
		if cur.Severity() < prev.Severity() {
			t.Fatalf("health improved from %s to %s when overdue grew to %d days", prev, cur, days)
		}
		prev = cur
	}
}

func TestThresholdsValidate(t *testing.T) {
	t.Parallel()
	if err := health.DefaultThresholds().Validate(); err != nil {
		t.Fatalf("default thresholds must validate: %v", err)
	}

	bad := health.Thresholds{GoodAfterDays: 1, FairAfterDays: 5, PoorAfterDays: 4, CriticalAfterDays: 14}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for non-ascending thresholds")
	}

	zero := health.Thresholds{}
	if err := zero.Validate(); err == nil {
		t.Fatal("expected validation error for zero thresholds")
	}
}

func TestHealthy(t *testing.T) {
	t.Parallel()
	if !health.Healthy(model.HealthExcellent) || !health.Healthy(model.HealthGood) {
		t.Fatal("excellent and good count as healthy")
	}
	for _, s := range []model.HealthStatus{model.HealthFair, model.HealthPoor, model.HealthCritical} {
		if health.Healthy(s) {
			t.Fatalf("%s must not count as healthy", s)
		}
	}
}
