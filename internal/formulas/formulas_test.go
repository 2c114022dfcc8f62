// File: internal/formulas/formulas_test.go
// Project: OpenHo Galaxy Core
// Description: Tests for placeholder game-simulation formulas
// Version: 1.0.0
// Created: 2025-01-07

package formulas

import "testing"

func TestCalculateShipDesignCostIsPlaceholder(t *testing.T) {
	cost := CalculateShipDesignCost(1, 2, 3, 4, 5)
	if cost.BuildCost != 1 || cost.PrototypeCost != 1 || cost.MetalCost != 1 {
		t.Fatalf("expected placeholder cost of 1 across all dimensions, got %+v", cost)
	}
}

func TestCalculateTechAdvancementCost(t *testing.T) {
	cases := []struct {
		level int32
		want  int64
	}{
		{0, 100},
		{1, 400},
		{9, 10000},
	}
	for _, c := range cases {
		if got := CalculateTechAdvancementCost(TechWeapons, c.level); got != c.want {
			t.Errorf("level %d: got %d, want %d", c.level, got, c.want)
		}
	}
}

func TestCalculateTechAdvancementCostSameAcrossTracks(t *testing.T) {
	tracks := []TechTrack{TechRange, TechSpeed, TechWeapons, TechShields, TechMini, TechRadical}
	for _, track := range tracks {
		if got := CalculateTechAdvancementCost(track, 3); got != 1600 {
			t.Errorf("track %v: got %d, want 1600", track, got)
		}
	}
}

func TestCalculateMoneyInterest(t *testing.T) {
	if got := CalculateMoneyInterest(1000); got != 20 {
		t.Errorf("positive savings: got %d, want 20", got)
	}
	if got := CalculateMoneyInterest(-1000); got != -50 {
		t.Errorf("debt: got %d, want -50", got)
	}
}

func TestCalculatePopulationGrowthHasFloor(t *testing.T) {
	if got := CalculatePopulationGrowth(0, 20, 1.0, 20, 1.0); got != 1 {
		t.Errorf("zero population: got %d, want floor of 1", got)
	}
	if got := CalculatePopulationGrowth(10000, 20, 1.0, 20, 1.0); got != 100 {
		t.Errorf("10000 population: got %d, want 100", got)
	}
}

func TestCalculateTemperatureChangeClampsAtTarget(t *testing.T) {
	if got := CalculateTemperatureChange(1000, 10.0, 10.5); got != 0.5 {
		t.Errorf("heating toward target: got %v, want 0.5 (clamped)", got)
	}
	if got := CalculateTemperatureChange(1000, 10.5, 10.0); got != -0.5 {
		t.Errorf("cooling toward target: got %v, want -0.5 (clamped)", got)
	}
	if got := CalculateTemperatureChange(1000, 10.0, 10.0); got != 0.0 {
		t.Errorf("already at target: got %v, want 0", got)
	}
}

func TestCalculateMetalMinedCapsAtRemaining(t *testing.T) {
	if got := CalculateMetalMined(500, 300); got != 300 {
		t.Errorf("got %d, want capped at 300", got)
	}
	if got := CalculateMetalMined(100, 300); got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}
