// File: internal/formulas/formulas.go
// Project: OpenHo Galaxy Core
// Description: Placeholder arithmetic for the surrounding game simulation
// Version: 1.0.0
// Created: 2025-01-07

// Package formulas holds the fixed-return and simple-linear formulas
// for the parts of the broader game simulation that sit outside the
// galaxy coordinate generator: ship design costs, tech advancement,
// income, and population growth. Most of these are intentionally
// placeholder arithmetic in the reference design; only the technology
// advancement costs use a real formula. None of this package consumes
// or feeds the generator itself.
package formulas

// ShipDesignCost holds the three cost dimensions of a ship design.
// Tech levels for range, speed, weapons, shields, and miniaturization
// all feed the same placeholder until a real design is specified.
type ShipDesignCost struct {
	BuildCost     int64
	PrototypeCost int64
	MetalCost     int64
}

// CalculateShipDesignCost returns the build, prototype, and metal cost
// for a ship design given its five tech levels. All three dimensions
// are placeholder constants pending a real cost model.
func CalculateShipDesignCost(techRange, techSpeed, techWeapons, techShields, techMini int32) ShipDesignCost {
	return ShipDesignCost{BuildCost: 1, PrototypeCost: 1, MetalCost: 1}
}

// techAdvancementBaseMultiplier scales the quadratic tech cost curve;
// shared by every tech track below.
const techAdvancementBaseMultiplier = 100

// TechTrack names a technology advancement line.
type TechTrack int

const (
	TechRange TechTrack = iota
	TechSpeed
	TechWeapons
	TechShields
	TechMini
	TechRadical
)

// CalculateTechAdvancementCost returns the cost to advance a track from
// currentLevel to currentLevel+1: (level+1)^2 * 100. The formula is the
// same across every track; TechTrack only documents which counter the
// caller should charge against.
func CalculateTechAdvancementCost(track TechTrack, currentLevel int32) int64 {
	nextLevel := int64(currentLevel + 1)
	return nextLevel * nextLevel * techAdvancementBaseMultiplier
}

// Interest rates applied to a player's savings balance.
const (
	MoneyInterestRatePositive = 0.02
	MoneyInterestRateDebt     = 0.05
)

// CalculateMoneyInterest returns interest on savings: a positive rate
// on a positive balance, a steeper debt rate on a negative one.
func CalculateMoneyInterest(savings int64) int64 {
	if savings >= 0 {
		return int64(float64(savings) * MoneyInterestRatePositive)
	}
	return int64(float64(savings) * MoneyInterestRateDebt)
}

// ConvertMoneyToResearchPoints is a one-to-one placeholder conversion
// pending a real research economy.
func ConvertMoneyToResearchPoints(moneyAllocated int64) int64 {
	return moneyAllocated
}

// CalculatePlanetaryIncome is a placeholder that will eventually sum
// income across every planet a player owns.
func CalculatePlanetaryIncome() int64 {
	return 0
}

// CalculateInterestIncome is interest income on the player's savings.
func CalculateInterestIncome(savings int64) int64 {
	return CalculateMoneyInterest(savings)
}

// CalculateWindfallIncome is a placeholder for rare special income
// events; always zero until that system is designed.
func CalculateWindfallIncome() int64 {
	return 0
}

// populationGrowthRate is the flat per-turn growth rate used until
// population growth accounts for planet habitability.
const populationGrowthRate = 0.01

// CalculatePopulationGrowth returns this turn's population growth.
// Planet and ideal temperature/gravity are accepted for forward
// compatibility with a habitability-aware formula but are not yet
// used; growth is always at least 1.
func CalculatePopulationGrowth(currentPopulation int64, planetTemperature, planetGravity, idealTemperature, idealGravity float64) int64 {
	growth := int64(float64(currentPopulation) * populationGrowthRate)
	if growth < 1 {
		growth = 1
	}
	return growth
}

// moneyToTemperatureRate converts money spent terraforming into a
// temperature delta, pending a real terraforming model.
const moneyToTemperatureRate = 0.01

// CalculateTemperatureChange returns the temperature delta produced by
// spending moneySpent to move currentTemperature toward
// targetTemperature, clamped so the change never overshoots the
// target.
func CalculateTemperatureChange(moneySpent int64, currentTemperature, targetTemperature float64) float64 {
	change := float64(moneySpent) * moneyToTemperatureRate

	switch {
	case currentTemperature < targetTemperature:
		if remaining := targetTemperature - currentTemperature; change > remaining {
			change = remaining
		}
		return change
	case currentTemperature > targetTemperature:
		if remaining := currentTemperature - targetTemperature; change > remaining {
			change = remaining
		}
		return -change
	default:
		return 0.0
	}
}

// CalculateMetalMined converts money spent mining into metal extracted
// at a 1:1 placeholder rate, capped by what remains on the planet.
func CalculateMetalMined(moneySpent, metalRemaining int64) int64 {
	extracted := moneySpent
	if extracted > metalRemaining {
		extracted = metalRemaining
	}
	return extracted
}

// CalculatePlanetNovaWarningDuration is a placeholder for a future
// Poisson-distributed warning period ahead of a planet going nova.
func CalculatePlanetNovaWarningDuration() int32 {
	return 1
}
