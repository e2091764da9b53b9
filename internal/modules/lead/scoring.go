package lead

import "dealershub/internal/domain"

// Score computes the lead score from its intake facts. The function is pure
// so the same submission always scores the same.
func Score(phone, email, source string, vehicleInterest *domain.VehicleInterest) int {
	score := 30
	if len(phone) >= 10 {
		score += 20
	}
	if email != "" {
		score += 10
	}
	if vehicleInterest != nil {
		score += 30
	}
	if source == "Referral" {
		score += 10
	}
	return score
}

// TemperatureFor derives the lead temperature from its score.
func TemperatureFor(score int) domain.LeadTemperature {
	switch {
	case score >= 80:
		return domain.LeadHot
	case score >= 50:
		return domain.LeadWarm
	default:
		return domain.LeadCold
	}
}
