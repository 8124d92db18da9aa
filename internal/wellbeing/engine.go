package wellbeing

import "github.com/JonnyWalker81/workwell/backend/internal/models"

// PredictRisk assesses burnout risk for userID from checkins, which may be
// in any order. An empty window short-circuits to a Low prediction with
// score 0 and a single keep-checking-in recommendation; the bands are not
// evaluated.
func PredictRisk(userID string, checkins []models.Checkin) models.RiskPrediction {
	features := Aggregate(checkins)
	if features.InsufficientData() {
		return models.RiskPrediction{
			UserID:          userID,
			RiskLevel:       models.RiskLow,
			RiskScore:       0,
			Description:     InsufficientDataDescription,
			Recommendations: []string{KeepCheckingInAdvice},
			RiskFactors:     map[string]float64{},
		}
	}

	score := ScoreRisk(features)
	level := Classify(score)

	return models.RiskPrediction{
		UserID:          userID,
		RiskLevel:       level,
		RiskScore:       score,
		Description:     Describe(level, score),
		Recommendations: Recommend(features, level),
		RiskFactors:     RiskFactors(features),
	}
}
