package wellbeing

import "github.com/JonnyWalker81/workwell/backend/internal/models"

// ComputeStatistics reports the averaged features of checkins together with
// a histogram of non-empty sentiment labels. An empty input yields all-zero
// averages and an empty histogram, not the sleep and wellbeing baselines.
func ComputeStatistics(checkins []models.Checkin) models.Statistics {
	stats := models.Statistics{
		SentimentDistribution: make(map[string]int),
	}
	if len(checkins) == 0 {
		return stats
	}

	f := Aggregate(checkins)
	stats.TotalCheckins = f.TotalCheckins
	stats.AverageStress = f.AverageStress
	stats.AverageHoursWorked = f.AverageHoursWorked
	stats.AverageHoursSlept = f.AverageHoursSlept
	stats.AverageWellbeingScore = f.AverageWellbeingScore

	for _, c := range checkins {
		if c.Sentiment != nil && *c.Sentiment != "" {
			stats.SentimentDistribution[*c.Sentiment]++
		}
	}

	return stats
}
