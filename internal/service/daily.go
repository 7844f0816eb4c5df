package service

// DailySummary is the randomized stand-in for a real "process all of today's
// engagement" aggregate. Nothing is executed; the counts are fabricated and
// the status says so.
type DailySummary struct {
	CommentsPosted  int    `json:"commentsPosted"`
	ConnectionsSent int    `json:"connectionsSent"`
	LikesGiven      int    `json:"likesGiven"`
	Status          string `json:"status"`
}

func SimulateDailyEngagement(r Rand) DailySummary {
	return DailySummary{
		CommentsPosted:  r.Intn(5) + 1,
		ConnectionsSent: r.Intn(3),
		LikesGiven:      r.Intn(8) + 2,
		Status:          "simulated",
	}
}
