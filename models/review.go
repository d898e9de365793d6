package models

// Review is a single user review of a movie, persisted as one row of the
// movie's review file.
type Review struct {
	DateOfReview      string  `json:"dateOfReview"`
	User              string  `json:"user"`
	UsefulnessVote    int     `json:"usefulnessVote"`
	TotalVotes        int     `json:"totalVotes"`
	UserRatingOutOf10 float64 `json:"userRatingOutOf10"`
	ReviewTitle       string  `json:"reviewTitle"`
	Review            string  `json:"review"`
}
