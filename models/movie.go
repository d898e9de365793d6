package models

// Movie is the metadata record stored in a movie's metadata.json, plus the
// reviews loaded from the movie's review file.
type Movie struct {
	Title              string   `json:"title"`
	MovieIMDbRating    float64  `json:"movieIMDbRating"`
	TotalRatingCount   int      `json:"totalRatingCount"`
	TotalUserReviews   string   `json:"totalUserReviews"`
	TotalCriticReviews string   `json:"totalCriticReviews"`
	MetaScore          string   `json:"metaScore"`
	MovieGenres        []string `json:"movieGenres"`
	Directors          []string `json:"directors"`
	DatePublished      string   `json:"datePublished"`
	Creators           []string `json:"creators"`
	MainStars          []string `json:"mainStars"`
	Description        string   `json:"description"`
	Reviews            []Review `json:"reviews"`
}

// MovieFilter holds the optional criteria for a movie search. All set fields
// must match for a movie to be included; text matches are case-insensitive
// substring checks.
type MovieFilter struct {
	Title     string   `json:"title,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Directors []string `json:"directors,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
	MaxRating *float64 `json:"max_rating,omitempty"`
	Year      int      `json:"year,omitempty"`
}
