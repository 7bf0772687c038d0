package configs

type Rating struct {
	MinRating         int    `env:"MIN_RATING" envDefault:"1"`
	MaxRating         int    `env:"MAX_RATING" envDefault:"5"`
	PositiveThreshold int    `env:"POSITIVE_RATING_THRESHOLD" envDefault:"4"`
	ReviewURL         string `env:"GOOGLE_REVIEW_URL" envDefault:"https://www.podialpes.com/"`
	MaxCommentLength  int    `env:"MAX_COMMENT_LENGTH" envDefault:"500"`
}

type Token struct {
	// hex characters, two per random byte
	Length int `env:"TOKEN_LENGTH" envDefault:"48"`
}
