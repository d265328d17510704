package models

// TMDBMovie is a single result row from the TMDB search, discover,
// similar and trending endpoints.
type TMDBMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	GenreIDs    []int   `json:"genre_ids"`
}

type TMDBSearchResponse struct {
	Page         int         `json:"page"`
	Results      []TMDBMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// TMDBMovieDetail is the full record returned by /movie/{id} with
// append_to_response=credits.
type TMDBMovieDetail struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Overview     string      `json:"overview"`
	PosterPath   string      `json:"poster_path"`
	BackdropPath string      `json:"backdrop_path"`
	ReleaseDate  string      `json:"release_date"`
	VoteAverage  float64     `json:"vote_average"`
	Genres       []TMDBGenre `json:"genres"`
	Budget       int64       `json:"budget"`
	Revenue      int64       `json:"revenue"`
	Runtime      int         `json:"runtime"`
	Tagline      string      `json:"tagline"`
	Status       string      `json:"status"`
	ImdbID       string      `json:"imdb_id"`
	Credits      TMDBCredits `json:"credits"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TMDBCredits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// TMDBErrorResponse is TMDB's error envelope, surfaced when the API
// key is rejected or the movie id is unknown.
type TMDBErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
