package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateReviewRequest struct {
	MovieID int     `json:"movieId" binding:"required,gt=0"`
	Rating  float64 `json:"rating" binding:"required"`
	Content string  `json:"content"`
}

type UpdateReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required"`
	Content string  `json:"content"`
}

type AddWatchlistRequest struct {
	MovieID    int    `json:"movieId" binding:"required,gt=0"`
	Title      string `json:"title" binding:"required"`
	PosterPath string `json:"poster_path"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,url"`
}
