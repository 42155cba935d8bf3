package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID  `json:"id"`
	Username          string     `json:"username"`
	Email             string     `json:"email,omitempty"`
	PasswordHash      string     `json:"-"`
	GoogleID          string     `json:"-"`
	ProfileImage      string     `json:"profile_image"`
	QuittingStartDate *time.Time `json:"quitting_start_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Profile is the public projection of a user, safe to return to anyone.
type Profile struct {
	ID                uuid.UUID  `json:"id"`
	Username          string     `json:"username"`
	ProfileImage      string     `json:"profile_image"`
	QuittingStartDate *time.Time `json:"quitting_start_date,omitempty"`
	PostsCount        int        `json:"posts_count"`
	CreatedAt         time.Time  `json:"created_at"`
}

type Post struct {
	ID            int64     `json:"id"`
	AuthorID      uuid.UUID `json:"author_id"`
	Text          string    `json:"text"`
	ImagePath     string    `json:"image_path"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PostView is a post annotated with its author and the caller's like state.
// Author fields are joined at read time, never stored on the post row.
type PostView struct {
	Post
	AuthorUsername     string `json:"author_username"`
	AuthorProfileImage string `json:"author_profile_image"`
	IsLiked            bool   `json:"is_liked"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentView struct {
	Comment
	AuthorUsername     string `json:"author_username"`
	AuthorProfileImage string `json:"author_profile_image"`
}

type RefreshToken struct {
	ID        int64
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

type QuittingAttempt struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"-"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	DaysSurvived int       `json:"days_survived"`
}

type QuittingStats struct {
	Days      int        `json:"days"`
	Hours     int        `json:"hours"`
	Minutes   int        `json:"minutes"`
	IsActive  bool       `json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	Username  string     `json:"username,omitempty"`
}
