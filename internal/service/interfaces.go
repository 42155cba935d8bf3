package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freshstart/freshstart/pkg/entity"
	jwtservice "github.com/freshstart/freshstart/pkg/jwt_service"
)

// TokenIssuerI is the slice of the JWT service the auth flow needs.
type TokenIssuerI interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(user *entity.User) (string, time.Time, error)
	ParseRefreshToken(tokenString string) (*jwtservice.JWTClaims, error)
}

type RegisterRequest struct {
	Username string `validate:"required,alphanum_underscore,min=3,max=30"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=12,max=72"`
}

type UpdateProfileRequest struct {
	Username     string `validate:"omitempty,alphanum_underscore,min=3,max=30"`
	Email        string `validate:"omitempty,email,max=254"`
	ProfileImage string `validate:"omitempty,max=512"`
}

type CreatePostRequest struct {
	Text      string `validate:"required,notblank,min=1,max=2000"`
	ImagePath string `validate:"omitempty,max=512"`
}

type UpdatePostRequest struct {
	Text      string `validate:"required,notblank,min=1,max=2000"`
	ImagePath string `validate:"omitempty,max=512"`
}

// TokenPair is what every successful authentication hands back.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// FeedPage carries one slice of the feed. NextCursor is nil when pagination
// is exhausted.
type FeedPage struct {
	Posts      []*entity.PostView
	NextCursor *int64
}

type LikeInfo struct {
	Count int  `json:"count"`
	Liked bool `json:"liked"`
}

type AuthServiceI interface {
	// Validates credentials, hashes the password, stores the user and issues
	// a token pair. The returned user never carries the password hash.
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, *TokenPair, error)
	// Unknown username and wrong password fail identically.
	Login(ctx context.Context, username, password string) (*entity.User, *TokenPair, error)
	// Resolves a Google authorization code (or, if code is empty, an access
	// token the client already holds) to a profile, creating the account on
	// first sign-in.
	GoogleLogin(ctx context.Context, code, accessToken string) (*entity.User, *TokenPair, error)
	// Exchanges a persisted, unexpired refresh token for a new access token.
	// The refresh token itself stays valid until logout or expiry.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Revokes a refresh token. Revoking an unknown token is not an error.
	Logout(ctx context.Context, refreshToken string) error
}

type PostsServiceI interface {
	Create(ctx context.Context, authorID uuid.UUID, req *CreatePostRequest) (*entity.PostView, error)
	GetFeed(ctx context.Context, viewerID uuid.UUID, cursor int64, limit int) (*FeedPage, error)
	GetByID(ctx context.Context, viewerID uuid.UUID, postID int64) (*entity.PostView, error)
	// Update and Delete reject callers that don't own the post.
	Update(ctx context.Context, userID uuid.UUID, postID int64, req *UpdatePostRequest) (*entity.PostView, error)
	Delete(ctx context.Context, userID uuid.UUID, postID int64) error
	GetUserPosts(ctx context.Context, viewerID uuid.UUID, username string) ([]*entity.PostView, error)
}

type LikesServiceI interface {
	Like(ctx context.Context, postID int64, userID uuid.UUID) error
	Unlike(ctx context.Context, postID int64, userID uuid.UUID) error
	Info(ctx context.Context, postID int64, userID uuid.UUID) (*LikeInfo, error)
}

type CommentsServiceI interface {
	Create(ctx context.Context, authorID uuid.UUID, postID int64, text string) (*entity.CommentView, error)
	ListByPost(ctx context.Context, postID int64) ([]*entity.CommentView, error)
	Delete(ctx context.Context, userID uuid.UUID, commentID int64) error
}

type UserServiceI interface {
	GetProfile(ctx context.Context, username string) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
}

type QuittingServiceI interface {
	Stats(ctx context.Context, userID uuid.UUID) (*entity.QuittingStats, error)
	Start(ctx context.Context, userID uuid.UUID) (*entity.QuittingStats, error)
	Stop(ctx context.Context, userID uuid.UUID) (*entity.QuittingAttempt, error)
	UpdateDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.QuittingStats, error)
	History(ctx context.Context, userID uuid.UUID) ([]*entity.QuittingAttempt, error)
	// Public variants carry the username alongside the numbers.
	PublicStats(ctx context.Context, userID uuid.UUID) (*entity.QuittingStats, error)
	PublicHistory(ctx context.Context, userID uuid.UUID) ([]*entity.QuittingAttempt, error)
}

type SearchServiceI interface {
	// Matches the query against the newest posts with an LLM ranking pass.
	// A response the model fails to shape correctly yields zero matches.
	Search(ctx context.Context, viewerID uuid.UUID, query string) ([]*entity.PostView, error)
}
