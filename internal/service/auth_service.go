package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AuthService struct {
	users      repository.UsersRepositoryI
	refreshers repository.RefreshTokensRepositoryI
	jwtService TokenIssuerI
	google     *oauth2.Config
	httpClient *http.Client
}

func NewAuthService(
	usersRepo repository.UsersRepositoryI,
	refreshRepo repository.RefreshTokensRepositoryI,
	jwtService TokenIssuerI,
	googleCfg GoogleOAuthConfig,
) *AuthService {
	return &AuthService{
		users:      usersRepo,
		refreshers: refreshRepo,
		jwtService: jwtService,
		google: &oauth2.Config{
			ClientID:     googleCfg.ClientID,
			ClientSecret: googleCfg.ClientSecret,
			Endpoint:     googleoauth.Endpoint,
			Scopes:       []string{"openid", "profile", "email"},
			RedirectURL:  googleCfg.RedirectURL,
		},
		httpClient: http.DefaultClient,
	}
}

func (as *AuthService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, *TokenPair, error) {
	if err := validateStruct(*req); err != nil {
		return nil, nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, nil, errors.New("hashing password error: " + err.Error())
	}
	id, err := as.users.Create(ctx, &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, nil, errorvalues.ErrUserExists
		}
		return nil, nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := as.users.FindByID(ctx, id)
	if err != nil {
		return nil, nil, errors.New("repository searching error: " + err.Error())
	}
	pair, err := as.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (as *AuthService) Login(ctx context.Context, username, password string) (*entity.User, *TokenPair, error) {
	user, err := as.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			// same failure as a wrong password, no username
			// enumeration signal
			return nil, nil, errorvalues.ErrWrongCredentials
		}
		return nil, nil, errors.New("repository searching error: " + err.Error())
	}
	if user.PasswordHash == "" {
		// google-only account
		return nil, nil, errorvalues.ErrWrongCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, errorvalues.ErrWrongCredentials
	}
	pair, err := as.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (as *AuthService) GoogleLogin(ctx context.Context, code, accessToken string) (*entity.User, *TokenPair, error) {
	if code != "" {
		token, err := as.google.Exchange(ctx, code)
		if err != nil {
			return nil, nil, errors.New("google token exchange error: " + err.Error())
		}
		accessToken = token.AccessToken
	}
	if accessToken == "" {
		return nil, nil, errorvalues.ErrInvalidInput
	}
	info, err := as.fetchGoogleUserInfo(ctx, accessToken)
	if err != nil {
		return nil, nil, errors.New("fetching google user info error: " + err.Error())
	}
	if info.ID == "" {
		return nil, nil, errorvalues.ErrInvalidToken
	}
	user, err := as.users.FindByGoogleID(ctx, info.ID)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, nil, errors.New("repository searching error: " + err.Error())
		}
		user, err = as.createGoogleUser(ctx, info)
		if err != nil {
			return nil, nil, err
		}
	}
	pair, err := as.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh trades a valid refresh token for a fresh access token. The store
// lookup comes first: a token that was never persisted, already revoked or
// expired fails identically no matter how well it is signed.
func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	record, err := as.refreshers.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTokenNotFound) {
			return "", errorvalues.ErrInvalidToken
		}
		return "", errors.New("repository searching error: " + err.Error())
	}
	claims, err := as.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return "", errorvalues.ErrInvalidToken
		}
		return "", errors.New("parsing refresh token error: " + err.Error())
	}
	if claims.UserID != record.UserID.String() {
		return "", errorvalues.ErrInvalidToken
	}
	accessToken, err := as.jwtService.GenerateAccessToken(&entity.User{
		ID:       record.UserID,
		Username: claims.Username,
	})
	if err != nil {
		return "", errors.New("generating access token error: " + err.Error())
	}
	return accessToken, nil
}

func (as *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := as.refreshers.DeleteByToken(ctx, refreshToken); err != nil {
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (as *AuthService) issueTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	accessToken, err := as.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.New("generating access token error: " + err.Error())
	}
	refreshToken, expiresAt, err := as.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return nil, errors.New("generating refresh token error: " + err.Error())
	}
	err = as.refreshers.Create(ctx, &entity.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, errors.New("persisting refresh token error: " + err.Error())
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (as *AuthService) createGoogleUser(ctx context.Context, info *googleUserInfo) (*entity.User, error) {
	username, err := as.deriveUsername(ctx, info)
	if err != nil {
		return nil, err
	}
	id, err := as.users.Create(ctx, &entity.User{
		Username:     username,
		Email:        info.Email,
		GoogleID:     info.ID,
		ProfileImage: info.Picture,
	})
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := as.users.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// deriveUsername sanitizes the Google display name and suffixes a counter
// until the name is free.
func (as *AuthService) deriveUsername(ctx context.Context, info *googleUserInfo) (string, error) {
	base := sanitizeUsername(info.Name)
	if base == "" {
		base = "user"
	}
	candidate := base
	for i := 1; ; i++ {
		taken, err := as.users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", errors.New("checking username error: " + err.Error())
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

func sanitizeUsername(name string) string {
	var b strings.Builder
	for _, char := range strings.ToLower(name) {
		switch {
		case char >= 'a' && char <= 'z':
			b.WriteRune(char)
		case char >= '0' && char <= '9' && b.Len() > 0:
			b.WriteRune(char)
		case char == ' ' && b.Len() > 0:
			b.WriteRune('_')
		}
	}
	candidate := strings.Trim(b.String(), "_")
	if len(candidate) > 30 {
		candidate = candidate[:30]
	}
	return candidate
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (as *AuthService) fetchGoogleUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, errors.New("creating userinfo request error: " + err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	resp, err := as.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("userinfo request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}
	var info googleUserInfo
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.New("decoding userinfo error: " + err.Error())
	}
	return &info, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
