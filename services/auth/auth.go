package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "sanyukt/database/repository/user"
	"sanyukt/models"
	"sanyukt/services/profile"
	"sanyukt/utils"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ErrInvalidToken signals a Google sign-in token that failed verification.
var ErrInvalidToken = errors.New("invalid identity token")

// TokenVerifier verifies a Firebase ID token. Satisfied by *auth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// AuthResponse carries the issued app token and the member record.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService handles the identity-provider login flow.
type AuthService interface {
	// GoogleLogin verifies a Firebase ID token, creates the member on first
	// login or refreshes the identity fields on re-login, and issues the
	// app JWT.
	GoogleLogin(idToken string) (*AuthResponse, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo      userRepo.UserRepository
	Verifier  TokenVerifier
	Checklist profile.Checklist
	TokenTTL  time.Duration
}

func (s *DefaultAuthService) GoogleLogin(idToken string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	decoded, err := s.Verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Google login with unverifiable token", zap.Error(err))
		return nil, ErrInvalidToken
	}

	name := claimString(decoded.Claims, "name")
	if name == "" {
		name = "Member"
	}
	email := claimString(decoded.Claims, "email")
	if email == "" {
		return nil, ErrInvalidToken
	}
	photoURL := claimString(decoded.Claims, "picture")
	phone := claimString(decoded.Claims, "phone_number")

	user, err := s.Repo.GetByFirebaseUID(decoded.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	if user == nil {
		user = &models.User{
			ID:           uuid.NewString(),
			FirebaseUID:  decoded.UID,
			Name:         name,
			PrimaryEmail: email,
			PrimaryPhone: phone,
			PhotoURL:     photoURL,
			Roles:        []string{"user"},
		}
		if err := s.scoreInPlace(user); err != nil {
			return nil, err
		}
		if err := s.Repo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create member: %w", err)
		}
		logger.Info("New member created",
			zap.String("userID", user.ID))
	} else {
		user.Name = name
		user.PrimaryEmail = email
		if phone != "" {
			user.PrimaryPhone = phone
		}
		if photoURL != "" {
			user.PhotoURL = photoURL
		}
		if err := s.scoreInPlace(user); err != nil {
			return nil, err
		}
		set := bson.M{
			"name":              user.Name,
			"primaryEmail":      user.PrimaryEmail,
			"profileCompletion": user.ProfileCompletion,
		}
		if phone != "" {
			set["primaryPhone"] = phone
		}
		if photoURL != "" {
			set["photoUrl"] = photoURL
		}
		refreshed, err := s.Repo.UpdateFields(user.ID, set, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh member identity: %w", err)
		}
		if refreshed != nil {
			user = refreshed
		}
	}

	role := "user"
	if user.IsAdmin() {
		role = "admin"
	}
	token, err := utils.GenerateToken(user.ID, role, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	utils.StoreAuthToken(user.ID, token, s.TokenTTL)

	return &AuthResponse{Token: token, User: user}, nil
}

// scoreInPlace recomputes the completion score from the user's document view.
func (s *DefaultAuthService) scoreInPlace(user *models.User) error {
	doc, err := user.AsMap()
	if err != nil {
		return fmt.Errorf("failed to render member document: %w", err)
	}
	user.ProfileCompletion = s.Checklist.Score(doc)
	return nil
}

func claimString(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
