package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"sanyukt/models"
	"sanyukt/services/profile"
	"sanyukt/utils"

	fbauth "firebase.google.com/go/v4/auth"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeVerifier struct {
	token *fbauth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	return f.token, f.err
}

type fakeUserRepo struct {
	user    *models.User
	created int
	updated int
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if f.user != nil && f.user.ID == id {
		u := *f.user
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByFirebaseUID(uid string) (*models.User, error) {
	if f.user != nil && f.user.FirebaseUID == uid {
		u := *f.user
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	u := *user
	f.user = &u
	f.created++
	return nil
}

func (f *fakeUserRepo) UpdateFields(id string, set bson.M, unset []string) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, nil
	}
	doc, err := f.user.AsMap()
	if err != nil {
		return nil, err
	}
	for k, v := range set {
		doc[k] = v
	}
	for _, k := range unset {
		delete(doc, k)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var updated models.User
	if err := bson.Unmarshal(raw, &updated); err != nil {
		return nil, err
	}
	f.user = &updated
	f.updated++
	u := updated
	return &u, nil
}

func (f *fakeUserRepo) FindByAudience(audience models.AudienceType, category string, projection bson.M) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountUsers() (int64, error) { return 0, nil }

func (f *fakeUserRepo) CountByMinCompletion(min int) (int64, error) { return 0, nil }

func googleToken(uid string, claims map[string]any) *fbauth.Token {
	return &fbauth.Token{UID: uid, Claims: claims}
}

func newService(repo *fakeUserRepo, verifier TokenVerifier) *DefaultAuthService {
	return &DefaultAuthService{
		Repo:      repo,
		Verifier:  verifier,
		Checklist: profile.DefaultChecklist,
		TokenTTL:  time.Hour,
	}
}

func TestGoogleLoginCreatesMember(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newService(repo, &fakeVerifier{token: googleToken("fb-1", map[string]any{
		"name":    "Anita Jain",
		"email":   "anita@example.com",
		"picture": "https://example.com/anita.png",
	})})

	resp, err := svc.GoogleLogin("id-token")
	if err != nil {
		t.Fatalf("GoogleLogin: %v", err)
	}
	if repo.created != 1 {
		t.Fatalf("created %d members, want 1", repo.created)
	}
	u := resp.User
	if u.ID == "" {
		t.Error("new member must get an internal id")
	}
	if u.FirebaseUID != "fb-1" {
		t.Errorf("firebase uid = %q", u.FirebaseUID)
	}
	if u.Name != "Anita Jain" || u.PrimaryEmail != "anita@example.com" {
		t.Errorf("identity fields not copied: %q / %q", u.Name, u.PrimaryEmail)
	}
	if len(u.Roles) != 1 || u.Roles[0] != "user" {
		t.Errorf("roles = %v, want [user]", u.Roles)
	}
	if u.ProfileCompletion <= 0 {
		t.Error("completion must count the identity fields already filled")
	}

	sub, role, err := utils.ExtractClaimsFromToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if sub != u.ID || role != "user" {
		t.Errorf("token claims = (%q, %q), want (%q, user)", sub, role, u.ID)
	}
}

func TestGoogleLoginRefreshesExistingMember(t *testing.T) {
	repo := &fakeUserRepo{user: &models.User{
		ID:           "u-1",
		FirebaseUID:  "fb-1",
		Name:         "Old Name",
		PrimaryEmail: "old@example.com",
		PrimaryPhone: "9000000001",
		Roles:        []string{"user"},
		City:         "Pune",
	}}
	svc := newService(repo, &fakeVerifier{token: googleToken("fb-1", map[string]any{
		"name":  "New Name",
		"email": "new@example.com",
	})})

	resp, err := svc.GoogleLogin("id-token")
	if err != nil {
		t.Fatalf("GoogleLogin: %v", err)
	}
	if repo.created != 0 || repo.updated != 1 {
		t.Fatalf("created=%d updated=%d, want refresh only", repo.created, repo.updated)
	}
	u := resp.User
	if u.Name != "New Name" || u.PrimaryEmail != "new@example.com" {
		t.Errorf("identity fields not refreshed: %q / %q", u.Name, u.PrimaryEmail)
	}
	if u.PrimaryPhone != "9000000001" {
		t.Errorf("phone = %q, must survive a login without a phone claim", u.PrimaryPhone)
	}
	if u.City != "Pune" {
		t.Errorf("profile field city = %q, must survive re-login", u.City)
	}
}

func TestGoogleLoginAdminRole(t *testing.T) {
	repo := &fakeUserRepo{user: &models.User{
		ID:           "u-admin",
		FirebaseUID:  "fb-admin",
		Name:         "Admin",
		PrimaryEmail: "admin@example.com",
		Roles:        []string{"user", "admin"},
	}}
	svc := newService(repo, &fakeVerifier{token: googleToken("fb-admin", map[string]any{
		"name":  "Admin",
		"email": "admin@example.com",
	})})

	resp, err := svc.GoogleLogin("id-token")
	if err != nil {
		t.Fatalf("GoogleLogin: %v", err)
	}
	_, role, err := utils.ExtractClaimsFromToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if role != "admin" {
		t.Errorf("role claim = %q, want admin", role)
	}
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	svc := newService(&fakeUserRepo{}, &fakeVerifier{err: errors.New("expired")})
	if _, err := svc.GoogleLogin("bad"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestGoogleLoginRequiresEmailClaim(t *testing.T) {
	svc := newService(&fakeUserRepo{}, &fakeVerifier{token: googleToken("fb-1", map[string]any{
		"name": "No Email",
	})})
	if _, err := svc.GoogleLogin("id-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}
