package profile

import (
	"reflect"
	"testing"
	"time"

	"sanyukt/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo keeps a single user in memory and applies updates the way the
// Mongo repository does: one $set/$unset against the stored document.
type fakeUserRepo struct {
	user    *models.User
	updates int
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, nil
	}
	u := *f.user
	return &u, nil
}

func (f *fakeUserRepo) GetByFirebaseUID(uid string) (*models.User, error) {
	if f.user == nil || f.user.FirebaseUID != uid {
		return nil, nil
	}
	u := *f.user
	return &u, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.user = user
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
	f.updates++
	u := updated
	return &u, nil
}

func (f *fakeUserRepo) FindByAudience(models.AudienceType, string, bson.M) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountUsers() (int64, error) { return 1, nil }

func (f *fakeUserRepo) CountByMinCompletion(int) (int64, error) { return 0, nil }

func newTestService() (*DefaultProfileService, *fakeUserRepo) {
	repo := &fakeUserRepo{user: &models.User{
		ID:           "u1",
		FirebaseUID:  "fb1",
		Name:         "Member",
		PrimaryEmail: "member@example.com",
		Roles:        []string{"user"},
	}}
	return &DefaultProfileService{Repo: repo, Checklist: DefaultChecklist}, repo
}

func TestUpdateProfileRecomputesCompletion(t *testing.T) {
	svc, repo := newTestService()

	updated, err := svc.UpdateProfile("u1", map[string]any{
		"city":    "Jaipur",
		"country": "India",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.City != "Jaipur" || updated.Country != "India" {
		t.Errorf("fields not applied: %+v", updated)
	}
	if updated.ProfileCompletion <= 0 {
		t.Errorf("completion %d, want > 0", updated.ProfileCompletion)
	}
	if repo.user.ProfileCompletion != updated.ProfileCompletion {
		t.Errorf("persisted completion differs from returned")
	}
}

func TestUpdateProfileIdempotent(t *testing.T) {
	svc, repo := newTestService()

	update := map[string]any{"city": "Jaipur", "state": "Rajasthan"}
	first, err := svc.UpdateProfile("u1", map[string]any{"city": "Jaipur", "state": "Rajasthan"})
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := svc.UpdateProfile("u1", update)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if first.ProfileCompletion != second.ProfileCompletion {
		t.Errorf("scores differ across identical updates: %d vs %d",
			first.ProfileCompletion, second.ProfileCompletion)
	}
	if first.City != second.City || first.State != second.State {
		t.Errorf("state differs across identical updates")
	}
	if repo.user.City != "Jaipur" {
		t.Errorf("persisted city %q", repo.user.City)
	}
}

func TestUpdateProfileRejectionPersistsNothing(t *testing.T) {
	svc, repo := newTestService()

	before, _ := repo.user.AsMap()
	_, err := svc.UpdateProfile("u1", map[string]any{
		"employmentType": "Other",
		"city":           "Jaipur",
	})
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	after, _ := repo.user.AsMap()
	if !reflect.DeepEqual(before, after) {
		t.Error("rejected update mutated the stored document")
	}
	if repo.updates != 0 {
		t.Errorf("repo saw %d writes for a rejected update", repo.updates)
	}
}

func TestUpdateProfileRejectsWrongTypedValues(t *testing.T) {
	svc, repo := newTestService()
	before, _ := repo.user.AsMap()

	for _, update := range []map[string]any{
		{"designation": 12345},
		{"isEmployer": "yes"},
		{"dateOfBirth": "yesterday"},
	} {
		_, err := svc.UpdateProfile("u1", update)
		if _, ok := AsValidationError(err); !ok {
			t.Fatalf("update %v: expected ValidationError, got %v", update, err)
		}
	}
	if repo.updates != 0 {
		t.Errorf("repo saw %d writes for wrong-typed updates", repo.updates)
	}
	after, _ := repo.user.AsMap()
	if !reflect.DeepEqual(before, after) {
		t.Error("wrong-typed update mutated the stored document")
	}
}

func TestUpdateProfileStoresParsedDate(t *testing.T) {
	svc, repo := newTestService()

	updated, err := svc.UpdateProfile("u1", map[string]any{
		"dateOfBirth": "1990-05-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.DateOfBirth == nil || updated.DateOfBirth.Year() != 1990 {
		t.Errorf("dateOfBirth=%v, want parsed date", updated.DateOfBirth)
	}
	if repo.user.DateOfBirth == nil {
		t.Error("parsed date not persisted")
	}
}

func TestUpdateProfileOtherRoundTrip(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateProfile("u1", map[string]any{
		"employmentType":      "Other",
		"employmentTypeOther": "Freelance Consultant",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := Resolve(updated.EmploymentType, updated.EmploymentTypeOther); got != "Freelance Consultant" {
		t.Errorf("resolved employment %q, want the override text", got)
	}
}

func TestUpdateProfileStripsImmutableFields(t *testing.T) {
	svc, repo := newTestService()

	updated, err := svc.UpdateProfile("u1", map[string]any{
		"primaryEmail":      "spoofed@example.com",
		"roles":             []string{"admin"},
		"profileCompletion": 100,
		"city":              "Jaipur",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PrimaryEmail != "member@example.com" {
		t.Errorf("primaryEmail overwritten to %q", updated.PrimaryEmail)
	}
	if len(repo.user.Roles) != 1 || repo.user.Roles[0] != "user" {
		t.Errorf("roles overwritten to %v", repo.user.Roles)
	}
}

func TestUpdateProfileMigratesLegacyEmails(t *testing.T) {
	svc, repo := newTestService()
	repo.user.AdditionalEmails = []string{"old-a@example.com", "old-b@example.com"}

	updated, err := svc.UpdateProfile("u1", map[string]any{
		"additionalEmails": []any{"new@example.com", "ignored@example.com"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.AdditionalEmail != "new@example.com" {
		t.Errorf("additionalEmail=%q, want migrated first entry", updated.AdditionalEmail)
	}
	if len(repo.user.AdditionalEmails) != 0 {
		t.Errorf("deprecated list still stored: %v", repo.user.AdditionalEmails)
	}
}

func TestGetProfileFallsBackToDeprecatedEmail(t *testing.T) {
	svc, repo := newTestService()
	repo.user.AdditionalEmails = []string{"legacy@example.com"}

	user, err := svc.GetProfile("u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user.AdditionalEmail != "legacy@example.com" {
		t.Errorf("additionalEmail=%q, want legacy fallback", user.AdditionalEmail)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.GetProfile("missing"); err != ErrUserNotFound {
		t.Errorf("err=%v, want ErrUserNotFound", err)
	}
}
