package repo

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

func newSettingsRepo() *SettingsRepo {
	return NewSettings(New(store.NewMemory(), store.Settings, access.SectionSettings, zap.NewNop()))
}

func TestSettingsLoadDefaults(t *testing.T) {
	s := newSettingsRepo()

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := models.DefaultSettings()
	if got != want {
		t.Errorf("Load on empty store = %+v, want defaults %+v", got, want)
	}
}

func TestSettingsSaveRoundtrip(t *testing.T) {
	s := newSettingsRepo()
	ctx := context.Background()

	in := models.Settings{
		Theme:                "dark",
		NotificationsEnabled: false,
		AdminSettings: models.AdminSettings{
			AllowStudentAccess: true,
			AllowParentAccess:  false,
		},
		LogoURL: "/files/school-logo/x.png",
	}
	if err := s.Save(ctx, models.RoleAdmin, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != in {
		t.Errorf("Load = %+v, want %+v", got, in)
	}

	// Saving again updates the same document, it never grows a second one.
	in.Theme = "light"
	if err := s.Save(ctx, models.RoleAdmin, in); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("settings grew to %d documents, want 1", len(recs))
	}
}

func TestSettingsSaveAdminOnly(t *testing.T) {
	s := newSettingsRepo()
	ctx := context.Background()

	for _, role := range []models.Role{models.RoleTeacher, models.RoleStudent, models.RoleParent} {
		if err := s.Save(ctx, role, models.DefaultSettings()); !apperr.IsPolicy(err) {
			t.Errorf("%s save: got %v, want PolicyError", role, err)
		}
	}
}

func TestSettingsSetLogoPreservesRest(t *testing.T) {
	s := newSettingsRepo()
	ctx := context.Background()

	in := models.DefaultSettings()
	in.Theme = "dark"
	if err := s.Save(ctx, models.RoleAdmin, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.SetLogo(ctx, models.RoleAdmin, "/files/school-logo/y.png"); err != nil {
		t.Fatalf("SetLogo: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.LogoURL != "/files/school-logo/y.png" {
		t.Errorf("LogoURL = %q", got.LogoURL)
	}
	if got.Theme != "dark" {
		t.Errorf("SetLogo reset theme to %q", got.Theme)
	}
}
