package repo

import (
	"context"
	"encoding/json"

	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

// settingsKey identifies the single school-wide settings document.
const settingsKey = "school"

// SettingsRepo reads and writes the one settings document. Reads are
// open to every role; writes are admin-only via the base guard.
type SettingsRepo struct {
	*Repository
}

func NewSettings(base *Repository) *SettingsRepo {
	return &SettingsRepo{Repository: base}
}

// Load returns the settings document, falling back to defaults when it
// has never been written.
func (s *SettingsRepo) Load(ctx context.Context) (models.Settings, error) {
	rec, ok, err := s.find(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}

	out := models.DefaultSettings()
	raw, err := json.Marshal(rec.Fields)
	if err != nil {
		return models.Settings{}, apperr.Collaborator("decode settings", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.Settings{}, apperr.Collaborator("decode settings", err)
	}
	return out, nil
}

// Save merges the given settings over the stored document, creating it
// on first write.
func (s *SettingsRepo) Save(ctx context.Context, role models.Role, settings models.Settings) error {
	if err := s.guard(role); err != nil {
		return err
	}

	fields := map[string]any{
		"key":                  settingsKey,
		"theme":                settings.Theme,
		"notificationsEnabled": settings.NotificationsEnabled,
		"adminSettings": map[string]any{
			"allowStudentAccess": settings.AdminSettings.AllowStudentAccess,
			"allowParentAccess":  settings.AdminSettings.AllowParentAccess,
		},
		"logoUrl": settings.LogoURL,
	}

	rec, ok, err := s.find(ctx)
	if err != nil {
		return err
	}
	if ok {
		if err := s.store.Set(ctx, s.collection, rec.ID, fields); err != nil {
			return err
		}
	} else {
		if _, err := s.store.Add(ctx, s.collection, fields); err != nil {
			return err
		}
	}
	s.bump()
	return nil
}

// SetLogo updates only the logo URL.
func (s *SettingsRepo) SetLogo(ctx context.Context, role models.Role, url string) error {
	settings, err := s.Load(ctx)
	if err != nil {
		return err
	}
	settings.LogoURL = url
	return s.Save(ctx, role, settings)
}

func (s *SettingsRepo) find(ctx context.Context) (store.Record, bool, error) {
	recs, err := s.store.List(ctx, s.collection, store.Eq("key", settingsKey))
	if err != nil {
		return store.Record{}, false, err
	}
	if len(recs) == 0 {
		return store.Record{}, false, nil
	}
	return recs[0], true, nil
}
