package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/models"
	"github.com/Nayan-navghane/School-application/app/store"
)

func newTestService() (*Service, store.Store) {
	mem := store.NewMemory()
	return NewService(NewStoreProvider(mem), mem, zap.NewNop()), mem
}

func TestSessionReadyTransition(t *testing.T) {
	svc, _ := newTestService()

	if svc.Session().Ready() {
		t.Fatal("session reported ready before the initial check")
	}

	svc.Start(context.Background())

	if !svc.Session().Ready() {
		t.Fatal("session not ready after the initial check")
	}
	if id, _ := svc.Session().Current(); id != nil {
		t.Errorf("fresh process should start signed out, got %v", id)
	}

	// Ready never drops back to false, signed out or not.
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !svc.Session().Ready() {
		t.Error("ready flag regressed after logout")
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	acct, err := svc.Signup(ctx, "jane@school.test", "correct horse", models.RoleTeacher)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if acct.Role != models.RoleTeacher {
		t.Errorf("signup role = %s, want teacher", acct.Role)
	}

	got, err := svc.Login(ctx, "jane@school.test", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Role != models.RoleTeacher {
		t.Errorf("login role = %s, want teacher", got.Role)
	}
	if got.UID != acct.UID {
		t.Errorf("login uid = %s, want %s", got.UID, acct.UID)
	}

	id, role := svc.Session().Current()
	if id == nil || id.Email != "jane@school.test" {
		t.Errorf("session identity = %v, want jane@school.test", id)
	}
	if role != models.RoleTeacher {
		t.Errorf("session role = %s, want teacher", role)
	}
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Signup(context.Background(), "x@school.test", "pw123456", models.Role("headmaster")); !apperr.IsAuth(err) {
		t.Fatalf("got %v, want AuthError", err)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "dup@school.test", "pw123456", models.RoleStudent); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(ctx, "dup@school.test", "pw123456", models.RoleStudent); !apperr.IsAuth(err) {
		t.Fatalf("second signup: got %v, want AuthError", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Login(ctx, "nobody@school.test", "whatever"); !apperr.IsAuth(err) {
		t.Fatalf("unknown email: got %v, want AuthError", err)
	}

	if _, err := svc.Signup(ctx, "jane@school.test", "correct horse", models.RoleTeacher); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Login(ctx, "jane@school.test", "wrong horse"); !apperr.IsAuth(err) {
		t.Fatalf("wrong password: got %v, want AuthError", err)
	}
}

func TestLoginDefaultsToStudentWithoutRoleRecord(t *testing.T) {
	mem := store.NewMemory()
	provider := NewStoreProvider(mem)
	svc := NewService(provider, mem, zap.NewNop())
	ctx := context.Background()

	// Identity created at the provider without a users record.
	if _, err := provider.SignUp(ctx, "orphan@school.test", "pw123456"); err != nil {
		t.Fatalf("provider signup: %v", err)
	}

	acct, err := svc.Login(ctx, "orphan@school.test", "pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if acct.Role != models.RoleStudent {
		t.Errorf("role = %s, want the student default", acct.Role)
	}
}

func TestLoginCarriesPersonLink(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	acct, err := svc.Signup(ctx, "kid@school.test", "pw123456", models.RoleStudent)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	recs, err := mem.List(ctx, store.Users, store.Eq("uid", acct.UID))
	if err != nil || len(recs) != 1 {
		t.Fatalf("users record: %v %v", recs, err)
	}
	if err := mem.Set(ctx, store.Users, recs[0].ID, map[string]any{"person_id": "s1"}); err != nil {
		t.Fatalf("link person: %v", err)
	}

	got, err := svc.Login(ctx, "kid@school.test", "pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.PersonID != "s1" {
		t.Errorf("person_id = %q, want s1", got.PersonID)
	}
}
