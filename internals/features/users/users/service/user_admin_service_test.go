package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wasitku_backend/internals/constants"
	auditModel "wasitku_backend/internals/features/admin/audit/model"
	"wasitku_backend/internals/features/users/users/model"
)

// ── mock store ──

type mockUserStore struct {
	users   map[uuid.UUID]*model.User
	audits  []auditModel.AdminActionLog
	deleted []uuid.UUID
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserStore) FindUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.UserEmail == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) CreateUser(_ context.Context, u *model.User) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	cp := *u
	m.users[u.UserID] = &cp
	return nil
}

func (m *mockUserStore) SaveUser(_ context.Context, u *model.User) error {
	cp := *u
	m.users[u.UserID] = &cp
	return nil
}

func (m *mockUserStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockUserStore) WriteAudit(_ context.Context, entry *auditModel.AdminActionLog) error {
	m.audits = append(m.audits, *entry)
	return nil
}

func seedUser(store *mockUserStore, email, role string) uuid.UUID {
	id := uuid.New()
	kab := uuid.New()
	u := &model.User{
		UserID:       id,
		UserEmail:    email,
		UserFullName: "Wasit Uji",
		UserRole:     role,
		UserIsActive: true,
	}
	if role != constants.RoleSuperAdmin {
		u.UserKabupatenKotaID = &kab
	}
	store.users[id] = u
	return id
}

// ── CreateUser ──

func TestCreateUser_HashesPasswordAndAudits(t *testing.T) {
	store := newMockUserStore()
	svc := NewUserAdminService(store)

	actorID := uuid.New()
	kab := uuid.New()
	u, err := svc.CreateUser(context.Background(), actorID, CreateUserInput{
		Email:           "Wasit.Baru@Example.com",
		Password:        "rahasia-sekali",
		FullName:        "Wasit Baru",
		Role:            constants.RoleWasit,
		KabupatenKotaID: &kab,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if u.UserEmail != "wasit.baru@example.com" {
		t.Errorf("email tidak dinormalisasi: %s", u.UserEmail)
	}
	if u.UserPassword == "rahasia-sekali" || !strings.HasPrefix(u.UserPassword, "$2") {
		t.Errorf("password tidak di-hash: %s", u.UserPassword)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte("rahasia-sekali")); err != nil {
		t.Errorf("hash tidak cocok dengan password: %v", err)
	}

	if len(store.audits) != 1 || store.audits[0].LogAction != auditModel.ActionCreateUser {
		t.Errorf("audit create tidak tercatat: %+v", store.audits)
	}
	if store.audits[0].LogActorID != actorID {
		t.Errorf("actor audit = %s, want %s", store.audits[0].LogActorID, actorID)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store := newMockUserStore()
	seedUser(store, "sudah@ada.id", constants.RoleWasit)
	svc := NewUserAdminService(store)

	kab := uuid.New()
	_, err := svc.CreateUser(context.Background(), uuid.New(), CreateUserInput{
		Email:           "SUDAH@ada.id",
		Password:        "password123",
		FullName:        "Duplikat",
		Role:            constants.RoleWasit,
		KabupatenKotaID: &kab,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestCreateUser_RegionRequiredForNonSuperAdmin(t *testing.T) {
	svc := NewUserAdminService(newMockUserStore())

	for _, role := range []string{constants.RoleWasit, constants.RoleAdmin} {
		_, err := svc.CreateUser(context.Background(), uuid.New(), CreateUserInput{
			Email:    "tanpa.wilayah@example.com",
			Password: "password123",
			FullName: "Tanpa Wilayah",
			Role:     role,
		})
		if !errors.Is(err, ErrRegionRequired) {
			t.Errorf("role %s: err = %v, want ErrRegionRequired", role, err)
		}
	}

	// super_admin boleh tanpa wilayah
	if _, err := svc.CreateUser(context.Background(), uuid.New(), CreateUserInput{
		Email:    "pusat@example.com",
		Password: "password123",
		FullName: "Admin Pusat",
		Role:     constants.RoleSuperAdmin,
	}); err != nil {
		t.Errorf("super_admin tanpa wilayah: %v", err)
	}
}

func TestCreateUser_InvalidRole(t *testing.T) {
	svc := NewUserAdminService(newMockUserStore())

	_, err := svc.CreateUser(context.Background(), uuid.New(), CreateUserInput{
		Email:    "x@example.com",
		Password: "password123",
		FullName: "X",
		Role:     "manager",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

// ── DeleteUser ──

func TestDeleteUser_RejectsSelf(t *testing.T) {
	store := newMockUserStore()
	actorID := seedUser(store, "admin@example.com", constants.RoleSuperAdmin)
	svc := NewUserAdminService(store)

	if err := svc.DeleteUser(context.Background(), actorID, actorID); !errors.Is(err, ErrSelfDeletion) {
		t.Errorf("err = %v, want ErrSelfDeletion", err)
	}
}

func TestDeleteUser_RejectsSuperAdminTarget(t *testing.T) {
	store := newMockUserStore()
	targetID := seedUser(store, "owner@example.com", constants.RoleSuperAdmin)
	svc := NewUserAdminService(store)

	if err := svc.DeleteUser(context.Background(), uuid.New(), targetID); !errors.Is(err, ErrSuperAdminTarget) {
		t.Errorf("err = %v, want ErrSuperAdminTarget", err)
	}
	if len(store.deleted) != 0 {
		t.Errorf("store tersentuh: %v", store.deleted)
	}
}

func TestDeleteUser_AuditsSnapshot(t *testing.T) {
	store := newMockUserStore()
	targetID := seedUser(store, "wasit@example.com", constants.RoleWasit)
	svc := NewUserAdminService(store)

	actorID := uuid.New()
	if err := svc.DeleteUser(context.Background(), actorID, targetID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(store.audits) != 1 {
		t.Fatalf("audit = %d, want 1", len(store.audits))
	}
	entry := store.audits[0]
	if entry.LogAction != auditModel.ActionDeleteUser {
		t.Errorf("action = %s", entry.LogAction)
	}
	if entry.LogMetadata["email"] != "wasit@example.com" {
		t.Errorf("snapshot email = %v", entry.LogMetadata["email"])
	}
	if entry.LogMetadata["role"] != constants.RoleWasit {
		t.Errorf("snapshot role = %v", entry.LogMetadata["role"])
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc := NewUserAdminService(newMockUserStore())
	if err := svc.DeleteUser(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

// ── UpdateEmail ──

func TestUpdateEmail_AuditsBeforeAfter(t *testing.T) {
	store := newMockUserStore()
	targetID := seedUser(store, "lama@example.com", constants.RoleWasit)
	svc := NewUserAdminService(store)

	u, err := svc.UpdateEmail(context.Background(), uuid.New(), targetID, "Baru@Example.com")
	if err != nil {
		t.Fatalf("update email: %v", err)
	}
	if u.UserEmail != "baru@example.com" {
		t.Errorf("email = %s", u.UserEmail)
	}

	if len(store.audits) != 1 {
		t.Fatalf("audit = %d, want 1", len(store.audits))
	}
	meta := store.audits[0].LogMetadata
	if meta["before"] != "lama@example.com" || meta["after"] != "baru@example.com" {
		t.Errorf("audit before/after salah: %v", meta)
	}
}

func TestUpdateEmail_Duplicate(t *testing.T) {
	store := newMockUserStore()
	targetID := seedUser(store, "satu@example.com", constants.RoleWasit)
	seedUser(store, "dua@example.com", constants.RoleWasit)
	svc := NewUserAdminService(store)

	_, err := svc.UpdateEmail(context.Background(), uuid.New(), targetID, "dua@example.com")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUpdateEmail_SameEmailNoop(t *testing.T) {
	store := newMockUserStore()
	targetID := seedUser(store, "tetap@example.com", constants.RoleWasit)
	svc := NewUserAdminService(store)

	if _, err := svc.UpdateEmail(context.Background(), uuid.New(), targetID, "TETAP@example.com"); err != nil {
		t.Fatalf("update email sama: %v", err)
	}
	if len(store.audits) != 0 {
		t.Errorf("noop tidak boleh menulis audit: %d", len(store.audits))
	}
}
