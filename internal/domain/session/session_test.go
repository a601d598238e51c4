package session

import (
	"sync"
	"testing"
)

func TestLoginLogoutLifecycle(t *testing.T) {
	store := NewStore()

	if store.Current().Authenticated {
		t.Fatal("expected new store to be unauthenticated")
	}

	sess, err := store.Login(RoleAdmin, "Admin User")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.Authenticated || sess.Role != RoleAdmin || sess.Name != "Admin User" {
		t.Fatalf("unexpected session after login: %+v", sess)
	}

	store.Logout()
	current := store.Current()
	if current.Authenticated || current.Role != "" || current.Name != "" {
		t.Fatalf("expected zero session after logout, got %+v", current)
	}

	// Logout must be idempotent.
	store.Logout()
	if store.Current().Authenticated {
		t.Fatal("expected repeated logout to stay unauthenticated")
	}
}

func TestLoginReplacesPriorSessionCompletely(t *testing.T) {
	store := NewStore()
	if _, err := store.Login(RoleAdmin, "Admin User"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Logout()
	if _, err := store.Login(RoleEmployee, "John Doe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current := store.Current()
	if current.Role != RoleEmployee || current.Name != "John Doe" {
		t.Fatalf("expected no residual fields from prior session, got %+v", current)
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	store := NewStore()
	if _, err := store.Login("superuser", "Eve"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if store.Current().Authenticated {
		t.Fatal("failed login must not authenticate the session")
	}
}

func TestCurrentReturnsSnapshotByValue(t *testing.T) {
	store := NewStore()
	if _, err := store.Login(RoleTeamLead, "Team Lead User"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := store.Current()
	snapshot.Role = RoleAdmin
	if store.Current().Role != RoleTeamLead {
		t.Fatal("mutating the returned snapshot must not affect the store")
	}
}

func TestConcurrentLoginLogout(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Login(RoleEmployee, "John Doe")
		}()
		go func() {
			defer wg.Done()
			store.Logout()
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, the snapshot must be internally
	// consistent: authenticated implies a role, unauthenticated implies none.
	current := store.Current()
	if current.Authenticated && current.Role == "" {
		t.Fatalf("torn session snapshot: %+v", current)
	}
	if !current.Authenticated && (current.Role != "" || current.Name != "") {
		t.Fatalf("torn session snapshot: %+v", current)
	}
}

func TestRegistryLogoutInvalidatesSession(t *testing.T) {
	registry := NewRegistry()
	id, sess, err := registry.Create(RoleAdmin, "Admin User")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.Authenticated {
		t.Fatal("expected authenticated session from registry create")
	}

	if current, ok := registry.Current(id); !ok || current.Role != RoleAdmin {
		t.Fatalf("expected live session, got %+v ok=%v", current, ok)
	}

	registry.Logout(id)
	if _, ok := registry.Current(id); ok {
		t.Fatal("expected session to be gone after logout")
	}

	// Unknown IDs are a no-op.
	registry.Logout("missing")
}

func TestRegistryRejectsUnknownRole(t *testing.T) {
	registry := NewRegistry()
	if _, _, err := registry.Create("root", "Eve"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
