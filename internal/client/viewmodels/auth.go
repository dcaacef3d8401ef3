package viewmodels

import (
	"context"
	"sync"

	"github.com/example/covermate/internal/client/models"
	"github.com/example/covermate/internal/client/services"
	"github.com/example/covermate/internal/client/session"
)

// AuthViewModel holds the state of the login, register and profile
// screens: the current user snapshot, the authenticated flag, one
// in-progress flag, and one alert slot per operation.
//
// Operations are fire-and-forget: each spawns a goroutine that performs
// one round trip and publishes the outcome under the view model's mutex,
// which serves as the serialized state-update point. A second invocation
// while one is in flight is ignored. Wait blocks until the in-flight
// operation has published, which is how the single consumer observes
// completion.
type AuthViewModel struct {
	auth    services.AuthService
	session session.Store

	mu sync.Mutex
	wg sync.WaitGroup

	user            *models.User
	authenticated   bool
	loading         bool
	registerMessage string
	loginAlert      *Alert
	registerAlert   *Alert
	profileAlert    *Alert
}

// NewAuthViewModel constructs the view model over the auth service and
// session store.
func NewAuthViewModel(auth services.AuthService, store session.Store) *AuthViewModel {
	return &AuthViewModel{auth: auth, session: store}
}

// CheckAuthStatus seeds the authenticated flag from the persisted token,
// so a restarted client resumes its session.
func (vm *AuthViewModel) CheckAuthStatus(ctx context.Context) {
	authenticated := vm.session.IsAuthenticated(ctx)
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.authenticated = authenticated
}

// begin flips the loading flag and clears the given alert slot. It
// reports false when another operation is already in flight, in which
// case the invocation is dropped.
func (vm *AuthViewModel) begin(alertSlot **Alert) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.loading {
		return false
	}
	vm.loading = true
	*alertSlot = nil
	vm.wg.Add(1)
	return true
}

// Login authenticates asynchronously. On success the user snapshot is
// replaced and the authenticated flag flips; on failure the login alert
// is set.
func (vm *AuthViewModel) Login(email, password string) {
	if !vm.begin(&vm.loginAlert) {
		return
	}

	go func() {
		defer vm.wg.Done()
		user, err := vm.auth.Login(context.Background(), email, password)

		vm.mu.Lock()
		defer vm.mu.Unlock()
		vm.loading = false
		if err != nil {
			a := authAlert(err)
			vm.loginAlert = &a
			return
		}
		vm.user = user
		vm.authenticated = true
	}()
}

// Register creates an account asynchronously. Success stores the server
// confirmation message and leaves the session unauthenticated.
func (vm *AuthViewModel) Register(name, email, password string) {
	if !vm.begin(&vm.registerAlert) {
		return
	}

	go func() {
		defer vm.wg.Done()
		msg, err := vm.auth.Register(context.Background(), name, email, password)

		vm.mu.Lock()
		defer vm.mu.Unlock()
		vm.loading = false
		if err != nil {
			a := authAlert(err)
			vm.registerAlert = &a
			return
		}
		vm.registerMessage = msg
		vm.authenticated = false
	}()
}

// UpdateProfile pushes the edited user asynchronously. Success replaces
// the snapshot with the server's canonical copy and raises a success
// alert; failure raises the profile alert.
func (vm *AuthViewModel) UpdateProfile(user *models.User) {
	if !vm.begin(&vm.profileAlert) {
		return
	}

	go func() {
		defer vm.wg.Done()
		updated, err := vm.auth.UpdateProfile(context.Background(), user)

		vm.mu.Lock()
		defer vm.mu.Unlock()
		vm.loading = false
		if err != nil {
			a := authAlert(err)
			vm.profileAlert = &a
			return
		}
		vm.user = updated
		a := NewAlert("Success", "Your profile has been updated successfully.")
		vm.profileAlert = &a
	}()
}

// Logout drops the session synchronously; it cannot fail.
func (vm *AuthViewModel) Logout(ctx context.Context) {
	vm.auth.Logout(ctx)
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.user = nil
	vm.authenticated = false
}

// Wait blocks until the in-flight operation, if any, has published its
// outcome.
func (vm *AuthViewModel) Wait() { vm.wg.Wait() }

func (vm *AuthViewModel) IsLoading() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loading
}

func (vm *AuthViewModel) IsAuthenticated() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.authenticated
}

// User returns the current snapshot. The pointer is shared; treat it as
// read-only and hand copies to editors.
func (vm *AuthViewModel) User() *models.User {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.user
}

func (vm *AuthViewModel) RegisterMessage() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.registerMessage
}

func (vm *AuthViewModel) LoginAlert() *Alert {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loginAlert
}

func (vm *AuthViewModel) RegisterAlert() *Alert {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.registerAlert
}

func (vm *AuthViewModel) ProfileAlert() *Alert {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.profileAlert
}
