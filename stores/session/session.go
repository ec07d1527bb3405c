// Package session owns the account list and the active session. At most one
// session exists per storage scope; registration always signs the new
// account in.
package session

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/MRxhaqq/Luxury-Hijabi/auth"
	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
	"github.com/MRxhaqq/Luxury-Hijabi/stores"
)

// MinPasswordLen applies to the recovery flow only; registration accepts any
// non-empty password, matching the storefront's original behavior.
const MinPasswordLen = 6

// Store reads and mutates the account list and the session token.
type Store struct {
	db     storage.Adapter
	secret []byte
}

// New wires a session store over the given adapter. The secret signs the
// persisted session token.
func New(db storage.Adapter, secret []byte) *Store {
	return &Store{db: db, secret: secret}
}

// RegisterInput is the sign-up form payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates an account and signs it in. Email uniqueness is checked
// before username, both case-insensitively.
func (s *Store) Register(input RegisterInput) (models.Account, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return models.Account{}, stores.Validationf("username, email and password are all required")
	}

	accounts := s.accounts()
	if _, taken := lo.Find(accounts, func(a models.Account) bool {
		return strings.EqualFold(a.Email, input.Email)
	}); taken {
		return models.Account{}, stores.Conflictf("an account with email %q already exists", input.Email)
	}
	if _, taken := lo.Find(accounts, func(a models.Account) bool {
		return strings.EqualFold(a.Username, input.Username)
	}); taken {
		return models.Account{}, stores.Conflictf("username %q is already taken", input.Username)
	}

	account := models.Account{
		ID:       uuid.NewString(),
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
	storage.Write(s.db, storage.KeyAccounts, append(accounts, account))
	s.establish(account)
	return account, nil
}

// LoginInput identifies an account by email (exact) or username
// (case-insensitive).
type LoginInput struct {
	Identifier string
	Password   string
}

// Login verifies credentials and establishes the session.
func (s *Store) Login(input LoginInput) (models.Account, error) {
	account, found := lo.Find(s.accounts(), func(a models.Account) bool {
		return a.Email == input.Identifier || strings.EqualFold(a.Username, input.Identifier)
	})
	if !found {
		return models.Account{}, stores.NotFoundf("no account matches %q", input.Identifier)
	}
	if account.Password != input.Password {
		return models.Account{}, stores.Authf("wrong password for %q", input.Identifier)
	}
	s.establish(account)
	return account, nil
}

// Logout drops the session. Accounts are untouched.
func (s *Store) Logout() {
	s.db.Delete(storage.KeySession)
}

// Current returns the active session, if any. A token that fails to verify
// counts as no session.
func (s *Store) Current() (models.Session, bool) {
	raw := storage.Read(s.db, storage.KeySession, "")
	if raw == "" {
		return models.Session{}, false
	}
	session, err := auth.ParseSessionToken(raw, s.secret)
	if err != nil {
		return models.Session{}, false
	}
	return session, true
}

// IsLoggedIn reports whether a session is active.
func (s *Store) IsLoggedIn() bool {
	_, ok := s.Current()
	return ok
}

// Scope is the storage.KeyScope for per-user stores: the signed-in user's id.
func (s *Store) Scope() (string, bool) {
	session, ok := s.Current()
	return session.ID, ok
}

// ChangePassword is the in-session flow: the current password must be
// re-entered and match the stored record before the new one is written.
func (s *Store) ChangePassword(current, next string) error {
	session, ok := s.Current()
	if !ok {
		return stores.NotFoundf("no one is signed in")
	}
	if next == "" {
		return stores.Validationf("new password must not be empty")
	}

	accounts := s.accounts()
	_, idx, found := lo.FindIndexOf(accounts, func(a models.Account) bool { return a.ID == session.ID })
	if !found {
		// Stale session: the token outlived its account.
		return stores.NotFoundf("account for this session no longer exists")
	}
	if accounts[idx].Password != current {
		return stores.Authf("current password does not match")
	}

	accounts[idx].Password = next
	storage.Write(s.db, storage.KeyAccounts, accounts)
	return nil
}

// FindByEmail is step one of password recovery. There is deliberately no
// enumeration protection here: this storefront is a demo.
func (s *Store) FindByEmail(email string) (models.Account, error) {
	account, found := lo.Find(s.accounts(), func(a models.Account) bool {
		return strings.EqualFold(a.Email, email)
	})
	if !found {
		return models.Account{}, stores.NotFoundf("no account with email %q", email)
	}
	return account, nil
}

// ResetPassword is step two of recovery: overwrites the password with no
// re-authentication. A production build needs a proof-of-possession step
// (emailed token) in front of this.
func (s *Store) ResetPassword(email, next, confirm string) error {
	if len(next) < MinPasswordLen {
		return stores.Validationf("password must be at least %d characters", MinPasswordLen)
	}
	if next != confirm {
		return stores.Validationf("passwords do not match")
	}

	accounts := s.accounts()
	_, idx, found := lo.FindIndexOf(accounts, func(a models.Account) bool {
		return strings.EqualFold(a.Email, email)
	})
	if !found {
		return stores.NotFoundf("no account with email %q", email)
	}

	accounts[idx].Password = next
	storage.Write(s.db, storage.KeyAccounts, accounts)
	return nil
}

func (s *Store) accounts() []models.Account {
	return storage.Read(s.db, storage.KeyAccounts, []models.Account(nil))
}

func (s *Store) establish(account models.Account) {
	token, err := auth.IssueSessionToken(account.Session(), s.secret)
	if err != nil {
		// Signing can only fail on a broken secret; leave the old session be.
		return
	}
	storage.Write(s.db, storage.KeySession, token)
}
