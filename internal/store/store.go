// Package store holds organisation users for the lifetime of the process.
//
// Users are keyed first by organisation id and then by the organisation's own user
// id. Nothing is persisted, a restart loses everything.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Sentinel errors returned (possibly wrapped) by a [Store].
var (
	ErrOrgNotFound  = errors.New("Organization not found") //nolint:staticcheck // Shown to API users as is
	ErrUserNotFound = errors.New("User not found")         //nolint:staticcheck // Shown to API users as is
	ErrUserExists   = errors.New("User already exists")    //nolint:staticcheck // Shown to API users as is
)

// User is a single member of an organisation.
type User struct {
	CreatedDate  time.Time `json:"created_date"`
	ValidTill    time.Time `json:"valid_till"`
	OrgUserID    string    `json:"org_user_id"`
	Name         string    `json:"name"`
	ContactNo    string    `json:"contact_no"`
	EmployeeCode string    `json:"employee_code"`
}

// Validate reports whether every field of the user has been provided, returning
// an error naming the missing ones if not.
func (u User) Validate() error {
	var missing []string

	if u.OrgUserID == "" {
		missing = append(missing, "org_user_id")
	}

	if u.Name == "" {
		missing = append(missing, "name")
	}

	if u.ContactNo == "" {
		missing = append(missing, "contact_no")
	}

	if u.EmployeeCode == "" {
		missing = append(missing, "employee_code")
	}

	if u.CreatedDate.IsZero() {
		missing = append(missing, "created_date")
	}

	if u.ValidTill.IsZero() {
		missing = append(missing, "valid_till")
	}

	if len(missing) != 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Store is the storage collaborator for organisation users.
type Store interface {
	// CreateOrg registers an empty organisation, doing nothing if it already exists.
	CreateOrg(orgID string)

	// HasOrg reports whether the organisation exists.
	HasOrg(orgID string) bool

	// CreateUser adds a user to an existing organisation.
	CreateUser(orgID string, user User) error

	// GetUser returns a single user.
	GetUser(orgID, userID string) (User, error)

	// UpdateUser replaces an existing user.
	UpdateUser(orgID, userID string, user User) error

	// DeleteUser removes an existing user.
	DeleteUser(orgID, userID string) error
}

// Memory is an in-memory [Store], safe for concurrent use.
type Memory struct {
	orgs map[string]map[string]User // org id -> org user id -> user
	mu   sync.RWMutex
}

// NewMemory returns a new, empty [Memory] store.
func NewMemory() *Memory {
	return &Memory{
		orgs: make(map[string]map[string]User),
	}
}

// CreateOrg implements [Store] for [Memory].
func (m *Memory) CreateOrg(orgID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orgs[orgID]; !ok {
		m.orgs[orgID] = make(map[string]User)
	}
}

// HasOrg implements [Store] for [Memory].
func (m *Memory) HasOrg(orgID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.orgs[orgID]

	return ok
}

// CreateUser implements [Store] for [Memory].
//
// The user is keyed by its own OrgUserID.
func (m *Memory) CreateUser(orgID string, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	users, ok := m.orgs[orgID]
	if !ok {
		return ErrOrgNotFound
	}

	if _, exists := users[user.OrgUserID]; exists {
		return ErrUserExists
	}

	users[user.OrgUserID] = user

	return nil
}

// GetUser implements [Store] for [Memory].
//
// A missing organisation is reported as [ErrUserNotFound].
func (m *Memory) GetUser(orgID, userID string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.orgs[orgID][userID]
	if !ok {
		return User{}, ErrUserNotFound
	}

	return user, nil
}

// UpdateUser implements [Store] for [Memory].
//
// The user is stored under userID regardless of its own OrgUserID.
func (m *Memory) UpdateUser(orgID, userID string, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orgs[orgID][userID]; !ok {
		return ErrUserNotFound
	}

	m.orgs[orgID][userID] = user

	return nil
}

// DeleteUser implements [Store] for [Memory].
func (m *Memory) DeleteUser(orgID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orgs[orgID][userID]; !ok {
		return ErrUserNotFound
	}

	delete(m.orgs[orgID], userID)

	return nil
}
