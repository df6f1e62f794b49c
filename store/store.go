package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"demopay-svc/models"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// UserStore holds the in-memory user collection. All state is lost on
// restart. The mutex keeps the duplicate check and the append in one
// critical section so concurrent registrations stay serial.
type UserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create appends a new user unless the username is already taken.
// Username matching is a case-sensitive exact comparison.
func (s *UserStore) Create(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrUserExists
		}
	}
	s.users = append(s.users, user)
	return nil
}

// FindByUsername returns a copy of the matching user.
func (s *UserStore) FindByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// List returns the public view of every user. The result is never nil
// so it marshals as a JSON array even when empty.
func (s *UserStore) List() []models.PublicUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PublicUser, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, models.PublicUser{ID: u.ID, Username: u.Username})
	}
	return out
}

// Delete removes the user with the given id.
func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// PaymentStore holds the in-memory payment collection. Payments are
// never deleted.
type PaymentStore struct {
	mu       sync.Mutex
	payments []models.Payment
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

func (s *PaymentStore) Create(payment models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, payment)
}

// Get returns a copy of the payment with the given order id.
func (s *PaymentStore) Get(orderID string) (models.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.payments {
		if p.OrderID == orderID {
			return p, true
		}
	}
	return models.Payment{}, false
}

// Confirm sets the payment's terminal status and stamps UpdatedAt.
// Repeated confirmations keep overwriting both fields; the demo API is
// deliberately permissive about re-confirming.
func (s *PaymentStore) Confirm(orderID string, succeed bool) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].OrderID == orderID {
			if succeed {
				s.payments[i].Status = models.PaymentStatusSuccess
			} else {
				s.payments[i].Status = models.PaymentStatusFailed
			}
			now := time.Now()
			s.payments[i].UpdatedAt = &now
			return s.payments[i], nil
		}
	}
	return models.Payment{}, ErrPaymentNotFound
}

// List returns all payments sorted by creation time, most recent
// first. The sort runs fresh on every call.
func (s *PaymentStore) List() []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Payment, len(s.payments))
	copy(out, s.payments)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *PaymentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}
