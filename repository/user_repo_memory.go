package repository

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"freightdash/models"
)

// MemoryUserRepo backs the default no-database deployment.
type MemoryUserRepo struct {
	mu     sync.RWMutex
	users  []models.AppUser
	nextID int64
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1}
}

func (r *MemoryUserRepo) CreateUser(user *models.AppUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return errors.New("email already exists")
		}
	}
	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
