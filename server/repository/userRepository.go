package repository

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

const resetTokenTTL = 15 * time.Minute

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidResetToken  = errors.New("Invalid or expired reset token")
)

func hashPassword(password string, salt []byte) []byte {
	return argon2.Key([]byte(password), salt, 3, 32*1024, 4, 32)
}

func (u *User) setPassword(password string) {
	u.Salt = make([]byte, 16)
	rand.Read(u.Salt)
	u.Hash = hashPassword(password, u.Salt)
}

func validEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("Validation failed: invalid email")
	}
	return nil
}

func validPassword(password string) error {
	if len(password) < 6 {
		return errors.New("Validation failed: password must be at least 6 characters")
	}
	return nil
}

func CreateUser(db *Database, email, password string) (User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if err := validEmail(email); err != nil {
		return User{}, err
	}
	if err := validPassword(password); err != nil {
		return User{}, err
	}
	if _, ok := db.UserEmails[email]; ok {
		return User{}, ErrEmailTaken
	}

	u := &User{ID: db.newId(), Email: email, Seen: time.Now()}
	u.setPassword(password)

	db.Users[u.ID] = u
	db.UserEmails[email] = u.ID
	return *u, nil
}

func Authenticate(db *Database, email, password string) (User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id, ok := db.UserEmails[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return User{}, ErrInvalidCredentials
	}

	u := db.Users[id]
	if !bytes.Equal(u.Hash, hashPassword(password, u.Salt)) {
		return User{}, ErrInvalidCredentials
	}

	u.Seen = time.Now()
	return *u, nil
}

func UploadProfile(db *Database, userId int64, p Profile) Profile {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.Profiles[userId] = p
	return p
}

func FindStudent(db *Database, email string) (User, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id, ok := db.UserEmails[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return User{}, false
	}
	return *db.Users[id], true
}

// RequestPasswordReset hands out a reset token for email. Unknown emails get
// an empty token and no error, so callers cannot tell accounts apart.
func RequestPasswordReset(db *Database, email string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if err := validEmail(email); err != nil {
		return "", err
	}
	id, ok := db.UserEmails[email]
	if !ok {
		return "", nil
	}

	now := time.Now()
	for token, t := range db.ResetTokens {
		if now.After(t.ExpiresAt) {
			delete(db.ResetTokens, token)
		}
	}

	token := uuid.NewString()
	db.ResetTokens[token] = &ResetToken{UserID: id, ExpiresAt: now.Add(resetTokenTTL)}
	return token, nil
}

func ResetPassword(db *Database, token, password string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := validPassword(password); err != nil {
		return err
	}
	t, ok := db.ResetTokens[token]
	if !ok || t.Used || time.Now().After(t.ExpiresAt) {
		return ErrInvalidResetToken
	}
	u, ok := db.Users[t.UserID]
	if !ok {
		return errors.New("User not found")
	}

	u.setPassword(password)
	t.Used = true
	return nil
}
