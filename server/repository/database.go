// Package repository keeps the development server's state in memory.
package repository

import (
	"sync"
	"time"
)

type User struct {
	ID    int64
	Email string
	Salt  []byte
	Hash  []byte
	Seen  time.Time
}

type Group struct {
	ID             string
	Name           string
	Owner          int64
	Members        []int64
	SpecifiedClass string
	StudyTimes     []string
}

type Chat struct {
	ID       string
	Name     string
	Members  []int64
	Messages []string
}

type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	Read      bool
	CreatedAt time.Time
}

type Session struct {
	ID        int64
	UserID    int64
	Title     string
	StartTime string
	EndTime   string
	GroupID   string
}

type FriendRequest struct {
	ID        int64
	From      int64
	To        int64
	CreatedAt time.Time
}

// ResetToken is single use and expires after resetTokenTTL.
type ResetToken struct {
	UserID    int64
	ExpiresAt time.Time
	Used      bool
}

type Profile struct {
	Name         string
	Major        string
	Availability string
}

// Database is guarded by one mutex. Every exported function in this package
// takes it for the whole operation.
type Database struct {
	mu sync.Mutex

	Users         map[int64]*User
	UserEmails    map[string]int64
	Groups        map[string]*Group
	GroupIds      []string
	Chats         map[string]*Chat
	ChatIds       []string
	Friends       map[int64][]int64
	Notifications []*Notification
	Sessions      []*Session
	Profiles      map[int64]Profile
	Requests      []*FriendRequest
	ResetTokens   map[string]*ResetToken

	nextId int64
}

func NewDatabase() *Database {
	return &Database{
		Users:       make(map[int64]*User),
		UserEmails:  make(map[string]int64),
		Groups:      make(map[string]*Group),
		Chats:       make(map[string]*Chat),
		Friends:     make(map[int64][]int64),
		Profiles:    make(map[int64]Profile),
		ResetTokens: make(map[string]*ResetToken),
	}
}

func (db *Database) newId() int64 {
	db.nextId++
	return db.nextId
}

func (db *Database) emails(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if u, ok := db.Users[id]; ok {
			out = append(out, u.Email)
		}
	}
	return out
}
