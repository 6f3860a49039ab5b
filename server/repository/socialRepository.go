package repository

import (
	"errors"
	"slices"
	"time"

	"github.com/thatmoosee/Study-Buddy/util/model"
)

func AddFriend(db *Database, user, friend int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if user == friend {
		return errors.New("Cannot add yourself as a friend")
	}
	if _, ok := db.Users[friend]; !ok {
		return errors.New("User not found")
	}
	if slices.Contains(db.Friends[user], friend) {
		return errors.New("Already friends")
	}

	db.Friends[user] = append(db.Friends[user], friend)
	db.Friends[friend] = append(db.Friends[friend], user)
	db.notify(friend, "You have a new friend!")
	return nil
}

func RemoveFriend(db *Database, user, friend int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := slices.Index(db.Friends[user], friend)
	if i < 0 {
		return errors.New("Not friends")
	}
	db.Friends[user] = slices.Delete(db.Friends[user], i, i+1)
	if j := slices.Index(db.Friends[friend], user); j >= 0 {
		db.Friends[friend] = slices.Delete(db.Friends[friend], j, j+1)
	}
	return nil
}

func ListFriends(db *Database, user int64) []model.ID {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]model.ID, 0, len(db.Friends[user]))
	for _, f := range db.Friends[user] {
		out = append(out, model.NumericID(f))
	}
	return out
}

// notify expects db.mu to be held.
func (db *Database) notify(user int64, message string) {
	db.Notifications = append(db.Notifications, &Notification{
		ID:        db.newId(),
		UserID:    user,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

func SendNotification(db *Database, user int64, message string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.notify(user, message)
}

func ListNotifications(db *Database, user int64) []model.Notification {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]model.Notification, 0)
	for _, n := range db.Notifications {
		if n.UserID == user {
			out = append(out, model.Notification{
				ID:        model.NumericID(n.ID),
				Message:   n.Message,
				Read:      n.Read,
				CreatedAt: n.CreatedAt.Format(time.RFC3339),
			})
		}
	}
	return out
}

func MarkRead(db *Database, user, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, n := range db.Notifications {
		if n.ID == id && n.UserID == user {
			n.Read = true
			return nil
		}
	}
	return errors.New("Notification not found")
}

func DeleteNotification(db *Database, user, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := slices.IndexFunc(db.Notifications, func(n *Notification) bool {
		return n.ID == id && n.UserID == user
	})
	if i < 0 {
		return errors.New("Notification not found")
	}
	db.Notifications = slices.Delete(db.Notifications, i, i+1)
	return nil
}

// CreateSessions schedules one session per group member and notifies each.
func CreateSessions(db *Database, creator int64, groupId, title, start, end string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if start > end {
		return errors.New("Start time must be before end time")
	}
	g, ok := db.Groups[groupId]
	if !ok {
		return ErrGroupNotFound
	}
	if !slices.Contains(g.Members, creator) {
		return errors.New("Not a member of this group")
	}

	who := "Someone"
	if u, ok := db.Users[creator]; ok {
		who = u.Email
	}
	for _, member := range g.Members {
		db.Sessions = append(db.Sessions, &Session{
			ID:        db.newId(),
			UserID:    member,
			Title:     title,
			StartTime: start,
			EndTime:   end,
			GroupID:   groupId,
		})
		if member == creator {
			db.notify(member, "You created a Study Schedule for Group "+g.Name+" from "+start+" to "+end)
		} else {
			db.notify(member, who+" created a Study Schedule for Group "+g.Name+" from "+start+" to "+end)
		}
	}
	return nil
}

func ListSessions(db *Database, user int64) []model.StudySession {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]model.StudySession, 0)
	for _, s := range db.Sessions {
		if s.UserID == user {
			out = append(out, model.StudySession{
				ID:        model.NumericID(s.ID),
				Title:     s.Title,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				GroupID:   model.TextID(s.GroupID),
			})
		}
	}
	return out
}

func DeleteSession(db *Database, user, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := slices.IndexFunc(db.Sessions, func(s *Session) bool {
		return s.ID == id && s.UserID == user
	})
	if i < 0 {
		return errors.New("Session not found")
	}
	db.Sessions = slices.Delete(db.Sessions, i, i+1)
	return nil
}
