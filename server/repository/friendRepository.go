package repository

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/thatmoosee/Study-Buddy/util/model"
)

var ErrRequestNotFound = errors.New("Friend request not found")

// SendFriendRequest files a pending request from user to the account behind
// email and notifies the recipient.
func SendFriendRequest(db *Database, from int64, email string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	to, ok := db.UserEmails[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return errors.New("User not found")
	}
	if to == from {
		return errors.New("Cannot send friend request to yourself")
	}
	if slices.Contains(db.Friends[from], to) {
		return errors.New("Already friends")
	}
	for _, r := range db.Requests {
		if (r.From == from && r.To == to) || (r.From == to && r.To == from) {
			return errors.New("Friend request already sent")
		}
	}

	db.Requests = append(db.Requests, &FriendRequest{
		ID:        db.newId(),
		From:      from,
		To:        to,
		CreatedAt: time.Now(),
	})
	db.notify(to, "You have a new friend request!")
	return nil
}

// PendingRequests lists requests addressed to user, oldest first.
func PendingRequests(db *Database, user int64) []model.FriendRequest {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]model.FriendRequest, 0)
	for _, r := range db.Requests {
		if r.To != user {
			continue
		}
		from := ""
		if u, ok := db.Users[r.From]; ok {
			from = u.Email
		}
		out = append(out, model.FriendRequest{
			RequestID: model.NumericID(r.ID),
			FromEmail: from,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

// takeRequest removes and returns the request id addressed to user. It
// expects db.mu to be held.
func (db *Database) takeRequest(user, id int64) (*FriendRequest, error) {
	i := slices.IndexFunc(db.Requests, func(r *FriendRequest) bool {
		return r.ID == id && r.To == user
	})
	if i < 0 {
		return nil, ErrRequestNotFound
	}
	r := db.Requests[i]
	db.Requests = slices.Delete(db.Requests, i, i+1)
	return r, nil
}

// AcceptFriendRequest makes both users friends and opens their direct chat.
func AcceptFriendRequest(db *Database, user, id int64) (model.Chat, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	r, err := db.takeRequest(user, id)
	if err != nil {
		return model.Chat{}, err
	}

	if !slices.Contains(db.Friends[user], r.From) {
		db.Friends[user] = append(db.Friends[user], r.From)
		db.Friends[r.From] = append(db.Friends[r.From], user)
	}
	chat := db.directChat(user, r.From)
	db.notify(r.From, "Your friend request was accepted!")
	return chatView(chat), nil
}

func RejectFriendRequest(db *Database, user, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.takeRequest(user, id)
	return err
}
