package repository

import (
	"errors"
	"slices"
	"strings"

	"github.com/thatmoosee/Study-Buddy/util/model"

	"github.com/google/uuid"
)

var ErrGroupNotFound = errors.New("Group not found")

func (db *Database) groupView(g *Group) model.Group {
	return model.Group{
		ID:             model.TextID(g.ID),
		Name:           g.Name,
		Members:        db.emails(g.Members),
		SpecifiedClass: g.SpecifiedClass,
		StudyTimes:     slices.Clone(g.StudyTimes),
	}
}

func (db *Database) groupList(keep func(*Group) bool) []model.Group {
	out := make([]model.Group, 0)
	for _, id := range db.GroupIds {
		if g := db.Groups[id]; keep(g) {
			out = append(out, db.groupView(g))
		}
	}
	return out
}

func CreateGroup(db *Database, owner int64, name, class string, times []string) (model.Group, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return model.Group{}, errors.New("Group name is required")
	}
	if times == nil {
		times = []string{}
	}

	g := &Group{
		ID:             strings.ReplaceAll(uuid.NewString(), "-", ""),
		Name:           name,
		Owner:          owner,
		Members:        []int64{owner},
		SpecifiedClass: class,
		StudyTimes:     times,
	}
	db.Groups[g.ID] = g
	db.GroupIds = append(db.GroupIds, g.ID)
	return db.groupView(g), nil
}

func GetGroup(db *Database, id string) (model.Group, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	g, ok := db.Groups[id]
	if !ok {
		return model.Group{}, false
	}
	return db.groupView(g), true
}

func JoinGroup(db *Database, id string, user int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	g, ok := db.Groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	if slices.Contains(g.Members, user) {
		return errors.New("Already a member of this group")
	}
	g.Members = append(g.Members, user)
	return nil
}

func LeaveGroup(db *Database, id string, user int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	g, ok := db.Groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	i := slices.Index(g.Members, user)
	if i < 0 {
		return errors.New("Not a member of this group")
	}
	g.Members = slices.Delete(g.Members, i, i+1)
	return nil
}

func UserGroups(db *Database, user int64) []model.Group {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.groupList(func(g *Group) bool { return slices.Contains(g.Members, user) })
}

func AllGroups(db *Database) []model.Group {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.groupList(func(*Group) bool { return true })
}

// FilterGroups matches case-insensitively on the class or on any study time.
func FilterGroups(db *Database, kind, value string) ([]model.Group, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	value = strings.ToLower(value)
	switch kind {
	case model.FilterClass:
		return db.groupList(func(g *Group) bool {
			return strings.Contains(strings.ToLower(g.SpecifiedClass), value)
		}), nil
	case model.FilterTime:
		return db.groupList(func(g *Group) bool {
			return slices.ContainsFunc(g.StudyTimes, func(t string) bool {
				return strings.Contains(strings.ToLower(t), value)
			})
		}), nil
	}
	return nil, errors.New("Invalid filter type")
}
