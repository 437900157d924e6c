package models

import (
	"slices"
	"strconv"
)

// Presence is one day of clock-in / clock-out for a user.
type Presence struct {
	Start TimeOfDay
	End   TimeOfDay
}

type PresenceRecord struct {
	UserID int
	Date   Date
	Start  TimeOfDay
	End    TimeOfDay
}

type UserProfile struct {
	UserID int
	Name   string
	Avatar string
}

// UserData combines the presence days of a user with the optional profile
// fields taken from the metadata source. Name and Avatar stay nil when the
// user has no metadata entry.
type UserData struct {
	Name   *string
	Avatar *string
	Times  map[Date]Presence
}

func (u *UserData) HasProfile() bool {
	return u != nil && u.Name != nil
}

// Dataset is keyed by user id. A Dataset is never mutated after the parser
// hands it out; a reload builds a new one.
type Dataset map[int]*UserData

// Add stores a record; a second record for the same user and date replaces the first.
func (d Dataset) Add(r PresenceRecord) {
	user, ok := d[r.UserID]
	if !ok {
		user = &UserData{Times: make(map[Date]Presence)}
		d[r.UserID] = user
	}
	user.Times[r.Date] = Presence{Start: r.Start, End: r.End}
}

// Attach copies profile fields onto a user that already has presence data.
// Profiles for unknown users are ignored; it reports whether it attached.
func (d Dataset) Attach(p UserProfile) bool {
	user, ok := d[p.UserID]
	if !ok {
		return false
	}
	name, avatar := p.Name, p.Avatar
	user.Name = &name
	user.Avatar = &avatar
	return true
}

func (d Dataset) Times(userID int) (map[Date]Presence, bool) {
	user, ok := d[userID]
	if !ok {
		return nil, false
	}
	return user.Times, true
}

func (d Dataset) UserIDs() []int {
	ids := make([]int, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// DisplayName falls back to "User <id>" for users without a profile name.
func (d Dataset) DisplayName(userID int) string {
	if user, ok := d[userID]; ok && user.Name != nil {
		return *user.Name
	}
	return "User " + strconv.Itoa(userID)
}
