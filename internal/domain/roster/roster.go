package roster

import (
	"fmt"
	"strings"
)

// User is one fantasy-team owner.
type User struct {
	ID       int    `json:"id"`
	TeamName string `json:"team_name"`
}

// Roster is an immutable, ordered set of users. The zero value is empty.
type Roster struct {
	users  []User
	byID   map[int]int
	byName map[string]int
	byFold map[string]int
}

// New validates users and builds the lookup indexes. Ids and team names
// must be unique; names are compared case-insensitively for uniqueness so
// the fallback lookup stays unambiguous.
func New(users []User) (Roster, error) {
	r := Roster{
		users:  make([]User, 0, len(users)),
		byID:   make(map[int]int, len(users)),
		byName: make(map[string]int, len(users)),
		byFold: make(map[string]int, len(users)),
	}
	for _, u := range users {
		name := strings.TrimSpace(u.TeamName)
		if u.ID <= 0 {
			return Roster{}, fmt.Errorf("roster user %q: id must be > 0", u.TeamName)
		}
		if name == "" {
			return Roster{}, fmt.Errorf("roster user %d: team name is required", u.ID)
		}
		if _, dup := r.byID[u.ID]; dup {
			return Roster{}, fmt.Errorf("roster user %d: duplicate id", u.ID)
		}
		folded := strings.ToLower(name)
		if _, dup := r.byFold[folded]; dup {
			return Roster{}, fmt.Errorf("roster user %d: duplicate team name %q", u.ID, name)
		}

		idx := len(r.users)
		r.users = append(r.users, User{ID: u.ID, TeamName: name})
		r.byID[u.ID] = idx
		r.byName[name] = idx
		r.byFold[folded] = idx
	}
	return r, nil
}

// MustNew is New for static tables known to be valid.
func MustNew(users []User) Roster {
	r, err := New(users)
	if err != nil {
		panic(err)
	}
	return r
}

// Default is the league's nine-owner roster.
func Default() Roster {
	return MustNew([]User{
		{ID: 1, TeamName: "CheemsRajah"},
		{ID: 2, TeamName: "Anantha Team"},
		{ID: 3, TeamName: "JUSTIN CHALLENGERS"},
		{ID: 4, TeamName: "Vjvignesh94"},
		{ID: 5, TeamName: "Garuda Tejas"},
		{ID: 6, TeamName: "Sundar Night Fury"},
		{ID: 7, TeamName: "JAYAGAN ARMY"},
		{ID: 8, TeamName: "Jais Royal Challengers"},
		{ID: 9, TeamName: "Devilish 11"},
	})
}

// Users returns a copy of the users in roster order.
func (r Roster) Users() []User {
	return append([]User(nil), r.users...)
}

func (r Roster) Len() int { return len(r.users) }

func (r Roster) ByID(id int) (User, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return User{}, false
	}
	return r.users[idx], true
}

// ByName resolves a team name exactly first, then case-insensitively.
func (r Roster) ByName(name string) (User, bool) {
	if idx, ok := r.byName[name]; ok {
		return r.users[idx], true
	}
	if idx, ok := r.byFold[strings.ToLower(strings.TrimSpace(name))]; ok {
		return r.users[idx], true
	}
	return User{}, false
}

// Index is the user's position in roster order, or -1.
func (r Roster) Index(id int) int {
	idx, ok := r.byID[id]
	if !ok {
		return -1
	}
	return idx
}
