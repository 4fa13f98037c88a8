// Package models defines the persisted skilltrack records and the report view.
//
// Field names in JSON follow the original data file layout (root key
// "usuarios", nested keys "nome", "habilidades", "plano", "sessoes"), so an
// existing file keeps loading unchanged.
package models

import "encoding/json"

// Store is the root persisted document: an ordered sequence of users plus any
// unrecognized root-level keys, which are carried through load/save verbatim.
//
// A user's identity is its position in Users for the lifetime of a run; use
// UserAt and UserCount instead of indexing directly so a stable-identifier
// scheme could replace positions without touching call sites.
type Store struct {
	Users []User

	// extra holds root keys beyond "usuarios" so they survive a round-trip.
	extra map[string]json.RawMessage
}

// NewStore returns an empty store with a non-nil user sequence.
func NewStore() *Store {
	return &Store{Users: []User{}}
}

// UserCount reports the number of registered users.
func (s *Store) UserCount() int {
	return len(s.Users)
}

// UserAt returns a pointer to the user at index i, or nil when i is out of
// range. The pointer stays valid until the next append to Users.
func (s *Store) UserAt(i int) *User {
	if i < 0 || i >= len(s.Users) {
		return nil
	}
	return &s.Users[i]
}

// AppendUser adds u at the end of the user sequence and returns its index.
func (s *Store) AppendUser(u User) int {
	s.Users = append(s.Users, u)
	return len(s.Users) - 1
}

func (s *Store) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if usersRaw, ok := raw["usuarios"]; ok {
		if err := json.Unmarshal(usersRaw, &s.Users); err != nil {
			return err
		}
		delete(raw, "usuarios")
	}
	if s.Users == nil {
		s.Users = []User{}
	}
	if len(raw) > 0 {
		s.extra = raw
	}
	return nil
}

func (s *Store) MarshalJSON() ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(s.extra)+1)
	for k, v := range s.extra {
		doc[k] = v
	}

	users := s.Users
	if users == nil {
		users = []User{}
	}
	usersRaw, err := json.Marshal(users)
	if err != nil {
		return nil, err
	}
	doc["usuarios"] = usersRaw

	return json.Marshal(doc)
}
