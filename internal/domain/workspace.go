package domain

import "encoding/json"

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Color          string `json:"color,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`

	raw raw
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = User(decoded)
	u.raw.keep(data)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	if data, ok := u.raw.bytes(); ok {
		return data, nil
	}
	type plain User
	return json.Marshal(plain(u))
}

func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// Team is a workspace.
type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	Members []struct {
		User User `json:"user"`
	} `json:"members,omitempty"`

	raw raw
}

func (t *Team) UnmarshalJSON(data []byte) error {
	type plain Team
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = Team(decoded)
	t.raw.keep(data)
	return nil
}

func (t Team) MarshalJSON() ([]byte, error) {
	if data, ok := t.raw.bytes(); ok {
		return data, nil
	}
	type plain Team
	return json.Marshal(plain(t))
}

type Space struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Color    string       `json:"color,omitempty"`
	Private  bool         `json:"private"`
	Statuses []TaskStatus `json:"statuses,omitempty"`

	raw raw
}

func (s *Space) UnmarshalJSON(data []byte) error {
	type plain Space
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*s = Space(decoded)
	s.raw.keep(data)
	return nil
}

func (s Space) MarshalJSON() ([]byte, error) {
	if data, ok := s.raw.bytes(); ok {
		return data, nil
	}
	type plain Space
	return json.Marshal(plain(s))
}

type FolderRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

type SpaceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type List struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	OrderIndex int        `json:"orderindex"`
	Status     any        `json:"status,omitempty"`
	Priority   *Priority  `json:"priority,omitempty"`
	Assignee   *User      `json:"assignee,omitempty"`
	TaskCount  *int       `json:"task_count,omitempty"`
	DueDate    *Timestamp `json:"due_date,omitempty"`
	StartDate  *Timestamp `json:"start_date,omitempty"`
	Folder     *FolderRef `json:"folder,omitempty"`
	Space      *SpaceRef  `json:"space,omitempty"`

	raw raw
}

func (l *List) UnmarshalJSON(data []byte) error {
	type plain List
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*l = List(decoded)
	l.raw.keep(data)
	return nil
}

func (l List) MarshalJSON() ([]byte, error) {
	if data, ok := l.raw.bytes(); ok {
		return data, nil
	}
	type plain List
	return json.Marshal(plain(l))
}
