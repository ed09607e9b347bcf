package roster

import "testing"

func TestDefault(t *testing.T) {
	t.Parallel()

	r := Default()
	if got := r.Len(); got != 9 {
		t.Fatalf("unexpected roster size: got=%d want=9", got)
	}
	users := r.Users()
	if users[0].TeamName != "CheemsRajah" || users[8].TeamName != "Devilish 11" {
		t.Fatalf("unexpected roster order: first=%q last=%q", users[0].TeamName, users[8].TeamName)
	}

	users[0].TeamName = "mutated"
	if u, _ := r.ByID(1); u.TeamName != "CheemsRajah" {
		t.Fatalf("roster must not be mutable through Users(): got=%q", u.TeamName)
	}
}

func TestRoster_ByName(t *testing.T) {
	t.Parallel()

	r := Default()
	tests := []struct {
		name   string
		input  string
		wantID int
		wantOK bool
	}{
		{name: "exact", input: "Garuda Tejas", wantID: 5, wantOK: true},
		{name: "case insensitive fallback", input: "justin challengers", wantID: 3, wantOK: true},
		{name: "surrounding spaces", input: "  Devilish 11 ", wantID: 9, wantOK: true},
		{name: "unknown", input: "Nobody XI"},
		{name: "empty", input: ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			u, ok := r.ByName(tc.input)
			if ok != tc.wantOK || u.ID != tc.wantID {
				t.Fatalf("unexpected lookup: got=(%d,%v) want=(%d,%v)", u.ID, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	t.Parallel()

	tests := map[string][]User{
		"zero id":        {{ID: 0, TeamName: "A"}},
		"empty name":     {{ID: 1, TeamName: " "}},
		"duplicate id":   {{ID: 1, TeamName: "A"}, {ID: 1, TeamName: "B"}},
		"duplicate name": {{ID: 1, TeamName: "A"}, {ID: 2, TeamName: "a"}},
	}
	for name, users := range tests {
		if _, err := New(users); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRoster_Index(t *testing.T) {
	t.Parallel()

	r := MustNew([]User{{ID: 7, TeamName: "A"}, {ID: 3, TeamName: "B"}})
	if got := r.Index(3); got != 1 {
		t.Fatalf("unexpected index: got=%d want=1", got)
	}
	if got := r.Index(99); got != -1 {
		t.Fatalf("unexpected index for unknown user: got=%d want=-1", got)
	}
}
