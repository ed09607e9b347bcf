package schedulefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
)

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	sched, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, ok := sched.Match(1)
	if !ok {
		t.Fatalf("expected match 1 in embedded schedule")
	}
	if got, want := first.Details(), "Kolkata Knight Riders vs Royal Challengers Bengaluru"; got != want {
		t.Fatalf("unexpected details: got=%q want=%q", got, want)
	}
	if got := schedule.TeamCode(first.HomeTeam); got != "kkr" {
		t.Fatalf("unexpected home code: got=%s want=kkr", got)
	}

	final, ok := sched.Match(74)
	if !ok || final.HomeTeam != "Final" {
		t.Fatalf("unexpected final: %+v ok=%v", final, ok)
	}
}

func TestLoad_FileOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schedule.json")
	body := `{"matches":[{"matchNo":2,"date":"2026-04-01","homeTeam":"Mumbai Indians","awayTeam":"Punjab Kings","venue":"Wankhede"}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write schedule: %v", err)
	}

	sched, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(sched.Matches()); got != 1 {
		t.Fatalf("unexpected match count: got=%d want=1", got)
	}
}

func TestLoad_RejectsBadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cases := map[string]string{
		"empty.json":     `{"matches":[]}`,
		"broken.json":    `{"matches":`,
		"duplicate.json": `{"matches":[{"matchNo":1,"date":"2026-04-01","homeTeam":"A","awayTeam":"B"},{"matchNo":1,"date":"2026-04-02","homeTeam":"C","awayTeam":"D"}]}`,
		"baddate.json":   `{"matches":[{"matchNo":1,"date":"01/04/2026","homeTeam":"A","awayTeam":"B"}]}`,
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected %s to be rejected", name)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected missing file to be rejected")
	}
}
