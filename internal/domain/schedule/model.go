package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// MatchTimezone is the zone schedule dates and times are expressed in (IST).
var MatchTimezone = time.FixedZone("IST", 5*60*60+30*60)

const (
	dateLayout = "2006-01-02"
	timeLayout = "3:04 PM"
)

type MatchStatus string

const (
	StatusUpcoming   MatchStatus = "upcoming"
	StatusInProgress MatchStatus = "in-progress"
	StatusCompleted  MatchStatus = "completed"
)

type Match struct {
	MatchNo  int    `json:"matchNo"`
	Date     string `json:"date"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Venue    string `json:"venue"`
	Day      string `json:"day,omitempty"`
	Time     string `json:"time,omitempty"`
}

// Details is the "home vs away" label stored on point entries and stats.
func (m Match) Details() string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

// StartsAt combines Date and the optional Time in MatchTimezone. Without a
// parseable time the match starts at midnight.
func (m Match) StartsAt() (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(m.Date), MatchTimezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("match %d: parse date %q: %w", m.MatchNo, m.Date, err)
	}
	clock, err := time.Parse(timeLayout, strings.ToUpper(strings.TrimSpace(m.Time)))
	if err != nil {
		return day, nil
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), nil
}

// Status derives the match status: completed when points exist, otherwise
// in-progress once the match date has begun. The date is read as midnight UTC,
// not the IST start time, so a match turns in-progress early on its day.
func Status(m Match, hasPoints bool, now time.Time) MatchStatus {
	if hasPoints {
		return StatusCompleted
	}
	day, err := time.Parse(dateLayout, strings.TrimSpace(m.Date))
	if err == nil && day.Before(now) {
		return StatusInProgress
	}
	return StatusUpcoming
}

// Provider serves the static match schedule.
type Provider interface {
	Matches() []Match
	Match(matchNo int) (Match, bool)
}

// Schedule is an immutable Provider ordered by match number.
type Schedule struct {
	matches []Match
	index   map[int]int
}

func New(matches []Match) (*Schedule, error) {
	sorted := append([]Match(nil), matches...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MatchNo < sorted[j].MatchNo })

	index := make(map[int]int, len(sorted))
	for i, m := range sorted {
		if m.MatchNo <= 0 {
			return nil, fmt.Errorf("matchNo must be > 0, got %d", m.MatchNo)
		}
		if _, dup := index[m.MatchNo]; dup {
			return nil, fmt.Errorf("duplicate matchNo %d", m.MatchNo)
		}
		if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
			return nil, fmt.Errorf("match %d: home and away teams are required", m.MatchNo)
		}
		if _, err := m.StartsAt(); err != nil {
			return nil, err
		}
		index[m.MatchNo] = i
	}
	return &Schedule{matches: sorted, index: index}, nil
}

func (s *Schedule) Matches() []Match {
	return append([]Match(nil), s.matches...)
}

func (s *Schedule) Match(matchNo int) (Match, bool) {
	i, ok := s.index[matchNo]
	if !ok {
		return Match{}, false
	}
	return s.matches[i], true
}

type document struct {
	Matches []Match `json:"matches"`
}

// Parse decodes a {"matches":[...]} schedule document.
func Parse(data []byte) (*Schedule, error) {
	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	if len(doc.Matches) == 0 {
		return nil, fmt.Errorf("schedule has no matches")
	}
	return New(doc.Matches)
}
