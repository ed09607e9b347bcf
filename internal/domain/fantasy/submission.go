package fantasy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/roster"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
)

// SubmissionItem is one element of the admin bulk payload.
type SubmissionItem struct {
	TeamName string  `json:"team_name"`
	Points   float64 `json:"points"`
}

// ParseSubmission decodes raw JSON and requires a non-empty array. Elements
// are left untyped for ValidateSubmission.
func ParseSubmission(raw []byte) ([]any, error) {
	var payload any
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, payloadError(ErrMalformedPayload, "invalid JSON format")
	}
	return asItems(payload)
}

func asItems(payload any) ([]any, error) {
	items, ok := payload.([]any)
	if !ok {
		return nil, payloadError(ErrMalformedPayload, "input must be an array of user points")
	}
	if len(items) == 0 {
		return nil, payloadError(ErrMalformedPayload, "at least one entry is required")
	}
	return items, nil
}

// ValidateSubmission turns loosely typed payload items into the finalized
// point batch for matchNo. The whole batch is rejected on the first problem.
// Entries keep submission order; RelativeRank is the 1-based position after
// a stable sort on points descending.
func ValidateSubmission(matchNo int, payload any, r roster.Roster, sched schedule.Provider) ([]PointEntry, error) {
	match, ok := sched.Match(matchNo)
	if !ok {
		return nil, unknownMatch(matchNo)
	}

	items, err := asItems(payload)
	if err != nil {
		return nil, err
	}

	entries := make([]PointEntry, 0, len(items))
	seen := make(map[int]int, len(items))
	for i, raw := range items {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, entryError(ErrInvalidEntry, i, "", raw, "each entry must be an object with team_name and points")
		}

		nameValue, ok := obj["team_name"]
		name, isString := nameValue.(string)
		if !ok || !isString || strings.TrimSpace(name) == "" {
			return nil, entryError(ErrInvalidEntry, i, "team_name", nameValue, "each entry must have a valid team_name string")
		}

		pointsValue, ok := obj["points"]
		points, isNumber := pointsValue.(float64)
		if !ok || !isNumber {
			return nil, entryError(ErrInvalidEntry, i, "points", pointsValue, "each entry must have valid numeric points")
		}

		user, ok := r.ByName(name)
		if !ok {
			return nil, entryError(ErrUnknownTeam, i, "team_name", name, "unknown team name: "+name)
		}
		if first, dup := seen[user.ID]; dup {
			return nil, entryError(ErrInvalidEntry, i, "team_name", name,
				fmt.Sprintf("team %q already appears at entry %d", user.TeamName, first))
		}
		seen[user.ID] = i

		entries = append(entries, PointEntry{
			MatchNo:        matchNo,
			UserID:         user.ID,
			Points:         points,
			MatchUserIndex: MatchUserIndex(matchNo, user.ID),
			MatchDate:      match.Date,
			TeamName:       user.TeamName,
			MatchDetails:   match.Details(),
		})
	}

	assignRelativeRanks(entries)
	return entries, nil
}

// SubmitMatchPoints checks the match, parses raw and validates the batch.
func SubmitMatchPoints(matchNo int, raw []byte, r roster.Roster, sched schedule.Provider) ([]PointEntry, error) {
	if _, ok := sched.Match(matchNo); !ok {
		return nil, unknownMatch(matchNo)
	}
	items, err := ParseSubmission(raw)
	if err != nil {
		return nil, err
	}
	return ValidateSubmission(matchNo, items, r, sched)
}

func unknownMatch(matchNo int) *ValidationError {
	return &ValidationError{
		Kind:    ErrUnknownMatch,
		Index:   -1,
		Field:   "matchNo",
		Value:   matchNo,
		Message: fmt.Sprintf("match %d is not in the schedule", matchNo),
	}
}

func assignRelativeRanks(entries []PointEntry) {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].Points > entries[order[b]].Points
	})
	for pos, idx := range order {
		entries[idx].RelativeRank = pos + 1
	}
}

// Template is the editable payload for a match: the existing entries in
// relative rank order, or every roster team at zero.
func Template(existing []PointEntry, r roster.Roster) []SubmissionItem {
	if len(existing) > 0 {
		out := make([]SubmissionItem, 0, len(existing))
		for _, e := range existing {
			name := e.TeamName
			if u, ok := r.ByID(e.UserID); ok {
				name = u.TeamName
			}
			out = append(out, SubmissionItem{TeamName: name, Points: e.Points})
		}
		return out
	}

	users := r.Users()
	out := make([]SubmissionItem, 0, len(users))
	for _, u := range users {
		out = append(out, SubmissionItem{TeamName: u.TeamName})
	}
	return out
}
