package localstore

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/fantasy"
)

const (
	PointsKey     = "iplFantasyPoints"
	UsersKey      = "iplFantasyUsers"
	MatchStatsKey = "iplMatchStats"
)

// BlobStore is the durable key-value store backing snapshots.
type BlobStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, data []byte) error
}

// Snapshots reads and writes the tracker state as three blobs.
type Snapshots struct {
	blobs BlobStore
}

func NewSnapshots(blobs BlobStore) *Snapshots {
	return &Snapshots{blobs: blobs}
}

// Load reads all three blobs. A missing or unreadable blob yields an empty
// collection and a problem entry; found reports whether any blob existed.
func (s *Snapshots) Load() (state fantasy.State, found bool, problems []string) {
	var ok bool
	if ok, problems = readBlob(s.blobs, PointsKey, &state.Points, problems); ok {
		found = true
	}
	if ok, problems = readBlob(s.blobs, UsersKey, &state.Users, problems); ok {
		found = true
	}
	if ok, problems = readBlob(s.blobs, MatchStatsKey, &state.MatchStats, problems); ok {
		found = true
	}
	return state, found, problems
}

// Save writes all three blobs, stopping at the first failure.
func (s *Snapshots) Save(state fantasy.State) error {
	blobs := []struct {
		key   string
		value any
	}{
		{PointsKey, nonNil(state.Points)},
		{UsersKey, nonNil(state.Users)},
		{MatchStatsKey, nonNil(state.MatchStats)},
	}
	for _, b := range blobs {
		data, err := sonic.Marshal(b.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", b.key, err)
		}
		if err := s.blobs.Set(b.key, data); err != nil {
			return err
		}
	}
	return nil
}

func readBlob[T any](blobs BlobStore, key string, dst *[]T, problems []string) (bool, []string) {
	data, ok, err := blobs.Get(key)
	if err != nil {
		return false, append(problems, err.Error())
	}
	if !ok {
		return false, problems
	}

	var items []T
	if err := sonic.Unmarshal(data, &items); err != nil {
		return false, append(problems, fmt.Sprintf("decode %s: %v", key, err))
	}
	*dst = items
	return true, problems
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
