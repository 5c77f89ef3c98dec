package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/storage"
)

type BodyStatStore struct {
	adapter storage.Adapter
	stats   []model.BodyStat
}

func NewBodyStatStore(adapter storage.Adapter) *BodyStatStore {
	return &BodyStatStore{adapter: adapter}
}

// copyFloat detaches an optional measurement from the caller's pointer so
// later caller mutation cannot reach the stored collection.
func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

type BodyStatInput struct {
	Date      string
	Weight    *float64
	BodyFat   *float64
	Muscle    *float64
	Waist     *float64
	Chest     *float64
	Arms      *float64
	Thighs    *float64
	Notes     string
	PhotoPath string
}

// BodyStatPatch merges non-nil fields; a stored measurement cannot be
// cleared through a patch, only replaced.
type BodyStatPatch struct {
	Date      *string
	Weight    *float64
	BodyFat   *float64
	Muscle    *float64
	Waist     *float64
	Chest     *float64
	Arms      *float64
	Thighs    *float64
	Notes     *string
	PhotoPath *string
}

func (s *BodyStatStore) Load() error {
	data, ok, err := s.adapter.Get(storage.KeyBodyStats)
	if err != nil {
		return fmt.Errorf("load body stats: %w", err)
	}
	if !ok {
		return nil
	}
	var stats []model.BodyStat
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil
	}
	s.stats = stats
	return nil
}

func (s *BodyStatStore) Add(in BodyStatInput) (model.BodyStat, error) {
	if err := validateDay("date", in.Date); err != nil {
		return model.BodyStat{}, err
	}
	if err := validateMeasurements(in.Weight, in.BodyFat, in.Muscle, in.Waist, in.Chest, in.Arms, in.Thighs); err != nil {
		return model.BodyStat{}, err
	}

	stat := model.BodyStat{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Weight:    copyFloat(in.Weight),
		BodyFat:   copyFloat(in.BodyFat),
		Muscle:    copyFloat(in.Muscle),
		Waist:     copyFloat(in.Waist),
		Chest:     copyFloat(in.Chest),
		Arms:      copyFloat(in.Arms),
		Thighs:    copyFloat(in.Thighs),
		Notes:     strings.TrimSpace(in.Notes),
		PhotoPath: in.PhotoPath,
		CreatedAt: time.Now(),
	}
	prev := s.stats
	s.stats = append(s.stats, stat)
	if err := s.persist(); err != nil {
		s.stats = prev
		return model.BodyStat{}, err
	}
	return stat, nil
}

func (s *BodyStatStore) Update(id string, patch BodyStatPatch) error {
	if patch.Date != nil {
		if err := validateDay("date", *patch.Date); err != nil {
			return err
		}
	}
	if err := validateMeasurements(patch.Weight, patch.BodyFat, patch.Muscle, patch.Waist, patch.Chest, patch.Arms, patch.Thighs); err != nil {
		return err
	}
	for i := range s.stats {
		if s.stats[i].ID != id {
			continue
		}
		updated := s.stats[i]
		if patch.Date != nil {
			updated.Date = *patch.Date
		}
		if patch.Weight != nil {
			updated.Weight = copyFloat(patch.Weight)
		}
		if patch.BodyFat != nil {
			updated.BodyFat = copyFloat(patch.BodyFat)
		}
		if patch.Muscle != nil {
			updated.Muscle = copyFloat(patch.Muscle)
		}
		if patch.Waist != nil {
			updated.Waist = copyFloat(patch.Waist)
		}
		if patch.Chest != nil {
			updated.Chest = copyFloat(patch.Chest)
		}
		if patch.Arms != nil {
			updated.Arms = copyFloat(patch.Arms)
		}
		if patch.Thighs != nil {
			updated.Thighs = copyFloat(patch.Thighs)
		}
		if patch.Notes != nil {
			updated.Notes = strings.TrimSpace(*patch.Notes)
		}
		if patch.PhotoPath != nil {
			updated.PhotoPath = *patch.PhotoPath
		}
		before := s.stats[i]
		s.stats[i] = updated
		if err := s.persist(); err != nil {
			s.stats[i] = before
			return err
		}
		return nil
	}
	return nil
}

func (s *BodyStatStore) Remove(id string) error {
	prev := s.stats
	kept := make([]model.BodyStat, 0, len(s.stats))
	for _, st := range s.stats {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.stats = kept
	if err := s.persist(); err != nil {
		s.stats = prev
		return err
	}
	return nil
}

func (s *BodyStatStore) Stats() []model.BodyStat {
	out := make([]model.BodyStat, len(s.stats))
	copy(out, s.stats)
	return out
}

func (s *BodyStatStore) ByDate(date string) []model.BodyStat {
	out := make([]model.BodyStat, 0)
	for _, st := range s.stats {
		if st.Date == date {
			out = append(out, st)
		}
	}
	return out
}

func (s *BodyStatStore) persist() error {
	data, err := json.Marshal(s.stats)
	if err != nil {
		return fmt.Errorf("encode body stats: %w", err)
	}
	if err := s.adapter.Set(storage.KeyBodyStats, data); err != nil {
		return persistError("body stats", err)
	}
	return nil
}

func validateMeasurements(weight, bodyFat, muscle, waist, chest, arms, thighs *float64) error {
	if bodyFat != nil && (*bodyFat < 0 || *bodyFat > 100) {
		return validationError("body fat must be between 0 and 100")
	}
	fields := map[string]*float64{
		"weight": weight,
		"muscle": muscle,
		"waist":  waist,
		"chest":  chest,
		"arms":   arms,
		"thighs": thighs,
	}
	for name, v := range fields {
		if err := validateOptionalNonNegative(name, v); err != nil {
			return err
		}
	}
	return nil
}
