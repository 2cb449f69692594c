// Package store holds the in-memory settings and record collection between
// the persistence layer and the calculation engine. Records are kept sorted
// by date and their derived hour cache is refreshed on every mutation, so
// views always read consistent values.
package store

import (
	"sort"
	"time"

	"github.com/ottrack/ot-calculator/internal/calculation"
	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// Store owns one settings value and one record per date. Mutations build new
// record values; callers never share mutable state with the store.
type Store struct {
	settings domain.Settings
	records  []domain.DayRecord
	now      func() time.Time
}

// New creates a store from a loaded document. Records are normalized (enum
// defaults, date form, computed refresh) and sorted by date.
func New(doc *domain.Document) *Store {
	s := &Store{
		settings: doc.Settings,
		now:      time.Now,
	}
	s.records = make([]domain.DayRecord, 0, len(doc.Records))
	for _, r := range doc.Records {
		s.records = append(s.records, s.normalize(r))
	}
	s.sortRecords()
	return s
}

// Settings returns the current settings snapshot.
func (s *Store) Settings() domain.Settings { return s.settings }

// SetSettings replaces the settings and refreshes every record's derived
// hours, since rates and standard hours may have changed.
func (s *Store) SetSettings(settings domain.Settings) {
	s.settings = settings
	for i := range s.records {
		h := calculation.ComputeNetHours(s.records[i], s.settings)
		s.records[i].Computed = &h
	}
}

// Records returns the date-sorted record snapshots.
func (s *Store) Records() []domain.DayRecord {
	out := make([]domain.DayRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record for an ISO date, or false when none exists.
func (s *Store) Get(date string) (domain.DayRecord, bool) {
	iso := timeutil.NormalizeDateStr(date)
	for _, r := range s.records {
		if r.Date == iso {
			return r, true
		}
	}
	return domain.DayRecord{}, false
}

// Upsert inserts or replaces the record for its date. CreatedAt survives
// replacement; UpdatedAt is stamped on every save.
func (s *Store) Upsert(record domain.DayRecord) domain.DayRecord {
	rec := s.normalize(record)
	now := s.now()
	rec.UpdatedAt = now

	for i, existing := range s.records {
		if existing.Date == rec.Date {
			rec.CreatedAt = existing.CreatedAt
			if rec.CreatedAt.IsZero() {
				rec.CreatedAt = now
			}
			s.records[i] = rec
			return rec
		}
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	s.records = append(s.records, rec)
	s.sortRecords()
	return rec
}

// ReplaceAll swaps in a whole new record collection, normalized and sorted.
func (s *Store) ReplaceAll(records []domain.DayRecord) {
	s.records = make([]domain.DayRecord, 0, len(records))
	for _, r := range records {
		s.records = append(s.records, s.normalize(r))
	}
	s.sortRecords()
}

// Remove deletes the record for a date, reporting whether one existed.
func (s *Store) Remove(date string) bool {
	iso := timeutil.NormalizeDateStr(date)
	for i, r := range s.records {
		if r.Date == iso {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Document snapshots the store back into the interchange shape for saving.
func (s *Store) Document() *domain.Document {
	return &domain.Document{
		Settings: s.settings,
		Records:  s.Records(),
	}
}

func (s *Store) normalize(r domain.DayRecord) domain.DayRecord {
	r.Date = timeutil.NormalizeDateStr(r.Date)
	r.Attendance = r.Attendance.Normalized()
	if r.DayType == "" {
		r.DayType = s.settings.DefaultDayType
		if r.DayType == "" {
			r.DayType = domain.DayTypeNormal
		}
	}
	if r.ShiftType == "" {
		r.ShiftType = s.settings.DefaultShiftType
		if r.ShiftType == "" {
			r.ShiftType = domain.ShiftDay
		}
	}

	h := calculation.ComputeNetHours(r, s.settings)
	r.Computed = &h
	return r
}

func (s *Store) sortRecords() {
	sort.Slice(s.records, func(i, j int) bool {
		ki, _ := timeutil.DateKey(s.records[i].Date)
		kj, _ := timeutil.DateKey(s.records[j].Date)
		if ki != kj {
			return ki < kj
		}
		return s.records[i].Date < s.records[j].Date
	})
}
