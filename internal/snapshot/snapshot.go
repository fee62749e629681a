// Package snapshot owns the bundled vPIC reference-data snapshot: WMIs,
// patterns, and elements, loaded once from an embedded SQL script into
// immutable, read-only Go-native indexes.
package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vpicgo/vindecoder/internal/observability"
)

// WMI is a World Manufacturer Identifier record. VISSuffix is nil for a
// mass-market 3-char WMI and non-nil (chars 12-14) for a specialized
// 6-char manufacturer code.
type WMI struct {
	WMI             string
	VISSuffix       *string
	ManufacturerName string
	MakeName        string
	VehicleTypeCode string
	Country         string
	CreatedOn       string
	UpdatedOn       string
}

// Pattern is a single vPIC pattern row: one element assignment, scoped to
// a WMI, a key pattern over the VDS (sometimes extended through position
// 10), and an optional model-year range.
type Pattern struct {
	PatternID  int
	WMI        string
	KeyPattern string
	ElementID  int
	Value      string
	YearFrom   *int
	YearTo     *int
}

// Element names a vPIC element by ID.
type Element struct {
	ElementID int
	Name      string
	Group     string
}

// Snapshot is the immutable, fully-indexed reference data store. Every
// field is built once by Load and never mutated afterward.
type Snapshot struct {
	byWMI3        map[string]WMI
	byWMI6        map[string][]WMI // keyed by 3-char prefix, sorted by VISSuffix
	patternsByWMI map[string][]Pattern
	elementName   map[int]string

	vpicVersion     string
	vpicReleaseDate string
	maxYear         int
}

// VPICVersion returns the version string and release date recorded in
// the loaded snapshot.
func (s *Snapshot) VPICVersion() (version, releaseDate string) {
	return s.vpicVersion, s.vpicReleaseDate
}

// MaxYear returns the highest model year the snapshot has provenance
// for; modelyear.Decode steps a decoded year back by whole 30-year
// cycles until it no longer exceeds this value.
func (s *Snapshot) MaxYear() int {
	return s.maxYear
}

// WMI3 returns the mass-market 3-char WMI record for prefix, if any.
func (s *Snapshot) WMI3(prefix string) (WMI, bool) {
	w, ok := s.byWMI3[prefix]
	return w, ok
}

// WMI6 returns the 6-char WMI record for prefix whose VISSuffix equals
// suffix, if any.
func (s *Snapshot) WMI6(prefix, suffix string) (WMI, bool) {
	for _, w := range s.byWMI6[prefix] {
		if w.VISSuffix != nil && *w.VISSuffix == suffix {
			return w, true
		}
	}
	return WMI{}, false
}

// Patterns returns the precomputed evaluation order of pattern rows for
// wmiCode: fewer wildcards first, then longer key_pattern, then narrower
// year range, then stable by pattern_id.
func (s *Snapshot) Patterns(wmiCode string) []Pattern {
	return s.patternsByWMI[wmiCode]
}

// ElementName resolves an element_id to its vPIC element name.
func (s *Snapshot) ElementName(id int) (string, bool) {
	name, ok := s.elementName[id]
	return name, ok
}

var (
	defaultOnce     sync.Once
	defaultSnapshot *Snapshot
	defaultErr      error
)

// Default returns the process-wide snapshot instance, built from the
// embedded script (or scriptPath, if non-empty) on first call. Every
// later call, from any goroutine, returns the same instance without
// touching database/sql again.
func Default(scriptPath string, log *observability.Logger) (*Snapshot, error) {
	defaultOnce.Do(func() {
		instance := uuid.New()
		start := time.Now()

		script := embeddedScript
		if scriptPath != "" {
			data, err := os.ReadFile(scriptPath)
			if err != nil {
				defaultErr = fmt.Errorf("snapshot: read override script: %w", err)
				return
			}
			script = string(data)
		}

		defaultSnapshot, defaultErr = Load(script)
		if defaultErr != nil {
			return
		}

		if log != nil {
			version, release := defaultSnapshot.VPICVersion()
			log.Info().
				Str("instance", instance.String()).
				Str("vpic_version", version).
				Str("vpic_release_date", release).
				Int("wmi_count", defaultSnapshot.wmiCount()).
				Int("pattern_count", countPatterns(defaultSnapshot.patternsByWMI)).
				Int("element_count", len(defaultSnapshot.elementName)).
				Dur("load_duration", time.Since(start)).
				Msg("vpic snapshot loaded")
		}
	})
	return defaultSnapshot, defaultErr
}

// Load builds a Snapshot from a SQL script (DDL + seed data) by
// executing it once against an in-memory SQLite database, querying the
// resulting tables, and discarding the handle. No component past Load
// touches database/sql again.
func Load(script string) (*Snapshot, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("snapshot: open in-memory database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(script); err != nil {
		return nil, fmt.Errorf("snapshot: execute seed script: %w", err)
	}

	s := &Snapshot{
		byWMI3:        make(map[string]WMI),
		byWMI6:        make(map[string][]WMI),
		patternsByWMI: make(map[string][]Pattern),
		elementName:   make(map[int]string),
	}

	if err := s.loadWMIs(db); err != nil {
		return nil, err
	}
	if err := s.loadElements(db); err != nil {
		return nil, err
	}
	if err := s.loadPatterns(db); err != nil {
		return nil, err
	}
	if err := s.loadVersion(db); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Snapshot) loadWMIs(db *sql.DB) error {
	rows, err := db.Query(`
		SELECT w.wmi, w.vis_suffix, m.name, COALESCE(mk.name, ''), COALESCE(vt.code, ''), w.country, w.created_on, w.updated_on
		FROM wmi w
		JOIN manufacturer m ON m.manufacturer_id = w.manufacturer_id
		LEFT JOIN make mk ON mk.make_id = w.make_id
		LEFT JOIN vehicle_type vt ON vt.vehicle_type_id = w.vehicle_type_id
	`)
	if err != nil {
		return fmt.Errorf("snapshot: query wmi: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w WMI
		var suffix sql.NullString
		if err := rows.Scan(&w.WMI, &suffix, &w.ManufacturerName, &w.MakeName, &w.VehicleTypeCode, &w.Country, &w.CreatedOn, &w.UpdatedOn); err != nil {
			return fmt.Errorf("snapshot: scan wmi: %w", err)
		}
		if suffix.Valid {
			v := suffix.String
			w.VISSuffix = &v
			s.byWMI6[w.WMI] = append(s.byWMI6[w.WMI], w)
		} else {
			s.byWMI3[w.WMI] = w
		}
	}
	for prefix := range s.byWMI6 {
		sort.Slice(s.byWMI6[prefix], func(i, j int) bool {
			return *s.byWMI6[prefix][i].VISSuffix < *s.byWMI6[prefix][j].VISSuffix
		})
	}
	return rows.Err()
}

func (s *Snapshot) loadElements(db *sql.DB) error {
	rows, err := db.Query(`SELECT element_id, name, COALESCE(grp, '') FROM element`)
	if err != nil {
		return fmt.Errorf("snapshot: query element: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e Element
		if err := rows.Scan(&e.ElementID, &e.Name, &e.Group); err != nil {
			return fmt.Errorf("snapshot: scan element: %w", err)
		}
		s.elementName[e.ElementID] = e.Name
	}
	return rows.Err()
}

func (s *Snapshot) loadPatterns(db *sql.DB) error {
	rows, err := db.Query(`SELECT pattern_id, wmi, key_pattern, element_id, value, year_from, year_to FROM pattern`)
	if err != nil {
		return fmt.Errorf("snapshot: query pattern: %w", err)
	}
	defer rows.Close()

	byWMI := make(map[string][]Pattern)
	for rows.Next() {
		var p Pattern
		var yearFrom, yearTo sql.NullInt64
		if err := rows.Scan(&p.PatternID, &p.WMI, &p.KeyPattern, &p.ElementID, &p.Value, &yearFrom, &yearTo); err != nil {
			return fmt.Errorf("snapshot: scan pattern: %w", err)
		}
		if yearFrom.Valid {
			v := int(yearFrom.Int64)
			p.YearFrom = &v
		}
		if yearTo.Valid {
			v := int(yearTo.Int64)
			p.YearTo = &v
		}
		byWMI[p.WMI] = append(byWMI[p.WMI], p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for wmiCode, patterns := range byWMI {
		sort.SliceStable(patterns, func(i, j int) bool {
			return patternLess(patterns[i], patterns[j])
		})
		s.patternsByWMI[wmiCode] = patterns
	}
	return nil
}

func (s *Snapshot) loadVersion(db *sql.DB) error {
	row := db.QueryRow(`SELECT version, release_date, max_year FROM vpic_version LIMIT 1`)
	return row.Scan(&s.vpicVersion, &s.vpicReleaseDate, &s.maxYear)
}

// patternLess implements the precomputed evaluation order from §4.4:
// fewer wildcards first, then longer key_pattern, then narrower year
// range, then stable by pattern_id.
func patternLess(a, b Pattern) bool {
	wa, wb := strings.Count(a.KeyPattern, "*"), strings.Count(b.KeyPattern, "*")
	if wa != wb {
		return wa < wb
	}
	if len(a.KeyPattern) != len(b.KeyPattern) {
		return len(a.KeyPattern) > len(b.KeyPattern)
	}
	ra, rb := yearRangeWidth(a), yearRangeWidth(b)
	if ra != rb {
		return ra < rb
	}
	return a.PatternID < b.PatternID
}

// yearRangeWidth returns a comparable measure of a pattern's year-scope
// breadth: an unbounded endpoint counts as maximally wide.
func yearRangeWidth(p Pattern) int {
	const unbounded = 1 << 30
	if p.YearFrom == nil || p.YearTo == nil {
		return unbounded
	}
	return *p.YearTo - *p.YearFrom
}

func countPatterns(byWMI map[string][]Pattern) int {
	n := 0
	for _, ps := range byWMI {
		n += len(ps)
	}
	return n
}

func (s *Snapshot) wmiCount() int {
	n := len(s.byWMI3)
	for _, ws := range s.byWMI6 {
		n += len(ws)
	}
	return n
}
