package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/valleyseer/internal/config"
)

// Profile is a named, saved configuration.
type Profile struct {
	Name      string
	File      config.File
	UpdatedAt time.Time
}

// SaveProfile creates or replaces the profile called name.
func (s *Store) SaveProfile(name string, f config.File) error {
	if name == "" {
		return fmt.Errorf("storage: profile name must not be empty")
	}

	var platform sql.NullString
	if f.Platform != nil {
		platform = sql.NullString{String: string(*f.Platform), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO profiles
		 (name, platform, seed, date, geodes_cracked, mine_level, qis_crop, golden_helmet, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   platform = excluded.platform,
		   seed = excluded.seed,
		   date = excluded.date,
		   geodes_cracked = excluded.geodes_cracked,
		   mine_level = excluded.mine_level,
		   qis_crop = excluded.qis_crop,
		   golden_helmet = excluded.golden_helmet,
		   updated_at = CURRENT_TIMESTAMP`,
		name,
		platform,
		nullInt(f.Seed),
		nullInt(f.Date),
		nullInt(f.GeodesCracked),
		nullInt(f.MineLevel),
		nullBool(f.QisCrop),
		nullBool(f.GoldenHelmet),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %q: %w", name, err)
	}
	return nil
}

// Profile retrieves a profile by name. Returns nil if it does not exist.
func (s *Store) Profile(name string) (*Profile, error) {
	row := s.db.QueryRow(
		`SELECT name, platform, seed, date, geodes_cracked, mine_level, qis_crop, golden_helmet, updated_at
		 FROM profiles
		 WHERE name = ?`,
		name,
	)

	p, err := scanProfile(row)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile %q: %w", name, err)
	}
	return p, nil
}

// Profiles lists every saved profile ordered by name.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query(
		`SELECT name, platform, seed, date, geodes_cracked, mine_level, qis_crop, golden_helmet, updated_at
		 FROM profiles
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		profiles = append(profiles, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return profiles, nil
}

// DeleteProfile removes a profile. It reports whether one existed.
func (s *Store) DeleteProfile(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM profiles WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete profile %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete profile %q: %w", name, err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(sc scanner) (*Profile, error) {
	var (
		p                              Profile
		platform                       sql.NullString
		seed, date, cracked, mineLevel sql.NullInt64
		qisCrop, goldenHelmet          sql.NullBool
		updatedAt                      any
	)
	if err := sc.Scan(&p.Name, &platform, &seed, &date, &cracked, &mineLevel, &qisCrop, &goldenHelmet, &updatedAt); err != nil {
		return nil, err
	}

	if platform.Valid {
		p.File.Platform = config.Ptr(platform.String)
	}
	if seed.Valid {
		p.File.Seed = config.Ptr(int32(seed.Int64))
	}
	if date.Valid {
		p.File.Date = config.Ptr(int32(date.Int64))
	}
	if cracked.Valid {
		p.File.GeodesCracked = config.Ptr(uint16(cracked.Int64))
	}
	if mineLevel.Valid {
		p.File.MineLevel = config.Ptr(uint8(mineLevel.Int64))
	}
	if qisCrop.Valid {
		p.File.QisCrop = config.Ptr(qisCrop.Bool)
	}
	if goldenHelmet.Valid {
		p.File.GoldenHelmet = config.Ptr(goldenHelmet.Bool)
	}
	p.UpdatedAt = parseTime(updatedAt)

	return &p, nil
}

type integer interface {
	~int32 | ~uint16 | ~uint8
}

func nullInt[T integer](v *T) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}
