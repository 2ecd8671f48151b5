package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/valleyseer/internal/catalog"
)

// CatalogStats describes the imported catalog.
type CatalogStats struct {
	Counts     map[catalog.Kind]int
	Source     string
	ImportedAt time.Time
}

// ImportCatalog replaces the stored catalog with records in one transaction.
// source is recorded for CatalogStats. Returns the number of rows written.
func (s *Store) ImportCatalog(source string, records []catalog.Record) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM catalog_entries"); err != nil {
		return 0, fmt.Errorf("storage: cannot clear catalog: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO catalog_entries (kind, id, raw) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(string(r.Kind), int64(r.ID), r.Raw); err != nil {
			return 0, fmt.Errorf("storage: cannot insert %s %d: %w", r.Kind, r.ID, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO catalog_imports (source, entries) VALUES (?, ?)",
		source, len(records),
	); err != nil {
		return 0, fmt.Errorf("storage: cannot record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return len(records), nil
}

// CatalogRecords returns every stored record ordered by kind and id.
func (s *Store) CatalogRecords() ([]catalog.Record, error) {
	rows, err := s.db.Query("SELECT kind, id, raw FROM catalog_entries ORDER BY kind, id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query catalog: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var (
			r    catalog.Record
			kind string
			id   int64
		)
		if err := rows.Scan(&kind, &id, &r.Raw); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Kind = catalog.Kind(kind)
		r.ID = uint16(id)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// LoadCatalog builds a catalog from the stored records. The result is empty
// when nothing has been imported.
func (s *Store) LoadCatalog(offLimit catalog.OffLimit) (*catalog.Catalog, error) {
	records, err := s.CatalogRecords()
	if err != nil {
		return nil, err
	}

	b := catalog.NewBuilder().SetOffLimit(offLimit)
	if err := b.AddAll(records); err != nil {
		return nil, fmt.Errorf("storage: stored catalog is invalid: %w", err)
	}
	return b.Build(), nil
}

// GetCatalogStats reports per-kind counts and the latest import.
func (s *Store) GetCatalogStats() (*CatalogStats, error) {
	stats := &CatalogStats{Counts: make(map[catalog.Kind]int)}

	rows, err := s.db.Query("SELECT kind, COUNT(*) FROM catalog_entries GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get catalog stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind  string
			count int
		)
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.Counts[catalog.Kind(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var importedAt any
	err = s.db.QueryRow(
		"SELECT source, created_at FROM catalog_imports ORDER BY id DESC LIMIT 1",
	).Scan(&stats.Source, &importedAt)
	if err != nil && !isNoRows(err) {
		return nil, fmt.Errorf("storage: cannot get last import: %w", err)
	}
	if err == nil {
		stats.ImportedAt = parseTime(importedAt)
	}

	return stats, nil
}
