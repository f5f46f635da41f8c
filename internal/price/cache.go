package price

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"perksolver/internal/perk"
)

// lineRe matches the flat-file cache format "Material name: number",
// per SPEC_FULL.md §6/§4.K, ported verbatim from component_prices.rs's
// string_to_map regex.
var lineRe = regexp.MustCompile(`^([^:]+): ?([\d.]+)`)

// Cache is the sqlite-backed price store (prices.db, one row per material).
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if absent) the sqlite price cache at path and
// ensures its schema exists.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open price cache: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prices (material TEXT PRIMARY KEY, price REAL NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init price cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Load reads every cached price into a dense Map.
func (c *Cache) Load() (*Map, error) {
	rows, err := c.db.Query(`SELECT material, price FROM prices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var m Map
	for rows.Next() {
		var name string
		var p float64
		if err := rows.Scan(&name, &p); err != nil {
			return nil, err
		}
		mat, err := perk.ParseMaterial(name)
		if err != nil {
			continue
		}
		m.Set(mat, p)
	}
	return &m, rows.Err()
}

// Store writes every nonzero entry of m into the cache, replacing whatever
// was there for each material.
func (c *Cache) Store(m *Map) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO prices(material, price) VALUES (?, ?)
		ON CONFLICT(material) DO UPDATE SET price = excluded.price`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for name := perk.MaterialName(0); int(name) < perk.MaterialCount; name++ {
		if m[name] == 0 {
			continue
		}
		if _, err := stmt.Exec(name.String(), m[name]); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LoadFlatFile parses a "Material name: number" cache file, one material
// per line, per SPEC_FULL.md §6. Missing entries default to 0 and are
// reported through missing for the caller to warn on (zerolog, per
// SPEC_FULL.md §2.2) rather than this package importing a logger directly.
func LoadFlatFile(path string) (m *Map, missing []perk.MaterialName, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m = &Map{}
	seen := make(map[perk.MaterialName]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		matches := lineRe.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		mat, err := perk.ParseMaterial(strings.TrimSpace(matches[1]))
		if err != nil {
			continue
		}
		p, err := strconv.ParseFloat(matches[2], 64)
		if err != nil {
			continue
		}
		m.Set(mat, p)
		seen[mat] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	for name := perk.MaterialName(0); int(name) < perk.MaterialCount; name++ {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	return m, missing, nil
}
