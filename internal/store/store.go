// Package store persists unit products Σa·Σb in sqlite so that expensive
// term multiplications survive process restarts.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/sha3"

	"github.com/njchilds90/gosigma"
)

//go:embed schema.sql
var schema string

// Cache is a gosigma.ProductCache backed by a sqlite database.
type Cache struct {
	db *sql.DB
}

var _ gosigma.ProductCache = (*Cache)(nil)

// Open opens (creating if needed) the cache database at path and applies the schema.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma journal_mode: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Key is the hex SHA3-256 digest of the variable count and the ordered shape pair.
func Key(n int, a, b gosigma.Shape) string {
	a, b = gosigma.OrderedPair(a, b)
	sum := sha3.Sum256([]byte(strconv.Itoa(n) + "|" + string(a) + "|" + string(b)))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) Load(n int, a, b gosigma.Shape) (gosigma.Polynomial, bool) {
	var payload string
	err := c.db.QueryRow(`SELECT payload FROM products WHERE key = ?`, Key(n, a, b)).Scan(&payload)
	if err == sql.ErrNoRows {
		return gosigma.Polynomial{}, false
	}
	if err != nil {
		log.Printf("store: load Σ%s·Σ%s (n=%d): %v", a, b, n, err)
		return gosigma.Polynomial{}, false
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		log.Printf("store: decode Σ%s·Σ%s (n=%d): %v", a, b, n, err)
		return gosigma.Polynomial{}, false
	}
	op, err := gosigma.FromJSON(doc)
	if err != nil {
		log.Printf("store: decode Σ%s·Σ%s (n=%d): %v", a, b, n, err)
		return gosigma.Polynomial{}, false
	}
	p, ok := op.(gosigma.Polynomial)
	if !ok {
		log.Printf("store: Σ%s·Σ%s (n=%d): payload is %T, not a polynomial", a, b, n, op)
		return gosigma.Polynomial{}, false
	}
	return p, true
}

func (c *Cache) Store(n int, a, b gosigma.Shape, p gosigma.Polynomial) {
	payload, err := gosigma.ToJSON(p)
	if err != nil {
		log.Printf("store: encode Σ%s·Σ%s (n=%d): %v", a, b, n, err)
		return
	}
	left, right := gosigma.OrderedPair(a, b)
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO products (key, degree, left_shape, right_shape, payload) VALUES (?, ?, ?, ?, ?)`,
		Key(n, a, b), n, string(left), string(right), payload,
	)
	if err != nil {
		log.Printf("store: save Σ%s·Σ%s (n=%d): %v", a, b, n, err)
	}
}

// Len returns the number of cached products.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Purge removes every cached product for variable count n.
func (c *Cache) Purge(ctx context.Context, n int) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM products WHERE degree = ?`, n)
	if err != nil {
		return 0, fmt.Errorf("purge degree %d: %w", n, err)
	}
	return res.RowsAffected()
}
