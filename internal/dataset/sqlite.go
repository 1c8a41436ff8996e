package dataset

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/model"
	"github.com/efrogs/rarity/internal/sqlutil"
)

const sqliteSchema = `
CREATE TABLE items (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	rank INTEGER NOT NULL,
	total_score REAL NOT NULL
);

CREATE TABLE trait_scores (
	item_id TEXT NOT NULL REFERENCES items(id),
	trait TEXT NOT NULL,
	value TEXT NOT NULL,
	count INTEGER NOT NULL,
	rarity_percentage REAL NOT NULL,
	rarity_score REAL NOT NULL,
	PRIMARY KEY (item_id, trait)
);

CREATE INDEX idx_items_rank ON items(rank);
`

// writeSQLite stores items in a fresh SQLite database at path.
func writeSQLite(path string, items []model.Item) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	itemStmt, err := tx.Prepare(`INSERT INTO items (id, position, rank, total_score) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare item insert: %w", err)
	}
	defer itemStmt.Close()

	traitStmt, err := tx.Prepare(`INSERT INTO trait_scores (item_id, trait, value, count, rarity_percentage, rarity_score) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare trait insert: %w", err)
	}
	defer traitStmt.Close()

	for pos, item := range items {
		if _, err := itemStmt.Exec(string(item.ID), pos, item.Rank, item.TotalScore); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
		}
		for _, trait := range item.Traits() {
			if _, err := traitStmt.Exec(string(item.ID), trait.Name, trait.Value, trait.Count, trait.RarityPercentage, trait.RarityScore); err != nil {
				return fmt.Errorf("failed to insert trait %s of item %s: %w", trait.Name, item.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

type traitRow struct {
	itemID string
	trait  string
	score  model.TraitScore
}

// readSQLite loads items from a database written by writeSQLite, in their
// original order.
func readSQLite(path string) ([]model.Item, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, rank, total_score FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	items, err := sqlutil.ScanRows(rows, func(rows *sql.Rows) (model.Item, error) {
		var id string
		var item model.Item
		if err := rows.Scan(&id, &item.Rank, &item.TotalScore); err != nil {
			return item, err
		}
		item.ID = model.ID(id)
		item.TraitScores = make(map[string]model.TraitScore)
		return item, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	index := make(map[model.ID]int, len(items))
	for i, item := range items {
		index[item.ID] = i
	}

	traitRows, err := db.Query(`SELECT item_id, trait, value, count, rarity_percentage, rarity_score FROM trait_scores`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trait scores: %w", err)
	}
	traits, err := sqlutil.ScanRows(traitRows, func(rows *sql.Rows) (traitRow, error) {
		var r traitRow
		err := rows.Scan(&r.itemID, &r.trait, &r.score.Value, &r.score.Count, &r.score.RarityPercentage, &r.score.RarityScore)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read trait scores: %w", err)
	}

	orphans := 0
	for _, r := range traits {
		i, ok := index[model.ID(r.itemID)]
		if !ok {
			orphans++
			continue
		}
		items[i].TraitScores[r.trait] = r.score
	}
	if orphans > 0 {
		logger.WithComponent("dataset").Warn("skipped trait scores of unknown items", "path", path, "rows", orphans)
	}
	return items, nil
}
