package sqlutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func TestScanRows(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE items (id TEXT, rank INTEGER);
		INSERT INTO items VALUES ('3', 1), ('696', 51), ('2222', 2222);`); err != nil {
		t.Fatalf("setup: %v", err)
	}

	rows, err := db.Query(`SELECT id FROM items ORDER BY rank`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	ids, err := ScanRows(rows, func(rows *sql.Rows) (string, error) {
		var id string
		err := rows.Scan(&id)
		return id, err
	})
	if err != nil {
		t.Fatalf("ScanRows: %v", err)
	}

	want := []string{"3", "696", "2222"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestScanRowsEmpty(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	rows, err := db.Query(`SELECT 1 WHERE 0`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	got, err := ScanRows(rows, func(rows *sql.Rows) (int, error) {
		var n int
		err := rows.Scan(&n)
		return n, err
	})
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v; want no rows", got, err)
	}
}
