package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"docinho/internal"
)

// DB is the local message journal. It makes webhook handling idempotent
// (providers retry deliveries) and keeps a record log for reports. The
// spreadsheet stays the source of truth for the books themselves.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS messages (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  provider TEXT NOT NULL,
  messageSid TEXT NOT NULL,
  sender TEXT NOT NULL,
  body TEXT NOT NULL,
  kind TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'fetched',
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(provider, messageSid)
);

CREATE TABLE IF NOT EXISTS records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  messageId INTEGER,
  kind TEXT NOT NULL,
  date TEXT NOT NULL,
  amount REAL NOT NULL,
  summary TEXT NOT NULL,
  payloadJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(messageId) REFERENCES messages(id)
);
CREATE INDEX IF NOT EXISTS idx_records_date ON records(date);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := d.conn.Exec(schema)
	return err
}

// InsertMessage stores an inbound message. seen=true means this provider
// message id was journaled before and the delivery is a retry.
func (d *DB) InsertMessage(provider, messageSID, sender, body string) (internal.MessageRow, bool, error) {
	existing, err := d.GetMessageBySID(provider, messageSID)
	if err != nil {
		return internal.MessageRow{}, false, err
	}
	if existing != nil {
		return *existing, true, nil
	}

	result, err := d.conn.Exec(`
INSERT INTO messages (provider, messageSid, sender, body)
VALUES (?, ?, ?, ?)
`, provider, messageSID, sender, body)
	if err != nil {
		return internal.MessageRow{}, false, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return internal.MessageRow{}, false, err
	}

	return internal.MessageRow{
		ID:         id,
		Provider:   provider,
		MessageSID: messageSID,
		Sender:     sender,
		Body:       body,
		Status:     internal.MessageFetched,
	}, false, nil
}

func (d *DB) GetMessageBySID(provider, messageSID string) (*internal.MessageRow, error) {
	var row internal.MessageRow
	err := d.conn.QueryRow(`
SELECT id, provider, messageSid, sender, body, kind, status, createdAt
FROM messages WHERE provider = ? AND messageSid = ?
`, provider, messageSID).Scan(
		&row.ID, &row.Provider, &row.MessageSID, &row.Sender, &row.Body, &row.Kind, &row.Status, &row.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) UpdateMessageOutcome(messageID int64, kind, status string) error {
	_, err := d.conn.Exec(`
UPDATE messages SET kind = ?, status = ?, updatedAt = CURRENT_TIMESTAMP WHERE id = ?
`, kind, status, messageID)
	return err
}

func (d *DB) InsertRecord(messageID int64, record internal.Record, summary string) (int64, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return 0, err
	}

	result, err := d.conn.Exec(`
INSERT INTO records (messageId, kind, date, amount, summary, payloadJson)
VALUES (?, ?, ?, ?, ?, ?)
`, messageID, string(record.Kind), record.Date(), record.Amount(), summary, string(payload))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListRecordsByMonth returns records whose DD/MM/YYYY date falls in the given
// "MM/YYYY" month, oldest first.
func (d *DB) ListRecordsByMonth(month string) ([]internal.RecordRow, error) {
	rows, err := d.conn.Query(`
SELECT id, messageId, kind, date, amount, summary, payloadJson, createdAt
FROM records WHERE substr(date, 4) = ? ORDER BY id ASC
`, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RecordRow
	for rows.Next() {
		var row internal.RecordRow
		if err := rows.Scan(&row.ID, &row.MessageID, &row.Kind, &row.Date, &row.Amount, &row.Summary, &row.PayloadJSON, &row.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
