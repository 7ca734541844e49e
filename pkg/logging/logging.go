package logging

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

var db *sql.DB

// SubmissionRecord is one row in the diagnostic channel: the outcome of a
// single render submission plus the client's resource state when it landed.
type SubmissionRecord struct {
	ID          string
	Scenario    string
	State       string
	Message     string
	DurationMS  int64
	CPUUsage    float64
	MemoryUsage float64
}

// SetupLogging sets up logging to both a file and standard output and opens
// the diagnostic database.
func SetupLogging() {
	file, err := os.OpenFile("renderdeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Println("Failed to open log file, logging to stdout:", err)
	} else {
		mw := io.MultiWriter(os.Stdout, file)
		log.SetOutput(mw)
	}
	log.Println("Logging started")

	if err := OpenDatabase("./renderdeck.db"); err != nil {
		log.Fatalf("Failed to open diagnostic database: %v", err)
	}
}

// OpenDatabase opens (or creates) the diagnostic database at path.
func OpenDatabase(path string) error {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	return createTables()
}

func createTables() error {
	createSubmissions := `CREATE TABLE IF NOT EXISTS submissions (
        id TEXT PRIMARY KEY,
        scenario TEXT,
        state TEXT,
        message TEXT,
        duration_ms INTEGER,
        cpu_usage REAL,
        memory_usage REAL,
        timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
    );`
	if _, err := db.Exec(createSubmissions); err != nil {
		return err
	}

	createDiagnostics := `CREATE TABLE IF NOT EXISTS diagnostics (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        source TEXT,
        message TEXT,
        timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
    );`
	_, err := db.Exec(createDiagnostics)
	return err
}

// LogSubmission records one completed render submission.
func LogSubmission(rec *SubmissionRecord) {
	if db == nil {
		return
	}
	_, err := db.Exec(`INSERT INTO submissions (id, scenario, state, message, duration_ms, cpu_usage, memory_usage)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Scenario, rec.State, rec.Message, rec.DurationMS, rec.CPUUsage, rec.MemoryUsage)
	if err != nil {
		log.Printf("Failed to log submission: %v", err)
	}
}

// LogDiagnostic records a non-submission event, e.g. a catalog fetch failure.
func LogDiagnostic(source, message string) {
	log.Printf("%s: %s", source, message)
	if db == nil {
		return
	}
	if _, err := db.Exec(`INSERT INTO diagnostics (source, message) VALUES (?, ?)`, source, message); err != nil {
		log.Printf("Failed to log diagnostic: %v", err)
	}
}

// RecentSubmissions returns up to limit submission records, newest first.
func RecentSubmissions(limit int) ([]SubmissionRecord, error) {
	if db == nil {
		return nil, fmt.Errorf("diagnostic database not opened")
	}
	rows, err := db.Query(`SELECT id, scenario, state, message, duration_ms, cpu_usage, memory_usage
        FROM submissions ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []SubmissionRecord
	for rows.Next() {
		var rec SubmissionRecord
		if err := rows.Scan(&rec.ID, &rec.Scenario, &rec.State, &rec.Message,
			&rec.DurationMS, &rec.CPUUsage, &rec.MemoryUsage); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
