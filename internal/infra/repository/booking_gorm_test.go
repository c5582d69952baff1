package repository

import (
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// banco em DryRun: monta o SQL sem conexão, só para inspecionar o
// que seria enviado ao Postgres
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.Open("host=localhost user=dryrun dbname=dryrun"),
		&gorm.Config{
			DryRun:               true,
			DisableAutomaticPing: true,
		},
	)
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db
}

func conflictSQL(t *testing.T, excludeID uint) string {
	t.Helper()

	db := dryRunDB(t)
	start := time.Date(2030, 6, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	var ids []uint
	stmt := conflictingAppointments(db, 1, start, end, excludeID).
		Pluck("id", &ids).Statement

	return stmt.SQL.String()
}

func TestConflictQuery_LocksRowsWithoutAggregate(t *testing.T) {
	sql := conflictSQL(t, 0)

	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("expected FOR UPDATE in query, got: %s", sql)
	}

	// FOR UPDATE com agregado é rejeitado pelo Postgres
	if strings.Contains(strings.ToLower(sql), "count(") {
		t.Fatalf("query must not aggregate under FOR UPDATE, got: %s", sql)
	}
}

func TestConflictQuery_HalfOpenOverlapPredicate(t *testing.T) {
	sql := conflictSQL(t, 0)

	if !strings.Contains(sql, "start_time < ") || !strings.Contains(sql, "end_time > ") {
		t.Fatalf("expected half-open overlap predicate, got: %s", sql)
	}
	if !strings.Contains(sql, "status = 'scheduled'") {
		t.Fatalf("expected scheduled-only filter, got: %s", sql)
	}
}

func TestConflictQuery_ExcludesGivenAppointment(t *testing.T) {
	if sql := conflictSQL(t, 0); strings.Contains(sql, "id <> ") {
		t.Fatalf("no exclusion expected without id, got: %s", sql)
	}
	if sql := conflictSQL(t, 7); !strings.Contains(sql, "id <> ") {
		t.Fatalf("expected exclusion clause, got: %s", sql)
	}
}
