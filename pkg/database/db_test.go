package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pgx duplicate", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped pgx duplicate", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"pgx foreign key", &pgconn.PgError{Code: "23503"}, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"record not found", gorm.ErrRecordNotFound, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qt.Assert(t, IsUniqueViolation(tt.err), qt.Equals, tt.want)
		})
	}
}

func TestGormLogLevel(t *testing.T) {
	c := qt.New(t)

	c.Assert(gormLogLevel("debug"), qt.Equals, gormlogger.Info)
	c.Assert(gormLogLevel("info"), qt.Equals, gormlogger.Warn)
	c.Assert(gormLogLevel("error"), qt.Equals, gormlogger.Error)
}

func TestMigrationsEmbedded(t *testing.T) {
	c := qt.New(t)

	entries, err := migrationsFS.ReadDir("migrations")
	c.Assert(err, qt.IsNil)

	var up, down int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			up++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			down++
		}
	}
	c.Assert(up, qt.Not(qt.Equals), 0)
	c.Assert(up, qt.Equals, down)
}
