// Package persistence provides database storage implementations.
package persistence

import (
	"fmt"
	"strings"

	"github.com/veridex/veridex/internal/database"
	"gorm.io/gorm"
)

// PreMigrate runs schema fixups that must happen before AutoMigrate can run
// cleanly. Unlike a system carrying over a prior on-disk format, veridex has
// no legacy schema to convert — this hook exists so a future format change
// has a place to land without every caller needing to change, and so the
// startup sequence documented in SPEC_FULL.md (premigrate, migrate,
// validate) stays in one piece even while this step is a no-op.
func PreMigrate(db database.Database) error {
	_ = db
	return nil
}

// AutoMigrate runs GORM auto migration for all models. Embedding tables are
// deliberately absent here: pgvector/vectorchord column types aren't
// expressible through GORM struct tags, so each embedding store creates its
// own table with raw SQL on first use.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(
		&RepositoryModel{},
		&CommitModel{},
		&BranchModel{},
		&TagModel{},
		&FileModel{},
		&CommitIndexModel{},
		&EnrichmentModel{},
		&EnrichmentAssociationModel{},
		&ChunkLineRangeModel{},
		&SnippetModel{},
		&SnippetCommitAssociationModel{},
		&SnippetFileDerivationModel{},
		&TaskModel{},
		&TaskStatusModel{},
	); err != nil {
		return err
	}
	return postMigrate(db)
}

// postMigrate creates FK constraints that GORM cannot manage correctly.
//
// GORM has a bug (go-gorm/gorm#7693) where AutoMigrate with multiple models
// creates spurious reverse FK constraints when a child model's composite PK
// shares a column with a parent model's PK. veridex_commit_files.commit_sha
// and veridex_commit_indexes.commit_sha both reference veridex_commits'
// primary key, which trips it, so their FKs are created by hand here.
// Idempotent: safe to run on every startup.
func postMigrate(db database.Database) error {
	if !db.IsPostgres() {
		return nil
	}

	gdb := db.GORM()

	constraints := []struct {
		table      string
		name       string
		definition string
	}{
		{
			table:      "veridex_commit_files",
			name:       "fk_commit_files_commit_sha",
			definition: "FOREIGN KEY (commit_sha) REFERENCES veridex_commits(commit_sha) ON DELETE CASCADE",
		},
		{
			table:      "veridex_commit_indexes",
			name:       "fk_commit_indexes_commit_sha",
			definition: "FOREIGN KEY (commit_sha) REFERENCES veridex_commits(commit_sha) ON DELETE CASCADE",
		},
	}

	for _, c := range constraints {
		if err := gdb.Exec(fmt.Sprintf(
			`ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s`, c.table, c.name,
		)).Error; err != nil {
			return fmt.Errorf("drop constraint %s.%s: %w", c.table, c.name, err)
		}
		if err := gdb.Exec(fmt.Sprintf(
			`ALTER TABLE %s ADD CONSTRAINT %s %s`, c.table, c.name, c.definition,
		)).Error; err != nil {
			return fmt.Errorf("create constraint %s.%s: %w", c.table, c.name, err)
		}
	}

	return nil
}

// allModels returns every GORM model that AutoMigrate manages. Embedding
// models are excluded; see the comment on AutoMigrate.
func allModels() []interface{} {
	return []interface{}{
		&RepositoryModel{},
		&CommitModel{},
		&BranchModel{},
		&TagModel{},
		&FileModel{},
		&CommitIndexModel{},
		&EnrichmentModel{},
		&EnrichmentAssociationModel{},
		&ChunkLineRangeModel{},
		&SnippetModel{},
		&SnippetCommitAssociationModel{},
		&SnippetFileDerivationModel{},
		&TaskModel{},
		&TaskStatusModel{},
	}
}

// ValidateSchema verifies every GORM model field has a corresponding column
// in the database. Returns an error listing any missing columns.
func ValidateSchema(db database.Database) error {
	gdb := db.GORM()
	migrator := gdb.Migrator()

	var missing []string
	for _, model := range allModels() {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse model schema: %w", err)
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return fmt.Errorf("get column types for %s: %w", stmt.Table, err)
		}

		actual := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			actual[ct.Name()] = true
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.DBName == "-" {
				continue
			}
			if !actual[field.DBName] {
				missing = append(missing, stmt.Table+"."+field.DBName)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed — missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
