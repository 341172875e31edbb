package migration

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
)

// Drivers lists the dialect directories every migration is written for
var Drivers = []string{config.DriverPostgres, config.DriverSQLite}

const migrationUpTemplate = `-- Migration: {{.Name}} ({{.Driver}})
-- Created: {{.Timestamp}}
-- Description: {{.Description}}

-- Write your UP migration SQL here

`

const migrationDownTemplate = `-- Migration: {{.Name}} ({{.Driver}}, rollback)
-- Created: {{.Timestamp}}
-- Description: Rollback for {{.Description}}

-- Write your DOWN migration SQL here

`

// MigrationFile represents a migration file pair for one driver
type MigrationFile struct {
	Version     string
	Name        string
	Driver      string
	Description string
	Timestamp   string
	UpPath      string
	DownPath    string
}

// CreateMigration writes an empty up/down pair into every driver directory
// under migrationsDir. The version is one past the highest existing version.
func CreateMigration(migrationsDir, name, description string) ([]*MigrationFile, error) {
	safe := sanitizeName(name)
	if safe == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}

	next, err := nextVersion(migrationsDir)
	if err != nil {
		return nil, err
	}
	version := fmt.Sprintf("%06d", next)
	timestamp := time.Now().Format(time.RFC3339)

	files := make([]*MigrationFile, 0, len(Drivers))
	for _, driver := range Drivers {
		dir := filepath.Join(migrationsDir, driver)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create migrations directory: %w", err)
		}

		baseName := version + "_" + safe
		mf := &MigrationFile{
			Version:     version,
			Name:        name,
			Driver:      driver,
			Description: description,
			Timestamp:   timestamp,
			UpPath:      filepath.Join(dir, baseName+".up.sql"),
			DownPath:    filepath.Join(dir, baseName+".down.sql"),
		}

		if err := createMigrationFile(mf.UpPath, migrationUpTemplate, mf); err != nil {
			return nil, fmt.Errorf("failed to create up migration: %w", err)
		}
		if err := createMigrationFile(mf.DownPath, migrationDownTemplate, mf); err != nil {
			_ = os.Remove(mf.UpPath)
			return nil, fmt.Errorf("failed to create down migration: %w", err)
		}
		files = append(files, mf)
	}

	return files, nil
}

func createMigrationFile(path, tmplContent string, data *MigrationFile) error {
	tmpl, err := template.New("migration").Parse(tmplContent)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// nextVersion scans every driver directory for the highest numeric prefix
func nextVersion(migrationsDir string) (int, error) {
	highest := 0
	for _, driver := range Drivers {
		names, err := ListMigrations(os.DirFS(migrationsDir), driver)
		if err != nil {
			return 0, err
		}
		for _, n := range names {
			prefix, _, _ := strings.Cut(n, "_")
			v, err := strconv.Atoi(prefix)
			if err != nil {
				continue
			}
			if v > highest {
				highest = v
			}
		}
	}
	return highest + 1, nil
}

// sanitizeName converts a migration name to lower snake case
func sanitizeName(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == ' ' || c == '-' || c == '_':
			s := b.String()
			if len(s) > 0 && s[len(s)-1] != '_' {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// ListMigrations returns the sorted base names of the up migrations for driver
func ListMigrations(fsys fs.FS, driver string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, driver)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}
	sort.Strings(names)
	return names, nil
}
