package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/compass/internal/models"
)

// CreateSchema creates the schools table if it does not exist yet. It is run
// once at startup; a failure here means the process must not start serving.
func (r *Repository) CreateSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS schools (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		);
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create schools table: %w", err)
	}

	return nil
}

// InsertSchool persists a validated school and returns the identifier assigned
// by the database. The caller guarantees the record already passed validation,
// so the table never holds a row that would be rejected.
func (r *Repository) InsertSchool(ctx context.Context, school models.School) (int, error) {
	query := `
		INSERT INTO schools (name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	var id int
	err := r.db.QueryRow(ctx, query, school.Name, school.Address, school.Latitude, school.Longitude).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert school: %w", err)
	}

	r.log.DebugContext(ctx, "School persisted", "id", id, "name", school.Name)

	return id, nil
}

// ListSchools retrieves every registered school ordered by identifier, which is
// also the insertion order used as the tie-break when distances are equal.
func (r *Repository) ListSchools(ctx context.Context) ([]models.School, error) {
	query := `
		SELECT id, name, address, latitude, longitude
		FROM schools
		ORDER BY id ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query schools: %w", err)
	}
	defer rows.Close()

	var schools []models.School
	for rows.Next() {
		var school models.School
		if errScan := rows.Scan(
			&school.ID, &school.Name, &school.Address, &school.Latitude, &school.Longitude,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan school: %w", errScan)
		}
		schools = append(schools, school)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return schools, nil
}
