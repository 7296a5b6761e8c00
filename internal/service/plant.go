package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diogochaves123/app-ecogrow/internal/catalog"
	"github.com/diogochaves123/app-ecogrow/internal/model"
)

type CreatePlantInput struct {
	UserID         string
	Name           string
	ScientificName string
	Type           model.PlantType
	Category       model.PlantCategory
	Location       string
	LightLevel     model.LightLevel
	Notes          string
	CreatedAt      time.Time
}

// CreatePlant registers a plant. The type must resolve in the care-plan
// catalog; new plants start at health "good" in location "Casa", matching the
// product defaults.
func CreatePlant(db *sql.DB, in CreatePlantInput) (*model.Plant, error) {
	name, err := requireText("plant name", in.Name)
	if err != nil {
		return nil, err
	}
	if _, err := catalog.Lookup(in.Type); err != nil {
		return nil, err
	}
	if in.Category == "" {
		return nil, fmt.Errorf("plant category is required")
	}
	if in.LightLevel != "" && !in.LightLevel.Valid() {
		return nil, fmt.Errorf("invalid light level %q", string(in.LightLevel))
	}
	if strings.TrimSpace(in.Location) == "" {
		in.Location = "Casa"
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}

	id := newID()
	_, err = db.Exec(`
INSERT INTO plants(id, user_id, name, scientific_name, type, category, health_status, location, light_level, notes, created_at, updated_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, id, in.UserID, name, strings.TrimSpace(in.ScientificName), string(in.Type), string(in.Category),
		string(model.HealthGood), strings.TrimSpace(in.Location), string(in.LightLevel),
		strings.TrimSpace(in.Notes), formatTime(in.CreatedAt), formatTime(in.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("insert plant: %w", err)
	}
	return GetPlant(db, id)
}

func GetPlant(db *sql.DB, id string) (*model.Plant, error) {
	row := db.QueryRow(plantSelect+` WHERE id = ?`, id)
	p, err := scanPlant(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plant %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load plant %s: %w", id, err)
	}
	return p, nil
}

// FindPlant resolves a plant by exact id or unique name match, in that order.
func FindPlant(db *sql.DB, ref string) (*model.Plant, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("plant reference is required")
	}
	p, err := GetPlant(db, ref)
	if err == nil {
		return p, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	rows, err := db.Query(plantSelect+` WHERE name = ? COLLATE NOCASE ORDER BY created_at ASC`, ref)
	if err != nil {
		return nil, fmt.Errorf("find plant %q: %w", ref, err)
	}
	defer rows.Close()

	matches, err := collectPlants(rows)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("plant %q: %w", ref, ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("plant name %q is ambiguous (%d matches); use the id", ref, len(matches))
	}
}

func ListPlants(db *sql.DB, userID string) ([]model.Plant, error) {
	rows, err := db.Query(plantSelect+` WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()
	return collectPlants(rows)
}

func CountPlants(db *sql.DB, userID string) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM plants WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return n, nil
}

type UpdatePlantInput struct {
	ID         string
	Location   *string
	LightLevel *model.LightLevel
	Notes      *string
}

func UpdatePlant(db *sql.DB, in UpdatePlantInput) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if in.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, strings.TrimSpace(*in.Location))
	}
	if in.LightLevel != nil {
		if !in.LightLevel.Valid() {
			return fmt.Errorf("invalid light level %q", string(*in.LightLevel))
		}
		sets = append(sets, "light_level = ?")
		args = append(args, string(*in.LightLevel))
	}
	if in.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, strings.TrimSpace(*in.Notes))
	}
	if len(sets) == 0 {
		return fmt.Errorf("nothing to update")
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(time.Now()), in.ID)

	res, err := db.Exec(`UPDATE plants SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update plant %s: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for plant %s: %w", in.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("plant %s: %w", in.ID, ErrNotFound)
	}
	return nil
}

// DeletePlant removes a plant; its care tasks go with it via the foreign key
// cascade.
func DeletePlant(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM plants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plant %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for plant %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("plant %s: %w", id, ErrNotFound)
	}
	return nil
}

const plantSelect = `
SELECT id, user_id, name, scientific_name, type, category, health_status, location, light_level, notes, healthy_since, created_at, updated_at
FROM plants`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (*model.Plant, error) {
	var (
		p            model.Plant
		healthySince sql.NullString
		createdAt    string
		updatedAt    string
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.ScientificName, (*string)(&p.Type), (*string)(&p.Category),
		(*string)(&p.HealthStatus), &p.Location, (*string)(&p.LightLevel), &p.Notes, &healthySince, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if healthySince.Valid {
		t, err := parseTime("plant healthy_since", healthySince.String)
		if err != nil {
			return nil, err
		}
		p.HealthySince = &t
	}
	if p.CreatedAt, err = parseTime("plant created_at", createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime("plant updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPlants(rows *sql.Rows) ([]model.Plant, error) {
	plants := make([]model.Plant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		plants = append(plants, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plants: %w", err)
	}
	return plants, nil
}
