package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const restaurantColumns = `
	id, name, address, coordinates, has_menu, registration_id,
	custom_name, owner, status, map_id, represent, create_date, update_date
`

func formatPoint(lng, lat float64) string {
	return fmt.Sprintf("POINT(%g %g)", lng, lat)
}

func parsePoint(s string) [2]float64 {
	var lng, lat float64
	if _, err := fmt.Sscanf(s, "POINT(%f %f)", &lng, &lat); err != nil {
		return [2]float64{0, 0}
	}
	return [2]float64{lng, lat}
}

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	var (
		r          Restaurant
		point      string
		customName *string
		ownerJSON  []byte
		mapID      *string
		represent  *string
	)

	err := row.Scan(
		&r.ID, &r.Name, &r.Address, &point, &r.HasMenu, &r.RegistrationID,
		&customName, &ownerJSON, &r.Status, &mapID, &represent,
		&r.CreateDate, &r.UpdateDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	r.Coordinates = parsePoint(point)
	if customName != nil {
		r.CustomName = *customName
	}
	if mapID != nil {
		r.MapID = *mapID
	}
	if represent != nil {
		r.Represent = *represent
	}
	if err := json.Unmarshal(ownerJSON, &r.Owner); err != nil {
		return nil, fmt.Errorf("corrupt owner payload: %w", err)
	}

	return &r, nil
}

func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	now := time.Now()
	restaurant.CreateDate = now
	restaurant.UpdateDate = now

	ownerJSON, err := json.Marshal(restaurant.Owner)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.Exec(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.Address,
		formatPoint(restaurant.Lng(), restaurant.Lat()),
		restaurant.HasMenu, restaurant.RegistrationID,
		nullable(restaurant.CustomName), ownerJSON, restaurant.Status,
		nullable(restaurant.MapID), nullable(restaurant.Represent),
		restaurant.CreateDate, restaurant.UpdateDate,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	return scanRestaurant(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) FindByRegistrationID(
	ctx context.Context,
	registrationID string,
) (*Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE registration_id = $1`
	return scanRestaurant(r.db.QueryRow(ctx, query, registrationID))
}

func (r *PostgresRepository) Search(
	ctx context.Context,
	params SearchParams,
) ([]*Restaurant, int, error) {
	params.Normalize()

	where := []string{}
	args := []any{}

	add := func(clause string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if params.Name != "" {
		add("name ILIKE $%d", "%"+params.Name+"%")
	}
	if params.Address != "" {
		add("address ILIKE $%d", "%"+params.Address+"%")
	}
	if params.Status != "" {
		add("status = $%d", string(params.Status))
	}
	if params.HasMenu != nil {
		add("has_menu = $%d", *params.HasMenu)
	}
	if params.RegistrationID != "" {
		add("registration_id ILIKE $%d", "%"+params.RegistrationID+"%")
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(name ILIKE $%d OR address ILIKE $%d OR custom_name ILIKE $%d OR represent ILIKE $%d)",
			n, n, n, n,
		))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(id) FROM restaurants` + whereSQL
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "DESC"
	if params.SortOrder == "asc" {
		order = "ASC"
	}

	query := `SELECT ` + restaurantColumns + ` FROM restaurants` + whereSQL +
		fmt.Sprintf(" ORDER BY create_date %s LIMIT $%d OFFSET $%d", order, len(args)+1, len(args)+2)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants := []*Restaurant{}
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, 0, err
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return restaurants, total, nil
}

func (r *PostgresRepository) Update(ctx context.Context, restaurant *Restaurant) error {
	restaurant.UpdateDate = time.Now()

	ownerJSON, err := json.Marshal(restaurant.Owner)
	if err != nil {
		return err
	}

	query := `
		UPDATE restaurants
		SET name = $2, address = $3, coordinates = $4, has_menu = $5,
			custom_name = $6, owner = $7, map_id = $8, represent = $9,
			update_date = $10
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.Address,
		formatPoint(restaurant.Lng(), restaurant.Lat()),
		restaurant.HasMenu, nullable(restaurant.CustomName), ownerJSON,
		nullable(restaurant.MapID), nullable(restaurant.Represent),
		restaurant.UpdateDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status Status,
) (*Restaurant, error) {
	query := `
		UPDATE restaurants
		SET status = $2, update_date = $3
		WHERE id = $1
		RETURNING ` + restaurantColumns
	return scanRestaurant(r.db.QueryRow(ctx, query, id, status, time.Now()))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
