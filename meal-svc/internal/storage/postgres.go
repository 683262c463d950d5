package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bytebite/meal-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateMeal(ctx context.Context, meal *domain.Meal) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO meals (id, restaurant_name, dish_name, description, price, prep_time, area)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		meal.ID, meal.RestaurantName, meal.DishName, meal.Description, meal.Price, meal.PrepTime, meal.Area,
	).Scan(&meal.CreatedAt)
}

func (r *PostgresRepository) ListMealsByArea(ctx context.Context, area string) ([]domain.Meal, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_name, dish_name, description, price, prep_time, area, created_at
		FROM meals
		WHERE area = $1
		ORDER BY restaurant_name, dish_name`, area)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := []domain.Meal{}
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.RestaurantName, &m.DishName, &m.Description, &m.Price, &m.PrepTime, &m.Area, &m.CreatedAt); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, delivery_area) VALUES ($1, $2) RETURNING id, created_at",
		rest.Name, rest.DeliveryArea,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, customer_address, customer_phone, special_instructions,
			delivery_area, total_price, estimated_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		order.CustomerName, order.CustomerAddress, order.CustomerPhone, order.SpecialInstructions,
		order.DeliveryArea, order.TotalPrice, order.EstimatedDeliveryTime,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for _, l := range order.Lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, dish_name, restaurant_name, price, prep_time, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, l.DishName, l.RestaurantName, l.Price, l.PrepTime, l.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int64, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_name, customer_address, customer_phone, COALESCE(special_instructions, ''),
			delivery_area, total_price, estimated_delivery_time, created_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&order.ID, &order.CustomerName, &order.CustomerAddress, &order.CustomerPhone, &order.SpecialInstructions,
			&order.DeliveryArea, &order.TotalPrice, &order.EstimatedDeliveryTime, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT dish_name, restaurant_name, price, prep_time, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.DishName, &l.RestaurantName, &l.Price, &l.PrepTime, &l.Quantity); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, l)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	var qrCode []byte
	err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return qrCode, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS meals (
		id TEXT PRIMARY KEY,
		restaurant_name TEXT NOT NULL,
		dish_name TEXT NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(10, 2) NOT NULL CHECK (price > 0),
		prep_time INTEGER NOT NULL CHECK (prep_time > 0),
		area TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS meals_area_idx ON meals (area)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		delivery_area TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_address TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		special_instructions TEXT,
		delivery_area TEXT NOT NULL,
		total_price NUMERIC(10, 2) NOT NULL,
		estimated_delivery_time INTEGER NOT NULL,
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		dish_name TEXT NOT NULL,
		restaurant_name TEXT NOT NULL,
		price NUMERIC(10, 2) NOT NULL,
		prep_time INTEGER NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0)
	)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
