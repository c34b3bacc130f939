package product

import (
	"database/sql"
	"fmt"
)

// PostgresRepository persists the catalog in the `product` table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `id, name, name_km, description, description_km, price, cost_price, category, category_km, image, rating, reviews, is_new_arrival`

func scanProduct(row interface{ Scan(dest ...any) error }) (Product, error) {
	var p Product
	var nameKm, descKm, catKm sql.NullString
	err := row.Scan(&p.ID, &p.Name, &nameKm, &p.Description, &descKm, &p.Price, &p.CostPrice, &p.Category, &catKm, &p.Image, &p.Rating, &p.Reviews, &p.IsNewArrival)
	if err != nil {
		return Product{}, err
	}
	if nameKm.Valid {
		p.NameKm = &nameKm.String
	}
	if descKm.Valid {
		p.DescriptionKm = &descKm.String
	}
	if catKm.Valid {
		p.CategoryKm = &catKm.String
	}
	return p, nil
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM product ORDER BY id`)
	if err != nil {
		fmt.Printf("warning: product list query failed: %v\n", err)
		return nil
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM product WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	if p.ID == "" {
		var n int
		if err := r.db.QueryRow(`SELECT COUNT(*) FROM product`).Scan(&n); err == nil {
			p.ID = fmt.Sprintf("p%d", n+1)
		}
	}
	_, err := r.db.Exec(`INSERT INTO product (`+productColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Name, p.NameKm, p.Description, p.DescriptionKm, p.Price, p.CostPrice, p.Category, p.CategoryKm, p.Image, p.Rating, p.Reviews, p.IsNewArrival)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	p.ID = id
	res, err := r.db.Exec(`UPDATE product SET name=$2, name_km=$3, description=$4, description_km=$5, price=$6, cost_price=$7, category=$8, category_km=$9, image=$10, rating=$11, reviews=$12, is_new_arrival=$13 WHERE id=$1`,
		p.ID, p.Name, p.NameKm, p.Description, p.DescriptionKm, p.Price, p.CostPrice, p.Category, p.CategoryKm, p.Image, p.Rating, p.Reviews, p.IsNewArrival)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset replaces the whole table contents with the provided products.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM product`); err != nil {
		tx.Rollback()
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(`INSERT INTO product (`+productColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
			p.ID, p.Name, p.NameKm, p.Description, p.DescriptionKm, p.Price, p.CostPrice, p.Category, p.CategoryKm, p.Image, p.Rating, p.Reviews, p.IsNewArrival); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// EnsureSchema creates the product table when it is missing and seeds it with
// the default catalog if empty.
func (r *PostgresRepository) EnsureSchema(seed []Product) error {
	if _, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS product (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		name_km TEXT,
		description TEXT,
		description_km TEXT,
		price NUMERIC NOT NULL DEFAULT 0,
		cost_price NUMERIC NOT NULL DEFAULT 0,
		category TEXT,
		category_km TEXT,
		image TEXT,
		rating NUMERIC NOT NULL DEFAULT 0,
		reviews INT NOT NULL DEFAULT 0,
		is_new_arrival BOOLEAN NOT NULL DEFAULT FALSE
	)`); err != nil {
		return err
	}
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM product`).Scan(&count); err == nil && count == 0 {
		if err := r.Reset(seed); err != nil {
			fmt.Printf("warning: product seed failed: %v\n", err)
		}
	}
	return nil
}
