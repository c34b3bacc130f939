package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "name_km", "description", "description_km", "price", "cost_price", "category", "category_km", "image", "rating", "reviews", "is_new_arrival"})
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow("p1", "Cleanser", "ខ្មែរ", "gentle", nil, 18.0, 7.5, "Cleanser", nil, "img", 4.7, 212, false).
		AddRow("p2", "Toner", nil, "fresh", nil, 22.0, 9.0, "Toner", nil, "img2", 4.5, 164, true)
	mock.ExpectQuery("SELECT .* FROM product ORDER BY id").WillReturnRows(rows)

	all := repo.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].NameKm == nil || *all[0].NameKm != "ខ្មែរ" {
		t.Fatalf("expected nameKm preserved, got %+v", all[0].NameKm)
	}
	if all[1].NameKm != nil {
		t.Fatalf("expected nil nameKm for p2")
	}
	if !all[1].IsNewArrival {
		t.Fatalf("expected p2 flagged as new arrival")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow("p7", "Night Cream Intense", nil, "for dry skin", nil, 38.0, 15.5, "Moisturizer", nil, "img", 4.8, 276, false)
	mock.ExpectQuery("SELECT .* FROM product WHERE id").WithArgs("p7").WillReturnRows(rows)

	p, err := repo.GetByID("p7")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if p.ID != "p7" || p.Name != "Night Cream Intense" {
		t.Fatalf("unexpected product %+v", p)
	}

	// missing row surfaces ErrNotFound
	mock.ExpectQuery("SELECT .* FROM product WHERE id").WithArgs("ghost").WillReturnRows(productRows())
	if _, err := repo.GetByID("ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM product").WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete("p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mock.ExpectExec("DELETE FROM product").WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete("ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
