package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) FindAllByIDs(ids []string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price_minor, quantity, created_at, updated_at
		FROM products
		WHERE id = ANY($1)
		ORDER BY id ASC
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.PriceMinor, &product.Quantity,
			&product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// UpdateQuantities выполняет условный декремент остатков в одной транзакции.
// Условие quantity >= $2 в UPDATE делает списание атомарным: конкурирующий
// заказ на последний экземпляр либо пройдёт целиком, либо откатится.
func (r *productRepository) UpdateQuantities(requests []domain.ItemRequest) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	updated := make([]domain.Product, 0, len(requests))
	for _, req := range requests {
		var product domain.Product
		err = tx.QueryRowContext(ctx, `
			UPDATE products
			SET quantity = quantity - $2,
			    updated_at = NOW()
			WHERE id = $1
			  AND quantity >= $2
			RETURNING id, name, price_minor, quantity, created_at, updated_at
		`, req.ProductID, req.Quantity).Scan(
			&product.ID, &product.Name, &product.PriceMinor, &product.Quantity,
			&product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Либо товара нет, либо остатка не хватает: строка не подошла под условие.
				err = fmt.Errorf("product %s: %w", req.ProductID, domain.ErrInsufficientStock)
				return nil, err
			}
			err = fmt.Errorf("decrement product %s: %w", req.ProductID, err)
			return nil, err
		}
		updated = append(updated, product)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update quantities: %w", err)
	}

	return updated, nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
