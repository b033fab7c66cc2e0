package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Consumos se persiste como JSONB.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (codigo, descripcion, unid_caja, stock_total, consumos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.Codigo, product.Descripcion, product.UnidCaja, product.StockTotal,
		product.Consumos, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un producto por código.
func (r *ProductRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error) {
	query := `
		SELECT codigo, descripcion, unid_caja, stock_total, consumos, created_at, updated_at
		FROM products WHERE codigo = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, codigo).Scan(
		&p.Codigo, &p.Descripcion, &p.UnidCaja, &p.StockTotal, &p.Consumos,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Exists verifica la existencia del producto sin traer el registro completo.
func (r *ProductRepo) Exists(ctx context.Context, codigo string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE codigo = $1)`, codigo,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}

// Update actualiza los campos mutables de un producto. El código es inmutable.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET descripcion = $2, unid_caja = $3, stock_total = $4, consumos = $5, updated_at = $6
		WHERE codigo = $1`
	_, err := r.q.Exec(ctx, query,
		product.Codigo, product.Descripcion, product.UnidCaja, product.StockTotal,
		product.Consumos, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación, los más recientes primero.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT codigo, descripcion, unid_caja, stock_total, consumos, created_at, updated_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Codigo, &p.Descripcion, &p.UnidCaja, &p.StockTotal,
			&p.Consumos, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por código.
func (r *ProductRepo) Delete(ctx context.Context, codigo string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE codigo = $1`, codigo)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
