package usecase

import (
	"context"
	"time"

	"github.com/mpilco/inventario-api/internal/application/dto"
	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El código debe ser único en el catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.UnidCaja <= 0 {
		return nil, domain.NewValidationError("unid_caja", "debe ser mayor que 0")
	}
	if in.StockTotal < 0 {
		return nil, domain.NewValidationError("stock_total", "no puede ser negativo")
	}
	now := time.Now()
	product := &entity.Product{
		Codigo:      in.Codigo,
		Descripcion: in.Descripcion,
		UnidCaja:    in.UnidCaja,
		StockTotal:  in.StockTotal,
		Consumos:    in.Consumos,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Consumos == nil {
		product.Consumos = map[string]int{}
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCodigo obtiene un producto por código, o nil si no existe.
func (uc *ProductUseCase) GetByCodigo(ctx context.Context, codigo string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos mutables de un producto. El código es inmutable.
func (uc *ProductUseCase) Update(ctx context.Context, codigo string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Descripcion != nil {
		product.Descripcion = *in.Descripcion
	}
	if in.UnidCaja != nil {
		if *in.UnidCaja <= 0 {
			return nil, domain.NewValidationError("unid_caja", "debe ser mayor que 0")
		}
		product.UnidCaja = *in.UnidCaja
	}
	if in.StockTotal != nil {
		if *in.StockTotal < 0 {
			return nil, domain.NewValidationError("stock_total", "no puede ser negativo")
		}
		product.StockTotal = *in.StockTotal
	}
	if in.Consumos != nil {
		product.Consumos = in.Consumos
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por código.
func (uc *ProductUseCase) Delete(ctx context.Context, codigo string) error {
	return uc.repo.Delete(ctx, codigo)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		Codigo:      p.Codigo,
		Descripcion: p.Descripcion,
		UnidCaja:    p.UnidCaja,
		StockTotal:  p.StockTotal,
		Consumos:    p.Consumos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
