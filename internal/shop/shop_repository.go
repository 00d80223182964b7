package shop

import (
	"errors"

	"gorm.io/gorm"
)

// Repository defines the interface for shop data operations
type Repository interface {
	CreateProduct(p *Product) error
	GetProductByID(id uint) (*Product, error)
	GetActiveProducts(page, limit int) ([]Product, int64, error)
	UpdateProduct(p *Product) error

	CreateOrder(o *Order) error
	GetOrderByID(id uint) (*Order, error)
	GetOrdersByUserID(userID uint, page, limit int) ([]Order, int64, error)
	UpdateOrder(o *Order) error
}

type shopRepository struct {
	db *gorm.DB
}

// NewRepository creates a new instance of Repository
func NewRepository(db *gorm.DB) Repository {
	return &shopRepository{db: db}
}

func (r *shopRepository) CreateProduct(p *Product) error {
	return r.db.Create(p).Error
}

func (r *shopRepository) GetProductByID(id uint) (*Product, error) {
	var p Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *shopRepository) GetActiveProducts(page, limit int) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.Model(&Product{}).Where("active = ?", true)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *shopRepository) UpdateProduct(p *Product) error {
	return r.db.Save(p).Error
}

func (r *shopRepository) CreateOrder(o *Order) error {
	return r.db.Create(o).Error
}

func (r *shopRepository) GetOrderByID(id uint) (*Order, error) {
	var o Order
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *shopRepository) GetOrdersByUserID(userID uint, page, limit int) ([]Order, int64, error) {
	var orders []Order
	var total int64

	query := r.db.Model(&Order{}).Where("user_id = ?", userID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *shopRepository) UpdateOrder(o *Order) error {
	return r.db.Save(o).Error
}
