package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// containsShopCondition restricts an orders query to orders holding at least
// one item of the given shop. It backs every vendor-facing read, so an order
// without the vendor's items is indistinguishable from a missing one.
const containsShopCondition = "EXISTS (SELECT 1 FROM order_items WHERE order_items.order_id = orders.id AND order_items.shop_id = ?)"

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order with its item snapshots.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("ordering customer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByIDForCustomer retrieves an order with items, owned by the customer.
func (repo *orderRepository) FindByIDForCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		First(&orderM, "id = ? AND customer_id = ?", id, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByCustomer retrieves a customer's orders, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderMs), nil
}

// FindContainingShop retrieves an order with items and customer, only if at
// least one item belongs to the shop.
func (repo *orderRepository) FindContainingShop(ctx context.Context, id, shopID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where(containsShopCondition, shopID).
		First(&orderM, "orders.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for shop")
	}

	return toOrderDomain(&orderM), nil
}

// ListContainingShop retrieves orders with at least one item of the shop.
// Search matches the order id prefix, customer name or customer email.
func (repo *orderRepository) ListContainingShop(ctx context.Context, shopID uuid.UUID, filter repository.OrderListFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where(containsShopCondition, shopID).
		Order("orders.created_at DESC")

	if filter.Status != nil {
		query = query.Where("orders.status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN users ON users.id = orders.customer_id").
			Where("orders.id::text ILIKE ? OR users.email ILIKE ? OR (users.first_name || ' ' || users.last_name) ILIKE ?",
				pattern, pattern, pattern)
	}

	var orderMs []*model.OrderModel
	if err := query.Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders for shop")
	}

	return toOrderDomains(orderMs), nil
}

// UpdateStatus sets the fulfillment status of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ShopID:      itemM.ShopID,
			ProductName: itemM.ProductName,
			Price:       itemM.Price,
			Quantity:    itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:                 data.ID,
		CustomerID:         data.CustomerID,
		Customer:           toUserDomain(data.Customer),
		Status:             entity.OrderStatus(data.Status),
		ShippingAddressRaw: string(data.ShippingAddress),
		District:           data.District,
		Items:              items,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toOrderDomains(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.OrderItemModel{
			ProductID:   item.ProductID,
			ShopID:      item.ShopID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		Status:          data.Status.String(),
		ShippingAddress: datatypes.JSON(data.ShippingAddressRaw),
		District:        data.District,
		Items:           items,
	}
}
