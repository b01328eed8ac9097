package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/authz"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerOrderService implements the CustomerOrderUsecase interface.
type customerOrderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCustomerOrderService is the constructor for customerOrderService.
func NewCustomerOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CustomerOrderUsecase {
	return &customerOrderService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *customerOrderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout turns the caller's cart into an order. Item snapshots, stock
// decrements and the cart clear all commit or roll back together, so a stock
// failure on the last line leaves no partial order behind.
func (srv *customerOrderService) Checkout(ctx context.Context, identity *authz.Identity, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.log(ctx).Info("Checking out", slog.Any("customer_id", identityUserID(identity)))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	rawAddress, err := input.ShippingAddress.Serialize()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	var order *entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		cart, err := cartRepo.ListByCustomer(ctx, identity.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart")
		}
		if len(cart) == 0 {
			return errors.Wrap(domainerrors.ErrEmptyCart, "nothing to order")
		}

		created := &entity.Order{
			CustomerID:         identity.UserID,
			Status:             entity.OrderStatusPending,
			ShippingAddressRaw: rawAddress,
			District:           input.ShippingAddress.District,
		}

		for _, line := range cart {
			if line.Product == nil {
				return errors.Wrap(domainerrors.ErrProductNotFound, "cart references missing product")
			}
			created.Items = append(created.Items, &entity.OrderItem{
				ProductID:   line.ProductID,
				ShopID:      line.Product.ShopID,
				ProductName: line.Product.Name,
				Price:       line.Product.Price,
				Quantity:    line.Quantity,
			})
		}

		if err := repoFactory.OrderRepo().Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// Atomic decrements close the race between the cart-time stock check
		// and the purchase.
		for _, line := range cart {
			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.Wrap(
						domainerrors.ErrInsufficientStock.WithDetails(line.Product.Name),
						"stock changed since cart",
					)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		if err := cartRepo.ClearByCustomer(ctx, identity.UserID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}
		order = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to checkout")
	}
	srv.log(ctx).Info("Order placed", slog.Any("order_id", order.ID))

	return order, nil
}

// List retrieves the caller's orders, newest first.
func (srv *customerOrderService) List(ctx context.Context, identity *authz.Identity) ([]*entity.Order, error) {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListByCustomer(ctx, identity.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get retrieves one of the caller's orders with the shipping address decoded.
// Another customer's order is indistinguishable from a missing one.
func (srv *customerOrderService) Get(ctx context.Context, identity *authz.Identity, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleCustomer)); err != nil {
		return nil, err
	}

	var detail *usecase.OrderDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByIDForCustomer(ctx, orderID, identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		address, err := entity.ParseShippingAddress(order.ShippingAddressRaw)
		if err != nil {
			// A stored address that cannot be decoded is a data defect, not
			// client error.
			return errors.Wrap(domainerrors.ErrAddressParseFailed, err.Error())
		}

		detail = &usecase.OrderDetail{Order: order, ShippingAddress: address}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get order", slog.Any("error", err), slog.Any("order_id", orderID))

		return nil, errors.Wrap(err, "failed to get order")
	}

	return detail, nil
}
