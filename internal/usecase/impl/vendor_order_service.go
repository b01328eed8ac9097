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

// vendorOrderService implements the VendorOrderUsecase interface.
type vendorOrderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewVendorOrderService is the constructor for vendorOrderService.
func NewVendorOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.VendorOrderUsecase {
	return &vendorOrderService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *vendorOrderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves the orders containing at least one item of the caller's
// shop, projected down to that shop's lines and subtotal.
func (srv *vendorOrderService) List(ctx context.Context, identity *authz.Identity, input *usecase.VendorOrderListInput) ([]*entity.VendorOrderView, error) {
	srv.log(ctx).Debug("Listing vendor orders", slog.String("status", input.Status), slog.String("search", input.Search))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return nil, err
	}

	filter := repository.OrderListFilter{Search: input.Search}
	if input.Status != "" {
		status, ok := entity.ParseOrderStatus(input.Status)
		if !ok {
			return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown status filter")
		}
		filter.Status = &status
	}

	var views []*entity.VendorOrderView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := ownShop(ctx, repoFactory.ShopRepo(), identity)
		if err != nil {
			return err
		}

		orders, err := repoFactory.OrderRepo().ListContainingShop(ctx, shop.ID, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		views = make([]*entity.VendorOrderView, 0, len(orders))
		for _, order := range orders {
			if view, ok := order.VendorView(shop.ID); ok {
				views = append(views, view)
			}
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list vendor orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list vendor orders")
	}

	return views, nil
}

// UpdateStatus sets the fulfillment status of an order containing the
// caller's items. Any valid status may follow any other; vendors routinely
// fix fat-fingered updates, so no transition graph is enforced. An order
// without the caller's items reads as not found.
func (srv *vendorOrderService) UpdateStatus(ctx context.Context, identity *authz.Identity, orderID uuid.UUID, status string) (*entity.VendorOrderView, error) {
	srv.log(ctx).Info("Updating order status", slog.Any("order_id", orderID), slog.String("status", status))

	if err := authz.Authorize(identity, authz.RequireRole(entity.RoleVendor)); err != nil {
		return nil, err
	}

	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown status")
	}

	var view *entity.VendorOrderView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		shop, err := ownShop(ctx, repoFactory.ShopRepo(), identity)
		if err != nil {
			return err
		}

		order, err := orderRepo.FindContainingShop(ctx, orderID, shop.ID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found for shop")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, parsed); err != nil {
			return errors.Wrap(err, "failed to update status")
		}
		order.Status = parsed

		projected, ok := order.VendorView(shop.ID)
		if !ok {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order lost shop items")
		}
		view = projected

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update order status", slog.Any("error", err), slog.Any("order_id", orderID))

		return nil, errors.Wrap(err, "failed to update order status")
	}
	srv.log(ctx).Info("Order status updated", slog.Any("order_id", orderID), slog.String("status", parsed.String()))

	return view, nil
}
