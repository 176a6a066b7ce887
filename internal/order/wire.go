package order

import (
	"go.uber.org/zap"

	"ordersvc/internal/order/controller"
	"ordersvc/internal/order/store"
)

func NewModule(logger *zap.Logger) *controller.OrderController {
	orders := store.New(logger)
	return controller.NewOrderController(orders, logger)
}
