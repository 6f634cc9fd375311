package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bunai-store/internal/constants"
	"github.com/bunai-store/internal/logger"
	"github.com/bunai-store/internal/models"
	"github.com/bunai-store/internal/provider"
	"github.com/bunai-store/internal/queue"
	"github.com/bunai-store/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskRestockNotify, c.handleRestockNotify)
	mux.HandleFunc(queue.TaskOrderFollowUp, c.handleOrderFollowUp)
}

// handleRestockNotify 商品补货后批量结算 pending 登记。
// 实际触达由店员按返回名单线下完成，这里只负责状态流转与留痕。
func (c *Consumer) handleRestockNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_restock_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.RestockNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_restock_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_restock_notify_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}
	if c.StockNotificationService == nil {
		logger.Warnw("worker_restock_notify_skip_service_nil", "product_id", payload.ProductID)
		return nil
	}

	notified, err := c.StockNotificationService.NotifyProduct(payload.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			logger.Debugw("worker_restock_notify_skip_product_not_found", "product_id", payload.ProductID)
			return nil
		}
		logger.Warnw("worker_restock_notify_failed", "product_id", payload.ProductID, "error", err)
		return err
	}

	for _, item := range notified {
		logger.Infow("restock_notification_due",
			"product_id", item.ProductID,
			"phone", item.Phone,
			"name", item.Name,
		)
	}
	logger.Infow("worker_restock_notify_done",
		"product_id", payload.ProductID,
		"count", len(notified),
	)
	return nil
}

// handleOrderFollowUp 下单 24 小时后的跟进提醒。
// 仍处于 pending 的订单输出跟进记录，供店员在 WhatsApp 上联系客户。
func (c *Consumer) handleOrderFollowUp(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_follow_up_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderFollowUpPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_follow_up_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_follow_up_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_follow_up_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_follow_up_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	if !needsFollowUp(order) {
		logger.Debugw("worker_order_follow_up_skip_status",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"status", order.Status,
		)
		return nil
	}

	logger.Infow("order_follow_up_due",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"customer_phone", order.CustomerPhone,
		"note", buildFollowUpNote(order),
	)
	return nil
}

// needsFollowUp 只有仍在 pending 的订单需要跟进。
func needsFollowUp(order *models.Order) bool {
	if order == nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(order.Status)) == constants.OrderStatusPending
}

func buildFollowUpNote(order *models.Order) string {
	if order == nil {
		return ""
	}
	name := strings.TrimSpace(order.CustomerName)
	if name == "" {
		name = "customer"
	}
	return fmt.Sprintf("%s placed order %s (%s %s) and has not confirmed yet",
		name, order.OrderNo, order.Currency, order.TotalAmount)
}
