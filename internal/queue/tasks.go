package queue

import (
	"encoding/json"

	"github.com/bunai-store/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskRestockNotify 到货通知任务
	TaskRestockNotify = constants.TaskRestockNotify
	// TaskOrderFollowUp 订单跟进任务
	TaskOrderFollowUp = constants.TaskOrderFollowUp
)

// RestockNotifyPayload 到货通知任务载荷
type RestockNotifyPayload struct {
	ProductID uint `json:"product_id"`
}

// OrderFollowUpPayload 订单跟进任务载荷
type OrderFollowUpPayload struct {
	OrderID uint `json:"order_id"`
}

// NewRestockNotifyTask 创建到货通知任务
func NewRestockNotifyTask(payload RestockNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRestockNotify, body), nil
}

// NewOrderFollowUpTask 创建订单跟进任务
func NewOrderFollowUpTask(payload OrderFollowUpPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderFollowUp, body), nil
}
