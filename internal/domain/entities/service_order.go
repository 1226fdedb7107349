package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// ServiceOrderStatus represents the service order fulfilment status
type ServiceOrderStatus string

const (
	ServiceOrderStatusPending    ServiceOrderStatus = "pending"
	ServiceOrderStatusReceived   ServiceOrderStatus = "received"
	ServiceOrderStatusProcessing ServiceOrderStatus = "processing"
	ServiceOrderStatusReady      ServiceOrderStatus = "ready"
	ServiceOrderStatusDelivering ServiceOrderStatus = "delivering"
	ServiceOrderStatusCompleted  ServiceOrderStatus = "completed"
	ServiceOrderStatusCancelled  ServiceOrderStatus = "cancelled"
)

// ServiceOrder represents a product/service order placed with a merchant
type ServiceOrder struct {
	ID          uuid.UUID          `json:"id"`
	MerchantID  uuid.UUID          `json:"merchantId"`
	ServiceID   uuid.UUID          `json:"serviceId"`
	CustomerID  uuid.UUID          `json:"customerId"`
	Status      ServiceOrderStatus `json:"status"`
	Quantity    int                `json:"quantity"`
	UnitPrice   decimal.Decimal    `json:"unitPrice"`
	FeeRate     decimal.Decimal    `json:"feeRate"`
	FeeAmount   decimal.Decimal    `json:"feeAmount"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	ReceivedAt  null.Time          `json:"receivedAt,omitempty"`
	CompletedAt null.Time          `json:"completedAt,omitempty"`
	CancelledAt null.Time          `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// BaseAmount returns quantity x unit price, the amount fees are computed from
func (o *ServiceOrder) BaseAmount() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// ServiceOrderCreateInput represents input for placing a service order
type ServiceOrderCreateInput struct {
	MerchantID uuid.UUID `json:"merchantId" binding:"required"`
	ServiceID  uuid.UUID `json:"serviceId" binding:"required"`
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	UnitPrice  string    `json:"unitPrice" binding:"required"`
}
