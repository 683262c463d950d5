package checkout

import (
	"context"
	"errors"
	"fmt"

	"bytebite/catalog"
	"bytebite/mealapi"
)

// Estimate is the submitter's answer to a placed order.
type Estimate struct {
	Minutes   int
	OrderID   int64
	QRCodeURL string
}

type OrderSubmitter interface {
	Submit(ctx context.Context, order *Order) (*Estimate, error)
}

type OrderAPI interface {
	SubmitOrder(ctx context.Context, req mealapi.OrderRequest) (*mealapi.OrderResult, error)
}

// APISubmitter places orders with the meal service.
type APISubmitter struct {
	api OrderAPI
}

var _ OrderSubmitter = (*APISubmitter)(nil)

func NewAPISubmitter(api OrderAPI) *APISubmitter {
	return &APISubmitter{api: api}
}

func (s *APISubmitter) Submit(ctx context.Context, order *Order) (*Estimate, error) {
	result, err := s.api.SubmitOrder(ctx, order.Request())
	if err != nil {
		var apiErr *mealapi.APIError
		if errors.As(err, &apiErr) {
			return nil, &SubmissionError{Message: apiErr.Message, Err: err}
		}
		return nil, &SubmissionError{Message: "Failed to submit order. Please try again.", Err: err}
	}

	est := &Estimate{
		Minutes:   result.EstimatedDeliveryTime,
		OrderID:   result.OrderID,
		QRCodeURL: result.QRCode,
	}
	if est.QRCodeURL == "" && result.OrderID != 0 {
		est.QRCodeURL = fmt.Sprintf("/api/orders/%d/qrcode", result.OrderID)
	}
	return est, nil
}

// LocalSubmitter estimates delivery without contacting any service.
type LocalSubmitter struct{}

var _ OrderSubmitter = (*LocalSubmitter)(nil)

func NewLocalSubmitter() *LocalSubmitter {
	return &LocalSubmitter{}
}

func (s *LocalSubmitter) Submit(ctx context.Context, order *Order) (*Estimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, &SubmissionError{Message: "Failed to submit order. Please try again.", Err: err}
	}

	lines := order.Lines()
	prepTimes := make([]int, 0, len(lines))
	for _, l := range lines {
		prepTimes = append(prepTimes, l.Meal.PrepTime)
	}
	return &Estimate{
		Minutes: catalog.EstimateDeliveryMinutes(order.Area(), prepTimes, order.TotalItems()),
	}, nil
}
