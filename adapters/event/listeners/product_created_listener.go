package listeners

import (
	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/product"
	"go.uber.org/zap"
)

type ProductCreatedListener struct {
	logger *zap.SugaredLogger
}

func NewProductCreatedListener(logger *zap.SugaredLogger) *ProductCreatedListener {
	return &ProductCreatedListener{logger: logger}
}

func (l *ProductCreatedListener) Handle(event domain.DomainEvent) error {
	productCreatedEvent, ok := event.(product.ProductCreatedEvent)
	if !ok {
		return nil
	}

	l.logger.Infow("Sending email to the catalog subscribers",
		zap.String("product_id", productCreatedEvent.Data().ID),
		zap.String("product_name", productCreatedEvent.Data().Name),
	)

	return nil
}
