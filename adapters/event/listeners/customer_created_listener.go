package listeners

import (
	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/customer"
	"go.uber.org/zap"
)

type ConsoleLogCreatedListener struct {
	logger *zap.SugaredLogger
}

func NewConsoleLogCreatedListener(logger *zap.SugaredLogger) *ConsoleLogCreatedListener {
	return &ConsoleLogCreatedListener{logger: logger}
}

func (l *ConsoleLogCreatedListener) Handle(event domain.DomainEvent) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	l.logger.Info("This is the first console.log of the event: CustomerCreated")

	return nil
}

type ConsoleLogCreatedSecondListener struct {
	logger *zap.SugaredLogger
}

func NewConsoleLogCreatedSecondListener(logger *zap.SugaredLogger) *ConsoleLogCreatedSecondListener {
	return &ConsoleLogCreatedSecondListener{logger: logger}
}

func (l *ConsoleLogCreatedSecondListener) Handle(event domain.DomainEvent) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	l.logger.Info("This is the second console.log of the event: CustomerCreated")

	return nil
}
