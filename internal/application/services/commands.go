package services

import (
	"strings"

	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// ChargeCommand is one inbound payment intent, whatever the channel.
type ChargeCommand struct {
	ProductID    string
	Customer     domain.CustomerData
	Card         *domain.CreditCardData
	Installments int
	RemoteIP     string
}

func (c ChargeCommand) normalized() ChargeCommand {
	n := c
	n.ProductID = strings.TrimSpace(c.ProductID)
	n.Customer = c.Customer.Normalize()
	if c.Card != nil {
		card := c.Card.Normalize()
		n.Card = &card
	}
	if n.Installments == 0 {
		n.Installments = 1
	}
	return n
}
