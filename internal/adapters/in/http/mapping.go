package http

import (
	"orders/internal/core/application/readmodel"
	"orders/internal/generated/servers"
)

func toProduct(p readmodel.Product) servers.Product {
	return servers.Product{Id: p.ID, Name: p.Name}
}

func toCustomer(c readmodel.Customer) servers.Customer {
	return servers.Customer{Id: c.ID, Name: c.Name}
}

func toOrder(o readmodel.Order) servers.Order {
	response := servers.Order{
		Id:        o.ID,
		ProductId: o.ProductID(),
		Product:   toProduct(o.Product),
		Quantity:  o.Quantity,
		Status:    o.Status.String(),
		Timestamp: o.CreatedAt.UTC(),
	}

	if o.Customer != nil {
		c := toCustomer(*o.Customer)
		response.Customer = &c
	}

	return response
}

func toOrders(orders []readmodel.Order) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}
