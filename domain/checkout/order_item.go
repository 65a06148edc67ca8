package checkout

type OrderItem struct {
	id        string
	name      string
	price     float64
	productID string
	quantity  int
}

func NewOrderItem(id string, name string, price float64, productID string, quantity int) (*OrderItem, error) {
	item := &OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
	}

	if err := item.validate(); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *OrderItem) validate() error {
	switch {
	case i.id == "":
		return ErrItemIDRequired
	case i.productID == "":
		return ErrProductIDRequired
	case i.price < 0:
		return ErrInvalidPrice
	case i.quantity <= 0:
		return ErrInvalidQuantity
	}

	return nil
}

func (i *OrderItem) ID() string        { return i.id }
func (i *OrderItem) Name() string      { return i.name }
func (i *OrderItem) Price() float64    { return i.price }
func (i *OrderItem) ProductID() string { return i.productID }
func (i *OrderItem) Quantity() int     { return i.quantity }

func (i *OrderItem) Subtotal() float64 {
	return i.price * float64(i.quantity)
}
