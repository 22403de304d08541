// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryfigma/zirveparca/internal/models"
)

func TestCreateOrderFromCart(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db)
	user := createUser(t, db, "order@example.com")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	filter := createPart(t, db, "Yag Filtresi", "OC-90", bosch, root, sub, 150)
	pad := createPart(t, db, "Balata", "BR-1", bosch, root, sub, 400)

	_, err := cartSvc.AddItem(user.ID, &AddCartItemRequest{PartID: filter.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = cartSvc.AddItem(user.ID, &AddCartItemRequest{PartID: pad.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := orderSvc.CreateOrder(user.ID, &CreateOrderRequest{
		Address:        models.JSONB{"title": "Ev", "detail": "Ankara"},
		DeliveryMethod: "cargo",
		PaymentMethod:  "transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, 0, order.CurrentStep)
	assert.Equal(t, 700.0, order.TotalAmount)
	require.Len(t, order.Items, 2)

	// The cart is emptied after checkout.
	cart, err := cartSvc.GetCart(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	orderSvc := NewOrderService(db)
	user := createUser(t, db, "order@example.com")

	_, err := orderSvc.CreateOrder(user.ID, &CreateOrderRequest{
		Address:        models.JSONB{"title": "Ev"},
		DeliveryMethod: "cargo",
		PaymentMethod:  "transfer",
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderTotalUsesSnapshotNotCurrentPrice(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db)
	user := createUser(t, db, "order@example.com")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	part := createPart(t, db, "Yag Filtresi", "OC-90", bosch, root, sub, 150)

	_, err := cartSvc.AddItem(user.ID, &AddCartItemRequest{PartID: part.ID, Quantity: 1})
	require.NoError(t, err)

	// Price hike between add and checkout.
	require.NoError(t, db.Model(part).Update("price", 500).Error)

	order, err := orderSvc.CreateOrder(user.ID, &CreateOrderRequest{
		Address:        models.JSONB{"title": "Ev"},
		DeliveryMethod: "cargo",
		PaymentMethod:  "transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, order.TotalAmount)
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db)
	user := createUser(t, db, "order@example.com")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	part := createPart(t, db, "Yag Filtresi", "OC-90", bosch, root, sub, 150)
	_, err := cartSvc.AddItem(user.ID, &AddCartItemRequest{PartID: part.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := orderSvc.CreateOrder(user.ID, &CreateOrderRequest{
		Address:        models.JSONB{"title": "Ev"},
		DeliveryMethod: "cargo",
		PaymentMethod:  "transfer",
	})
	require.NoError(t, err)

	order, err = orderSvc.UpdateStatus(order.ID, &UpdateOrderStatusRequest{
		Status:       string(models.OrderStatusShipped),
		CargoCompany: "Yurtici",
		TrackingCode: "YK123456",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.Equal(t, 3, order.CurrentStep)
	assert.Equal(t, "Yurtici", order.CargoCompany)

	// Repeating the current status is allowed and can refresh the
	// shipping details without moving the step.
	order, err = orderSvc.UpdateStatus(order.ID, &UpdateOrderStatusRequest{
		Status:       string(models.OrderStatusShipped),
		TrackingCode: "YK654321",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.Equal(t, 3, order.CurrentStep)
	assert.Equal(t, "YK654321", order.TrackingCode)

	// No going back.
	_, err = orderSvc.UpdateStatus(order.ID, &UpdateOrderStatusRequest{
		Status: string(models.OrderStatusPreparing),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Cancellation still possible before delivery.
	order, err = orderSvc.UpdateStatus(order.ID, &UpdateOrderStatusRequest{
		Status: string(models.OrderStatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, -1, order.CurrentStep)

	// Cancelled is terminal.
	_, err = orderSvc.UpdateStatus(order.ID, &UpdateOrderStatusRequest{
		Status: string(models.OrderStatusShipped),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	orderSvc := NewOrderService(db)

	_, err := orderSvc.UpdateStatus(uuid.New(), &UpdateOrderStatusRequest{Status: "lost"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListOrdersScoping(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db)

	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	part := createPart(t, db, "Yag Filtresi", "OC-90", bosch, root, sub, 150)

	for _, u := range []*models.User{alice, bob} {
		_, err := cartSvc.AddItem(u.ID, &AddCartItemRequest{PartID: part.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = orderSvc.CreateOrder(u.ID, &CreateOrderRequest{
			Address:        models.JSONB{"title": "Ev"},
			DeliveryMethod: "cargo",
			PaymentMethod:  "transfer",
		})
		require.NoError(t, err)
	}

	own, err := orderSvc.ListOrders(alice.ID, false)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, alice.ID, own[0].UserID)

	all, err := orderSvc.ListOrders(alice.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetOrderForeignOrderHidden(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db)

	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	part := createPart(t, db, "Yag Filtresi", "OC-90", bosch, root, sub, 150)

	_, err := cartSvc.AddItem(alice.ID, &AddCartItemRequest{PartID: part.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orderSvc.CreateOrder(alice.ID, &CreateOrderRequest{
		Address:        models.JSONB{"title": "Ev"},
		DeliveryMethod: "cargo",
		PaymentMethod:  "transfer",
	})
	require.NoError(t, err)

	_, err = orderSvc.GetOrder(order.ID, bob.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := orderSvc.GetOrder(order.ID, bob.ID, true)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
