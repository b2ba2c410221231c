package domain

import (
	"encoding/json"
	"testing"

	ordersdomain "backoffice-api/internal/features/orders/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(email string, total string) ordersdomain.Order {
	return ordersdomain.Order{
		CustomerEmail: email,
		Total:         decimal.RequireFromString(total),
	}
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]ordersdomain.Order{}))
}

func TestAggregate_OneEntryPerEmail(t *testing.T) {
	orders := []ordersdomain.Order{
		order("a@x.com", "10"),
		order("b@y.com", "20"),
		order("a@x.com", "15"),
		order("c@z.com", "5"),
		order("b@y.com", "1"),
	}

	customers := Aggregate(orders)
	require.Len(t, customers, 3)

	counts := map[string]int{}
	for _, c := range customers {
		counts[c.Email] = c.OrderCount
	}
	assert.Equal(t, map[string]int{"a@x.com": 2, "b@y.com": 2, "c@z.com": 1}, counts)
}

func TestAggregate_FirstSeenOrderAndSums(t *testing.T) {
	orders := []ordersdomain.Order{
		order("a@x.com", "10"),
		order("b@y.com", "20"),
		order("a@x.com", "15"),
	}

	customers := Aggregate(orders)
	require.Len(t, customers, 2)

	assert.Equal(t, "a@x.com", customers[0].Email)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.RequireFromString("25")),
		"total_spent = %s", customers[0].TotalSpent)

	assert.Equal(t, "b@y.com", customers[1].Email)
	assert.Equal(t, 1, customers[1].OrderCount)
	assert.True(t, customers[1].TotalSpent.Equal(decimal.RequireFromString("20")))
}

// TestAggregate_StringTotals verifies totals sum correctly when the store
// serialized them as strings.
func TestAggregate_StringTotals(t *testing.T) {
	raw := `[
		{"customer_email":"a@x.com","total":"10.50"},
		{"customer_email":"a@x.com","total":4.25},
		{"customer_email":"a@x.com","total":"0.25"}
	]`
	var orders []ordersdomain.Order
	require.NoError(t, json.Unmarshal([]byte(raw), &orders))

	customers := Aggregate(orders)
	require.Len(t, customers, 1)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.RequireFromString("15")),
		"total_spent = %s", customers[0].TotalSpent)
	assert.Equal(t, 3, customers[0].OrderCount)
}

// TestAggregate_FirstOrderWinsContactFields verifies later orders with
// different contact details do not overwrite the representative values.
func TestAggregate_FirstOrderWinsContactFields(t *testing.T) {
	first := order("a@x.com", "10")
	first.CustomerName = "Ada"
	first.CustomerPhone = "555-0100"
	first.City = "Lisbon"
	first.Country = "PT"

	second := order("a@x.com", "20")
	second.CustomerName = "Ada L."
	second.CustomerPhone = "555-0199"
	second.City = "Porto"

	customers := Aggregate([]ordersdomain.Order{first, second})
	require.Len(t, customers, 1)

	assert.Equal(t, "Ada", customers[0].Name)
	assert.Equal(t, "555-0100", customers[0].Phone)
	assert.Equal(t, "Lisbon", customers[0].City)
	assert.Equal(t, "PT", customers[0].Country)
	assert.Equal(t, 2, customers[0].OrderCount)
}

// TestAggregate_MissingContactFields verifies absent fields stay empty and
// are omitted from the JSON encoding rather than rendered as text.
func TestAggregate_MissingContactFields(t *testing.T) {
	o := order("a@x.com", "10")
	o.CustomerName = "Ada"

	customers := Aggregate([]ordersdomain.Order{o})
	require.Len(t, customers, 1)

	encoded, err := json.Marshal(customers[0])
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "customer_phone")
	assert.NotContains(t, string(encoded), "null")
}
