package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_TotalEqualsSumOfSubtotals(t *testing.T) {
	c := New()

	_, err := c.AddItem(nil, "USB cable", 2, 1500)
	require.NoError(t, err)
	_, err = c.AddItem(nil, "Screen film", 1, 2500)
	require.NoError(t, err)
	_, err = c.AddItem(nil, "Battery", 3, 8990)
	require.NoError(t, err)

	var sum int64
	for _, item := range c.Items() {
		sum += item.Subtotal
	}
	assert.Equal(t, sum, c.Total())
}

func TestAddItem_TotalIndependentOfOrder(t *testing.T) {
	type line struct {
		desc  string
		qty   int
		price int64
	}
	lines := []line{
		{"USB cable", 2, 1500},
		{"Screen film", 1, 2500},
		{"Labor", 1, 12000},
	}

	forward := New()
	for _, l := range lines {
		_, err := forward.AddItem(nil, l.desc, l.qty, l.price)
		require.NoError(t, err)
	}

	backward := New()
	for i := len(lines) - 1; i >= 0; i-- {
		_, err := backward.AddItem(nil, lines[i].desc, lines[i].qty, lines[i].price)
		require.NoError(t, err)
	}

	assert.Equal(t, forward.Total(), backward.Total())
}

func TestAddItem_RejectsInvalidWithoutMutating(t *testing.T) {
	c := New()
	_, err := c.AddItem(nil, "USB cable", 1, 1500)
	require.NoError(t, err)

	cases := []struct {
		name  string
		desc  string
		qty   int
		price int64
	}{
		{"zero quantity", "Screen film", 0, 2500},
		{"negative quantity", "Screen film", -1, 2500},
		{"zero price", "Screen film", 1, 0},
		{"negative price", "Screen film", 1, -100},
		{"empty description", "", 1, 2500},
		{"blank description", "   ", 1, 2500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.AddItem(nil, tc.desc, tc.qty, tc.price)
			assert.Error(t, err)
			assert.Equal(t, 1, c.Size())
			assert.Equal(t, int64(1500), c.Total())
		})
	}
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	productID := uuid.New()
	c := New()

	_, err := c.AddItem(&productID, "USB cable", 2, 1500)
	require.NoError(t, err)
	item, err := c.AddItem(&productID, "USB cable", 1, 1500)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, int64(4500), item.Subtotal)
}

func TestAddItem_MergesServiceLinesByDescription(t *testing.T) {
	c := New()

	_, err := c.AddItem(nil, "Troca de tela", 1, 15000)
	require.NoError(t, err)
	_, err = c.AddItem(nil, "troca de tela", 1, 15000)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Size())
	assert.Equal(t, int64(30000), c.Total())
}

func TestRemoveItem(t *testing.T) {
	c := New()
	item, err := c.AddItem(nil, "USB cable", 2, 1500)
	require.NoError(t, err)

	c.RemoveItem(item.ID)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Total())

	// removing again is a no-op
	c.RemoveItem(item.ID)
	assert.True(t, c.IsEmpty())
}

func TestTotal_ExampleScenario(t *testing.T) {
	c := New()
	_, err := c.AddItem(nil, "USB cable", 2, 1500)
	require.NoError(t, err)
	_, err = c.AddItem(nil, "Screen film", 1, 2500)
	require.NoError(t, err)

	assert.Equal(t, int64(5500), c.Total())
}
