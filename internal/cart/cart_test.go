package cart

import "testing"

func item(productID, size, color string, price int64) Item {
	return Item{
		ProductID:   productID,
		ProductName: "Product " + productID,
		Price:       price,
		Size:        size,
		Color:       color,
	}
}

func TestAddMergesSameVariant(t *testing.T) {
	c := Cart{}.Add(item("A", "S", "Black", 100)).Add(item("A", "S", "Black", 100))

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddKeepsDistinctVariantsSeparate(t *testing.T) {
	c := Cart{}.
		Add(item("A", "S", "Black", 100)).
		Add(item("A", "M", "Black", 100)).
		Add(item("A", "S", "Red", 100)).
		Add(item("B", "S", "Black", 50))

	if len(c.Items()) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(c.Items()))
	}
}

func TestAddQuantityEqualsCallCountPerKey(t *testing.T) {
	c := Cart{}
	for i := 0; i < 5; i++ {
		c = c.Add(item("A", "S", "Black", 100))
	}
	for i := 0; i < 3; i++ {
		c = c.Add(item("B", "M", "Red", 50))
	}

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].Quantity != 5 || items[1].Quantity != 3 {
		t.Fatalf("unexpected quantities %d/%d", items[0].Quantity, items[1].Quantity)
	}
}

func TestAddAppendsNewVariantsAtEnd(t *testing.T) {
	c := Cart{}.
		Add(item("A", "S", "Black", 100)).
		Add(item("B", "M", "Red", 50)).
		Add(item("A", "S", "Black", 100)).
		Add(item("C", "L", "Grey", 75))

	items := c.Items()
	want := []string{"A", "B", "C"}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, items[i].ProductID)
		}
	}
}

func TestSetQuantityReplacesNotAdds(t *testing.T) {
	c := Cart{}.Add(item("A", "S", "Black", 100)).Add(item("A", "S", "Black", 100))
	c = c.SetQuantity("A", "S", "Black", 7)

	items := c.Items()
	if items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", items[0].Quantity)
	}
}

func TestSetQuantityZeroRemovesEntry(t *testing.T) {
	c := Cart{}.
		Add(item("A", "S", "Black", 100)).
		Add(item("B", "M", "Red", 50))

	c = c.SetQuantity("A", "S", "Black", 0)
	items := c.Items()
	if len(items) != 1 || items[0].ProductID != "B" {
		t.Fatalf("unexpected items %+v", items)
	}

	c = c.SetQuantity("B", "M", "Red", -3)
	if !c.Empty() {
		t.Fatalf("expected empty cart, got %+v", c.Items())
	}
}

func TestSetQuantityUnknownKeyIsNoop(t *testing.T) {
	c := Cart{}.Add(item("A", "S", "Black", 100))
	c = c.SetQuantity("A", "XL", "Black", 9)

	items := c.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestClear(t *testing.T) {
	c := Cart{}.Add(item("A", "S", "Black", 100)).Clear()
	if !c.Empty() || c.Total() != 0 || c.ItemCount() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	c := Cart{}
	if c.Total() != 0 || c.ItemCount() != 0 {
		t.Fatalf("expected zero totals, got total=%d count=%d", c.Total(), c.ItemCount())
	}
}

func TestTotalsScenario(t *testing.T) {
	// {A,S,Black,price=100,qty=2} + {B,M,Red,price=50,qty=1}
	c := Cart{}.
		Add(item("A", "S", "Black", 100)).
		Add(item("A", "S", "Black", 100)).
		Add(item("B", "M", "Red", 50))

	if c.Total() != 250 {
		t.Fatalf("expected total 250, got %d", c.Total())
	}
	if c.ItemCount() != 3 {
		t.Fatalf("expected item count 3, got %d", c.ItemCount())
	}
}

func TestUpdatesDoNotMutateOriginalValue(t *testing.T) {
	base := Cart{}.Add(item("A", "S", "Black", 100))
	_ = base.Add(item("A", "S", "Black", 100))
	_ = base.SetQuantity("A", "S", "Black", 9)

	if base.Items()[0].Quantity != 1 {
		t.Fatalf("original cart mutated: %+v", base.Items())
	}
}
