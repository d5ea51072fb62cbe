package editor_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/application/numbering"
	"github.com/jhoicas/faktur-api/internal/domain"
	"github.com/jhoicas/faktur-api/internal/domain/entity"
	"github.com/jhoicas/faktur-api/internal/infrastructure/memory"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newService(date string) *editor.Service {
	gen := numbering.NewGenerator(memory.NewSequenceStore(), "INVC").WithClock(fixedClock(date))
	return editor.NewService(gen, decimal.NewFromInt(11)).WithClock(fixedClock(date))
}

func TestAddItem_Defaults(t *testing.T) {
	svc := newService("2024-03-05")

	it := svc.AddItem()
	assert.NotEmpty(t, it.ID)
	assert.True(t, it.Quantity.Equal(decimal.NewFromInt(1)), "cantidad por defecto 1")
	assert.True(t, it.UnitPrice.IsZero(), "precio por defecto 0")
	assert.Len(t, svc.Invoice().Items, 1)
}

func TestUpdateItem_CoercionPermisiva(t *testing.T) {
	svc := newService("2024-03-05")
	it := svc.AddItem()

	require.NoError(t, svc.UpdateItem(it.ID, entity.ItemUnitPrice, "1500000"))
	require.NoError(t, svc.UpdateItem(it.ID, entity.ItemQuantity, "no-numerico"))

	got := svc.Invoice().Items[0]
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(1_500_000)))
	assert.True(t, got.Quantity.IsZero(), "entrada no numérica coerciona a cero")
}

func TestUpdateItem_Inexistente(t *testing.T) {
	svc := newService("2024-03-05")
	err := svc.UpdateItem("no-existe", entity.ItemDescription, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_CampoDesconocido(t *testing.T) {
	svc := newService("2024-03-05")
	it := svc.AddItem()
	err := svc.UpdateItem(it.ID, entity.ItemField("color"), "azul")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

// Eliminar una línea quita exactamente esa y conserva el orden del resto.
func TestRemoveItem_PreservaOrden(t *testing.T) {
	svc := newService("2024-03-05")
	a := svc.AddItem()
	b := svc.AddItem()
	c := svc.AddItem()

	require.NoError(t, svc.RemoveItem(b.ID))

	items := svc.Invoice().Items
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, c.ID, items[1].ID)

	assert.ErrorIs(t, svc.RemoveItem(b.ID), domain.ErrNotFound)
}

func TestUpdateSettings_YResumen(t *testing.T) {
	svc := newService("2024-03-05")
	it := svc.AddItem()
	require.NoError(t, svc.UpdateItem(it.ID, entity.ItemUnitPrice, "100000"))

	require.NoError(t, svc.UpdateSettings(entity.SettingEnablePPN, "true"))
	require.NoError(t, svc.UpdateSettings(entity.SettingGlobalDiscount, "10"))
	require.NoError(t, svc.UpdateSettings(entity.SettingGlobalDiscountType, "percent"))

	sum := svc.Summary()
	assert.Equal(t, "Rp 100.000", sum.Subtotal)
	assert.Equal(t, "10.00 %", sum.Discount, "descuento porcentual se muestra como porcentaje")
	assert.Equal(t, "Rp 9.900", sum.PPN, "11% sobre la base post-descuento de 90.000")
	assert.Equal(t, "Rp 99.900", sum.Total)
}

func TestReset_NumeroNuevoYFechaDeHoy(t *testing.T) {
	svc := newService("2024-03-05")
	svc.AddItem()
	svc.UpdateNotes("algo")

	require.NoError(t, svc.Reset(context.Background()))

	inv := svc.Invoice()
	assert.Equal(t, "INVC-20240305-001", inv.Meta.InvoiceNumber)
	assert.Equal(t, "2024-03-05", inv.Meta.InvoiceDate)
	assert.Empty(t, inv.Items)
	assert.Empty(t, inv.Notes)
	assert.False(t, inv.Settings.EnablePPN)
	assert.True(t, inv.Settings.PPNRate.Equal(decimal.NewFromInt(11)))
}

func TestLoadSample_EscenarioCompleto(t *testing.T) {
	svc := newService("2024-03-05")
	require.NoError(t, svc.LoadSample(context.Background()))

	inv := svc.Invoice()
	assert.Equal(t, "PT. Example Indonesia", inv.Seller.CompanyName)
	assert.Len(t, inv.Items, 3)
	assert.Equal(t, "2024-04-04", inv.Meta.DueDate, "vencimiento a 30 días")

	tot := svc.Totals()
	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(10_750_000)), "subtotal: %s", tot.Subtotal)
	assert.True(t, tot.GrandTotal.Equal(decimal.NewFromInt(11_982_500)), "total: %s", tot.GrandTotal)
}
