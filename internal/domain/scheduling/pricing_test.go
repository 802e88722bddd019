package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

func testCatalog() *Catalog {
	return NewCatalog([]models.Service{
		{Name: "Manicure Semi", PriceMinor: 25000, DurationMin: 60, AllowsRemovalAddOn: true},
		{Name: "Corte de Dama", PriceMinor: 18000, DurationMin: 45, AllowsRemovalAddOn: false},
		{Name: "Pedicure", PriceMinor: 30000, DurationMin: 90, AllowsRemovalAddOn: true},
	})
}

func TestCatalogLookups(t *testing.T) {
	c := testCatalog()

	s, ok := c.Lookup("Pedicure")
	assert.True(t, ok)
	assert.Equal(t, int64(30000), s.PriceMinor)

	_, ok = c.Lookup("Inexistente")
	assert.False(t, ok)

	assert.Equal(t, int64(25000), c.PriceOf("Manicure Semi"))
	assert.Equal(t, int64(0), c.PriceOf("Inexistente"))

	assert.Equal(t, 45, c.DurationOf("Corte de Dama"))
	assert.Equal(t, DefaultDurationMin, c.DurationOf("Inexistente"))
}

func TestParseAddOn(t *testing.T) {
	tests := []struct {
		in     string
		want   AddOn
		wantOK bool
	}{
		{"", AddOnNone, true},
		{"none", AddOnNone, true},
		{"semi", AddOnSemi, true},
		{"acrylic", AddOnAcrylic, true},
		{"feet", AddOnFeet, true},
		{"gel", AddOnNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseAddOn(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestComputeTotalPrice(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, int64(25000), c.ComputeTotalPrice("Manicure Semi", AddOnNone))
	assert.Equal(t, int64(35000), c.ComputeTotalPrice("Manicure Semi", AddOnSemi))
	assert.Equal(t, int64(40000), c.ComputeTotalPrice("Manicure Semi", AddOnAcrylic))
	assert.Equal(t, int64(33000), c.ComputeTotalPrice("Manicure Semi", AddOnFeet))

	// Serviço desconhecido: só o acréscimo do retiro.
	assert.Equal(t, int64(10000), c.ComputeTotalPrice("Inexistente", AddOnSemi))
}

func TestComputeDuration(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, 60, c.ComputeDuration("Manicure Semi", AddOnNone))
	assert.Equal(t, 90, c.ComputeDuration("Manicure Semi", AddOnAcrylic))
	assert.Equal(t, 120, c.ComputeDuration("Pedicure", AddOnSemi))

	// Flag persistido manda: corte não soma retiro mesmo se pedido.
	assert.Equal(t, 45, c.ComputeDuration("Corte de Dama", AddOnSemi))
}

func TestDefaultAllowsRemovalAddOn(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Manicure Semi", true},
		{"Pedicure Spa", true},
		{"Corte de Caballero", false},
		{"Masaje Relajante", false},
		{"Depilación Cera", false},
		{"Epilación Láser", false},
		{"Retiro Acrílicas", false},
		{"CORTE Premium", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultAllowsRemovalAddOn(tt.name), tt.name)
	}
}

func TestAllowsAddOnFallsBackToNameRule(t *testing.T) {
	c := testCatalog()

	// Fora do catálogo: classificação por substring do nome.
	assert.Equal(t, 90, c.ComputeDuration("Uñas Gel", AddOnSemi))       // 60 padrão + 30
	assert.Equal(t, 60, c.ComputeDuration("Corte Infantil", AddOnSemi)) // inelegível
}

func TestDisplayServiceName(t *testing.T) {
	assert.Equal(t, "Manicure Semi", DisplayServiceName("Manicure Semi", AddOnNone))
	assert.Equal(t, "Manicure Semi + Retiro Semi", DisplayServiceName("Manicure Semi", AddOnSemi))
	assert.Equal(t, "Pedicure + Retiro Pies", DisplayServiceName("Pedicure", AddOnFeet))
	assert.Equal(t, "Uñas + Retiro Acrílicas", DisplayServiceName("Uñas", AddOnAcrylic))
}
