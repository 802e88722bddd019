package scheduling

import "strings"

// ===============================
// Retiros (add-ons)
// ===============================

type AddOn string

const (
	AddOnNone    AddOn = "none"
	AddOnSemi    AddOn = "semi"
	AddOnAcrylic AddOn = "acrylic"
	AddOnFeet    AddOn = "feet"
)

// Acréscimo fixo de preço por retiro, em centavos.
var addOnPriceMinor = map[AddOn]int64{
	AddOnNone:    0,
	AddOnSemi:    10000,
	AddOnAcrylic: 15000,
	AddOnFeet:    8000,
}

// Sufixo de exibição anexado ao nome do serviço.
var addOnLabels = map[AddOn]string{
	AddOnSemi:    "Retiro Semi",
	AddOnAcrylic: "Retiro Acrílicas",
	AddOnFeet:    "Retiro Pies",
}

// Acréscimo de duração quando o serviço aceita retiro.
const addOnDurationMin = 30

func ParseAddOn(s string) (AddOn, bool) {
	switch AddOn(s) {
	case "", AddOnNone:
		return AddOnNone, true
	case AddOnSemi, AddOnAcrylic, AddOnFeet:
		return AddOn(s), true
	}
	return AddOnNone, false
}

// Marcadores de categoria que tornam o serviço inelegível para retiro:
// cortes, massagens, depilação/epilação e serviços que já são um retiro.
var removalIneligibleMarkers = []string{
	"corte",
	"masaje",
	"depilación",
	"epilación",
	"retiro",
}

// DefaultAllowsRemovalAddOn aplica a regra histórica de classificação por
// substring do nome. Usada para preencher Service.AllowsRemovalAddOn quando
// o serviço chega sem o campo (dados migrados).
func DefaultAllowsRemovalAddOn(serviceName string) bool {
	lower := strings.ToLower(serviceName)
	for _, marker := range removalIneligibleMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// allowsAddOn consulta o flag persistido quando o serviço existe no catálogo
// e cai na regra de substring para nomes desconhecidos.
func (c *Catalog) allowsAddOn(serviceName string) bool {
	if s, ok := c.byName[serviceName]; ok {
		return s.AllowsRemovalAddOn
	}
	return DefaultAllowsRemovalAddOn(serviceName)
}

// ComputeDuration: duração base do catálogo, +30min quando há retiro e o
// serviço aceita retiro. Total, nunca falha.
func (c *Catalog) ComputeDuration(serviceName string, addOn AddOn) int {
	d := c.DurationOf(serviceName)
	if addOn != AddOnNone && c.allowsAddOn(serviceName) {
		d += addOnDurationMin
	}
	return d
}

// ComputeTotalPrice: preço base + acréscimo fixo do retiro, em centavos.
func (c *Catalog) ComputeTotalPrice(serviceName string, addOn AddOn) int64 {
	return c.PriceOf(serviceName) + addOnPriceMinor[addOn]
}

// DisplayServiceName monta o nome de exibição ("Base + Retiro Semi").
func DisplayServiceName(base string, addOn AddOn) string {
	if label, ok := addOnLabels[addOn]; ok {
		return base + " + " + label
	}
	return base
}
