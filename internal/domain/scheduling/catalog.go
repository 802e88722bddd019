package scheduling

import "github.com/DigitalJustOne/beautymanager-sub000/internal/models"

// ===============================
// Catálogo de serviços
// ===============================

// Duração assumida quando o serviço não está no catálogo.
const DefaultDurationMin = 60

// Catalog indexa os serviços ativos pelo nome. Nomes são únicos dentro do
// catálogo ativo; lookups nunca falham (preço 0 / duração padrão).
type Catalog struct {
	byName map[string]models.Service
}

func NewCatalog(services []models.Service) *Catalog {
	byName := make(map[string]models.Service, len(services))
	for _, s := range services {
		byName[s.Name] = s
	}
	return &Catalog{byName: byName}
}

func (c *Catalog) Lookup(name string) (models.Service, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// PriceOf devolve o preço base em centavos, 0 para serviço desconhecido.
func (c *Catalog) PriceOf(name string) int64 {
	if s, ok := c.byName[name]; ok {
		return s.PriceMinor
	}
	return 0
}

// DurationOf devolve a duração base em minutos, 60 para serviço desconhecido.
func (c *Catalog) DurationOf(name string) int {
	if s, ok := c.byName[name]; ok && s.DurationMin > 0 {
		return s.DurationMin
	}
	return DefaultDurationMin
}
