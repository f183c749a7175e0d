package services

import (
	"strings"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
)

// CategoryMapper translates knowledge-base entity codes into the closed
// gender and heritage category sets. Codes outside the tables map to
// Unknown; the mapper never errors.
type CategoryMapper struct {
	genders   map[string]entities.Gender
	heritages map[string]entities.Heritage
}

// NewCategoryMapper creates a mapper with the default mapping tables.
func NewCategoryMapper() *CategoryMapper {
	return NewCategoryMapperWithTables(DefaultGenderMappings(), DefaultHeritageMappings())
}

// NewCategoryMapperWithTables creates a mapper with custom tables, used
// when a deployment curates its own region groupings.
func NewCategoryMapperWithTables(genders map[string]entities.Gender, heritages map[string]entities.Heritage) *CategoryMapper {
	if genders == nil {
		genders = DefaultGenderMappings()
	}
	if heritages == nil {
		heritages = DefaultHeritageMappings()
	}
	return &CategoryMapper{genders: genders, heritages: heritages}
}

// MapGender returns the gender category for a knowledge-base entity code.
func (m *CategoryMapper) MapGender(code string) entities.Gender {
	if g, ok := m.genders[strings.TrimSpace(code)]; ok {
		return g
	}
	return entities.GenderUnknown
}

// MapHeritage returns the heritage category for a country-of-citizenship
// entity code.
func (m *CategoryMapper) MapHeritage(code string) entities.Heritage {
	if h, ok := m.heritages[strings.TrimSpace(code)]; ok {
		return h
	}
	return entities.HeritageUnknown
}
