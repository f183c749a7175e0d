package services

import "github.com/muscarelle/collection-enrichment/internal/domain/entities"

// DefaultGenderMappings maps knowledge-base gender entity codes to the
// closed gender category set.
func DefaultGenderMappings() map[string]entities.Gender {
	return map[string]entities.Gender{
		"Q6581097": entities.GenderMale,
		"Q6581072": entities.GenderFemale,
		"Q48270":   entities.GenderNonBinary,
		"Q1097630": entities.GenderNonBinary, // intersex
		"Q2449503": entities.GenderNonBinary, // transgender
	}
}

// DefaultHeritageMappings maps country-of-citizenship entity codes to
// macro-region heritage categories. The table is curated, not exhaustive:
// codes outside it map to Unknown.
func DefaultHeritageMappings() map[string]entities.Heritage {
	return map[string]entities.Heritage{
		// Europe
		"Q142": entities.HeritageEuropean, // France
		"Q183": entities.HeritageEuropean, // Germany
		"Q38":  entities.HeritageEuropean, // Italy
		"Q29":  entities.HeritageEuropean, // Spain
		"Q145": entities.HeritageEuropean, // United Kingdom
		"Q34":  entities.HeritageEuropean, // Sweden
		"Q35":  entities.HeritageEuropean, // Denmark
		"Q55":  entities.HeritageEuropean, // Netherlands
		"Q40":  entities.HeritageEuropean, // Austria
		"Q39":  entities.HeritageEuropean, // Switzerland
		"Q36":  entities.HeritageEuropean, // Poland
		"Q37":  entities.HeritageEuropean, // Lithuania
		"Q33":  entities.HeritageEuropean, // Finland
		"Q20":  entities.HeritageEuropean, // Norway
		"Q159": entities.HeritageEuropean, // Russia

		// North America
		"Q30": entities.HeritageNorthAmerican, // United States
		"Q16": entities.HeritageNorthAmerican, // Canada
		"Q96": entities.HeritageNorthAmerican, // Mexico

		// East Asia
		"Q148": entities.HeritageEastAsian, // China
		"Q17":  entities.HeritageEastAsian, // Japan
		"Q884": entities.HeritageEastAsian, // South Korea

		// South Asia
		"Q668": entities.HeritageSouthAsian, // India
		"Q889": entities.HeritageSouthAsian, // Afghanistan
		"Q843": entities.HeritageSouthAsian, // Pakistan
		"Q902": entities.HeritageSouthAsian, // Bangladesh

		// Southeast Asia
		"Q334": entities.HeritageSoutheastAsian, // Singapore
		"Q833": entities.HeritageSoutheastAsian, // Malaysia
		"Q928": entities.HeritageSoutheastAsian, // Philippines
		"Q252": entities.HeritageSoutheastAsian, // Indonesia
		"Q869": entities.HeritageSoutheastAsian, // Thailand
		"Q881": entities.HeritageSoutheastAsian, // Vietnam
		"Q424": entities.HeritageSoutheastAsian, // Cambodia
		"Q819": entities.HeritageSoutheastAsian, // Laos
		"Q836": entities.HeritageSoutheastAsian, // Myanmar

		// Middle East
		"Q878": entities.HeritageMiddleEastern, // United Arab Emirates
		"Q858": entities.HeritageMiddleEastern, // Syria
		"Q796": entities.HeritageMiddleEastern, // Iraq
		"Q794": entities.HeritageMiddleEastern, // Iran
		"Q801": entities.HeritageMiddleEastern, // Israel
		"Q822": entities.HeritageMiddleEastern, // Lebanon

		// Africa
		"Q258":  entities.HeritageAfrican, // South Africa
		"Q1033": entities.HeritageAfrican, // Nigeria
		"Q1028": entities.HeritageAfrican, // Morocco
		"Q79":   entities.HeritageAfrican, // Egypt
		"Q1049": entities.HeritageAfrican, // Sudan
		"Q1014": entities.HeritageAfrican, // Libya
		"Q1029": entities.HeritageAfrican, // Mozambique
		"Q1050": entities.HeritageAfrican, // Eswatini
		"Q1037": entities.HeritageAfrican, // Rwanda
		"Q1036": entities.HeritageAfrican, // Uganda
		"Q1019": entities.HeritageAfrican, // Madagascar
		"Q1020": entities.HeritageAfrican, // Malawi
		"Q1041": entities.HeritageAfrican, // Senegal
		"Q1008": entities.HeritageAfrican, // Ivory Coast
		"Q1032": entities.HeritageAfrican, // Niger
		"Q1027": entities.HeritageAfrican, // Mauritania
		"Q1042": entities.HeritageAfrican, // Sierra Leone
		"Q1009": entities.HeritageAfrican, // Cameroon
		"Q1007": entities.HeritageAfrican, // Central African Republic
		"Q1006": entities.HeritageAfrican, // Burkina Faso
		"Q1005": entities.HeritageAfrican, // Burundi
		"Q1011": entities.HeritageAfrican, // Cape Verde
		"Q1013": entities.HeritageAfrican, // Djibouti
		"Q1017": entities.HeritageAfrican, // Equatorial Guinea
		"Q1018": entities.HeritageAfrican, // Eritrea
		"Q115":  entities.HeritageAfrican, // Ethiopia
		"Q1000": entities.HeritageAfrican, // Gabon
		"Q117":  entities.HeritageAfrican, // Ghana
		"Q1016": entities.HeritageAfrican, // Mali
		"Q1030": entities.HeritageAfrican, // Namibia
		"Q1039": entities.HeritageAfrican, // Sao Tome and Principe
		"Q1044": entities.HeritageAfrican, // Somalia
		"Q1045": entities.HeritageAfrican, // South Sudan
		"Q1046": entities.HeritageAfrican, // Tanzania
		"Q1048": entities.HeritageAfrican, // Tunisia
		"Q954":  entities.HeritageAfrican, // Zimbabwe

		// Latin America and the Caribbean
		"Q414": entities.HeritageLatinAmerican, // Argentina
		"Q155": entities.HeritageLatinAmerican, // Brazil
		"Q298": entities.HeritageLatinAmerican, // Chile
		"Q739": entities.HeritageLatinAmerican, // Colombia
		"Q241": entities.HeritageLatinAmerican, // Cuba
		"Q736": entities.HeritageLatinAmerican, // Ecuador
		"Q804": entities.HeritageLatinAmerican, // Panama
		"Q717": entities.HeritageLatinAmerican, // Venezuela
		"Q750": entities.HeritageLatinAmerican, // Bolivia
		"Q733": entities.HeritageLatinAmerican, // Paraguay
		"Q77":  entities.HeritageLatinAmerican, // Uruguay
		"Q419": entities.HeritageLatinAmerican, // Guatemala
		"Q774": entities.HeritageLatinAmerican, // Honduras
		"Q792": entities.HeritageLatinAmerican, // El Salvador
		"Q811": entities.HeritageLatinAmerican, // Nicaragua
		"Q800": entities.HeritageLatinAmerican, // Costa Rica
		"Q790": entities.HeritageLatinAmerican, // Haiti
		"Q786": entities.HeritageLatinAmerican, // Dominican Republic
		"Q766": entities.HeritageLatinAmerican, // Jamaica
		"Q757": entities.HeritageLatinAmerican, // Saint Vincent and the Grenadines
		"Q760": entities.HeritageLatinAmerican, // Saint Lucia
		"Q769": entities.HeritageLatinAmerican, // Grenada
		"Q784": entities.HeritageLatinAmerican, // Dominica
		"Q781": entities.HeritageLatinAmerican, // Antigua and Barbuda
		"Q778": entities.HeritageLatinAmerican, // Bahamas
		"Q244": entities.HeritageLatinAmerican, // Barbados
		"Q242": entities.HeritageLatinAmerican, // Belize
		"Q734": entities.HeritageLatinAmerican, // Guyana
		"Q730": entities.HeritageLatinAmerican, // Suriname
		"Q18":  entities.HeritageLatinAmerican, // Trinidad and Tobago
	}
}
