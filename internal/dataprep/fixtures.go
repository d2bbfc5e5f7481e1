// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package dataprep

import "github.com/tomtom215/salesdash/internal/models"

// RegionFixtures returns one dimension row per entry in Regions.
func RegionFixtures() []models.RegionInfo {
	rows := []struct {
		name       string
		country    string
		population int64
		income     float64
	}{
		{"North America", "USA/Canada/Mexico", 580000000, 68000},
		{"Europe", "EU & UK", 750000000, 48000},
		{"Asia Pacific", "APAC Region", 4500000000, 38000},
		{"Africa", "African Continent", 1450000000, 22000},
		{"Latin America", "LATAM", 670000000, 30000},
		{"Middle East", "MENA Region", 450000000, 45000},
		{"Oceania", "Australia/NZ/Pacific", 45000000, 52000},
	}
	out := make([]models.RegionInfo, 0, len(rows))
	for _, r := range rows {
		population, income := r.population, r.income
		out = append(out, models.RegionInfo{
			RegionName: r.name,
			Country:    r.country,
			Population: &population,
			AvgIncome:  &income,
		})
	}
	return out
}

// CategoryFixtures returns one dimension row per category in Catalog.
func CategoryFixtures() []models.CategoryInfo {
	rows := []struct {
		name   string
		desc   string
		margin float64
	}{
		{"Electronics", "Electronic devices and accessories", 25.5},
		{"Clothing", "Apparel and fashion items", 45.0},
		{"Food & Beverage", "Food and drink products", 20.0},
		{"Home & Garden", "Home improvement and garden items", 35.0},
		{"Sports & Outdoors", "Sports equipment and outdoor gear", 30.0},
	}
	out := make([]models.CategoryInfo, 0, len(rows))
	for _, c := range rows {
		margin := c.margin
		out = append(out, models.CategoryInfo{
			CategoryName:     c.name,
			Description:      c.desc,
			MarginPercentage: &margin,
		})
	}
	return out
}
