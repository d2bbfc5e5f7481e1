// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package dataprep produces and cleans the fixture data loaded into the fact store.

# Generator

Generator yields synthetic sales transactions from a fixed seed, so the same
seed and reference time always produce the same rows. Products are drawn from
the category they belong to, quantities lie in [1, 20], unit prices in
[10, 500] rounded to cents, and transaction dates fall within the two years
before the reference time.

# Cleaner

CleanSales turns raw rows into fact records:

  - exact duplicates are dropped
  - rows missing a date, category, product or region are dropped
  - a missing customer segment becomes "Unknown"
  - rows with a non-positive quantity, unit price or supplied total are dropped
  - category, region and segment are trimmed and title-cased
  - total_amount is recomputed as quantity * unit_price

Dropped rows are not reported individually; the before and after counts are logged.

# Fixtures

RegionFixtures and CategoryFixtures return the dimension rows loaded alongside
the facts.
*/
package dataprep
