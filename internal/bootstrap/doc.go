// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package bootstrap initializes the fact store with fixture data.

Run performs six steps and reports each to a ProgressReporter:

 1. check whether the store already holds the sales table
 2. create the tables (or drop and recreate them when forced)
 3. generate the synthetic sales rows
 4. build the region and category dimension rows
 5. clean the sales rows
 6. load sales, regions and categories, each in its own transaction

An existing store is left untouched unless Options.Force is set. A failed
entity load does not stop the others; Result.Success is true only when all
three loaded.

Usage:

	res, err := bootstrap.Run(ctx, db, bootstrap.Options{Records: 5000}, bootstrap.LogReporter{})
	if err != nil {
	    return err
	}
	if !res.Success() {
	    // at least one entity failed to load
	}
*/
package bootstrap
