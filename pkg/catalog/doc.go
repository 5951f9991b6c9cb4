// Package catalog holds LLM pricing: which models exist, what one million
// input and output tokens cost, and how large each context window is.
//
// A Catalog is immutable once built and preserves the order in which
// providers and models were declared; cost projections and reports list
// models in that order.
//
// # Sources
//
// The built-in table (Default) carries November 2025 prices. A catalog can
// also be loaded from a document or from SQLite:
//
//	c, err := catalog.LoadFile("pricing.yaml") // .yaml, .yml, .toml or .json
//	c, err := catalog.LoadSQLite(ctx, "pricing.db")
//
// Documents list providers and models in order:
//
//	as_of: "2025-11-01"
//	providers:
//	  - name: OpenAI
//	    models:
//	      - {name: GPT-4o, input: 5.00, output: 20.00, context: 128000}
//
// All prices are USD per one million tokens and are held as decimals.
package catalog
