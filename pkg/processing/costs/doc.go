// Package costs projects what a token count would cost on every model in
// the pricing catalog.
//
// Prices are USD per one million tokens. For each catalog entry the
// projector computes:
//
//   - input cost: tokens / 1,000,000 * input price
//   - output cost for 1,000 and 5,000 output tokens
//   - the two totals (input plus output)
//   - whether the tokens fit the model's context window
//
// Arithmetic uses shopspring/decimal. Intermediate terms keep full
// precision; only returned values are rounded, to six decimal places.
//
// # Usage
//
//	p := costs.NewProjector(catalog.Default())
//	for _, a := range p.Project(12000) {
//		fmt.Printf("%s/%s: $%s\n", a.Provider, a.Model, a.TotalCost1KOutput)
//	}
//
// A negative token count is a caller bug and panics.
package costs
