// Package collections is the Record Source: an HTTP client for the V&A
// collections search API and the canonical mapping from its payload to
// Record values.
//
// # Usage
//
//	client, err := collections.NewClient("https://api.vam.ac.uk", collections.Query{
//		Text:     "fashion",
//		PageSize: 30,
//		Images:   true,
//	})
//	if err != nil {
//		return err
//	}
//	records, err := client.FetchRecords(ctx)
//
// # Schema drift
//
// The upstream search endpoint has shipped two spellings for several fields
// (_primaryImageId vs _images._primary_thumbnail, _primaryDate vs objectDate
// vs productionDates, _primaryMaker as a string or an object). MapRecord is
// the single place that reconciles them; missing fields become the fixed
// placeholder strings exported by this package.
//
// # Errors
//
// FetchRecords returns *FetchError for every failure: transport errors,
// timeouts, non-2xx statuses, undecodable JSON and payloads without a
// records array. Callers are expected to recover with placeholder data.
package collections
