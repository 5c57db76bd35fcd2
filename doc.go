// Package jfkdex provides a Go client for the JFK Records archive search
// service: full-text, semantic, and metadata search over the digitized
// assassination records, plus page text and page image retrieval.
//
//	client, _ := jfkdex.New(os.Getenv("JFK_API_KEY"))
//	res, _ := client.Search().Text(ctx, jfkdex.SearchQuery{
//	    Query: "oswald mexico city",
//	    Limit: 10,
//	})
//
// Search results and page payloads are returned as raw JSON from the
// service; the client validates and relays them without interpretation.
//
// Metadata filters are JSON objects keyed by record field, each value an
// operator/operand pair:
//
//	res, _ := client.Search().Metadata(ctx, jfkdex.SearchQuery{
//	    Metadata: map[string]any{
//	        "originator":    map[string]any{"operator": "eq", "value": "CIA"},
//	        "document_date": map[string]any{"operator": "between", "value": []string{"1963-01-01", "1964-01-01"}},
//	    },
//	})
package jfkdex
