// Package roster defines the advocate record model and the dataset loader.
//
// # Overview
//
// A roster is the full, ordered set of Record values published on the roll.
// It is loaded once at startup and never mutated: every consumer (search,
// paging, the TUI) derives its own views from the slice returned by Load.
//
// # Dataset Format
//
// The dataset is a JSON array produced by the scrape command:
//
//	[
//	  {
//	    "id": "1",
//	    "name": "Jane Doe",
//	    "firm_name": "Doe & Co. Advocates",
//	    "email": "jane@doe.example",
//	    "phone": "0772000000",
//	    "enrollment_date": "2015-06-01",
//	    "renewal_date": "2024-01-01",
//	    "certificate_no": "C-1234",
//	    "status": "Active"
//	  }
//	]
//
// Files ending in .yaml or .yml are decoded as YAML with the same keys.
//
// # Status Filters
//
// StatusFilter is the selector used by the search package. Its zero value
// is FilterAll, so an unset filter never hides anything. Unknown statuses in
// the dataset are kept verbatim and only pass FilterAll.
package roster
