// Package scrape downloads the published advocates roll and turns its HTML
// table into roster records.
//
// The roll is a single page holding one table. Each data row carries eleven
// cells: id, name, firm, address, email, phone, plot number, enrollment
// date, renewal date, certificate number and status. Rows with fewer cells
// are counted in Result.Skipped and otherwise ignored.
package scrape
