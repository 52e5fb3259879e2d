// Package ingest turns user input into validated jobs and resources: single
// comma separated entries and CSV or XLSX tables.
package ingest
