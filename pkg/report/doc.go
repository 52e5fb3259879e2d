// Package report renders selection runs and efficiency analyses as terminal
// text: breakdowns, tables and a bar chart.
package report
