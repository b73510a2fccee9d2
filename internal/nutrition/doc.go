// Package nutrition holds the cali domain model: the per-day record of
// accumulated intake and the categories a value can be logged against.
//
// Primary API
//
//   - type DailyRecord: totals for one calendar date
//   - type Category: calories, water, protein, carbs or fat
//   - func ParseCategory: resolves a CLI name to a Category
//   - type Clock / FormatDate: "today" as a YYYY-MM-DD key
package nutrition
