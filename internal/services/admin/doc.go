// Package admin serves the flight-booking admin console.
//
// Pages are rendered on the server from the flight API and progressively
// enhanced with HTMX: navigation swaps the <main> region, the flights table
// is swapped in place for search and pagination, and every mutation is a
// same-origin POST answered with a redirect carrying a flash message.
// Mutation attempts are recorded in a local SQLite audit log.
package admin
