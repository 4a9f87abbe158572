package migrations

import "embed"

// FS holds the ledger schema: campaigns, the ledger_entries postings and
// the campaign_events log. internal/db applies it through the golang-migrate
// iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates to.
const Version = 1
