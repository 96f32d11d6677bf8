package domainlist

import _ "embed"

// Schema is the DDL for the PostgreSQL store. Deployments apply it via
// their migration tooling; integration tests apply it directly.
//
//go:embed schema.sql
var Schema string
