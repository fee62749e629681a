package snapshot

import _ "embed"

//go:embed data/vpic_snapshot.sql
var embeddedScript string
