package source

import "errors"

// ErrNoAPIKey means neither a per-request key nor a configured default is
// available. Callers render a "configure a key" affordance for this one,
// which is why it is distinct from transient provider failure.
var ErrNoAPIKey = errors.New("no exchange rate API key configured")

// ErrSourceUnavailable means a live provider call failed and no cached or
// static fallback existed to absorb it.
var ErrSourceUnavailable = errors.New("reference data source unavailable")
