package boa

// Version is the interpreter's semantic version, reported by `boa --version`
// and embedded in the REPL banner.
const Version = "0.1.0"

// BuildDate is overridden at link time via -ldflags; it defaults to
// "unknown" for plain `go build` invocations.
var BuildDate = "unknown"
