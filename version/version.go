package version

// Version of the engine, reported by the command line tool.
const Version = "0.3.0"

// VersionString is the full name of the engine.
var VersionString = "cssflow " + Version
