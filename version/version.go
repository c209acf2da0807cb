package version

// Version is overridden at build time with
// -ldflags "-X github.com/jmorganca/buildvocab/version.Version=..."
var Version string = "0.0.0"
