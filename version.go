package hotspot

// Version is the current version of the go-hotspot library
const Version = "1.0.0"
