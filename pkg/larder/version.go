package larder

// Version is the library version, also reported by the larder CLI.
const Version = "0.1.0"
