// Package types defines the field and schema descriptors, the storage
// conversion rules, the Backend interface, and the standard error types
// for the larder mapping layer.
package types
