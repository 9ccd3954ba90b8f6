// Package resource coordinates memory maintenance for long-lived stores.
//
// Stores accumulate growth headroom; under memory pressure that headroom is
// worth giving back. Components that can release slack implement Trimmer and
// register with a Controller, which sweeps them on demand (TrimAll /
// ForceTrimAll) or periodically through a Timer.
//
// The controller is safe for concurrent use. The stores it trims are not,
// so a registered store must not be mutated concurrently with a sweep.
// Registration hands the controller the right to call Trim at any time
// between Start and Stop.
package resource
