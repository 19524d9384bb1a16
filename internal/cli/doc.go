// Package cli implements primectl, the command line front end.
//
// Shortcut commands (is-prime, factor, primes, emirps, twins, gcpd,
// classify) map their positional arguments onto a math tool; exec runs any
// tool with key=value parameters and tools lists them. Results are printed
// as text or, with --output, as JSON, YAML or TOML. A failed tool prints
// "Error: msg" on stderr and exits 1.
package cli
