// Package ipaddr parses and expands IP address notations: single addresses,
// networks, interfaces (an address with a prefix), comma separated lists and
// last-octet ranges such as "10.0.0.5-20".
//
// Expand refuses to enumerate more addresses than the configured limit and
// returns a TOO_LARGE error instead.
package ipaddr
