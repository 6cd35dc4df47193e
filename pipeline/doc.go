// Package pipeline is a producer/consumer demonstration over a single channel.
//
// Produce starts N producers that each emit random values until one is
// divisible by the stop modulus, pausing a random delay between sends. The
// returned channel is closed once every producer has exited, so a consumer
// simply ranges over it.
package pipeline
