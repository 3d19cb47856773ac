// Package domain contains the core model for gendata.
//
// The domain is persistence-agnostic: it does not read files, parse YAML or pick a
// random source. Infra/adapters load the corpus and provide draws; the sampling
// rules live here so they can be tested with scripted draws.
package domain
