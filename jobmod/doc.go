// Risk assessment engine for job marketplace postings.
//
// This package (`github.com/jobsignal/jobsignal/jobmod`) contains a verification engine that screens new job postings before publication. Each submission runs through a set of independent checks (structural completeness, duplicate and velocity detection, company trust history, model-backed content analysis) which record review flags; the engine aggregates those flags into a single risk score and an approve/flag decision. Counters and flag history are persisted so reviewers and downstream tooling can see what was raised for each company over time.
//
// See `cmd/sieve` for a daemon built on this package.
package jobmod
