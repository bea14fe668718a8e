// Package jobfetch extracts structured job postings (title, employer,
// description) from live job pages and saved HTML snapshots, and writes
// them out as per-job folders.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, http/, fs/).
package jobfetch
