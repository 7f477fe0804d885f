// Package sitesmith turns a website into a queryable knowledge base.
// It politely crawls a site's important pages, extracts structured content,
// fills information gaps with targeted web searches, and assembles the
// result into a cached knowledge document that downstream consumers (a
// chat assistant, a report generator) use as context.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package sitesmith
