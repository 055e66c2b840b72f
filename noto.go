// Package noto provides the content scoring and extraction pipeline behind
// a personalized, audio-first news brief. It reduces noisy, multi-source,
// multi-language article text to a bounded, high-signal, factually-plausible,
// deduplicated set of sentences suitable for a downstream summarizer and
// text-to-speech.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, sqlite/, gemini/) or
// after their concern when they are pure Go (e.g., extract/, compress/,
// filter/, sources/).
package noto
